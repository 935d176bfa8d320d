package services

//go:generate mockgen -destination=mock/mock_services.go -package=mock github.com/SHEBN-DEV/Demoshebn/internal/core/services IContactService,IIdentityService,IMessageService,ISignUpService

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("services")

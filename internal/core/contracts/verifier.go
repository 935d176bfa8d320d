package contracts

//go:generate mockgen -source=verifier.go -destination=mock/mock_verifier.go -package=mock

import (
	"context"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
)

// Verifier opens identity/gender verification sessions with the provider.
// Results arrive later through the provider callback.
type Verifier interface {
	CreateSession(ctx context.Context) (*domain.VerificationSession, error)
}

// VerificationRendezvous hands a provider result to the sign-up flow
// waiting on its session id.
type VerificationRendezvous interface {
	Expect(key string)
	Deliver(key string, res domain.VerificationResult) error
	Await(ctx context.Context, key string) (domain.VerificationResult, error)
	Cancel(key string)
}

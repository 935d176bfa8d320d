package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SHEBN-DEV/Demoshebn/internal/app/rendezvous"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, domain.ErrEmptyMessage),
		errors.Is(err, domain.ErrNoPeerSelected),
		errors.Is(err, domain.ErrInvalidUserID):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrNoCurrentUser),
		errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrRelayDisabled):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSignUpNotFound),
		errors.Is(err, domain.ErrUnknownVerification):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrIdentityExists),
		errors.Is(err, domain.ErrSignUpFinished),
		errors.Is(err, rendezvous.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, domain.ErrInvalidUserID
	}
	return id, nil
}

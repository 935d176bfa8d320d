package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/services"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/logger"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"github.com/SHEBN-DEV/Demoshebn/pkg/middleware"
)

type AuthHandler struct {
	identity services.IIdentityService
	signup   services.ISignUpService
	contacts services.IContactService
}

func NewAuthHandler(
	identity services.IIdentityService,
	signup services.ISignUpService,
	contacts services.IContactService,
) *AuthHandler {
	return &AuthHandler{identity: identity, signup: signup, contacts: contacts}
}

// StartSignUp validates the form and opens a verification session.
func (h *AuthHandler) StartSignUp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	var form domain.SignUpForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.ErrorContext(r.Context(), "auth handler - start sign up - bad request", logging.Err(err))
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	flow, err := h.signup.Start(r.Context(), form)
	if err != nil {
		log.WarnContext(r.Context(), "auth handler - start sign up - failed", logging.Err(err))
		if statusFor(err) == http.StatusInternalServerError {
			http.Error(w, "verification provider unavailable", http.StatusBadGateway)
			return
		}
		writeError(w, err)
		return
	}
	log.InfoContext(r.Context(), "auth handler - start sign up - success", logging.SignUp(flow.ID.String()))
	writeJSON(w, http.StatusAccepted, flow)
}

func (h *AuthHandler) SignUpStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		http.Error(w, "invalid sign-up id", http.StatusBadRequest)
		return
	}
	flow, err := h.signup.Status(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flow)
}

func (h *AuthHandler) CancelSignUp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := pathUUID(r, "id")
	if err != nil {
		http.Error(w, "invalid sign-up id", http.StatusBadRequest)
		return
	}
	if err := h.signup.Cancel(r.Context(), id); err != nil {
		log.WarnContext(r.Context(), "auth handler - cancel sign up - failed", logging.SignUp(id.String()), logging.Err(err))
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RelayVerification accepts the {success, gender} result the hosted
// verification page posted to the browser.
func (h *AuthHandler) RelayVerification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := pathUUID(r, "id")
	if err != nil {
		http.Error(w, "invalid sign-up id", http.StatusBadRequest)
		return
	}
	var res domain.VerificationResult
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.signup.Relay(r.Context(), id, res); err != nil {
		log.WarnContext(r.Context(), "auth handler - relay verification - rejected", logging.SignUp(id.String()), logging.Err(err))
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.ErrorContext(r.Context(), "auth handler - login - bad request", logging.Err(err))
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	token, identity, err := h.identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.WarnContext(r.Context(), "auth handler - login - failed", logging.Err(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"user_id": identity.ID,
	})
	log.InfoContext(r.Context(), "auth handler - login - token sent", logging.User(identity.ID.String()))
}

// Me returns the identity behind the bearer token, 401 when there is none.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		http.Error(w, "Authorization header required", http.StatusUnauthorized)
		return
	}
	identity, err := h.identity.CurrentIdentity(r.Context(), token)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		writeError(w, err)
		return
	}
	body := map[string]interface{}{
		"id":         identity.ID,
		"email":      identity.Email,
		"created_at": identity.CreatedAt,
	}
	profile, err := h.contacts.Get(r.Context(), identity.ID)
	switch {
	case err == nil:
		body["profile"] = profile
	case !errors.Is(err, domain.ErrUserNotFound):
		logger.FromContext(r.Context()).WarnContext(r.Context(), "auth handler - me - profile lookup failed", logging.Err(err))
	}
	writeJSON(w, http.StatusOK, body)
}

package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/services"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/logger"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
)

const CallbackSecretHeader = "X-Callback-Secret"

type VerificationHandler struct {
	signup services.ISignUpService
	secret string
}

// NewVerificationHandler serves the provider callback. An empty secret
// disables the header check.
func NewVerificationHandler(signup services.ISignUpService, secret string) *VerificationHandler {
	return &VerificationHandler{signup: signup, secret: secret}
}

func (h *VerificationHandler) Callback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	if h.secret != "" {
		got := r.Header.Get(CallbackSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			log.WarnContext(r.Context(), "verification handler - callback - bad secret")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
	}
	var res domain.VerificationResult
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil || res.SessionID == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.signup.Deliver(r.Context(), res); err != nil {
		writeError(w, err)
		return
	}
	log.InfoContext(r.Context(), "verification handler - callback - delivered", logging.Verification(res.SessionID))
	w.WriteHeader(http.StatusAccepted)
}

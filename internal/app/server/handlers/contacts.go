package handlers

import (
	"net/http"

	"github.com/SHEBN-DEV/Demoshebn/internal/app/chatview"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/services"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/logger"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"github.com/SHEBN-DEV/Demoshebn/pkg/middleware"
)

type ContactsHandler struct {
	contacts services.IContactService
}

func NewContactsHandler(contacts services.IContactService) *ContactsHandler {
	return &ContactsHandler{contacts: contacts}
}

// List returns the caller's contacts whose name contains ?q=.
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	users, err := h.contacts.List(r.Context(), userID)
	if err != nil {
		log.ErrorContext(r.Context(), "contacts handler - list - failed", logging.User(userID.String()), logging.Err(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chatview.FilterContacts(users, r.URL.Query().Get("q")))
}

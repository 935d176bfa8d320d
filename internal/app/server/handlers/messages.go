package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/services"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/logger"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"github.com/SHEBN-DEV/Demoshebn/pkg/middleware"
)

type MessagesHandler struct {
	messages services.IMessageService
}

func NewMessagesHandler(messages services.IMessageService) *MessagesHandler {
	return &MessagesHandler{messages: messages}
}

func (h *MessagesHandler) History(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	peerID, err := pathUUID(r, "peerID")
	if err != nil {
		http.Error(w, "invalid peer id", http.StatusBadRequest)
		return
	}
	msgs, err := h.messages.LoadConversation(r.Context(), userID, peerID)
	if err != nil {
		log.ErrorContext(r.Context(), "messages handler - history - failed", logging.Peer(peerID.String()), logging.Err(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *MessagesHandler) Send(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	peerID, err := pathUUID(r, "peerID")
	if err != nil {
		http.Error(w, "invalid peer id", http.StatusBadRequest)
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	msg, err := h.messages.Send(r.Context(), userID, peerID, req.Content)
	if err != nil {
		log.WarnContext(r.Context(), "messages handler - send - failed", logging.Peer(peerID.String()), logging.Err(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

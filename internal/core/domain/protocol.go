package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client -> server frame types
const (
	TypeSelect   = "select"
	TypeDeselect = "deselect"
	TypeSend     = "send"
)

// Server -> client frame types
const (
	TypeConversation = "conversation"
	TypeMessage      = "message"
	TypeSent         = "sent"
	TypeError        = "error"
)

// ClientFrame is any frame sent by the chat client.
type ClientFrame struct {
	Type    string `json:"type"`
	PeerID  string `json:"peer_id,omitempty"`
	Content string `json:"content,omitempty"`
}

// ConversationSnapshot replaces the client's message list.
type ConversationSnapshot struct {
	Type     string    `json:"type"` // "conversation"
	PeerID   string    `json:"peer_id"`
	Messages []Message `json:"messages"`
}

// MessageEvent appends one message to the client's list.
type MessageEvent struct {
	Type    string  `json:"type"` // "message"
	Message Message `json:"message"`
}

// SentAck tells the client the send succeeded and its input can be cleared.
type SentAck struct {
	Type      string    `json:"type"` // "sent"
	MessageID uuid.UUID `json:"message_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorMessage is WS-safe error
type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Code    string `json:"code"`
	Message string `json:"message"`
}

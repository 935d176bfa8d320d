package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated account created at sign-up.
type Identity struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

func NewIdentity(email, passwordHash string) *Identity {
	return &Identity{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}

// Profile holds the user-visible attributes, keyed by Identity.ID.
type Profile struct {
	ID        uuid.UUID
	FullName  string
	UserName  string
	Email     string
	Gender    string
	Avatar    string
	CreatedAt time.Time
}

// User is the display projection of a profile shown in contact lists.
type User struct {
	ID     uuid.UUID `json:"id" db:"id"`
	Name   string    `json:"name" db:"name"`
	Avatar string    `json:"avatar" db:"avatar"`
	Online bool      `json:"online" db:"-"`
}

// Message is a direct message between two users.
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewMessage(senderID, receiverID uuid.UUID, content string) *Message {
	return &Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
}

// Conversation is the implicit pair of participants of a direct chat.
type Conversation struct {
	UserID uuid.UUID
	PeerID uuid.UUID
}

// Contains reports whether m was exchanged between the two participants,
// in either direction.
func (c Conversation) Contains(m Message) bool {
	return (m.SenderID == c.UserID && m.ReceiverID == c.PeerID) ||
		(m.SenderID == c.PeerID && m.ReceiverID == c.UserID)
}

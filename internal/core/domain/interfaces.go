package domain

//go:generate mockgen -source=interfaces.go -destination=mock/mock_interfaces.go -package=mock

import (
	"context"

	"github.com/google/uuid"
)

// IdentityRepository handles the authentication identities
type IdentityRepository interface {
	CreateIdentity(ctx context.Context, identity *Identity) error
	GetIdentityByID(ctx context.Context, id uuid.UUID) (*Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (*Identity, error)
}

// ProfileRepository stores profiles and serves the contact projection
type ProfileRepository interface {
	CreateProfile(ctx context.Context, p *Profile) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context, exclude uuid.UUID) ([]User, error)
}

// MessageRepository handles message persistence
type MessageRepository interface {
	InsertMessage(ctx context.Context, msg *Message) error
	// ListConversation returns messages between a and b in either direction,
	// oldest first.
	ListConversation(ctx context.Context, a, b uuid.UUID) ([]Message, error)
}

package contracts

//go:generate mockgen -source=presence.go -destination=mock/mock_presence.go -package=mock

import (
	"context"
	"time"
)

// Users heartbeat into a single ZSET scored by last-seen time
type PresenceStore interface {
	// UpdateOnlineStatus records a heartbeat for userID
	UpdateOnlineStatus(ctx context.Context, userID string, ttl time.Duration) error
	// OnlineUsers returns the user ids seen within the online window
	OnlineUsers(ctx context.Context) ([]string, error)
	// ClearUser drops the user immediately, used on disconnect
	ClearUser(ctx context.Context, userID string) error
}

package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const presenceKey = "presence:users"

type RedisPresenceStore struct {
	rdb    *redis.Client
	window time.Duration
}

// NewRedisPresenceStore treats users as online for window after their last heartbeat.
func NewRedisPresenceStore(rdb *redis.Client, window time.Duration) *RedisPresenceStore {
	return &RedisPresenceStore{
		rdb:    rdb,
		window: window,
	}
}

// UpdateOnlineStatus adds/updates a user in the ZSet with the current timestamp.
func (p *RedisPresenceStore) UpdateOnlineStatus(
	ctx context.Context,
	userID string,
	ttl time.Duration, // "inactivity threshold"
) error {
	now := time.Now().Unix()
	err := p.rdb.ZAdd(ctx, presenceKey, redis.Z{
		Score:  float64(now),
		Member: userID,
	}).Err()
	if err != nil {
		return err
	}
	// Set an expiration on the whole ZSet so it doesn't leak memory
	// once nobody is connected.
	return p.rdb.Expire(ctx, presenceKey, ttl*2).Err()
}

// OnlineUsers returns users who have checked in within the presence window.
func (p *RedisPresenceStore) OnlineUsers(ctx context.Context) ([]string, error) {
	threshold := time.Now().Add(-p.window).Unix()
	// Remove stale members first (Self-cleaning)
	if err := p.rdb.ZRemRangeByScore(ctx, presenceKey, "-inf", strconv.FormatInt(threshold, 10)).Err(); err != nil {
		return nil, err
	}
	return p.rdb.ZRange(ctx, presenceKey, 0, -1).Result()
}

func (p *RedisPresenceStore) ClearUser(ctx context.Context, userID string) error {
	return p.rdb.ZRem(ctx, presenceKey, userID).Err()
}

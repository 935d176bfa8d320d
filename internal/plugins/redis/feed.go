package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"github.com/redis/go-redis/v9"
)

const messageChangesChannel = "changes:messages"

// RedisChangeFeed fans message changes out over Redis pub/sub. Every
// subscription owns one PubSub connection and filters locally.
type RedisChangeFeed struct {
	rdb *redis.Client
	log *slog.Logger
}

func NewRedisChangeFeed(log *slog.Logger, rdb *redis.Client) *RedisChangeFeed {
	return &RedisChangeFeed{rdb: rdb, log: log}
}

func (f *RedisChangeFeed) Publish(ctx context.Context, ev domain.ChangeEvent) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return f.rdb.Publish(ctx, messageChangesChannel, raw).Err()
}

func (f *RedisChangeFeed) Subscribe(
	ctx context.Context,
	filter domain.ChangeFilter,
	handler func(domain.ChangeEvent),
) (contracts.Subscription, error) {
	pubsub := f.rdb.Subscribe(ctx, messageChangesChannel)
	// Wait for the subscribe confirmation so no event published after
	// Subscribe returns is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}
	sub := &redisSubscription{
		pubsub: pubsub,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(sub.done)
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				ev, err := decodeChange([]byte(msg.Payload))
				if err != nil {
					f.log.Error("feed - subscribe - bad payload", logging.Err(err))
					continue
				}
				if filter.Matches(ev) {
					handler(ev)
				}
			}
		}
	}()
	return sub, nil
}

func decodeChange(raw []byte) (domain.ChangeEvent, error) {
	var ev domain.ChangeEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return ev, err
	}
	if ev.Kind == "" {
		return ev, errors.New("change event without type")
	}
	return ev, nil
}

type redisSubscription struct {
	pubsub *redis.PubSub
	done   chan struct{}
	once   sync.Once
	err    error
}

// Unsubscribe closes the PubSub and waits for the delivery goroutine to
// exit, so no handler call happens after it returns. It must not be called
// from inside the handler.
func (s *redisSubscription) Unsubscribe() error {
	s.once.Do(func() {
		s.err = s.pubsub.Close()
		<-s.done
	})
	return s.err
}

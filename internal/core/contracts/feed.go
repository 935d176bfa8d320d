package contracts

//go:generate mockgen -source=feed.go -destination=mock/mock_feed.go -package=mock

import (
	"context"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
)

// Subscription is a live realtime feed. Unsubscribe releases it and is safe
// to call more than once.
type Subscription interface {
	Unsubscribe() error
}

// ChangePublisher pushes message row changes to subscribers.
type ChangePublisher interface {
	Publish(ctx context.Context, ev domain.ChangeEvent) error
}

// ChangeFeed delivers message row changes matching a filter.
type ChangeFeed interface {
	ChangePublisher
	// Subscribe starts delivering matching events to handler until the
	// subscription is released or ctx is done. Events are delivered
	// sequentially from a single goroutine.
	Subscribe(ctx context.Context, filter domain.ChangeFilter, handler func(domain.ChangeEvent)) (Subscription, error)
}

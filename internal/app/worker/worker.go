package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/metrics"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
)

// NotificationSource yields raw database notifications until ctx is done.
type NotificationSource interface {
	Listen(ctx context.Context, handler func(ctx context.Context, payload []byte) error) error
}

// ChangeRelay republishes message table notifications to the change feed,
// so rows written by anything with database access reach subscribers.
type ChangeRelay struct {
	log       *slog.Logger
	source    NotificationSource
	publisher contracts.ChangePublisher
	metrics   *metrics.Metrics
}

func NewChangeRelay(
	log *slog.Logger,
	source NotificationSource,
	publisher contracts.ChangePublisher,
	m *metrics.Metrics,
) contracts.AsyncWorker {
	return &ChangeRelay{
		log:       log,
		source:    source,
		publisher: publisher,
		metrics:   m,
	}
}

func (w *ChangeRelay) Run(ctx context.Context) error {
	w.log.InfoContext(ctx, "worker - run - relaying database changes")
	if err := w.source.Listen(ctx, w.ProcessNotification); err != nil {
		w.log.ErrorContext(ctx, "worker - run - listen failed", logging.Err(err))
		return err
	}
	w.log.InfoContext(ctx, "worker - run - stopped")
	return nil
}

func (w *ChangeRelay) ProcessNotification(ctx context.Context, payload []byte) error {
	var ev domain.ChangeEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		w.log.Error("worker - process notification - wrong payload", logging.Err(err))
		return fmt.Errorf("decode notification: %w", err)
	}
	switch ev.Kind {
	case domain.ChangeInsert, domain.ChangeUpdate, domain.ChangeDelete:
	default:
		return fmt.Errorf("decode notification: unknown kind %q", ev.Kind)
	}
	w.metrics.FeedEvent(string(ev.Kind), "relayed")
	if err := w.publisher.Publish(ctx, ev); err != nil {
		w.log.ErrorContext(ctx, "worker - process notification - publish failed", logging.Err(err))
		return err
	}
	return nil
}

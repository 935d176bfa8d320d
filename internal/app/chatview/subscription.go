package chatview

import (
	"log/slog"
	"sync"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/metrics"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
)

// handle owns one live feed subscription. It is held by exactly one
// session slot and released once.
type handle struct {
	sub     contracts.Subscription
	once    sync.Once
	log     *slog.Logger
	metrics *metrics.Metrics
}

func newHandle(sub contracts.Subscription, log *slog.Logger, m *metrics.Metrics) *handle {
	m.SubscriptionOpened()
	return &handle{sub: sub, log: log, metrics: m}
}

// release blocks until the subscription's handler can no longer run.
func (h *handle) release() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		if err := h.sub.Unsubscribe(); err != nil {
			h.log.Warn("chatview - release - unsubscribe failed", logging.Err(err))
		}
		h.metrics.SubscriptionClosed()
	})
}

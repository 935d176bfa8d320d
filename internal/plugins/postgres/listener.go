package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/SHEBN-DEV/Demoshebn/internal/config"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"github.com/lib/pq"
)

const listenerPingInterval = 90 * time.Second

// NotifyListener receives NOTIFY payloads on one channel. It holds its own
// connection outside the pool, as LISTEN requires.
type NotifyListener struct {
	listener *pq.Listener
	channel  string
	log      *slog.Logger
}

func NewNotifyListener(log *slog.Logger, pgCfg config.PostgresConfig, feedCfg config.FeedConfig) *NotifyListener {
	onEvent := func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnectionAttemptFailed, pq.ListenerEventDisconnected:
			log.Error("postgres listener - connection event", "event", ev, logging.Err(err))
		case pq.ListenerEventReconnected:
			log.Info("postgres listener - reconnected", "channel", feedCfg.NotifyChannel)
		}
	}
	return &NotifyListener{
		listener: pq.NewListener(pgCfg.DSN, feedCfg.MinReconnect, feedCfg.MaxReconnect, onEvent),
		channel:  feedCfg.NotifyChannel,
		log:      log,
	}
}

// Listen blocks, handing every payload to handler, until ctx is done.
func (l *NotifyListener) Listen(ctx context.Context, handler func(ctx context.Context, payload []byte) error) error {
	if err := l.listener.Listen(l.channel); err != nil {
		return err
	}
	defer l.listener.Close()
	ping := time.NewTicker(listenerPingInterval)
	defer ping.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-l.listener.Notify:
			// nil after a reconnect: notifications may have been lost
			if n == nil {
				l.log.Warn("postgres listener - notifications may have been dropped", "channel", l.channel)
				continue
			}
			if err := handler(ctx, []byte(n.Extra)); err != nil {
				l.log.ErrorContext(ctx, "postgres listener - handler failed", "channel", l.channel, logging.Err(err))
			}
		case <-ping.C:
			go func() {
				if err := l.listener.Ping(); err != nil {
					l.log.Error("postgres listener - ping failed", logging.Err(err))
				}
			}()
		}
	}
}

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"go.opentelemetry.io/otel/codes"
)

const (
	HeartbeatInterval = 30 * time.Second
	OnlineWindow      = 45 * time.Second

	clearTimeout = 2 * time.Second
)

type IPresenceService interface {
	// HandleConnect marks the user online immediately.
	HandleConnect(ctx context.Context, userID string) error
	// HandleHeartbeat refreshes the user every interval until ctx is done.
	HandleHeartbeat(ctx context.Context, userID string)
	// HandleDisconnect drops the user from the online set.
	HandleDisconnect(ctx context.Context, userID string) error
	// Track keeps userID online until ctx is done, then clears it.
	Track(ctx context.Context, userID string)
}

type PresenceService struct {
	log      *slog.Logger
	store    contracts.PresenceStore
	interval time.Duration
}

func NewPresenceService(log *slog.Logger, store contracts.PresenceStore) *PresenceService {
	return &PresenceService{
		log:      log,
		store:    store,
		interval: HeartbeatInterval,
	}
}

func (p *PresenceService) HandleConnect(ctx context.Context, userID string) error {
	ctx, span := tracer.Start(ctx, "PresenceService.HandleConnect")
	defer span.End()
	if err := p.store.UpdateOnlineStatus(ctx, userID, OnlineWindow); err != nil {
		span.RecordError(err)
		p.log.ErrorContext(ctx, "presence - handle connect - update online status failed", logging.User(userID), logging.Err(err))
		return err
	}
	return nil
}

func (p *PresenceService) HandleHeartbeat(ctx context.Context, userID string) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.log.Debug("presence - handle heartbeat - stopped", logging.User(userID))
			return
		case <-ticker.C:
			_, span := tracer.Start(ctx, "Heartbeat.UpdateOnlineStatus")
			if err := p.store.UpdateOnlineStatus(ctx, userID, OnlineWindow); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "redis update failed")
				p.log.ErrorContext(ctx, "presence - handle heartbeat - update online status failed", logging.User(userID), logging.Err(err))
			}
			span.End()
		}
	}
}

func (p *PresenceService) HandleDisconnect(ctx context.Context, userID string) error {
	if err := p.store.ClearUser(ctx, userID); err != nil {
		p.log.ErrorContext(ctx, "presence - handle disconnect - clear user failed", logging.User(userID), logging.Err(err))
		return err
	}
	return nil
}

// Track runs connect, heartbeat and disconnect for one user. A failed
// connect is retried by the next heartbeat.
func (p *PresenceService) Track(ctx context.Context, userID string) {
	if err := p.HandleConnect(ctx, userID); err != nil {
		p.log.WarnContext(ctx, "presence - track - user not marked online yet", logging.User(userID), logging.Err(err))
	}
	p.HandleHeartbeat(ctx, userID)

	clearCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), clearTimeout)
	defer cancel()
	if err := p.HandleDisconnect(clearCtx, userID); err != nil {
		p.log.WarnContext(clearCtx, "presence - track - user not cleared", logging.User(userID), logging.Err(err))
	}
}

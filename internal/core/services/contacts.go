package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type IContactService interface {
	// List returns every profile except the caller's, ordered by name, each
	// flagged with its presence.
	List(ctx context.Context, currentUserID uuid.UUID) ([]domain.User, error)
	// Get returns the display projection of one profile.
	Get(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type ContactService struct {
	log      *slog.Logger
	repo     domain.ProfileRepository
	presence contracts.PresenceStore
}

// NewContactService builds the contact lister. presence may be nil, in which
// case every contact is reported offline.
func NewContactService(log *slog.Logger, repo domain.ProfileRepository, presence contracts.PresenceStore) *ContactService {
	return &ContactService{
		log:      log,
		repo:     repo,
		presence: presence,
	}
}

func (s *ContactService) List(ctx context.Context, currentUserID uuid.UUID) ([]domain.User, error) {
	ctx, span := tracer.Start(ctx, "ContactService.List", trace.WithAttributes(
		attribute.String("user_id", currentUserID.String()),
	))
	defer span.End()

	users, err := s.repo.ListUsers(ctx, currentUserID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "db read failed")
		s.log.ErrorContext(ctx, "contacts - list - list users failed", logging.User(currentUserID.String()), logging.Err(err))
		return nil, err
	}
	s.markOnline(ctx, users)
	span.SetAttributes(attribute.Int("contact_count", len(users)))
	return users, nil
}

func (s *ContactService) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "ContactService.Get", trace.WithAttributes(
		attribute.String("user_id", userID.String()),
	))
	defer span.End()

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "db read failed")
			s.log.ErrorContext(ctx, "contacts - get - get user failed", logging.User(userID.String()), logging.Err(err))
		}
		return nil, err
	}
	users := []domain.User{*user}
	s.markOnline(ctx, users)
	return &users[0], nil
}

func (s *ContactService) markOnline(ctx context.Context, users []domain.User) {
	if s.presence == nil || len(users) == 0 {
		return
	}
	online, err := s.presence.OnlineUsers(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "contacts - list - presence lookup failed", logging.Err(err))
		return
	}
	set := make(map[string]struct{}, len(online))
	for _, id := range online {
		set[id] = struct{}{}
	}
	for i := range users {
		_, users[i].Online = set[users[i].ID.String()]
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/crypto/bcrypt"
)

type IIdentityService interface {
	// SignUp creates an authentication identity. Inside a transaction ctx it
	// joins that transaction.
	SignUp(ctx context.Context, email, password string) (*domain.Identity, error)
	// Login checks the credentials and returns a session token.
	Login(ctx context.Context, email, password string) (string, *domain.Identity, error)
	// CurrentIdentity resolves a session token to its identity.
	CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error)
}

type IdentityService struct {
	log    *slog.Logger
	repo   domain.IdentityRepository
	tokens *TokenService
	cost   int
}

func NewIdentityService(log *slog.Logger, repo domain.IdentityRepository, tokens *TokenService) *IdentityService {
	return &IdentityService{
		log:    log,
		repo:   repo,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
	}
}

func (s *IdentityService) SignUp(ctx context.Context, email, password string) (*domain.Identity, error) {
	ctx, span := tracer.Start(ctx, "IdentityService.SignUp")
	defer span.End()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("hash password: %w", err)
	}
	identity := domain.NewIdentity(email, string(hash))
	if err := s.repo.CreateIdentity(ctx, identity); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create identity failed")
		s.log.ErrorContext(ctx, "identity - sign up - create identity failed", logging.Email(identity.Email), logging.Err(err))
		return nil, err
	}
	s.log.InfoContext(ctx, "identity - sign up - create identity success", logging.User(identity.ID.String()))
	return identity, nil
}

func (s *IdentityService) Login(ctx context.Context, email, password string) (string, *domain.Identity, error) {
	ctx, span := tracer.Start(ctx, "IdentityService.Login")
	defer span.End()

	identity, err := s.repo.GetIdentityByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		span.RecordError(err)
		s.log.ErrorContext(ctx, "identity - login - get identity failed", logging.Err(err))
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		s.log.WarnContext(ctx, "identity - login - wrong password", logging.User(identity.ID.String()))
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokens.GenerateToken(identity.ID)
	if err != nil {
		span.RecordError(err)
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	s.log.InfoContext(ctx, "identity - login - success", logging.User(identity.ID.String()))
	return token, identity, nil
}

func (s *IdentityService) CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error) {
	ctx, span := tracer.Start(ctx, "IdentityService.CurrentIdentity")
	defer span.End()

	id, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return s.repo.GetIdentityByID(ctx, id)
}

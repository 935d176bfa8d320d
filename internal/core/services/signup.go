package services

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/metrics"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	ToastAccountCreated  = "Account created successfully! Redirecting..."
	ToastOnlyFemale      = "Only female registrations are allowed."
	ToastVerifyTimeout   = "Verification timed out. Please try again."
	ToastVerifyCancelled = "Verification cancelled."
	errRegisteringPrefix = "Error registering: "
	errSavingProfile     = "Error saving profile: "

	admittedGender = "female"
	minPassword    = 8
	writeTimeout   = 30 * time.Second
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SignUpOptions struct {
	VerificationTimeout time.Duration
	RedirectTo          string
	RedirectAfter       time.Duration
	// FlowRetention is how long finished flows stay readable.
	FlowRetention time.Duration
	// AllowClientRelay accepts verification results relayed by the browser.
	// Only safe when no provider API key is configured.
	AllowClientRelay bool
}

type ISignUpService interface {
	Start(ctx context.Context, form domain.SignUpForm) (*domain.SignUpFlow, error)
	Status(ctx context.Context, id uuid.UUID) (*domain.SignUpFlow, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	// Deliver routes a provider callback to the flow waiting on its session.
	Deliver(ctx context.Context, res domain.VerificationResult) error
	// Relay routes a result reported by the client for flow id.
	Relay(ctx context.Context, id uuid.UUID, res domain.VerificationResult) error
}

type signUpEntry struct {
	flow      domain.SignUpFlow
	sessionID string
	done      chan struct{}
}

type SignUpService struct {
	log        *slog.Logger
	identities *IdentityService
	profiles   domain.ProfileRepository
	tx         contracts.Transactor
	verifier   contracts.Verifier
	rendezvous contracts.VerificationRendezvous
	metrics    *metrics.Metrics
	opts       SignUpOptions

	mu    sync.Mutex
	flows map[uuid.UUID]*signUpEntry

	root  context.Context
	stop  context.CancelFunc
	wg    sync.WaitGroup
	nowFn func() time.Time
}

func NewSignUpService(
	log *slog.Logger,
	identities *IdentityService,
	profiles domain.ProfileRepository,
	tx contracts.Transactor,
	verifier contracts.Verifier,
	rendezvous contracts.VerificationRendezvous,
	opts SignUpOptions,
	m *metrics.Metrics,
) *SignUpService {
	root, stop := context.WithCancel(context.Background())
	return &SignUpService{
		log:        log,
		identities: identities,
		profiles:   profiles,
		tx:         tx,
		verifier:   verifier,
		rendezvous: rendezvous,
		metrics:    m,
		opts:       opts,
		flows:      make(map[uuid.UUID]*signUpEntry),
		root:       root,
		stop:       stop,
		nowFn:      time.Now,
	}
}

// ValidateForm applies the sign-up form rules.
func ValidateForm(form domain.SignUpForm) error {
	switch {
	case strings.TrimSpace(form.FullName) == "":
		return &domain.ValidationError{Field: "full_name", Message: "full name is required"}
	case strings.TrimSpace(form.UserName) == "":
		return &domain.ValidationError{Field: "user_name", Message: "user name is required"}
	case !emailPattern.MatchString(strings.TrimSpace(form.Email)):
		return &domain.ValidationError{Field: "email", Message: "invalid email address"}
	case len(form.Password) < minPassword:
		return &domain.ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// Admitted reports whether a verification result passes the admission gate.
func Admitted(res domain.VerificationResult) bool {
	return res.Success && strings.EqualFold(res.Gender, admittedGender)
}

func (s *SignUpService) Start(ctx context.Context, form domain.SignUpForm) (*domain.SignUpFlow, error) {
	ctx, span := tracer.Start(ctx, "SignUpService.Start")
	defer span.End()

	if err := ValidateForm(form); err != nil {
		return nil, err
	}
	session, err := s.verifier.CreateSession(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create verification session failed")
		s.log.ErrorContext(ctx, "signup - start - create verification session failed", logging.Err(err))
		return nil, err
	}

	entry := &signUpEntry{
		flow: domain.SignUpFlow{
			ID:              uuid.New(),
			State:           domain.StateAwaitingVerification,
			VerificationURL: session.URL,
			UpdatedAt:       s.nowFn(),
		},
		sessionID: session.ID,
		done:      make(chan struct{}),
	}
	s.rendezvous.Expect(session.ID)

	s.mu.Lock()
	s.sweepLocked()
	s.flows[entry.flow.ID] = entry
	snapshot := entry.flow
	s.mu.Unlock()

	span.SetAttributes(attribute.String("signup_id", snapshot.ID.String()))
	s.log.InfoContext(ctx, "signup - start - awaiting verification", logging.SignUp(snapshot.ID.String()), logging.Verification(session.ID))

	s.wg.Add(1)
	go s.run(entry, form)
	return &snapshot, nil
}

func (s *SignUpService) run(entry *signUpEntry, form domain.SignUpForm) {
	defer s.wg.Done()
	defer close(entry.done)

	id := entry.flow.ID
	ctx, cancel := context.WithTimeout(s.root, s.opts.VerificationTimeout)
	res, err := s.rendezvous.Await(ctx, entry.sessionID)
	cancel()
	if err != nil {
		s.awaitFailed(id, err)
		return
	}
	s.setState(id, domain.StateVerificationResult)

	if !Admitted(res) {
		s.log.Info("signup - run - verification not admitted", logging.SignUp(id.String()), slog.Bool("success", res.Success))
		s.finish(id, domain.StateFailure, &domain.Toast{Message: ToastOnlyFemale, Type: domain.ToastError}, nil, nil)
		s.metrics.SignUpFinished("rejected")
		return
	}

	wctx, wcancel := context.WithTimeout(s.root, writeTimeout)
	defer wcancel()
	identityID, err := s.createAccount(wctx, id, form)
	if err != nil {
		var step *stepError
		msg := errRegisteringPrefix + err.Error()
		if errors.As(err, &step) {
			msg = step.prefix + step.err.Error()
		}
		s.finish(id, domain.StateFailure, &domain.Toast{Message: msg, Type: domain.ToastError}, nil, nil)
		s.metrics.SignUpFinished("error")
		return
	}

	redirect := &domain.Redirect{To: s.opts.RedirectTo, AfterMS: s.opts.RedirectAfter.Milliseconds()}
	s.finish(id, domain.StateSuccess, &domain.Toast{Message: ToastAccountCreated, Type: domain.ToastSuccess}, redirect, &identityID)
	s.metrics.SignUpFinished("success")
	s.log.Info("signup - run - account created", logging.SignUp(id.String()), logging.User(identityID.String()))
}

type stepError struct {
	prefix string
	err    error
}

func (e *stepError) Error() string { return e.prefix + e.err.Error() }
func (e *stepError) Unwrap() error { return e.err }

// createAccount writes the identity and its profile in one transaction.
func (s *SignUpService) createAccount(ctx context.Context, flowID uuid.UUID, form domain.SignUpForm) (uuid.UUID, error) {
	ctx, span := tracer.Start(ctx, "SignUpService.CreateAccount", trace.WithAttributes(
		attribute.String("signup_id", flowID.String()),
	))
	defer span.End()

	var identityID uuid.UUID
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		s.setState(flowID, domain.StateAccountCreation)
		identity, err := s.identities.SignUp(txCtx, form.Email, form.Password)
		if err != nil {
			return &stepError{prefix: errRegisteringPrefix, err: err}
		}
		s.setState(flowID, domain.StateProfileCreation)
		profile := &domain.Profile{
			ID:        identity.ID,
			FullName:  strings.TrimSpace(form.FullName),
			UserName:  strings.TrimSpace(form.UserName),
			Email:     identity.Email,
			Gender:    admittedGender,
			CreatedAt: identity.CreatedAt,
		}
		if err := s.profiles.CreateProfile(txCtx, profile); err != nil {
			return &stepError{prefix: errSavingProfile, err: err}
		}
		identityID = identity.ID
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "account creation failed")
		s.log.ErrorContext(ctx, "signup - create account - transaction rolled back", logging.SignUp(flowID.String()), logging.Err(err))
		return uuid.Nil, err
	}
	return identityID, nil
}

func (s *SignUpService) awaitFailed(id uuid.UUID, err error) {
	toast := &domain.Toast{Message: ToastVerifyCancelled, Type: domain.ToastError}
	outcome := "cancelled"
	if errors.Is(err, domain.ErrVerificationTimeout) {
		toast.Message = ToastVerifyTimeout
		outcome = "timeout"
	}
	s.log.Warn("signup - run - verification wait ended", logging.SignUp(id.String()), logging.Err(err))
	s.finish(id, domain.StateFailure, toast, nil, nil)
	s.metrics.SignUpFinished(outcome)
}

func (s *SignUpService) setState(id uuid.UUID, state domain.SignUpState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.flows[id]; ok && !e.flow.State.Terminal() {
		e.flow.State = state
		e.flow.UpdatedAt = s.nowFn()
	}
}

func (s *SignUpService) finish(id uuid.UUID, state domain.SignUpState, toast *domain.Toast, redirect *domain.Redirect, identityID *uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.flows[id]
	if !ok {
		return
	}
	e.flow.State = state
	e.flow.Toast = toast
	e.flow.Redirect = redirect
	e.flow.IdentityID = identityID
	e.flow.UpdatedAt = s.nowFn()
}

func (s *SignUpService) Status(ctx context.Context, id uuid.UUID) (*domain.SignUpFlow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.flows[id]
	if !ok {
		return nil, domain.ErrSignUpNotFound
	}
	snapshot := e.flow
	return &snapshot, nil
}

func (s *SignUpService) Cancel(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	e, ok := s.flows[id]
	if !ok {
		s.mu.Unlock()
		return domain.ErrSignUpNotFound
	}
	if e.flow.State != domain.StateAwaitingVerification {
		s.mu.Unlock()
		return domain.ErrSignUpFinished
	}
	sessionID := e.sessionID
	s.mu.Unlock()

	s.rendezvous.Cancel(sessionID)
	s.log.InfoContext(ctx, "signup - cancel - verification wait cancelled", logging.SignUp(id.String()))
	return nil
}

func (s *SignUpService) Deliver(ctx context.Context, res domain.VerificationResult) error {
	if err := s.rendezvous.Deliver(res.SessionID, res); err != nil {
		s.log.WarnContext(ctx, "signup - deliver - rejected", logging.Verification(res.SessionID), logging.Err(err))
		return err
	}
	s.log.InfoContext(ctx, "signup - deliver - result handed over", logging.Verification(res.SessionID))
	return nil
}

func (s *SignUpService) Relay(ctx context.Context, id uuid.UUID, res domain.VerificationResult) error {
	if !s.opts.AllowClientRelay {
		return domain.ErrRelayDisabled
	}
	s.mu.Lock()
	e, ok := s.flows[id]
	s.mu.Unlock()
	if !ok {
		return domain.ErrSignUpNotFound
	}
	res.SessionID = e.sessionID
	return s.Deliver(ctx, res)
}

// Wait blocks until flow id has reached a terminal state or ctx ends.
func (s *SignUpService) Wait(ctx context.Context, id uuid.UUID) (*domain.SignUpFlow, error) {
	s.mu.Lock()
	e, ok := s.flows[id]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrSignUpNotFound
	}
	select {
	case <-e.done:
		return s.Status(ctx, id)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close aborts every waiting flow and waits for their goroutines.
func (s *SignUpService) Close() {
	s.stop()
	s.wg.Wait()
}

func (s *SignUpService) sweepLocked() {
	if s.opts.FlowRetention <= 0 {
		return
	}
	cutoff := s.nowFn().Add(-s.opts.FlowRetention)
	for id, e := range s.flows {
		if e.flow.State.Terminal() && e.flow.UpdatedAt.Before(cutoff) {
			delete(s.flows, id)
		}
	}
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SHEBN-DEV/Demoshebn/internal/app/rendezvous"
	cmock "github.com/SHEBN-DEV/Demoshebn/internal/core/contracts/mock"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain/mock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUpFixture struct {
	svc        *SignUpService
	identities *mock.MockIdentityRepository
	profiles   *mock.MockProfileRepository
	tx         *inlineTx
}

func newSignUpFixture(t *testing.T, opts SignUpOptions) *signUpFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityRepository(ctrl)
	profiles := mock.NewMockProfileRepository(ctrl)
	verifier := cmock.NewMockVerifier(ctrl)
	verifier.EXPECT().
		CreateSession(gomock.Any()).
		DoAndReturn(func(context.Context) (*domain.VerificationSession, error) {
			id := uuid.NewString()
			return &domain.VerificationSession{ID: id, URL: "https://verify.example/" + id}, nil
		}).
		AnyTimes()

	if opts.VerificationTimeout == 0 {
		opts.VerificationTimeout = time.Minute
	}
	if opts.RedirectTo == "" {
		opts.RedirectTo = "/login"
		opts.RedirectAfter = 2 * time.Second
	}
	tx := &inlineTx{}
	svc := NewSignUpService(
		discardLogger(),
		newTestIdentityService(identities),
		profiles,
		tx,
		verifier,
		rendezvous.New(),
		opts,
		nil,
	)
	t.Cleanup(svc.Close)
	return &signUpFixture{svc: svc, identities: identities, profiles: profiles, tx: tx}
}

var validForm = domain.SignUpForm{
	FullName: "Ana Pérez",
	UserName: "ana",
	Email:    "a@b.com",
	Password: "12345678",
}

func (f *signUpFixture) startAndVerify(t *testing.T, res domain.VerificationResult) *domain.SignUpFlow {
	t.Helper()
	ctx := context.Background()
	flow, err := f.svc.Start(ctx, validForm)
	require.NoError(t, err)
	assert.Equal(t, domain.StateAwaitingVerification, flow.State)

	f.svc.mu.Lock()
	res.SessionID = f.svc.flows[flow.ID].sessionID
	f.svc.mu.Unlock()
	require.NoError(t, f.svc.Deliver(ctx, res))

	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	done, err := f.svc.Wait(waitCtx, flow.ID)
	require.NoError(t, err)
	return done
}

func TestSignUpSuccess(t *testing.T) {
	f := newSignUpFixture(t, SignUpOptions{})

	var identityID uuid.UUID
	f.identities.EXPECT().
		CreateIdentity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, i *domain.Identity) error {
			identityID = i.ID
			return nil
		})
	f.profiles.EXPECT().
		CreateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Profile) error {
			assert.Equal(t, identityID, p.ID)
			assert.Equal(t, "ana", p.UserName)
			assert.Equal(t, "a@b.com", p.Email)
			return nil
		})

	flow := f.startAndVerify(t, domain.VerificationResult{Success: true, Gender: "Female"})

	assert.Equal(t, domain.StateSuccess, flow.State)
	require.NotNil(t, flow.Toast)
	assert.Equal(t, "Account created successfully! Redirecting...", flow.Toast.Message)
	assert.Equal(t, domain.ToastSuccess, flow.Toast.Type)
	require.NotNil(t, flow.Redirect)
	assert.Equal(t, "/login", flow.Redirect.To)
	assert.EqualValues(t, 2000, flow.Redirect.AfterMS)
	require.NotNil(t, flow.IdentityID)
	assert.Equal(t, identityID, *flow.IdentityID)
	assert.Equal(t, 1, f.tx.committed)
}

func TestSignUpGateRejectsWithoutWrites(t *testing.T) {
	tests := []struct {
		name string
		res  domain.VerificationResult
	}{
		{name: "male", res: domain.VerificationResult{Success: true, Gender: "male"}},
		{name: "empty gender", res: domain.VerificationResult{Success: true}},
		{name: "verification failed", res: domain.VerificationResult{Success: false, Gender: "female"}},
		{name: "padded gender", res: domain.VerificationResult{Success: true, Gender: " female "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repository expectations: any write fails the test
			f := newSignUpFixture(t, SignUpOptions{})
			flow := f.startAndVerify(t, tt.res)

			assert.Equal(t, domain.StateFailure, flow.State)
			require.NotNil(t, flow.Toast)
			assert.Equal(t, "Only female registrations are allowed.", flow.Toast.Message)
			assert.Nil(t, flow.IdentityID)
			assert.Zero(t, f.tx.committed+f.tx.rolledBack)
		})
	}
}

func TestAdmitted(t *testing.T) {
	assert.True(t, Admitted(domain.VerificationResult{Success: true, Gender: "female"}))
	assert.True(t, Admitted(domain.VerificationResult{Success: true, Gender: "FEMALE"}))
	assert.False(t, Admitted(domain.VerificationResult{Success: true, Gender: "female "}))
	assert.False(t, Admitted(domain.VerificationResult{Success: true, Gender: "\tfemale"}))
	assert.False(t, Admitted(domain.VerificationResult{Success: false, Gender: "female"}))
}

func TestSignUpProfileFailureRollsBack(t *testing.T) {
	f := newSignUpFixture(t, SignUpOptions{})
	f.identities.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(nil)
	f.profiles.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(domain.ErrProfileExists)

	flow := f.startAndVerify(t, domain.VerificationResult{Success: true, Gender: "female"})

	assert.Equal(t, domain.StateFailure, flow.State)
	assert.Equal(t, "Error saving profile: profile already exists", flow.Toast.Message)
	assert.Equal(t, 1, f.tx.rolledBack)
	assert.Zero(t, f.tx.committed)
}

func TestSignUpIdentityFailure(t *testing.T) {
	f := newSignUpFixture(t, SignUpOptions{})
	f.identities.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(domain.ErrIdentityExists)

	flow := f.startAndVerify(t, domain.VerificationResult{Success: true, Gender: "female"})

	assert.Equal(t, domain.StateFailure, flow.State)
	assert.Equal(t, "Error registering: identity already exists", flow.Toast.Message)
	assert.Equal(t, domain.ToastError, flow.Toast.Type)
}

func TestSignUpVerificationTimeout(t *testing.T) {
	f := newSignUpFixture(t, SignUpOptions{VerificationTimeout: 20 * time.Millisecond})
	flow, err := f.svc.Start(context.Background(), validForm)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	done, err := f.svc.Wait(ctx, flow.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateFailure, done.State)
	assert.Equal(t, ToastVerifyTimeout, done.Toast.Message)
}

func TestSignUpCancel(t *testing.T) {
	f := newSignUpFixture(t, SignUpOptions{})
	ctx := context.Background()
	flow, err := f.svc.Start(ctx, validForm)
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(ctx, flow.ID))

	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	done, err := f.svc.Wait(waitCtx, flow.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateFailure, done.State)
	assert.Equal(t, ToastVerifyCancelled, done.Toast.Message)

	assert.ErrorIs(t, f.svc.Cancel(ctx, flow.ID), domain.ErrSignUpFinished)
	assert.ErrorIs(t, f.svc.Cancel(ctx, uuid.New()), domain.ErrSignUpNotFound)
}

func TestSignUpRelay(t *testing.T) {
	ctx := context.Background()

	disabled := newSignUpFixture(t, SignUpOptions{})
	flow, err := disabled.svc.Start(ctx, validForm)
	require.NoError(t, err)
	assert.ErrorIs(t, disabled.svc.Relay(ctx, flow.ID, domain.VerificationResult{Success: true, Gender: "female"}), domain.ErrRelayDisabled)

	enabled := newSignUpFixture(t, SignUpOptions{AllowClientRelay: true})
	flow, err = enabled.svc.Start(ctx, validForm)
	require.NoError(t, err)
	require.NoError(t, enabled.svc.Relay(ctx, flow.ID, domain.VerificationResult{Success: true, Gender: "male"}))

	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	done, err := enabled.svc.Wait(waitCtx, flow.ID)
	require.NoError(t, err)
	assert.Equal(t, ToastOnlyFemale, done.Toast.Message)
}

func TestSignUpDeliverUnknownSession(t *testing.T) {
	f := newSignUpFixture(t, SignUpOptions{})
	err := f.svc.Deliver(context.Background(), domain.VerificationResult{SessionID: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnknownVerification)
}

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name  string
		form  domain.SignUpForm
		field string
	}{
		{name: "valid", form: validForm},
		{name: "missing full name", form: domain.SignUpForm{UserName: "ana", Email: "a@b.com", Password: "12345678"}, field: "full_name"},
		{name: "missing user name", form: domain.SignUpForm{FullName: "Ana", Email: "a@b.com", Password: "12345678"}, field: "user_name"},
		{name: "bad email", form: domain.SignUpForm{FullName: "Ana", UserName: "ana", Email: "a@b", Password: "12345678"}, field: "email"},
		{name: "email with space", form: domain.SignUpForm{FullName: "Ana", UserName: "ana", Email: "a b@c.com", Password: "12345678"}, field: "email"},
		{name: "short password", form: domain.SignUpForm{FullName: "Ana", UserName: "ana", Email: "a@b.com", Password: "1234567"}, field: "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateForm(tt.form)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSweepDropsOldFinishedFlows(t *testing.T) {
	f := newSignUpFixture(t, SignUpOptions{FlowRetention: time.Minute})
	old := uuid.New()
	live := uuid.New()
	f.svc.flows[old] = &signUpEntry{flow: domain.SignUpFlow{ID: old, State: domain.StateFailure, UpdatedAt: time.Now().Add(-time.Hour)}}
	f.svc.flows[live] = &signUpEntry{flow: domain.SignUpFlow{ID: live, State: domain.StateAwaitingVerification, UpdatedAt: time.Now().Add(-time.Hour)}}

	f.svc.mu.Lock()
	f.svc.sweepLocked()
	f.svc.mu.Unlock()

	_, err := f.svc.Status(context.Background(), old)
	assert.ErrorIs(t, err, domain.ErrSignUpNotFound)
	_, err = f.svc.Status(context.Background(), live)
	assert.NoError(t, err)
}

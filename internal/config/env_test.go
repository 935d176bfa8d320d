package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FEED_SOURCE", "")
	t.Setenv("SIGNUP_VERIFICATION_TIMEOUT", "")

	cfg := Load()
	assert.Equal(t, "direct", cfg.Feed.Source)
	assert.Equal(t, 10*time.Minute, cfg.SignUp.VerificationTimeout)
	assert.Equal(t, "/login", cfg.SignUp.RedirectTo)
	assert.Equal(t, 2*time.Second, cfg.SignUp.RedirectAfter)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FEED_SOURCE", "NOTIFY")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("SIGNUP_VERIFICATION_TIMEOUT", "90s")
	t.Setenv("TRACER_ENABLED", "true")

	cfg := Load()
	assert.Equal(t, "notify", cfg.Feed.Source)
	assert.Equal(t, 7, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 90*time.Second, cfg.SignUp.VerificationTimeout)
	assert.True(t, cfg.Tracer.Enabled)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("REDIS_DIAL_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
		anyErr  bool
	}{
		{name: "defaults with secret", env: map[string]string{"JWT_SECRET": "s"}},
		{name: "missing jwt secret", env: map[string]string{"JWT_SECRET": ""}, wantErr: ErrMissingJWTSecret},
		{name: "unknown feed source", env: map[string]string{"JWT_SECRET": "s", "FEED_SOURCE": "kafka"}, anyErr: true},
		{
			name:    "provider key without callback secret",
			env:     map[string]string{"JWT_SECRET": "s", "VERIFICATION_API_KEY": "k", "VERIFICATION_CALLBACK_SECRET": ""},
			wantErr: ErrMissingCallbackSecret,
		},
		{
			name: "provider key with callback secret",
			env:  map[string]string{"JWT_SECRET": "s", "VERIFICATION_API_KEY": "k", "VERIFICATION_CALLBACK_SECRET": "c"},
		},
		{
			name: "no provider key, relay mode",
			env:  map[string]string{"JWT_SECRET": "s", "VERIFICATION_API_KEY": "", "VERIFICATION_CALLBACK_SECRET": ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FEED_SOURCE", "")
			t.Setenv("VERIFICATION_API_KEY", "")
			t.Setenv("VERIFICATION_CALLBACK_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			err := Load().Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

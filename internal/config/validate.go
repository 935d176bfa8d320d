package config

import (
	"errors"
	"fmt"
)

var (
	ErrMissingJWTSecret      = errors.New("JWT_SECRET is required")
	ErrMissingCallbackSecret = errors.New("VERIFICATION_CALLBACK_SECRET is required when VERIFICATION_API_KEY is set")
)

// Validate reports settings the service must not start with.
func (c *Config) Validate() error {
	if c.SecretToken == "" {
		return ErrMissingJWTSecret
	}
	if c.Feed.Source != "direct" && c.Feed.Source != "notify" {
		return fmt.Errorf("unknown FEED_SOURCE %q", c.Feed.Source)
	}
	// with a provider key the callback is the only way a result reaches a
	// flow, and the session id it is keyed by is visible to the browser
	if c.Verification.APIKey != "" && c.Verification.CallbackSecret == "" {
		return ErrMissingCallbackSecret
	}
	return nil
}

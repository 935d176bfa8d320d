package domain

import "errors"

var (
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrUserNotFound        = errors.New("user not found")
	ErrIdentityExists      = errors.New("identity already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrProfileExists       = errors.New("profile already exists")
	ErrInvalidMessage      = errors.New("invalid message")
	ErrEmptyMessage        = errors.New("message is empty")
	ErrNoPeerSelected      = errors.New("no conversation selected")
	ErrNoCurrentUser       = errors.New("current user unknown")
	ErrSessionClosed       = errors.New("chat session closed")
	ErrSignUpNotFound      = errors.New("sign-up flow not found")
	ErrSignUpFinished      = errors.New("sign-up flow already finished")
	ErrVerificationTimeout = errors.New("verification timed out")
	ErrVerificationAborted = errors.New("verification cancelled")
	ErrUnknownVerification = errors.New("unknown verification session")
	ErrRelayDisabled       = errors.New("client verification relay disabled")
)

// ValidationError reports a rejected form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

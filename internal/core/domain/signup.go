package domain

import (
	"time"

	"github.com/google/uuid"
)

type SignUpState string

const (
	StateFormEntry            SignUpState = "form_entry"
	StateAwaitingVerification SignUpState = "awaiting_verification"
	StateVerificationResult   SignUpState = "verification_result"
	StateAccountCreation      SignUpState = "account_creation"
	StateProfileCreation      SignUpState = "profile_creation"
	StateSuccess              SignUpState = "success"
	StateFailure              SignUpState = "failure"
)

func (s SignUpState) Terminal() bool {
	return s == StateSuccess || s == StateFailure
}

type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
)

type Toast struct {
	Message string    `json:"message"`
	Type    ToastType `json:"type"`
}

type Redirect struct {
	To      string `json:"to"`
	AfterMS int64  `json:"after_ms"`
}

// SignUpForm is the data collected before verification.
type SignUpForm struct {
	FullName string `json:"full_name"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerificationResult is what the provider reports for a session.
type VerificationResult struct {
	SessionID string `json:"session_id"`
	Success   bool   `json:"success"`
	Gender    string `json:"gender"`
}

// VerificationSession is a provider session the user completes out of band.
type VerificationSession struct {
	ID  string `json:"session_id"`
	URL string `json:"url"`
}

// SignUpFlow is a snapshot of one sign-up attempt.
type SignUpFlow struct {
	ID              uuid.UUID   `json:"signup_id"`
	State           SignUpState `json:"state"`
	VerificationURL string      `json:"verification_url,omitempty"`
	IdentityID      *uuid.UUID  `json:"user_id,omitempty"`
	Toast           *Toast      `json:"toast,omitempty"`
	Redirect        *Redirect   `json:"redirect,omitempty"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

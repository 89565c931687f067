package service

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrRateLimited         = errors.New("invite rate limit reached")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrInviteNotActive     = errors.New("invite is no longer active")
	ErrGenerationExhausted = errors.New("could not generate a unique invite code")
	ErrPersistence         = errors.New("persistence failure")

	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileNotFound = errors.New("profile not found")

	ErrBootstrapDisabled     = errors.New("bootstrap is disabled")
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// ValidationError is an ErrInvalidInput carrying a message that is safe to
// show to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

package account

import "errors"

var (
	// ErrDuplicateEmail is the expected outcome when the email is already
	// registered, whether caught by the pre-check or by the unique index.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("account not found")
)

// ValidationError reports the first malformed field in a request payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

package domain

import "errors"

// Errors surfaced to adapters. This is a closed set: adapters branch on
// ErrAccountExists and ErrUserNotFound as expected outcomes, while a
// *DatabaseError is an operational fault whose cause is for logs only.
var (
	// ErrAccountExists means the external identity is already linked to an
	// account.
	ErrAccountExists = errors.New("an account is already linked to this identity")

	// ErrUserNotFound means no account is linked to the given identity or ID.
	ErrUserNotFound = errors.New("no account linked to the given identity")

	// ErrInvalidIdentity means an external identity value failed format
	// validation before reaching storage.
	ErrInvalidIdentity = errors.New("invalid external identity")
)

// DatabaseError wraps an unexpected storage failure. Its message is
// deliberately generic: the underlying cause is reachable through Unwrap for
// logging but must never be shown to end users.
type DatabaseError struct {
	cause error
}

// NewDatabaseError wraps cause in a DatabaseError.
func NewDatabaseError(cause error) *DatabaseError {
	return &DatabaseError{cause: cause}
}

func (e *DatabaseError) Error() string {
	return "encountered an internal storage error"
}

func (e *DatabaseError) Unwrap() error {
	return e.cause
}

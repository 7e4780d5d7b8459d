package store

import "errors"

var (
	// ErrNotFound is returned when an id lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateSubmission is returned when a student already answered the
	// same question with the same submission type.
	ErrDuplicateSubmission = errors.New("already answered")

	// ErrForbidden is returned when the bulk reset confirmation is wrong.
	ErrForbidden = errors.New("incorrect confirmation password")
)

// ValidationError reports a missing or empty required field. The message is
// what the client sees.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}

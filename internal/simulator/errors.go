package simulator

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrValidation        = errors.New("validation failed")
	// ErrForbidden is returned when the caller's wallet does not own the
	// session it tries to act on.
	ErrForbidden = errors.New("forbidden")
	// ErrVersionConflict is returned when a session or stats row changed
	// between read and write.
	ErrVersionConflict = errors.New("version conflict")
)

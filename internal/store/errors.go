package store

import "errors"

// Error kinds surfaced to callers. The HTTP adapter maps these to status
// codes; everything else is treated as a storage failure.
var (
	// ErrNotFound means the operation targeted an id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalid means the input was malformed or missing a required field.
	ErrInvalid = errors.New("invalid input")

	// ErrConflict means a uniqueness rule was violated (tag names).
	ErrConflict = errors.New("conflict")

	// ErrStorage wraps failures of the backing database itself.
	ErrStorage = errors.New("storage failure")
)

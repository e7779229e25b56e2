package model

import "errors"

// Error kinds raised by the store and the engines. Handlers map these to
// transport status codes; the core never encodes transport concerns.
var (
	// ErrValidation marks missing/malformed input or a uniqueness or
	// foreign-key violation reported by the backend.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidArgument marks bad pagination arguments or a disallowed
	// mutation shape (self-relations, closing through the open entry point).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyActive is returned when a follow/like transition targets a
	// pair whose latest row is already active.
	ErrAlreadyActive = errors.New("relationship already active")

	// ErrNotActive is returned when unfollow/unlike targets a pair with no
	// currently active row.
	ErrNotActive = errors.New("relationship not active")

	// ErrNotFound marks an entity lookup miss where the caller expects
	// existence.
	ErrNotFound = errors.New("record not found")

	// ErrStore marks a backend connectivity or transaction failure.
	ErrStore = errors.New("store failure")

	// ErrAuth marks a credential resolution or authentication failure.
	ErrAuth = errors.New("authentication failed")
)

package core

import "errors"

// Common errors.
var (
	ErrReadOnly     = errors.New("repository is in read-only mode")
	ErrClosed       = errors.New("broker is closed")
	// ErrIDsExhausted is returned by Add once the highest note ID is in use.
	ErrIDsExhausted = errors.New("note ids exhausted")
)

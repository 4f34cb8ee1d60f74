package qabank

import "errors"

var (
	// ErrNotFound indicates the entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)

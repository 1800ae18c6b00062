package repository

import "errors"

var (
	// ErrInvalidID marks an identifier that is not valid ObjectID hex.
	// It is returned before any store round trip.
	ErrInvalidID = errors.New("invalid id")

	// ErrNotFound marks a well-formed identifier that matched no document.
	ErrNotFound = errors.New("not found")
)

package domain

import "errors"

var (
	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("not found")
	// ErrSourceUnavailable signals that the backing store could not be reached
	// or failed mid-query. Nothing partial is ever returned alongside it.
	ErrSourceUnavailable = errors.New("store unavailable")
)

package repositories

import "errors"

var (
	// ErrNotFound is wrapped by lookups that match no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is wrapped when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
)

package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups when no row matches. It is a signal,
// not a store failure.
var ErrNotFound = errors.New("record not found")

// PersistenceError wraps a failed store operation. Mutations have already
// been rolled back when it is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

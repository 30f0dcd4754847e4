package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no row matches the given id within the
// caller's ownership scope.
var ErrNotFound = errors.New("not found")

// RemoteError wraps any store or network failure. Each call is attempted
// exactly once; callers decide whether to retry the whole user action.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// remoteErr classifies a driver error: missing rows map to ErrNotFound,
// everything else becomes a RemoteError for the given operation.
func remoteErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return &RemoteError{Op: op, Err: err}
}

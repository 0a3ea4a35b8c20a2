package db

import (
	"errors"
	"fmt"
)

// ErrNotConnected is wrapped by every error returned while the session has
// no live connection.
var ErrNotConnected = errors.New("db: session not connected")

// ConnectionError means a session could not be established or re-established.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("db %s: connection failed: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError means a read failed; the caller receives no rows.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("db %s: query failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// UpdateError means a write failed and its transaction was rolled back.
type UpdateError struct {
	Op  string
	Err error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("db %s: update failed: %v", e.Op, e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// Operation returns the operation name carried by any session error, or "".
func Operation(err error) string {
	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return connErr.Op
	}
	var queryErr *QueryError
	if errors.As(err, &queryErr) {
		return queryErr.Op
	}
	var updateErr *UpdateError
	if errors.As(err, &updateErr) {
		return updateErr.Op
	}
	return ""
}

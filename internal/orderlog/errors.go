package orderlog

import (
	"errors"
	"fmt"
)

// ErrNoHistory is returned by ReadAll when no order has ever been written.
var ErrNoHistory = errors.New("no orders yet")

// PersistenceError reports a failed read or write of the order log file.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

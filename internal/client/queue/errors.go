package queue

import (
	"errors"
	"fmt"
)

// ErrUnknownOperationType returned by a Replayer for a type tag it cannot dispatch
var ErrUnknownOperationType = errors.New("unknown operation type")

// PersistenceError reports a failed read or write of the operation log.
// Потеря поставленной в очередь мутации недопустима, поэтому ошибка всегда возвращается вызывающему.
type PersistenceError struct {
	Err error
	Op  string // read | write | decode | encode
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("operation log %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistenceError reports whether err is (or wraps) a PersistenceError
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

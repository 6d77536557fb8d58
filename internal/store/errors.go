package store

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the stores. Engine failures are always wrapped in
// exactly one of these and remain reachable through errors.Is / errors.As.
var (
	ErrReadTasksLists  = errors.New("read tasks lists")
	ErrInsertTasksList = errors.New("insert tasks list")
	ErrReadTaskItems   = errors.New("read task items")
	ErrInsertTaskItem  = errors.New("insert task item")
)

// ErrClosed is returned when work is submitted to a closed ExecContext.
var ErrClosed = errors.New("execution context closed")

// kindError joins a kind sentinel with the cause that produced it.
func kindError(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", kind, fmt.Errorf(format, args...))
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Operations returning them leave the data untouched.
var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrTaskExists     = errors.New("task id already in use")
	ErrTaskMoved      = errors.New("task moved since the change")
	ErrUnknownGroup   = errors.New("unknown group")
	ErrLastBoard      = errors.New("cannot delete the last board")
	ErrNoActiveBoard  = errors.New("no active board")
	ErrInvalidSetting = errors.New("invalid setting value")
)

// StorageError represents a failure of a persistence backend
type StorageError struct {
	Op      string // Operation: "load", "save", "open"
	Backend string // Backend name: "file", "sqlite"
	Err     error  // Underlying error
}

func (e *StorageError) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("storage %s [%s]: %v", e.Op, e.Backend, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

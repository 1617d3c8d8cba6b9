package store

import (
	"errors"
	"fmt"
)

var (
	ErrNoRoot      = errors.New("files root is not configured")
	ErrInvalidName = errors.New("invalid file name")
)

// FileError records a failed read or write of a file under the root
type FileError struct {
	Op   string // "read", "write", "stat"
	Name string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("store: %s %q: %v", e.Op, e.Name, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

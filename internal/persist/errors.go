package persist

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by errors.Is when there is no save file to load.
var ErrNotFound = errors.New("no saved shapes found")

// ErrorKind classifies a persistence failure.
type ErrorKind int

const (
	FileNotFound ErrorKind = iota + 1
	IOFailure
	ParseFailure
)

func (k ErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case IOFailure:
		return "i/o failure"
	case ParseFailure:
		return "parse failure"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by Store operations.
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the ErrorKind of err, or 0 when err is not a *Error.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

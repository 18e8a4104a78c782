package vecsink

import (
	"github.com/pkg/errors"
)

// Kind tells which lifecycle hook an Error came from.
type Kind int

const (
	KindInit Kind = iota + 1
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

var (
	// ErrInit matches any failure to open or initialize the sink file.
	ErrInit = errors.New("sink init failed")
	// ErrWrite matches any seek, write or flush failure while processing.
	ErrWrite = errors.New("sink write failed")
	// ErrVecLen is returned when a vector does not have VecLen samples.
	ErrVecLen = errors.New("vector length mismatch")
)

// Error is an I/O failure of the sink. It unwraps to the error returned by
// the file system.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return "vecsink " + e.Kind.String() + ": " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches ErrInit and ErrWrite by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInit:
		return e.Kind == KindInit
	case ErrWrite:
		return e.Kind == KindWrite
	}
	return false
}

package gutmann

import (
	"errors"
	"fmt"
)

// Kind classifies why a run stopped.
type Kind int

const (
	KindOpen Kind = iota + 1
	KindWrite
	KindFlush
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open failed"
	case KindWrite:
		return "write failed"
	case KindFlush:
		return "flush failed"
	case KindCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its Kind.
var (
	ErrOpenFailed  = errors.New("gutmann: open failed")
	ErrWriteFailed = errors.New("gutmann: write failed")
	ErrFlushFailed = errors.New("gutmann: flush failed")
	ErrCanceled    = errors.New("gutmann: canceled")
)

// Error reports where a run stopped. Pass, SubPass and Chunk are 1-based;
// Offset is the byte offset of the chunk being written. All are zero for
// KindOpen.
type Error struct {
	Kind    Kind
	Pass    int
	SubPass int
	Chunk   int
	Offset  int64
	Err     error
}

// NewOpenError wraps a failure to obtain exclusive write access.
func NewOpenError(err error) *Error {
	return &Error{Kind: KindOpen, Err: err}
}

func (e *Error) Error() string {
	if e.Kind == KindOpen {
		return fmt.Sprintf("gutmann: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("gutmann: %s at pass %d sub-pass %d chunk %d (offset %d): %v",
		e.Kind, e.Pass, e.SubPass, e.Chunk, e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrOpenFailed:
		return e.Kind == KindOpen
	case ErrWriteFailed:
		return e.Kind == KindWrite
	case ErrFlushFailed:
		return e.Kind == KindFlush
	case ErrCanceled:
		return e.Kind == KindCanceled
	}
	return false
}

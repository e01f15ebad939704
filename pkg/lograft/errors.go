package lograft

import (
	"errors"
	"fmt"
	"go/token"
)

var (
	// ErrInvalidShowPath is returned when ShowPath holds an unknown mode.
	ErrInvalidShowPath = errors.New("invalid showPath setting")
	// ErrInvalidShowFileExtension is returned when ShowFileExtension holds an unknown mode.
	ErrInvalidShowFileExtension = errors.New("invalid showFileExtension setting")
	// ErrInvalidLogLevel is returned when the level argument is not a numeric literal.
	ErrInvalidLogLevel = errors.New("invalid log level, expected number")
	// ErrInvalidArgumentCount is returned when an intrinsic call has more than two arguments.
	ErrInvalidArgumentCount = errors.New("invalid number of arguments, expected 0-2")
)

// ErrorKind groups rewrite failures by their cause.
type ErrorKind int

const (
	// KindConfig marks an invalid configuration value.
	KindConfig ErrorKind = iota
	// KindType marks an argument of the wrong kind.
	KindType
	// KindArgument marks a call with the wrong number of arguments.
	KindArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindType:
		return "type"
	case KindArgument:
		return "argument"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// RewriteError reports a failure at a specific call site. It aborts the
// transformation of the whole file.
type RewriteError struct {
	Kind ErrorKind
	Pos  token.Position
	Err  error
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Pos, e.Kind, e.Err)
}

func (e *RewriteError) Unwrap() error {
	return e.Err
}

func kindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidShowPath), errors.Is(err, ErrInvalidShowFileExtension):
		return KindConfig
	case errors.Is(err, ErrInvalidLogLevel):
		return KindType
	default:
		return KindArgument
	}
}

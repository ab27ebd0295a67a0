package docproc

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the library. An [*Error] matches the
// sentinel of its [Kind] under [errors.Is].
var (
	// ErrNotFound is returned when an input path does not exist.
	ErrNotFound = errors.New("docproc: file not found")

	// ErrFormat is returned when an input is not a readable document of the
	// expected type.
	ErrFormat = errors.New("docproc: unreadable document")

	// ErrPermission is returned when a password is wrong or missing.
	ErrPermission = errors.New("docproc: permission denied")

	// ErrWrite is returned when an output file could not be produced.
	ErrWrite = errors.New("docproc: write failed")

	// ErrInvalid is returned for bad arguments such as an empty input list,
	// a rotation that is not a multiple of 90 or a malformed pattern.
	ErrInvalid = errors.New("docproc: invalid argument")

	// ErrEncrypted is wrapped by format errors raised for password-protected
	// PDFs handed to an operation other than Decrypt.
	ErrEncrypted = errors.New("docproc: document is encrypted")

	// ErrPageRange is wrapped when a page number falls outside the document.
	ErrPageRange = errors.New("docproc: page out of range")
)

// Kind classifies an [Error].
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindFormat
	KindPermission
	KindWrite
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindFormat:
		return "format"
	case KindPermission:
		return "permission"
	case KindWrite:
		return "write"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindFormat:
		return ErrFormat
	case KindPermission:
		return ErrPermission
	case KindWrite:
		return ErrWrite
	case KindInvalid:
		return ErrInvalid
	default:
		return nil
	}
}

// Error describes a failed document operation.
type Error struct {
	Op   string // operation, e.g. "merge"
	Path string // file the failure relates to, may be empty
	Kind Kind
	Err  error // underlying cause
}

func (e *Error) Error() string {
	msg := "docproc: " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of the first [*Error] in err's chain, or zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(op, path string, kind Kind, err error) *Error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

func invalidf(op, format string, args ...any) *Error {
	return newError(op, "", KindInvalid, fmt.Errorf(format, args...))
}

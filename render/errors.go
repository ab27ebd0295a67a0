package render

import "errors"

// Sentinel errors returned by the package.
var (
	// ErrClosed is returned when attempting to use a closed [Converter].
	ErrClosed = errors.New("render: converter is closed")

	// ErrUnknownPageSize is returned by [ParsePageSize] for unrecognised names.
	ErrUnknownPageSize = errors.New("render: unknown page size")
)

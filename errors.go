package aligntable

import "github.com/pkg/errors"

var (
	// ErrIncompatibleFlags is returned when a cell flag is enabled while a
	// conflicting flag is already active. The rejected flag is left unchanged.
	ErrIncompatibleFlags = errors.New("incompatible cell flags")

	// ErrIndexOutOfRange is returned when a cell or row index is outside the
	// valid range.
	ErrIndexOutOfRange = errors.New("index out of range")
)

package robust

import "errors"

var (
	// ErrEmptyExpansion is returned when an expansion has no components.
	// The zero value is represented by []float64{0}, never by an empty slice.
	ErrEmptyExpansion = errors.New("robust: empty expansion")

	// ErrNonFinite is returned when an input component is NaN or infinite.
	ErrNonFinite = errors.New("robust: non-finite expansion component")

	// ErrOverflow is returned when the exact sum cannot be represented by
	// finite float64 components.
	ErrOverflow = errors.New("robust: sum overflows float64")
)

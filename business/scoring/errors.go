package scoring

import "errors"

var (
	// ErrInvalidInput marks structurally invalid input (empty sentiment
	// text). Business edge cases (empty history, zero stock) are not errors.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration marks an incomplete reference table. With the fixed
	// enumerations this should never fire, but a hole in a table has to fail
	// loudly instead of silently defaulting every lookup.
	ErrConfiguration = errors.New("configuration error")
)

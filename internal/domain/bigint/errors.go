package bigint

import "errors"

var (
	// ErrInvalidFormat is returned when a textual integer cannot be parsed.
	ErrInvalidFormat = errors.New("invalid integer format")

	// ErrDivisionByZero is returned by division and remainder with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

package model

import "errors"

var (
	// ErrUnknownField is returned when no field matches the requested name.
	ErrUnknownField = errors.New("model: unknown field")
	// ErrFieldType is returned when an operation does not apply to the field's
	// type (for example, typing into a radio input).
	ErrFieldType = errors.New("model: operation not supported for field type")
)

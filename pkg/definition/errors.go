package definition

import "errors"

var (
	// ErrEmptyDocument is returned when a definition carries no content.
	ErrEmptyDocument = errors.New("definition: document is empty")
	// ErrInvalidField is returned for field entries that cannot become form
	// fields.
	ErrInvalidField = errors.New("definition: invalid field")
	// ErrOperationNotFound is returned when an OpenAPI document has no
	// matching operation with a request body.
	ErrOperationNotFound = errors.New("definition: operation not found")
)

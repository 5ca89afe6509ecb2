package session

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("session: aborted")
	// ErrDeclined is returned when the user chooses not to submit.
	ErrDeclined = errors.New("session: submission declined")
	// ErrNoSelection is returned when a choice prompt yields no option.
	ErrNoSelection = errors.New("session: no option selected")

	errControllerRequired = errors.New("session: controller is required")
)

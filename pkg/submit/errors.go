package submit

import (
	"errors"
	"fmt"
)

var (
	// ErrEndpointRequired is returned by New when no endpoint is configured.
	ErrEndpointRequired = errors.New("submit: endpoint is required")
	// ErrMalformedResponse wraps replies that are not a JSON status object.
	ErrMalformedResponse = errors.New("submit: malformed response")
)

// DefaultRejectionMessage describes a rejection that carried no message.
const DefaultRejectionMessage = "Submission failed"

// RejectedError reports a reply whose status was not "success".
type RejectedError struct {
	Status  string
	Message string
}

func (e *RejectedError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = DefaultRejectionMessage
	}
	if e.Status == "" {
		return fmt.Sprintf("submit: %s", msg)
	}
	return fmt.Sprintf("submit: %s (status %q)", msg, e.Status)
}

package controller

import "errors"

var (
	// ErrSubmitInFlight is returned by Submit when WithSubmitGuard is set and
	// another submission has not finished.
	ErrSubmitInFlight = errors.New("controller: submission already in flight")

	errFormRequired      = errors.New("controller: form is required")
	errSubmitterRequired = errors.New("controller: submitter is required")
	errContextRequired   = errors.New("controller: context is required")
)

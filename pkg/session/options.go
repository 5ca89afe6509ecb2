package session

import "github.com/goliatone/go-formctl/internal/logger"

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithConfirmSubmit asks for confirmation before each submission.
func WithConfirmSubmit() Option {
	return func(s *Session) {
		s.confirmSubmit = true
	}
}

// WithRetryPrompt offers to resubmit after a failed submission. Retries are
// always user driven.
func WithRetryPrompt() Option {
	return func(s *Session) {
		s.retryPrompt = true
	}
}

// WithLogger sets the session logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.logger = log
		}
	}
}

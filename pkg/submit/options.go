package submit

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-formctl/internal/logger"
)

// DefaultContentType is sent with every request unless overridden.
const DefaultContentType = "application/json"

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sends requests through client instead of a fresh one.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithContentType overrides the request content type. Some script endpoints
// expect "text/plain" to avoid browser preflight handling.
func WithContentType(contentType string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(contentType); trimmed != "" {
			c.contentType = trimmed
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.headers["User-Agent"] = strings.TrimSpace(agent)
	}
}

// WithHeader adds a static request header.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		if name = strings.TrimSpace(name); name != "" {
			c.headers[name] = value
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.logger = log
		}
	}
}

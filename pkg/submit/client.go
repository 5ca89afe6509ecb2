package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formctl/internal/logger"
	"github.com/goliatone/go-formctl/pkg/model"
)

var (
	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

// Client posts payloads to one endpoint.
type Client struct {
	endpoint    string
	contentType string
	headers     map[string]string
	httpClient  *http.Client
	logger      logger.Logger
	rest        *resty.Client
}

// New constructs a Client for endpoint, which must be an absolute http(s)
// URL.
func New(endpoint string, options ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrEndpointRequired
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("submit: invalid endpoint %q: %w", endpoint, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("submit: endpoint %q must be an absolute http(s) url", endpoint)
	}

	c := &Client{
		endpoint:    endpoint,
		contentType: DefaultContentType,
		headers:     make(map[string]string),
		logger:      logger.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.httpClient != nil {
		c.rest = resty.NewWithClient(c.httpClient)
	} else {
		c.rest = resty.New()
	}
	c.rest.
		SetRetryCount(0).
		SetHeader("Content-Type", c.contentType).
		SetHeader("Accept", "application/json").
		SetHeaders(c.headers)

	return c, nil
}

// Endpoint reports the configured URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts payload and decodes the reply. The HTTP status code does not
// decide the outcome: any body that decodes into a status object is returned
// without error, and Response.Succeeded reports acceptance.
func (c *Client) Submit(ctx context.Context, payload model.Payload) (Response, error) {
	if ctx == nil {
		return Response{}, errors.New("submit: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if payload == nil {
		payload = model.Payload{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("submit: encode payload: %w", err)
	}

	c.logger.Debug("posting form", "endpoint", c.endpoint, "fields", len(payload))

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return Response{}, fmt.Errorf("submit: post %s: %w", c.endpoint, err)
	}

	out, err := decodeResponse(resp.Body())
	out.HTTPStatus = resp.StatusCode()
	if err != nil {
		return out, err
	}

	c.logger.Debug("form reply", "endpoint", c.endpoint, "http_status", out.HTTPStatus, "status", out.Status)
	return out, nil
}

func decodeResponse(raw []byte) (Response, error) {
	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	out.Message = sanitizeMessage(out.Message)
	return out, nil
}

func sanitizeMessage(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(messageSanitizer().Sanitize(trimmed)))
}

func messageSanitizer() *bluemonday.Policy {
	messagePolicyOnce.Do(func() {
		messagePolicy = bluemonday.StrictPolicy()
	})
	return messagePolicy
}

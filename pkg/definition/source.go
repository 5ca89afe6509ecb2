package definition

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// SourceKind identifies where a definition lives.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source points at a definition or OpenAPI document.
type Source struct {
	Kind     SourceKind
	Location string
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return Source{Kind: SourceKindFile, Location: filepath.Clean(path)}
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return Source{Kind: SourceKindFS, Location: name}
}

// SourceFromURL validates raw and returns a Source for it.
func SourceFromURL(raw string) (Source, error) {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return Source{}, fmt.Errorf("definition: invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Source{}, fmt.Errorf("definition: unsupported URL scheme %q", u.Scheme)
	}
	return Source{Kind: SourceKindURL, Location: raw}, nil
}

// ParseSource treats http(s) locations as URLs and anything else as a file.
func ParseSource(raw string) (Source, error) {
	location := strings.TrimSpace(raw)
	if location == "" {
		return Source{}, errors.New("definition: source is required")
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return SourceFromURL(location)
	}
	return SourceFromFile(location), nil
}

// FetchOption configures a Fetcher.
type FetchOption func(*Fetcher)

// WithFS enables SourceKindFS lookups against filesystem.
func WithFS(filesystem fs.FS) FetchOption {
	return func(f *Fetcher) {
		f.fs = filesystem
	}
}

// WithHTTPClient sets the transport used for URL sources.
func WithHTTPClient(client *http.Client) FetchOption {
	return func(f *Fetcher) {
		if client != nil {
			f.client = resty.NewWithClient(client)
		}
	}
}

// WithTimeout bounds URL fetches.
func WithTimeout(timeout time.Duration) FetchOption {
	return func(f *Fetcher) {
		f.timeout = timeout
	}
}

// Fetcher reads raw documents from files, an fs.FS or over HTTP.
type Fetcher struct {
	fs      fs.FS
	client  *resty.Client
	timeout time.Duration
}

// NewFetcher returns a Fetcher. URL sources use a default resty client
// unless WithHTTPClient is given.
func NewFetcher(options ...FetchOption) *Fetcher {
	f := &Fetcher{}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	if f.client == nil {
		f.client = resty.New()
	}
	if f.timeout > 0 {
		f.client.SetTimeout(f.timeout)
	}
	return f
}

// Fetch returns the bytes behind src.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch src.Kind {
	case SourceKindFile:
		data, err := os.ReadFile(src.Location)
		if err != nil {
			return nil, fmt.Errorf("definition: read %s: %w", src.Location, err)
		}
		return data, nil
	case SourceKindFS:
		if f.fs == nil {
			return nil, errors.New("definition: filesystem is not configured")
		}
		data, err := fs.ReadFile(f.fs, src.Location)
		if err != nil {
			return nil, fmt.Errorf("definition: read %s: %w", src.Location, err)
		}
		return data, nil
	case SourceKindURL:
		resp, err := f.client.R().SetContext(ctx).Get(src.Location)
		if err != nil {
			return nil, fmt.Errorf("definition: fetch %s: %w", src.Location, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("definition: fetch %s: unexpected status %d", src.Location, resp.StatusCode())
		}
		return resp.Body(), nil
	default:
		return nil, fmt.Errorf("definition: unsupported source kind %q", src.Kind)
	}
}

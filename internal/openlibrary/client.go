// Package openlibrary provides a read-only client for the OpenLibrary catalog API.
package openlibrary

import (
	stdErrors "errors"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL      = "https://openlibrary.org"
	defaultCoverBaseURL = "https://covers.openlibrary.org"
	defaultTimeout      = 10 * time.Second

	// SearchLimit is the fixed maximum number of search results requested.
	SearchLimit = 10
)

// Operation names used in errors, logs and metrics.
const (
	OpSearch   = "search"
	OpWork     = "work"
	OpEditions = "editions"
)

// ErrEmptyQuery is returned when a search is attempted with a blank query.
// No request is made in that case.
var ErrEmptyQuery = stdErrors.New("empty search query")

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an OpenLibrary API client.
type Client struct {
	baseURL      string
	coverBaseURL string
	userAgent    string
	httpClient   HTTPDoer
}

// NewClient creates a new OpenLibrary client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:      defaultBaseURL,
		coverBaseURL: defaultCoverBaseURL,
		httpClient:   &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithTimeout replaces the HTTP client with a plain one using the given timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		if d > 0 {
			client.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithBaseURL sets a custom base URL for the catalog API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithCoverBaseURL sets a custom base URL for cover images.
func WithCoverBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.coverBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(client *Client) {
		client.userAgent = ua
	}
}

// BaseURL returns the catalog API root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

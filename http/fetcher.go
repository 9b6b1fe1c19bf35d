// Package http provides a resty-based implementation of quemequem.Fetcher
// for role holder pages that render without JavaScript.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/claricenunes/quemequem"
	"github.com/go-resty/resty/v2"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent is sent with every request unless overridden. Some
// gov.br portals reject requests without a browser user agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements quemequem.Fetcher at compile time.
var _ quemequem.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup with plain HTTP GET requests.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	client    *resty.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the user agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = resty.New().
		SetTimeout(f.timeout).
		SetHeader("User-Agent", f.userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		SetHeader("Accept-Language", "pt-BR,pt;q=0.9")

	return f
}

// Fetch retrieves the markup at url. Non-200 responses and transport
// failures are returned as *quemequem.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	res, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", &quemequem.FetchError{URL: url, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		return "", &quemequem.FetchError{URL: url, Status: res.StatusCode()}
	}
	return string(res.Body()), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.GetClient().CloseIdleConnections()
	return nil
}

package quemequem

import "context"

// Fetcher retrieves the markup of a role holder page.
type Fetcher interface {
	// Fetch returns the page markup for url. Failures are reported as
	// *FetchError. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter throttles requests per host.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

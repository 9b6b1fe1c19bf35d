package mock

import "github.com/claricenunes/quemequem"

var _ quemequem.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of quemequem.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*quemequem.MainContent, error)
}

func (e *ContentExtractor) Extract(html string) (*quemequem.MainContent, error) {
	return e.ExtractFn(html)
}

// Package readability isolates the main content of a page with
// go-readability. It serves as the second opinion when trafilatura keeps
// too little of a role page.
package readability

import (
	"strings"

	"github.com/claricenunes/quemequem"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements quemequem.ContentExtractor at compile time.
var _ quemequem.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the title and main content of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*quemequem.MainContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, quemequem.Errorf(quemequem.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, quemequem.Errorf(quemequem.EPARSE, "extract main content: %v", err)
	}

	return &quemequem.MainContent{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

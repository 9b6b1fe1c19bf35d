// Package trafilatura isolates the main content of a page with
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/claricenunes/quemequem"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements quemequem.ContentExtractor at compile time.
var _ quemequem.ContentExtractor = (*Extractor)(nil)

// Extractor strips portal chrome from a role page, keeping links so that
// mailto addresses survive.
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

	opts := trafilatura.Options{
		EnableFallback:  true,
		IncludeLinks:    true,
		ExcludeComments: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, quemequem.Errorf(quemequem.EPARSE, "extract main content: %v", err)
	}

	var content string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		content = buf.String()
	}

	return &quemequem.MainContent{
		Title:       result.Metadata.Title,
		ContentHTML: content,
	}, nil
}

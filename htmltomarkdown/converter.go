// Package htmltomarkdown renders candidate windows as Markdown with
// html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/claricenunes/quemequem"
)

// Ensure Converter implements quemequem.Converter at compile time.
var _ quemequem.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. Tables are kept since several portals
// lay out contact details in them.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders html as Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", quemequem.Errorf(quemequem.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", quemequem.Errorf(quemequem.EPARSE, "convert to markdown: %v", err)
	}
	return strings.TrimSpace(md), nil
}

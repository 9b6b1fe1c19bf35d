package mock

import "github.com/claricenunes/quemequem"

var _ quemequem.Converter = (*Converter)(nil)

// Converter is a mock implementation of quemequem.Converter.
type Converter struct {
	// ConvertFn renders a candidate window or the main content of a page
	// as Markdown.
	ConvertFn func(fragment string) (string, error)

	// Fragments records every fragment passed to Convert, in call order.
	Fragments []string
}

func (c *Converter) Convert(fragment string) (string, error) {
	c.Fragments = append(c.Fragments, fragment)
	return c.ConvertFn(fragment)
}

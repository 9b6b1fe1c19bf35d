package quemequem

import "strings"

// Strategy names the locator strategy that produced a window.
type Strategy string

// Strategy constants.
const (
	StrategyCard    Strategy = "card"
	StrategyKeyword Strategy = "keyword"
)

// Field names a typed sub-field carried by structured windows.
type Field string

// Field constants.
const (
	FieldName  Field = "name"
	FieldTitle Field = "title"
	FieldPhone Field = "phone"
	FieldEmail Field = "email"
)

// Window is a bounded region of a page hypothesized to describe the role
// holder. Lines are the non-empty, whitespace-collapsed text lines of the
// region in document order. RoleLine indexes the line that matched the role
// pattern, or is -1.
type Window struct {
	Strategy Strategy
	Lines    []string
	RoleLine int
	Links    []string
	Fields   map[Field][]string
	HTML     string
}

// Text returns the window lines joined by newlines.
func (w *Window) Text() string {
	return strings.Join(w.Lines, "\n")
}

// Field returns the typed values captured for f, if any.
func (w *Window) Field(f Field) []string {
	if w.Fields == nil {
		return nil
	}
	return w.Fields[f]
}

// Locator finds the candidate window for a rule in a page.
type Locator interface {
	// Locate parses html and returns the best window for rule.
	// A nil window with a nil error means nothing was found.
	// Returns EPARSE if html cannot be parsed at all.
	Locate(html string, rule *Rule) (*Window, error)
}

package mock

import "github.com/claricenunes/quemequem"

var _ quemequem.Locator = (*Locator)(nil)

// Locator is a mock implementation of quemequem.Locator.
type Locator struct {
	LocateFn func(html string, rule *quemequem.Rule) (*quemequem.Window, error)
}

func (l *Locator) Locate(html string, rule *quemequem.Rule) (*quemequem.Window, error) {
	return l.LocateFn(html, rule)
}

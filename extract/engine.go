// Package extract turns a candidate window into a contact record. It holds
// the field extractors, the fallback resolver and the record assembler, and
// the Engine that runs them for one page.
package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/antzucaro/matchr"
	"github.com/cespare/xxhash/v2"
	"github.com/claricenunes/quemequem"
)

// Engine runs one extraction per call. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	Locator quemequem.Locator

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewEngine creates a new Engine using locator to find windows.
func NewEngine(locator quemequem.Locator) *Engine {
	return &Engine{Locator: locator, Now: time.Now}
}

// Extract compiles role and extracts its record from markup. source is the
// URL the markup was fetched from and becomes the record source.
// Returns EINVALID for a bad role and EPARSE for unparseable markup; a role
// missing from the page is not an error.
func (e *Engine) Extract(markup string, role *quemequem.Role, source string) (*quemequem.Extraction, error) {
	rule, err := role.Compile()
	if err != nil {
		return nil, err
	}
	return e.ExtractRule(markup, rule, source)
}

// ExtractRule is like Extract for a compiled rule.
func (e *Engine) ExtractRule(markup string, rule *quemequem.Rule, source string) (*quemequem.Extraction, error) {
	w, err := e.Locator.Locate(markup, rule)
	if err != nil {
		return nil, err
	}

	if source == "" {
		source = rule.Role.URL
	}

	ext := &quemequem.Extraction{
		RoleID:      rule.Role.ID,
		PageHash:    HashPage(markup),
		ExtractedAt: e.now().UTC(),
	}

	if w == nil {
		rec := rule.Role.Default.Clone()
		rec.Source = source
		ext.Record = *rec
		ext.Provenance = quemequem.DefaultProvenance()
		return ext, nil
	}

	rec, prov := Resolve(Collect(w, rule), rule, &rule.Role.Default)
	ext.Record = *Assemble(rec, source)
	ext.Provenance = prov
	ext.Strategy = w.Strategy
	if prov.Name == quemequem.OriginPage {
		ext.NameSimilarity = NameSimilarity(ext.Record.Name, rule.Role.Default.Name)
	}
	return ext, nil
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// NameSimilarity returns the Jaro-Winkler similarity of two names, ignoring
// case. Zero when either name is empty.
func NameSimilarity(a, b string) float64 {
	a, b = strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	return matchr.JaroWinkler(a, b, false)
}

// HashPage computes the xxhash of page markup as a hex string.
func HashPage(markup string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(markup))
}

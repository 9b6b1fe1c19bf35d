package quemequem

import (
	"regexp"
	"slices"
	"strings"
)

// WindowMode selects how a keyword match grows into a candidate window.
type WindowMode string

// WindowMode constants.
const (
	// WindowAncestors walks up from the match node.
	WindowAncestors WindowMode = "ancestors"
	// WindowFollowing takes the match node and the blocks after it.
	WindowFollowing WindowMode = "following"
)

// Window bounds used when a role leaves them unset.
const (
	DefaultAncestorLevels = 4
	DefaultSiblingWindow  = 12
)

// DefaultCardClass matches the person card markup used by gov.br portals.
const DefaultCardClass = `dados-p[oe]ssoa`

// DefaultExclusions mark adjacent-but-wrong records next to the role holder:
// chiefs of staff, advisors, deputies, fax lines and protocol offices.
var DefaultExclusions = []string{
	`Gabinete`,
	`Assessor`,
	`Adjunt[oa]`,
	`Substitut[oa]`,
	`Fax`,
	`Cerimonial`,
	`Agenda`,
}

// DefaultEmailExclusions mark protocol and scheduling mailboxes.
var DefaultEmailExclusions = []string{"cerimonial", "agenda"}

// CardLayout describes a structured person card. Role, Name, Phone and Email
// are class names of the nested nodes holding each field.
type CardLayout struct {
	Disabled bool   `json:"disabled" yaml:"disabled"`
	Class    string `json:"class" yaml:"class"`
	Role     string `json:"role" yaml:"role"`
	Name     string `json:"name" yaml:"name"`
	Phone    string `json:"phone" yaml:"phone"`
	Email    string `json:"email" yaml:"email"`
}

// Role is the extraction configuration for one role holder page.
type Role struct {
	ID                string     `json:"id" yaml:"id"`
	URL               string     `json:"url" yaml:"url"`
	Pattern           string     `json:"pattern" yaml:"pattern"`
	Exclusions        []string   `json:"exclusions" yaml:"exclusions"`
	ReplaceExclusions bool       `json:"replace_exclusions" yaml:"replace_exclusions"`
	Card              CardLayout `json:"card" yaml:"card"`
	Scope             string     `json:"scope" yaml:"scope"`
	EmailDomain       string     `json:"email_domain" yaml:"email_domain"`
	EmailExclusions   []string   `json:"email_exclusions" yaml:"email_exclusions"`
	Window            WindowMode `json:"window" yaml:"window"`
	AncestorLevels    int        `json:"ancestor_levels" yaml:"ancestor_levels"`
	SiblingWindow     int        `json:"sibling_window" yaml:"sibling_window"`
	Default           Record     `json:"default" yaml:"default"`
}

// Validate returns an error if the role contains invalid fields.
func (r *Role) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "role ID required")
	}
	if r.Pattern == "" {
		return Errorf(EINVALID, "role %q: pattern required", r.ID)
	}
	if strings.TrimSpace(r.Default.Title) == "" {
		return Errorf(EINVALID, "role %q: default title required", r.ID)
	}
	switch r.Window {
	case "", WindowAncestors, WindowFollowing:
	default:
		return Errorf(EINVALID, "role %q: unknown window mode %q", r.ID, r.Window)
	}
	if r.AncestorLevels < 0 || r.SiblingWindow < 0 {
		return Errorf(EINVALID, "role %q: window bounds must not be negative", r.ID)
	}
	return nil
}

// Rule is the compiled, read-only form of a Role.
// A Rule may be shared between concurrent extraction runs.
type Rule struct {
	Role            *Role
	Pattern         *regexp.Regexp
	Exclusions      []*regexp.Regexp
	CardClass       *regexp.Regexp
	Card            CardLayout
	Scope           string
	EmailDomain     string
	EmailExclusions []string
	Window          WindowMode
	AncestorLevels  int
	SiblingWindow   int
}

// Compile validates the role and compiles its patterns.
// Patterns are matched case-insensitively.
func (r *Role) Compile() (*Rule, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	pattern, err := compileFold(r.Pattern)
	if err != nil {
		return nil, Errorf(EINVALID, "role %q: invalid pattern: %v", r.ID, err)
	}

	rule := &Rule{
		Role:           r,
		Pattern:        pattern,
		Card:           r.Card,
		Scope:          r.Scope,
		EmailDomain:    strings.ToLower(strings.TrimPrefix(r.EmailDomain, "@")),
		Window:         r.Window,
		AncestorLevels: r.AncestorLevels,
		SiblingWindow:  r.SiblingWindow,
	}

	exclusions := r.Exclusions
	if !r.ReplaceExclusions {
		exclusions = append(slices.Clone(DefaultExclusions), r.Exclusions...)
	}
	for _, s := range exclusions {
		re, err := compileFold(s)
		if err != nil {
			return nil, Errorf(EINVALID, "role %q: invalid exclusion %q: %v", r.ID, s, err)
		}
		rule.Exclusions = append(rule.Exclusions, re)
	}

	if !r.Card.Disabled {
		class := r.Card.Class
		if class == "" {
			class = DefaultCardClass
		}
		if rule.CardClass, err = regexp.Compile(class); err != nil {
			return nil, Errorf(EINVALID, "role %q: invalid card class: %v", r.ID, err)
		}
	}
	rule.Card.Role = orDefault(rule.Card.Role, "cargo")
	rule.Card.Name = orDefault(rule.Card.Name, "nome")
	rule.Card.Phone = orDefault(rule.Card.Phone, "telefone")
	rule.Card.Email = orDefault(rule.Card.Email, "email")

	emailExclusions := r.EmailExclusions
	if len(emailExclusions) == 0 {
		emailExclusions = DefaultEmailExclusions
	}
	for _, s := range emailExclusions {
		rule.EmailExclusions = append(rule.EmailExclusions, strings.ToLower(s))
	}

	if rule.Window == "" {
		rule.Window = WindowAncestors
	}
	if rule.AncestorLevels == 0 {
		rule.AncestorLevels = DefaultAncestorLevels
	}
	if rule.SiblingWindow == 0 {
		rule.SiblingWindow = DefaultSiblingWindow
	}

	return rule, nil
}

// Excluded reports whether s matches any exclusion pattern.
func (r *Rule) Excluded(s string) bool {
	for _, re := range r.Exclusions {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func compileFold(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)` + pattern)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

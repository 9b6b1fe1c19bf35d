package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/claricenunes/quemequem"
)

// MaxNameLength bounds accepted names. Longer text is a paragraph captured
// by mistake.
const MaxNameLength = 60

// particles stay lower case when a name is title-cased.
var particles = map[string]bool{
	"da": true, "de": true, "do": true, "das": true, "dos": true, "e": true,
}

// Names returns name candidates in order of preference: the typed name
// field, the line before the role line, the text before the role match on
// the role line, and the first line of the window.
func Names(w *quemequem.Window, rule *quemequem.Rule) []string {
	var names []string
	names = append(names, w.Field(quemequem.FieldName)...)

	if w.RoleLine > 0 {
		if prev := w.Lines[w.RoleLine-1]; !looksLikeContact(prev) {
			names = append(names, prev)
		}
	}
	if w.RoleLine >= 0 {
		line := w.Lines[w.RoleLine]
		if loc := rule.Pattern.FindStringIndex(line); loc != nil && loc[0] > 0 {
			names = append(names, line[:loc[0]])
		}
	}
	if len(w.Lines) > 0 {
		names = append(names, w.Lines[0])
	}

	for i, name := range names {
		names[i] = CleanName(name)
	}
	return names
}

func looksLikeContact(line string) bool {
	return quemequem.HasContact(line) || labelPattern.MatchString(line) ||
		strings.Contains(strings.ToLower(line), "mailto:")
}

// CleanName trims separators around a name and title-cases names written
// entirely in upper case.
func CleanName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) && r != '.' && r != ')' || r == '|' || r == '–' || r == '—'
	})
	if isUpper(s) {
		s = titleCase(s)
	}
	return s
}

// ValidName reports whether s is plausibly a person's name.
func ValidName(s string, rule *quemequem.Rule) bool {
	if s == "" || utf8.RuneCountInString(s) > MaxNameLength {
		return false
	}
	if !strings.ContainsFunc(s, unicode.IsLetter) {
		return false
	}
	if looksLikeContact(s) || rule.Pattern.MatchString(s) || rule.Excluded(s) {
		return false
	}
	return true
}

func isUpper(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter) && !strings.ContainsFunc(s, unicode.IsLower)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if i > 0 && particles[w] {
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/claricenunes/quemequem"
)

// MaxTitleLength bounds accepted titles.
const MaxTitleLength = 150

// Titles returns title candidates: the typed title field, then the role
// line starting at the role match. Candidates are cleaned and normalized.
func Titles(w *quemequem.Window, rule *quemequem.Rule) []string {
	var titles []string
	titles = append(titles, w.Field(quemequem.FieldTitle)...)

	if w.RoleLine >= 0 {
		line := w.Lines[w.RoleLine]
		if loc := rule.Pattern.FindStringIndex(line); loc != nil {
			titles = append(titles, line[loc[0]:])
		} else {
			titles = append(titles, line)
		}
	}

	for i, title := range titles {
		titles[i] = NormalizeTitle(CleanTitle(title))
	}
	return titles
}

// CleanTitle strips emails, phone numbers, contact labels and the "(A)"
// marker from s and collapses separators into single spaces.
func CleanTitle(s string) string {
	s = quemequem.EmailPattern.ReplaceAllString(s, " ")
	s = quemequem.PhonePattern.ReplaceAllString(s, " ")
	s = suffixPattern.ReplaceAllString(s, " ")
	s = localPattern.ReplaceAllString(s, " ")
	s = labelPattern.ReplaceAllString(s, " ")
	s = genderMarkPattern.ReplaceAllString(s, "")
	s = separatorPattern.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(":;,.-/|", r)
	})
}

// ValidTitle reports whether s is usable as a title.
func ValidTitle(s string) bool {
	if s == "" || utf8.RuneCountInString(s) > MaxTitleLength {
		return false
	}
	return strings.ContainsFunc(s, unicode.IsLetter)
}

package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// masculine maps feminine role nouns to their masculine form.
var masculine = map[string]string{
	"ministra":      "ministro",
	"secretária":    "secretário",
	"subsecretária": "subsecretário",
	"coordenadora":  "coordenador",
	"diretora":      "diretor",
	"assessora":     "assessor",
	"presidenta":    "presidente",
	"chefa":         "chefe",
	"procuradora":   "procurador",
	"consultora":    "consultor",
}

// qualifiers maps feminine adjectives that only change when they qualify a
// role noun, as in "Secretária-Executiva" or "Ministra Interina".
var qualifiers = map[string]string{
	"adjunta":    "adjunto",
	"substituta": "substituto",
	"executiva":  "executivo",
	"interina":   "interino",
}

var wordPattern = regexp.MustCompile(`\p{L}+`)

// NormalizeTitle rewrites feminine role nouns in s to the masculine form,
// whole word only, keeping the case style of each word. Adjectives follow
// the noun they qualify and are left alone elsewhere, so "Secretaria
// Executiva" keeps its gender. It is idempotent.
func NormalizeTitle(s string) string {
	var b strings.Builder
	last := 0
	qualifying := false
	for _, loc := range wordPattern.FindAllStringIndex(s, -1) {
		word := s[loc[0]:loc[1]]
		if qualifying && !adjacent(s[last:loc[0]]) {
			qualifying = false
		}
		b.WriteString(s[last:loc[0]])

		lower := strings.ToLower(word)
		if m, ok := masculine[lower]; ok {
			word, qualifying = matchCase(m, word), true
		} else if m, ok := qualifiers[lower]; ok && qualifying {
			word = matchCase(m, word)
		} else {
			qualifying = false
		}
		b.WriteString(word)
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// adjacent reports whether sep joins two words of one phrase: a hyphen or
// plain spacing.
func adjacent(sep string) bool {
	return strings.Trim(sep, " -\u00a0") == ""
}

// matchCase renders lower-case s in the case style of model: all upper,
// capitalized or all lower.
func matchCase(s, model string) string {
	switch {
	case strings.ToUpper(model) == model:
		return strings.ToUpper(s)
	case startsUpper(model):
		return capitalize(s)
	default:
		return s
	}
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

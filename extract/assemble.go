package extract

import (
	"strings"

	"github.com/claricenunes/quemequem"
)

// Assemble builds the final record: scalar fields are trimmed, list fields
// deduplicated and source set to the queried URL.
func Assemble(rec quemequem.Record, source string) *quemequem.Record {
	return &quemequem.Record{
		Name:   strings.TrimSpace(rec.Name),
		Title:  strings.TrimSpace(rec.Title),
		Phones: Dedupe(rec.Phones),
		Emails: Dedupe(rec.Emails),
		Source: source,
	}
}

// Dedupe trims values and drops empty and repeated ones, keeping the first
// occurrence of each.
func Dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

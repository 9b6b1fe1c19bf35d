package quemequem

import "regexp"

// Contact patterns shared by the locator and the field extractors.
var (
	// PhonePattern matches a phone number with a two digit area code,
	// e.g. "(61) 3315-2000" or "61 99876 5432".
	PhonePattern = regexp.MustCompile(`\(?\d{2}\)?\s?\d{4,5}[-\s.]?\d{4}`)

	// EmailPattern matches a plain local@domain address.
	EmailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}`)
)

// HasContact reports whether s carries a phone number or an email address.
func HasContact(s string) bool {
	return PhonePattern.MatchString(s) || EmailPattern.MatchString(s)
}

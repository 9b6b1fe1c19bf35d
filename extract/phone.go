package extract

import (
	"strings"

	"github.com/claricenunes/quemequem"
)

// Phones extracts phone numbers from the window in discovery order.
//
// Fax lines are dropped first. The typed phone field of a card is searched
// before labeled "Telefone" lines, which are searched before the rest of the
// window. Every primary number is followed by the numbers synthesized from
// the "/NNNN" suffix groups of the same lines. Numbers without area code
// borrow the first area code seen in those lines; when no line has a number
// with area code, they are taken as they are.
func Phones(w *quemequem.Window) []string {
	var labeled []string
	for _, line := range w.Lines {
		if phoneLabelPattern.MatchString(line) {
			labeled = append(labeled, line)
		}
	}

	for _, lines := range [][]string{w.Field(quemequem.FieldPhone), labeled, w.Lines} {
		if phones := phonesIn(withoutFax(lines)); len(phones) > 0 {
			return phones
		}
	}
	return nil
}

func withoutFax(lines []string) []string {
	var out []string
	for _, line := range lines {
		if !faxPattern.MatchString(line) {
			out = append(out, line)
		}
	}
	return out
}

type span struct{ start, end int }

func overlaps(s span, spans []span) bool {
	for _, o := range spans {
		if s.start < o.end && o.start < s.end {
			return true
		}
	}
	return false
}

// phonesIn applies the strict pattern, then the local pattern, to lines.
func phonesIn(lines []string) []string {
	var primaries, suffixes []string
	var areaCode string

	for _, line := range lines {
		strict := bounded(line, quemequem.PhonePattern.FindAllStringIndex(line, -1))
		for _, s := range strict {
			number := strings.TrimSpace(line[s.start:s.end])
			primaries = append(primaries, number)
			if areaCode == "" {
				areaCode = areaCodeOf(number)
			}
		}
		numbers := strict
		for _, s := range bounded(line, localPattern.FindAllStringIndex(line, -1)) {
			if overlaps(s, strict) {
				continue
			}
			numbers = append(numbers, s)
			if areaCode != "" {
				primaries = append(primaries, "("+areaCode+") "+line[s.start:s.end])
			}
		}
		suffixes = append(suffixes, suffixesIn(line, numbers)...)
	}

	if len(primaries) == 0 {
		for _, line := range lines {
			for _, s := range bounded(line, localPattern.FindAllStringIndex(line, -1)) {
				primaries = append(primaries, line[s.start:s.end])
			}
		}
	}

	var phones []string
	for _, p := range primaries {
		phones = append(phones, p)
		for _, suffix := range suffixes {
			phones = append(phones, p[:len(p)-4]+suffix)
		}
	}
	return phones
}

// bounded keeps the matches that are not part of a longer digit run.
func bounded(line string, matches [][]int) []span {
	var spans []span
	for _, m := range matches {
		if m[0] > 0 && isDigit(line[m[0]-1]) {
			continue
		}
		if m[1] < len(line) && isDigit(line[m[1]]) {
			continue
		}
		spans = append(spans, span{m[0], m[1]})
	}
	return spans
}

// suffixesIn returns the "/NNNN" groups of line outside the given numbers.
// A slash right after a digit only starts a suffix when that digit ends one
// of the numbers or a previous suffix, which rules out dates such as
// 10/01/2024.
func suffixesIn(line string, numbers []span) []string {
	var out []string
	var taken []span
	for _, m := range suffixPattern.FindAllStringSubmatchIndex(line, -1) {
		s := span{m[0], m[1]}
		if overlaps(s, numbers) {
			continue
		}
		if m[0] > 0 && isDigit(line[m[0]-1]) && !overlaps(span{m[0] - 1, m[0]}, numbers) &&
			!overlaps(span{m[0] - 1, m[0]}, taken) {
			continue
		}
		if m[1] < len(line) && (isDigit(line[m[1]]) || line[m[1]] == '-') {
			continue
		}
		out = append(out, line[m[2]:m[3]])
		taken = append(taken, s)
	}
	return out
}

func areaCodeOf(number string) string {
	return digitsPattern.FindString(number)[:2]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// ValidPhone reports whether s looks like a full Brazilian phone number.
func ValidPhone(s string) bool {
	n := len(strings.Join(digitsPattern.FindAllString(s, -1), ""))
	return n >= 8 && n <= 13
}

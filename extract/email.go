package extract

import (
	"net/url"
	"strings"

	"github.com/claricenunes/quemequem"
)

// Emails extracts email addresses from the window. Addresses from mailto
// links win over addresses found in the text. Protocol and agenda mailboxes,
// and addresses outside the rule's domain, are dropped.
func Emails(w *quemequem.Window, rule *quemequem.Rule) []string {
	var emails []string
	for _, link := range w.Links {
		if !strings.HasPrefix(strings.ToLower(link), "mailto:") {
			continue
		}
		addr := link[len("mailto:"):]
		if i := strings.IndexByte(addr, '?'); i >= 0 {
			addr = addr[:i]
		}
		if unescaped, err := url.PathUnescape(addr); err == nil {
			addr = unescaped
		}
		emails = append(emails, accepted(quemequem.EmailPattern.FindAllString(addr, -1), rule)...)
	}
	if len(emails) > 0 {
		return emails
	}
	return accepted(quemequem.EmailPattern.FindAllString(w.Text(), -1), rule)
}

func accepted(addrs []string, rule *quemequem.Rule) []string {
	var out []string
	for _, addr := range addrs {
		if AcceptEmail(addr, rule) {
			out = append(out, addr)
		}
	}
	return out
}

// AcceptEmail reports whether addr is a well-formed address that passes the
// rule's exclusion terms and domain constraint.
func AcceptEmail(addr string, rule *quemequem.Rule) bool {
	addr = strings.TrimSpace(addr)
	if quemequem.EmailPattern.FindString(addr) != addr {
		return false
	}
	local, domain, ok := strings.Cut(strings.ToLower(addr), "@")
	if !ok {
		return false
	}
	for _, term := range rule.EmailExclusions {
		if strings.Contains(local, term) || strings.Contains(domain, term) {
			return false
		}
	}
	if d := rule.EmailDomain; d != "" && domain != d && !strings.HasSuffix(domain, "."+d) {
		return false
	}
	return true
}

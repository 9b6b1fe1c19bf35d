package extract

import (
	"github.com/claricenunes/quemequem"
)

// Candidates holds the raw matches of every field extractor.
type Candidates struct {
	Names  []string
	Titles []string
	Phones []string
	Emails []string
}

// Collect runs every field extractor over the window.
func Collect(w *quemequem.Window, rule *quemequem.Rule) Candidates {
	return Candidates{
		Names:  Names(w, rule),
		Titles: Titles(w, rule),
		Phones: Phones(w),
		Emails: Emails(w, rule),
	}
}

// Resolve merges candidates with the default record field by field. Scalar
// fields take the first valid candidate and list fields every valid
// candidate; a field without valid candidates takes the default value.
// Page titles arrive normalized; the default title is kept as configured.
func Resolve(c Candidates, rule *quemequem.Rule, def *quemequem.Record) (quemequem.Record, quemequem.Provenance) {
	rec := *def.Clone()
	prov := quemequem.DefaultProvenance()

	for _, name := range c.Names {
		if ValidName(name, rule) {
			rec.Name, prov.Name = name, quemequem.OriginPage
			break
		}
	}
	for _, title := range c.Titles {
		if ValidTitle(title) {
			rec.Title, prov.Title = title, quemequem.OriginPage
			break
		}
	}

	var phones []string
	for _, p := range c.Phones {
		if ValidPhone(p) {
			phones = append(phones, p)
		}
	}
	if len(phones) > 0 {
		rec.Phones, prov.Phones = phones, quemequem.OriginPage
	}

	var emails []string
	for _, e := range c.Emails {
		if AcceptEmail(e, rule) {
			emails = append(emails, e)
		}
	}
	if len(emails) > 0 {
		rec.Emails, prov.Emails = emails, quemequem.OriginPage
	}

	return rec, prov
}

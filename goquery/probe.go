package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/claricenunes/quemequem"
)

// Hit is a place on a page that mentions a role.
type Hit struct {
	Strategy quemequem.Strategy
	Name     string
	Role     string
	Excluded bool
}

// Probe lists every person card on the page and every block line that
// matches the role pattern, flagging lines the locator would exclude.
// It is a diagnostic for writing role configurations.
func Probe(markup string, rule *quemequem.Rule) ([]Hit, error) {
	doc, err := Parse(markup)
	if err != nil {
		return nil, err
	}

	var hits []Hit
	if rule.CardClass != nil {
		doc.doc.Find("[class]").Each(func(_ int, card *goquery.Selection) {
			if !isCard(card, rule) || hasNestedCard(card, rule) {
				return
			}
			hit := Hit{Strategy: quemequem.StrategyCard}
			if names := fieldTexts(card, rule.Card.Name); len(names) > 0 {
				hit.Name = names[0]
			}
			if roles := fieldTexts(card, rule.Card.Role); len(roles) > 0 {
				hit.Role = roles[0]
			}
			hits = append(hits, hit)
		})
	}

	for _, block := range blocksUnder(scopeRoot(doc, rule.Scope)) {
		lines, _ := ownLines(block)
		for _, line := range lines {
			if rule.Pattern.MatchString(line) {
				hits = append(hits, Hit{
					Strategy: quemequem.StrategyKeyword,
					Role:     line,
					Excluded: rule.Excluded(line),
				})
			}
		}
	}
	return hits, nil
}

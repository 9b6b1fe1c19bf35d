package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/claricenunes/quemequem"
	"golang.org/x/net/html"
)

// Ensure Locator implements quemequem.Locator at compile time.
var _ quemequem.Locator = (*Locator)(nil)

// Locator finds the candidate window of a role holder. Strategies run in
// order and the first one that finds something wins:
//
//  1. card: a person card whose role node matches the role pattern.
//  2. keyword: the first block line matching the role pattern that is not
//     excluded, grown into a window by walking ancestors or by taking the
//     blocks that follow it.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate parses markup and returns the window for rule, or nil if the role
// does not appear on the page.
func (l *Locator) Locate(markup string, rule *quemequem.Rule) (*quemequem.Window, error) {
	doc, err := Parse(markup)
	if err != nil {
		return nil, err
	}
	return l.LocateDocument(doc, rule), nil
}

// LocateDocument is like Locate for an already parsed document.
func (l *Locator) LocateDocument(doc *Document, rule *quemequem.Rule) *quemequem.Window {
	if rule.CardClass != nil {
		if w := locateCard(doc, rule); w != nil {
			return w
		}
	}
	return locateKeyword(doc, rule)
}

// locateCard returns the innermost person card whose role node matches.
func locateCard(doc *Document, rule *quemequem.Rule) *quemequem.Window {
	var window *quemequem.Window
	doc.doc.Find("[class]").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if !isCard(card, rule) || hasNestedCard(card, rule) {
			return true
		}
		var role string
		card.Find(classSelector(rule.Card.Role)).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if text := collapse(s.Text()); rule.Pattern.MatchString(text) {
				role = text
				return false
			}
			return true
		})
		if role == "" {
			return true
		}

		n := card.Nodes[0]
		lines, links := fullLines(n)
		window = &quemequem.Window{
			Strategy: quemequem.StrategyCard,
			Lines:    lines,
			RoleLine: roleLine(lines, rule),
			Links:    links,
			Fields: map[quemequem.Field][]string{
				quemequem.FieldName:  fieldTexts(card, rule.Card.Name),
				quemequem.FieldTitle: {role},
				quemequem.FieldPhone: fieldTexts(card, rule.Card.Phone),
				quemequem.FieldEmail: fieldTexts(card, rule.Card.Email),
			},
			HTML: render(n),
		}
		return false
	})
	return window
}

func isCard(s *goquery.Selection, rule *quemequem.Rule) bool {
	class, _ := s.Attr("class")
	return rule.CardClass.MatchString(class)
}

func hasNestedCard(card *goquery.Selection, rule *quemequem.Rule) bool {
	nested := false
	card.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		nested = isCard(s, rule)
		return !nested
	})
	return nested
}

func classSelector(class string) string {
	return "." + strings.Join(strings.Fields(class), ".")
}

func fieldTexts(card *goquery.Selection, class string) []string {
	var texts []string
	card.Find(classSelector(class)).Each(func(_ int, s *goquery.Selection) {
		lines, _ := fullLines(s.Nodes[0])
		texts = append(texts, lines...)
	})
	return texts
}

// locateKeyword sweeps the blocks of the scope in document order.
func locateKeyword(doc *Document, rule *quemequem.Rule) *quemequem.Window {
	root := scopeRoot(doc, rule.Scope)
	blocks := blocksUnder(root)

	for i, block := range blocks {
		lines, _ := ownLines(block)
		for _, line := range lines {
			if !rule.Pattern.MatchString(line) || rule.Excluded(line) {
				continue
			}
			if rule.Window == quemequem.WindowFollowing {
				return followingWindow(blocks, i, rule)
			}
			return ancestorWindow(block, root, rule)
		}
	}
	return nil
}

// scopeRoot returns the first node matching scope, falling back to the body.
func scopeRoot(doc *Document, scope string) *html.Node {
	if scope != "" {
		if sel := doc.doc.Find(scope); sel.Length() > 0 {
			return sel.Nodes[0]
		}
	}
	return doc.root()
}

// blocksUnder lists root and the block elements below it in document order.
func blocksUnder(root *html.Node) []*html.Node {
	var blocks []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if skipped(n) {
			return
		}
		if n == root || isBlock(n) {
			blocks = append(blocks, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				walk(c)
			}
		}
	}
	walk(root)
	return blocks
}

// ancestorWindow walks up from the match block at most AncestorLevels
// levels, stopping at the first node carrying contact details. It never
// climbs past the scope root or into <body>.
func ancestorWindow(match, root *html.Node, rule *quemequem.Rule) *quemequem.Window {
	node := match
	for level := 0; level < rule.AncestorLevels && !carriesContact(node); level++ {
		parent := node.Parent
		if node == root || parent == nil || parent.Type != html.ElementNode ||
			parent.Data == "body" || parent.Data == "html" {
			break
		}
		node = parent
	}

	lines, links := fullLines(node)
	return &quemequem.Window{
		Strategy: quemequem.StrategyKeyword,
		Lines:    lines,
		RoleLine: roleLine(lines, rule),
		Links:    links,
		HTML:     render(node),
	}
}

// followingWindow takes the match block and the SiblingWindow blocks with
// text that follow it in document order.
func followingWindow(blocks []*html.Node, i int, rule *quemequem.Rule) *quemequem.Window {
	match := blocks[i]
	lines, links := fullLines(match)

	var b strings.Builder
	b.WriteString(render(match))

	taken := 0
	for _, block := range blocks[i+1:] {
		if taken >= rule.SiblingWindow {
			break
		}
		if isDescendant(block, match) {
			continue
		}
		own, ownLinks := ownLines(block)
		if len(own) == 0 {
			continue
		}
		lines = append(lines, own...)
		links = append(links, ownLinks...)
		for _, line := range own {
			b.WriteString("\n<p>")
			b.WriteString(html.EscapeString(line))
			b.WriteString("</p>")
		}
		taken++
	}

	return &quemequem.Window{
		Strategy: quemequem.StrategyKeyword,
		Lines:    lines,
		RoleLine: roleLine(lines, rule),
		Links:    links,
		HTML:     b.String(),
	}
}

func carriesContact(n *html.Node) bool {
	lines, links := fullLines(n)
	for _, link := range links {
		if strings.HasPrefix(strings.ToLower(link), "mailto:") {
			return true
		}
	}
	return quemequem.HasContact(strings.Join(lines, "\n"))
}

// roleLine returns the index of the first line matching the role pattern
// that is not excluded, or -1.
func roleLine(lines []string, rule *quemequem.Rule) int {
	for i, line := range lines {
		if rule.Pattern.MatchString(line) && !rule.Excluded(line) {
			return i
		}
	}
	for i, line := range lines {
		if rule.Pattern.MatchString(line) {
			return i
		}
	}
	return -1
}

func render(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

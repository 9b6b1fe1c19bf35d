package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags start a new line when rendered.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "dd": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "header": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "ul": true,
}

// skipTags never contribute text.
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

func isBlock(n *html.Node) bool {
	return n.Type == html.ElementNode && blockTags[n.Data]
}

func skipped(n *html.Node) bool {
	return n.Type == html.ElementNode && skipTags[n.Data]
}

// lineBuilder flattens a subtree into display lines. Block elements and
// <br> end the current line; inline elements continue it.
type lineBuilder struct {
	lines []string
	links []string
	cur   strings.Builder
}

// walk appends the lines under n. When own is set, nested block elements
// are left out so that each block only contributes its own text.
func (b *lineBuilder) walk(n *html.Node, own bool) {
	b.visit(n, own, true)
}

func (b *lineBuilder) visit(n *html.Node, own, root bool) {
	switch n.Type {
	case html.TextNode:
		b.cur.WriteString(n.Data)
		return
	case html.ElementNode:
		if skipTags[n.Data] {
			return
		}
		switch n.Data {
		case "br", "hr":
			b.flush()
			return
		case "a":
			if href := attr(n, "href"); href != "" {
				b.links = append(b.links, strings.TrimSpace(href))
			}
		}
		if blockTags[n.Data] {
			if own && !root {
				return
			}
			b.flush()
			defer b.flush()
		}
	case html.DocumentNode:
	default:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.visit(c, own, false)
	}
}

func (b *lineBuilder) flush() {
	if s := collapse(b.cur.String()); s != "" {
		b.lines = append(b.lines, s)
	}
	b.cur.Reset()
}

func (b *lineBuilder) finish() []string {
	b.flush()
	return b.lines
}

// fullLines returns every line under n.
func fullLines(n *html.Node) (lines, links []string) {
	var b lineBuilder
	b.walk(n, false)
	return b.finish(), b.links
}

// ownLines returns the lines of n without those of nested blocks.
func ownLines(n *html.Node) (lines, links []string) {
	var b lineBuilder
	b.walk(n, true)
	return b.finish(), b.links
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// isDescendant reports whether n sits below ancestor.
func isDescendant(n, ancestor *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

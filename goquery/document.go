// Package goquery implements the document model and the candidate locator
// on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/claricenunes/quemequem"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// tagPattern detects at least one tag-like token in the input.
var tagPattern = regexp.MustCompile(`<[A-Za-z!/?]`)

// Document is a parsed page. It is immutable once constructed.
type Document struct {
	doc *goquery.Document
}

// Node is an element yielded by document traversal.
type Node struct {
	Tag   string
	Attrs map[string]string
	Text  string

	node *html.Node
}

// Parse parses markup permissively. It fails with EPARSE only when the input
// is empty or carries no tag at all. Input that is not UTF-8 is decoded from
// the charset declared in a <meta> tag, or from windows-1252 when none is.
func Parse(markup string) (*Document, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, quemequem.Errorf(quemequem.EPARSE, "empty markup")
	}
	if !tagPattern.MatchString(markup) {
		return nil, quemequem.Errorf(quemequem.EPARSE, "input contains no markup")
	}

	var r io.Reader = strings.NewReader(markup)
	if !utf8.ValidString(markup) {
		decoded, err := charset.NewReader(r, "")
		if err != nil {
			return nil, quemequem.Errorf(quemequem.EPARSE, "failed to decode markup: %v", err)
		}
		r = decoded
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, quemequem.Errorf(quemequem.EPARSE, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// FindAll returns the elements with the given tag in depth-first order.
// An empty tag or "*" selects every element.
func (d *Document) FindAll(tag string) []Node {
	if tag == "" {
		tag = "*"
	}
	var nodes []Node
	d.doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			if skipped(n) {
				continue
			}
			nodes = append(nodes, newNode(n))
		}
	})
	return nodes
}

// FindFirst returns the first element, in document order, whose own text
// matches pattern.
func (d *Document) FindFirst(pattern *regexp.Regexp) (Node, bool) {
	var found *html.Node
	d.doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		n := sel.Nodes[0]
		if skipped(n) {
			return true
		}
		if pattern.MatchString(ownText(n)) {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return Node{}, false
	}
	return newNode(found), true
}

// Text returns the document text with every text segment trimmed, empty
// segments dropped, and the rest joined by sep.
func (d *Document) Text(sep string) string {
	return nodeText(d.root(), sep)
}

// Lines returns the document text split into lines at block boundaries.
func (d *Document) Lines() []string {
	var b lineBuilder
	b.walk(d.root(), false)
	return b.finish()
}

// JoinText returns the text under the node with segments joined by sep.
func (n Node) JoinText(sep string) string {
	return nodeText(n.node, sep)
}

func (d *Document) root() *html.Node {
	if body := d.doc.Find("body"); body.Length() > 0 {
		return body.Nodes[0]
	}
	return d.doc.Nodes[0]
}

func newNode(n *html.Node) Node {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
	}
	return Node{
		Tag:   n.Data,
		Attrs: attrs,
		Text:  nodeText(n, " "),
		node:  n,
	}
}

// nodeText joins the trimmed text segments under n with sep.
func nodeText(n *html.Node, sep string) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := collapse(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.ElementNode:
			if skipped(n) {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, sep)
}

// ownText returns the direct text children of n.
func ownText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteByte(' ')
		}
	}
	return collapse(b.String())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

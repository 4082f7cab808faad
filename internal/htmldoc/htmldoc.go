// Package htmldoc wraps a fetched page's markup behind a small query API.
package htmldoc

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a lazily parsed view of one page's markup. Unparseable input
// degrades to an empty document rather than an error; callers see no elements.
type Document struct {
	raw string
	doc *goquery.Document
}

func Parse(raw string) *Document {
	return &Document{raw: raw}
}

// Find returns the elements matching the given selector, in document order.
// The underlying tree is built on first use and reused afterwards.
func (d *Document) Find(selector string) *goquery.Selection {
	if d.doc == nil {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(d.raw))
		if err != nil {
			doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
		}
		d.doc = doc
	}
	return d.doc.Find(selector)
}

// HasElement reports whether the raw markup opens an element with any of the
// given (lowercase) names. It scans tokens rather than the parsed tree: the
// HTML parser fabricates html/head/body wrappers around bare XML documents,
// so the tree cannot answer whether the markup itself contains a head tag.
func (d *Document) HasElement(names ...string) bool {
	z := html.NewTokenizer(strings.NewReader(d.raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			for _, want := range names {
				if string(name) == want {
					return true
				}
			}
		}
	}
}

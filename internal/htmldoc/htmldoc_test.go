package htmldoc

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestHasElement(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		tags []string
		want bool
	}{
		{"head present", `<html><head><title>x</title></head><body></body></html>`, []string{"head"}, true},
		{"rss root", `<?xml version="1.0"?><rss version="2.0"></rss>`, []string{"rss", "rdf", "feed"}, true},
		{"self-closing rss", `<rss/>`, []string{"rss"}, true},
		{"atom feed root", `<feed xmlns="http://www.w3.org/2005/Atom"></feed>`, []string{"rss", "rdf", "feed"}, true},
		{"no head in bare feed", `<rss version="2.0"><channel></channel></rss>`, []string{"head"}, false},
		{"plain text", `just some text`, []string{"rss", "rdf", "feed"}, false},
		{"tag name in text only", `my favorite rss reader`, []string{"rss"}, false},
		{"empty input", ``, []string{"head"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := Parse(tc.raw)
			if got := doc.HasElement(tc.tags...); got != tc.want {
				t.Errorf("HasElement(%v) on %q = %v, want %v", tc.tags, tc.raw, got, tc.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	doc := Parse(`<html><head>
		<link type="application/rss+xml" href="/a.rss">
	</head><body>
		<a href="/one">one</a>
		<a href="/two">two</a>
	</body></html>`)

	if n := doc.Find("link").Length(); n != 1 {
		t.Errorf("expected 1 link element, got %d", n)
	}
	if n := doc.Find("a[href]").Length(); n != 2 {
		t.Errorf("expected 2 anchors, got %d", n)
	}

	href, ok := doc.Find("link").Attr("href")
	if !ok || href != "/a.rss" {
		t.Errorf("expected href /a.rss, got %q (ok=%v)", href, ok)
	}
}

func TestFindOnGarbageInput(t *testing.T) {
	doc := Parse("\x00\x01<<<>not html at all")
	// Must not panic; queries on unparseable input find nothing useful.
	doc.Find("a[href]").Each(func(_ int, _ *goquery.Selection) {})
}

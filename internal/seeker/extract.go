package seeker

import (
	"iter"
	"net/url"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/julienpequegnot/feedseek/internal/htmldoc"
)

// MIME types a page uses to declare its feeds in <link> elements.
var declaredLinkTypes = []string{
	"application/rss+xml",
	"text/xml",
	"application/atom+xml",
	"application/x.atom+xml",
	"application/x-atom+xml",
}

// Common feed locations, most generic first. These are speculative; the
// engine fetches and classifies each one. Site-specific conventions go at
// the end.
var guessPaths = []string{
	"index.xml", "atom.xml", "feeds", "feeds/default", "feed", "feed/default",
	"feeds/posts/default/", "?feed=rss", "?feed=atom", "?feed=rss2", "?feed=rdf",
	"rss", "atom", "rdf", "index.rss", "index.rdf", "index.atom",
	"?type=100",                     // Typo3
	"?format=feed&type=rss",         // Joomla
	"feeds/posts/default",           // Blogger
	"data/rss",                      // LiveJournal
	"rss.xml",                       // Posterous
	"articles.rss", "articles.atom", // Patch
}

// declaredFeedLinks yields the href of every <link> element whose type is on
// the feed MIME allow-list, resolved against base, in document order.
func declaredFeedLinks(doc *htmldoc.Document, base string) iter.Seq[string] {
	return func(yield func(string) bool) {
		doc.Find("link").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			typ, _ := s.Attr("type")
			if !slices.Contains(declaredLinkTypes, typ) {
				return true
			}
			href, ok := s.Attr("href")
			if !ok || href == "" {
				return true
			}
			abs, ok := resolveRef(base, href)
			if !ok {
				return true
			}
			return yield(abs)
		})
	}
}

// anchorFeedLinks yields anchor hrefs that look like feed URLs. Two passes
// over the same anchors: the high-confidence suffix check first, then the
// keyword check, so the most likely candidates surface before the long tail.
// Filters apply to the href as written; resolution happens afterwards.
func anchorFeedLinks(doc *htmldoc.Document, base string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, match := range []func(string) bool{isFeedURL, mightBeFeedURL} {
			stopped := false
			doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
				href, _ := s.Attr("href")
				if href == "" || !match(href) {
					return true
				}
				abs, ok := resolveRef(base, href)
				if !ok {
					return true
				}
				if !yield(abs) {
					stopped = true
					return false
				}
				return true
			})
			if stopped {
				return
			}
		}
	}
}

// guessFeedPaths yields the conventional feed locations resolved against
// base. Existence is not checked here.
func guessFeedPaths(base string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, suffix := range guessPaths {
			abs, ok := resolveRef(base, suffix)
			if !ok {
				continue
			}
			if !yield(abs) {
				return
			}
		}
	}
}

// resolveRef joins a possibly relative reference against a base URL.
func resolveRef(base, ref string) (string, bool) {
	b, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", false
	}
	return b.ResolveReference(r).String(), true
}

// stripQuery removes the query string from a URL, leaving the rest intact.
// Extraction and guessing resolve against the page URL in this form.
func stripQuery(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	return u.String()
}

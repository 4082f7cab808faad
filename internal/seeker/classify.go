package seeker

import (
	"strings"

	"github.com/julienpequegnot/feedseek/internal/htmldoc"
)

var feedSuffixes = []string{".rss", ".rdf", ".atom", ".xml"}

var feedKeywords = []string{"rss", "rdf", "atom", "xml", "feed"}

// isFeedURL reports whether a URL is a feed URL with high confidence,
// based on its file extension.
func isFeedURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, suffix := range feedSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// mightBeFeedURL is the lower-confidence counterpart of isFeedURL: a
// substring match anywhere in the URL. Matches everything isFeedURL does,
// plus plenty of false positives.
func mightBeFeedURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, keyword := range feedKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// isFeedDocument sniffs whether a page is itself a feed. A head element
// marks a full HTML page, which disqualifies it; otherwise any rss, rdf or
// feed element counts. This is a tag-presence check, not schema validation.
func isFeedDocument(doc *htmldoc.Document) bool {
	if doc.HasElement("head") {
		return false
	}
	return doc.HasElement("rss", "rdf", "feed")
}

package seeker

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/julienpequegnot/feedseek/internal/htmldoc"
)

type scoredLink struct {
	url   string
	score int
}

// rankedInternalLinks collects anchors pointing at the page's own host and
// orders them by how promising they are to spider into. The score is the
// number of path segments shared with the base page, plus a bonus of the
// base's full segment count when the link itself looks feed-like. Higher
// scores first; shorter URLs win ties.
func rankedInternalLinks(doc *htmldoc.Document, base string) []string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil
	}
	baseParts := pathSegments(baseURL.Path)

	dedup := make(map[scoredLink]struct{})
	var links []scoredLink
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" {
			return
		}

		link := href
		// Schema-relative links get a default scheme.
		if strings.HasPrefix(link, "//") {
			link = "http:" + link
		}
		u, err := url.Parse(link)
		if err != nil || u.Opaque != "" {
			return
		}
		// No host means a relative link on the current site.
		if u.Hostname() == "" {
			u.Scheme = baseURL.Scheme
			u.Host = baseURL.Host
			link = u.String()
		}
		if u.Hostname() != baseURL.Hostname() {
			return
		}

		score := sharedSegments(baseParts, pathSegments(u.Path))
		if isFeedURL(link) || mightBeFeedURL(link) {
			score += len(baseParts)
		}

		entry := scoredLink{url: link, score: score}
		if _, ok := dedup[entry]; ok {
			return
		}
		dedup[entry] = struct{}{}
		links = append(links, entry)
	})

	sort.Slice(links, func(i, j int) bool {
		if links[i].score != links[j].score {
			return links[i].score > links[j].score
		}
		if len(links[i].url) != len(links[j].url) {
			return len(links[i].url) < len(links[j].url)
		}
		return links[i].url < links[j].url
	})

	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.url
	}
	return out
}

func pathSegments(path string) map[string]struct{} {
	segments := make(map[string]struct{})
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			segments[part] = struct{}{}
		}
	}
	return segments
}

func sharedSegments(a, b map[string]struct{}) int {
	n := 0
	for segment := range b {
		if _, ok := a[segment]; ok {
			n++
		}
	}
	return n
}

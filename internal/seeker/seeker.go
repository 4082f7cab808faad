// Package seeker finds the most likely syndication feed URLs for a webpage.
//
// Discovery runs as a single depth-first, lazily evaluated pass: candidates
// are produced in rough order of confidence (declared feed links, then
// feed-looking anchors, then guessed conventional paths, then spidered
// same-host pages), each confirmed by fetching it and sniffing the result.
// No fetch happens after the consumer stops ranging.
package seeker

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julienpequegnot/feedseek/internal/fetch"
	"github.com/julienpequegnot/feedseek/internal/htmldoc"
)

var (
	// ErrTimeout reports that the wall-clock budget elapsed. URLs already
	// produced remain valid; the deadline is checked after each fetch
	// returns, so an in-flight fetch is never preempted.
	ErrTimeout = errors.New("feed discovery timed out")

	// ErrNoFeed is returned by FindFeedURL when no candidate survives
	// classification. An empty result is not a failure of the engine.
	ErrNoFeed = errors.New("no feed found")
)

// Internal unwind signals. Both end a discovery call without surfacing to
// the caller.
var (
	errStopped    = errors.New("consumer stopped")
	errLinkBudget = errors.New("link budget exhausted")
)

// Options bounds a single discovery call.
type Options struct {
	// HTML optionally supplies the page markup, saving the initial fetch.
	HTML string
	// SpiderDepth is how many times to recurse into same-host links.
	SpiderDepth int
	// MaxLinks caps how many distinct URLs the call will consider.
	// Zero means unlimited.
	MaxLinks int
	// MaxTime is the wall-clock budget, measured from the call start and
	// checked after each fetch returns. Zero means unlimited.
	MaxTime time.Duration
	// Fetcher overrides the default HTTP fetcher.
	Fetcher fetch.Fetcher
}

// Seeker discovers feed URLs for a single page.
type Seeker struct {
	root    *page
	fetcher fetch.Fetcher
	opts    Options
}

func New(pageURL string, opts Options) *Seeker {
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = fetch.NewHTTPFetcher(fetch.Options{})
	}
	return &Seeker{
		root:    newPage(pageURL, opts.HTML, fetcher),
		fetcher: fetcher,
		opts:    opts,
	}
}

// GenerateFeedURLs returns the candidate feeds for the page, most likely
// first, deduplicated across the whole call including spidering. The
// sequence is lazy: stopping the range stops all further fetching. A timeout
// surfaces as a final ("", ErrTimeout) element.
func (s *Seeker) GenerateFeedURLs(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if s.opts.MaxTime > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.opts.MaxTime)
			defer cancel()
		}

		seen := make(map[string]struct{})
		err := s.discover(ctx, s.root, s.opts.SpiderDepth, seen, func(u string) bool {
			return yield(u, nil)
		})
		switch {
		case err == nil:
		case errors.Is(err, errStopped), errors.Is(err, errLinkBudget):
		default:
			yield("", err)
		}
	}
}

// FindFeedURL returns the single most likely feed URL for the page, or
// ErrNoFeed when discovery produces nothing.
func (s *Seeker) FindFeedURL(ctx context.Context) (string, error) {
	for u, err := range s.GenerateFeedURLs(ctx) {
		if err != nil {
			return "", err
		}
		return u, nil
	}
	return "", ErrNoFeed
}

// discover is the recursive heart of the engine. The seen set is shared by
// every recursion level so spidered branches never re-check a URL; yield
// returning false means the consumer stopped pulling.
func (s *Seeker) discover(ctx context.Context, p *page, depth int, seen map[string]struct{}, yield func(string) bool) error {
	text, err := p.html(ctx)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	doc := p.document()

	// A page that is itself a feed ends its branch.
	if isFeedDocument(doc) {
		if _, ok := seen[p.url]; !ok {
			seen[p.url] = struct{}{}
			if !yield(p.url) {
				return errStopped
			}
		}
		return nil
	}

	base := stripQuery(p.url)

	for _, candidates := range []iter.Seq[string]{
		declaredFeedLinks(doc, base),
		anchorFeedLinks(doc, base),
		guessFeedPaths(base),
	} {
		for candidate := range candidates {
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			if s.opts.MaxLinks > 0 && len(seen) >= s.opts.MaxLinks {
				log.Debug("link budget reached", "max_links", s.opts.MaxLinks)
				return errLinkBudget
			}

			cp := newPage(candidate, "", s.fetcher)
			ctext, err := cp.html(ctx)
			if err != nil {
				return err
			}
			if ctext == "" {
				continue
			}
			if isFeedDocument(cp.document()) {
				log.Debug("confirmed feed", "url", candidate)
				if !yield(candidate) {
					return errStopped
				}
			}
		}
	}

	if depth > 0 {
		for _, link := range rankedInternalLinks(doc, base) {
			log.Debug("spidering", "url", link, "depth", depth)
			if err := s.discover(ctx, newPage(link, "", s.fetcher), depth-1, seen, yield); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindFeedURL is shorthand for New(pageURL, opts).FindFeedURL(ctx).
func FindFeedURL(ctx context.Context, pageURL string, opts Options) (string, error) {
	return New(pageURL, opts).FindFeedURL(ctx)
}

// GenerateFeedURLs is shorthand for New(pageURL, opts).GenerateFeedURLs(ctx).
func GenerateFeedURLs(ctx context.Context, pageURL string, opts Options) iter.Seq2[string, error] {
	return New(pageURL, opts).GenerateFeedURLs(ctx)
}

// page is one URL under investigation, with its text and parsed document
// fetched at most once. Pages are never shared between discovery calls.
type page struct {
	url     string
	text    string
	fetched bool
	doc     *htmldoc.Document
	fetcher fetch.Fetcher
}

func newPage(url, html string, fetcher fetch.Fetcher) *page {
	p := &page{url: url, fetcher: fetcher}
	if html != "" {
		p.text = html
		p.fetched = true
	}
	return p
}

// html returns the page text, fetching it on first use. The deadline check
// lives here so it runs exactly at the suspension points: right after a
// blocking fetch returns.
func (p *page) html(ctx context.Context) (string, error) {
	if !p.fetched {
		p.text = p.fetcher.Fetch(ctx, p.url)
		p.fetched = true
		if err := checkDeadline(ctx); err != nil {
			return "", err
		}
	}
	return p.text, nil
}

// document parses the page text on first use. Call after html.
func (p *page) document() *htmldoc.Document {
	if p.doc == nil {
		p.doc = htmldoc.Parse(p.text)
	}
	return p.doc
}

func checkDeadline(ctx context.Context) error {
	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ctx.Err()
	default:
		return nil
	}
}

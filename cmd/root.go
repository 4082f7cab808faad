package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/julienpequegnot/feedseek/internal/config"
	"github.com/julienpequegnot/feedseek/internal/database"
	"github.com/julienpequegnot/feedseek/internal/fetch"
	"github.com/julienpequegnot/feedseek/internal/seeker"
	"github.com/julienpequegnot/feedseek/internal/source"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "feedseek",
	Short: "Find the most likely feed URL for a webpage",
	Long: `Feedseek discovers RSS/Atom/RDF feeds for a webpage by scanning its
declared feed links, feed-looking anchors and common feed paths, optionally
spidering same-host links or querying the Feedly search API instead.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// normalizeURL makes sure a user-supplied URL has a scheme.
func normalizeURL(raw string) (string, error) {
	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}
	if _, err := url.Parse(raw); err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	return raw, nil
}

func newFetcher(cfg *config.Config) fetch.Fetcher {
	return fetch.NewHTTPFetcher(fetch.Options{
		UserAgent:    cfg.Fetch.UserAgent,
		Timeout:      cfg.Fetch.Timeout(),
		MaxBodyBytes: int64(cfg.Fetch.MaxBodyKB) * 1024,
		Retries:      cfg.Fetch.Retries,
	})
}

// discoverOptions builds engine options from config, with explicitly set
// flags taking precedence.
func discoverOptions(cmd *cobra.Command, cfg *config.Config, html string, spider, maxLinks int, maxTime float64) seeker.Options {
	opts := seeker.Options{
		HTML:        html,
		SpiderDepth: cfg.Discover.Spider,
		MaxLinks:    cfg.Discover.MaxLinks,
		MaxTime:     time.Duration(cfg.Discover.MaxTimeSeconds) * time.Second,
		Fetcher:     newFetcher(cfg),
	}
	if cmd.Flags().Changed("spider") {
		opts.SpiderDepth = spider
	}
	if cmd.Flags().Changed("max-links") {
		opts.MaxLinks = maxLinks
	}
	if cmd.Flags().Changed("max-time") {
		opts.MaxTime = time.Duration(maxTime * float64(time.Second))
	}
	return opts
}

// saveFeeds records discovered feeds, skipping ones already stored.
func saveFeeds(siteURL, via string, feedURLs []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := source.NewRepository(db)
	for _, feedURL := range feedURLs {
		if _, err := repo.GetByFeedURL(feedURL); err == nil {
			continue
		}
		if _, err := repo.Add(siteURL, feedURL, "", via); err != nil {
			return err
		}
	}
	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/feedseek/internal/config"
	"github.com/julienpequegnot/feedseek/internal/feedmeta"
	"github.com/julienpequegnot/feedseek/internal/seeker"
	"github.com/julienpequegnot/feedseek/internal/source"
)

var findCmd = &cobra.Command{
	Use:   "find <url>",
	Short: "Find the single most likely feed for a page",
	Long:  `Checks the page's declared feed links, feed-looking anchors and common feed paths, and prints the first confirmed feed URL.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

var (
	findHTML     string
	findSpider   int
	findMaxTime  float64
	findMaxLinks int
	findSave     bool
	findVerify   bool
)

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringVar(&findHTML, "html", "", "Raw page HTML, to save the initial fetch")
	findCmd.Flags().IntVar(&findSpider, "spider", 0, "How many times to recurse into same-host links")
	findCmd.Flags().Float64Var(&findMaxTime, "max-time", 0, "Give up after this many seconds")
	findCmd.Flags().IntVar(&findMaxLinks, "max-links", 0, "Maximum links to check as feeds")
	findCmd.Flags().BoolVar(&findSave, "save", false, "Record the feed in the local store")
	findCmd.Flags().BoolVar(&findVerify, "verify", false, "Parse the feed and print its title")
}

func runFind(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pageURL, err := normalizeURL(args[0])
	if err != nil {
		return err
	}

	opts := discoverOptions(cmd, cfg, findHTML, findSpider, findMaxLinks, findMaxTime)
	feedURL, err := seeker.FindFeedURL(cmd.Context(), pageURL, opts)
	if errors.Is(err, seeker.ErrNoFeed) {
		fmt.Fprintln(os.Stderr, "No feed found")
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	fmt.Println(feedURL)

	if findVerify {
		checker := feedmeta.NewChecker(cfg.Fetch.Timeout())
		info, err := checker.Describe(cmd.Context(), feedURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: feed did not parse: %v\n", err)
		} else {
			fmt.Printf("  %s (%s, %d items)\n", info.Title, info.Type, info.Items)
		}
	}

	if findSave {
		if err := saveFeeds(pageURL, source.ViaScan, []string{feedURL}); err != nil {
			return fmt.Errorf("failed to save feed: %w", err)
		}
	}

	return nil
}

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/feedseek/internal/config"
	"github.com/julienpequegnot/feedseek/internal/feedly"
	"github.com/julienpequegnot/feedseek/internal/source"
)

var searchCmd = &cobra.Command{
	Use:   "search <domain-or-url>",
	Short: "Find feeds via the Feedly search API",
	Long: `Queries the Feedly cloud search API by domain instead of scanning page
HTML. Useful for sites whose pages do not declare their feeds.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var (
	searchCount    int
	searchThrottle float64
	searchSave     bool
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchCount, "count", 0, "Results requested per query")
	searchCmd.Flags().Float64Var(&searchThrottle, "throttle", 0, "Seconds to pause between queries")
	searchCmd.Flags().BoolVar(&searchSave, "save", false, "Record discovered feeds in the local store")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := feedly.Options{
		Endpoint: cfg.Feedly.Endpoint,
		Count:    cfg.Feedly.Count,
		Throttle: time.Duration(cfg.Feedly.ThrottleSeconds) * time.Second,
	}
	if cmd.Flags().Changed("count") {
		opts.Count = searchCount
	}
	if cmd.Flags().Changed("throttle") {
		opts.Throttle = time.Duration(searchThrottle * float64(time.Second))
	}

	client := feedly.NewClient(opts)

	var found []string
	for feedURL, err := range client.Search(cmd.Context(), args[0]) {
		if err != nil {
			return err
		}
		fmt.Println(feedURL)
		found = append(found, feedURL)
	}

	if len(found) == 0 {
		fmt.Fprintln(os.Stderr, "No feed found")
		os.Exit(1)
	}

	if searchSave {
		siteURL, err := normalizeURL(args[0])
		if err != nil {
			return err
		}
		if err := saveFeeds(siteURL, source.ViaSearch, found); err != nil {
			return fmt.Errorf("failed to save feeds: %w", err)
		}
	}

	return nil
}

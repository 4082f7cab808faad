package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/feedseek/internal/config"
	"github.com/julienpequegnot/feedseek/internal/seeker"
	"github.com/julienpequegnot/feedseek/internal/source"
)

var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Find all candidate feeds for a page",
	Long: `Prints every confirmed feed URL for the page as it is discovered,
most likely first. On timeout, URLs already printed remain valid.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

var (
	scanHTML     string
	scanSpider   int
	scanMaxTime  float64
	scanMaxLinks int
	scanSave     bool
)

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanHTML, "html", "", "Raw page HTML, to save the initial fetch")
	scanCmd.Flags().IntVar(&scanSpider, "spider", 0, "How many times to recurse into same-host links")
	scanCmd.Flags().Float64Var(&scanMaxTime, "max-time", 0, "Give up after this many seconds")
	scanCmd.Flags().IntVar(&scanMaxLinks, "max-links", 0, "Maximum links to check as feeds")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "Record discovered feeds in the local store")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pageURL, err := normalizeURL(args[0])
	if err != nil {
		return err
	}

	opts := discoverOptions(cmd, cfg, scanHTML, scanSpider, scanMaxLinks, scanMaxTime)

	var found []string
	for feedURL, err := range seeker.GenerateFeedURLs(cmd.Context(), pageURL, opts) {
		if err != nil {
			if errors.Is(err, seeker.ErrTimeout) && len(found) > 0 {
				fmt.Fprintln(os.Stderr, "Timed out; results above are partial")
				break
			}
			return err
		}
		fmt.Println(feedURL)
		found = append(found, feedURL)
	}

	if len(found) == 0 {
		fmt.Fprintln(os.Stderr, "No feed found")
		os.Exit(1)
	}

	if scanSave {
		if err := saveFeeds(pageURL, source.ViaScan, found); err != nil {
			return fmt.Errorf("failed to save feeds: %w", err)
		}
	}

	return nil
}

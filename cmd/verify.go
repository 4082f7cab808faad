package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/feedseek/internal/config"
	"github.com/julienpequegnot/feedseek/internal/feedmeta"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <feed-url>",
	Short: "Parse a feed URL and print what it serves",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	feedURL, err := normalizeURL(args[0])
	if err != nil {
		return err
	}

	checker := feedmeta.NewChecker(cfg.Fetch.Timeout())
	info, err := checker.Describe(cmd.Context(), feedURL)
	if err != nil {
		return err
	}

	title := info.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("Title: %s\n", title)
	fmt.Printf("Type:  %s\n", info.Type)
	fmt.Printf("Items: %d\n", info.Items)

	return nil
}

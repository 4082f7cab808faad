package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/feedseek/internal/config"
	"github.com/julienpequegnot/feedseek/internal/database"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize feedseek configuration and database",
	Long:  `Creates the ~/.feedseek directory with config.yaml and SQLite database.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s/feedseek.db\n", dir)

	fmt.Println("\nFeedseek initialized! Next steps:")
	fmt.Println("  feedseek find <url>           Find a page's feed")
	fmt.Println("  feedseek scan <url> --spider 1   Find every feed on a site")

	return nil
}

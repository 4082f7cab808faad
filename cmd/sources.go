// cmd/sources.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/julienpequegnot/feedseek/internal/config"
	"github.com/julienpequegnot/feedseek/internal/database"
	"github.com/julienpequegnot/feedseek/internal/source"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List feeds saved in the local store",
	Long:  `Display every feed recorded with --save, grouped by site.`,
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := source.NewRepository(db)
	feeds, err := repo.List()
	if err != nil {
		return err
	}

	if len(feeds) == 0 {
		fmt.Println("No saved feeds. Discover some with 'feedseek find <url> --save'")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	viaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	urlStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-4s  %-6s  %-30s  %s", "ID", "VIA", "SITE", "FEED URL")))
	fmt.Println(strings.Repeat("─", 100))

	for _, f := range feeds {
		site := f.SiteURL
		if len(site) > 30 {
			site = site[:27] + "..."
		}

		fmt.Printf(" %s  %s  %-30s  %s\n",
			idStyle.Render(fmt.Sprintf("%-4d", f.ID)),
			viaStyle.Render(fmt.Sprintf("%-6s", f.DiscoveredVia)),
			site,
			urlStyle.Render(f.FeedURL),
		)
	}

	return nil
}

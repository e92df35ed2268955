package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show request and reconciliation history",
	Long: `Show recent play requests and watched-state reconciliations.

Examples:
  helparr history                 # Last 50 of each
  helparr history --tmdb-id 603   # Requests for one item
  helparr history --status error  # Failed requests only`,
	Args: cobra.NoArgs,
	RunE: runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int64("tmdb-id", 0, "Filter requests by TMDB ID")
	historyCmd.Flags().String("status", "", "Filter requests by status")
	historyCmd.Flags().Int("limit", 50, "Maximum entries per list")
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var tmdbID *int64
	if cmd.Flags().Changed("tmdb-id") {
		id, _ := cmd.Flags().GetInt64("tmdb-id")
		tmdbID = &id
	}
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")

	client := NewClient(serverURL)
	hist, err := client.History(tmdbID, status, limit)
	if err != nil {
		return fmt.Errorf("history failed: %w", err)
	}

	if jsonOutput {
		printJSON(hist)
		return nil
	}

	fmt.Printf("Requests (%d):\n", len(hist.Requests))
	if len(hist.Requests) == 0 {
		fmt.Println("  none")
	}
	for _, r := range hist.Requests {
		fmt.Printf("  #%-4d %s  %s %s%s  [%s] %s\n",
			r.ID, r.CreatedAt, r.MediaType, strconv.FormatInt(r.TMDBID, 10),
			episodeSuffix(r.Season, r.Episode), r.Status, r.Message)
	}

	fmt.Printf("\nReconciliations (%d):\n", len(hist.Reconciliations))
	if len(hist.Reconciliations) == 0 {
		fmt.Println("  none")
	}
	for _, r := range hist.Reconciliations {
		matched := "library miss"
		if r.MatchedLibrary {
			matched = "library match"
		}
		fmt.Printf("  #%-4d %s  %s %s%s  %s\n",
			r.ID, r.CreatedAt, r.MediaType, strconv.FormatInt(r.TMDBID, 10),
			episodeSuffix(r.Season, r.Episode), matched)
	}
	return nil
}

func episodeSuffix(season, episode *int) string {
	if season == nil || episode == nil {
		return ""
	}
	return fmt.Sprintf(" S%02dE%02d", *season, *episode)
}

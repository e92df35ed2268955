package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <tmdb-id>",
	Short: "Request an item and start placeholder playback",
	Long: `Resolve a TMDB item against Radarr/Sonarr and, when it is pending,
start the placeholder stream on the player host.

Examples:
  helparr play 603                       # Request a movie
  helparr play 1396 --type tv            # Request a whole series
  helparr play 1396 --type episode --season 2 --episode 5`,
	Args: cobra.ExactArgs(1),
	RunE: runPlayCmd,
}

var testPlayCmd = &cobra.Command{
	Use:   "test-play",
	Short: "Play a placeholder clip without a session",
	Long: `Start a placeholder clip on the player host without arming the
watcher. Useful for checking the video directory and the player
connection.`,
	Args: cobra.NoArgs,
	RunE: runTestPlayCmd,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(testPlayCmd)
	playCmd.Flags().String("type", "movie", "Media type: movie, tv, or episode")
	playCmd.Flags().Int("season", 0, "Season number (with --episode)")
	playCmd.Flags().Int("episode", 0, "Episode number (with --season)")
}

func runPlayCmd(cmd *cobra.Command, args []string) error {
	tmdbID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid TMDB ID: %s", args[0])
	}

	mediaType, _ := cmd.Flags().GetString("type")
	req := PlayRequest{TMDBID: tmdbID, Type: mediaType}
	if cmd.Flags().Changed("season") {
		season, _ := cmd.Flags().GetInt("season")
		req.Season = &season
	}
	if cmd.Flags().Changed("episode") {
		episode, _ := cmd.Flags().GetInt("episode")
		req.Episode = &episode
	}

	client := NewClient(serverURL)
	resp, err := client.Play(req)
	if err != nil {
		return fmt.Errorf("play failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	if resp.Title != "" {
		fmt.Printf("%s [%s]\n", resp.Title, resp.Status)
	} else {
		fmt.Printf("[%s]\n", resp.Status)
	}
	fmt.Println(resp.Message)
	if resp.Played {
		fmt.Println("Placeholder playback started.")
	}
	return nil
}

func runTestPlayCmd(_ *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	if err := client.TestPlay(); err != nil {
		return fmt.Errorf("test play failed: %w", err)
	}
	fmt.Println("Placeholder playback started.")
	return nil
}

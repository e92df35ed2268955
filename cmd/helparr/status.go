package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Daemon health and version",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show the active placeholder session",
	Args:  cobra.NoArgs,
	RunE:  runSessionCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runStatusCmd(_ *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(status)
		return nil
	}

	fmt.Printf("Server:  %s\n", serverURL)
	fmt.Printf("Status:  %s\n", status.Status)
	fmt.Printf("Version: %s\n", status.Version)
	return nil
}

func runSessionCmd(_ *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	sess, err := client.Session()
	if err != nil {
		return fmt.Errorf("session check failed: %w", err)
	}

	if jsonOutput {
		printJSON(sess)
		return nil
	}

	if !sess.Active {
		fmt.Println("No active session.")
		return nil
	}

	fmt.Printf("TMDB ID: %d\n", sess.TMDBID)
	fmt.Printf("Kind:    %s\n", sess.Kind)
	if sess.Season != nil && sess.Episode != nil {
		fmt.Printf("Episode: S%02dE%02d\n", *sess.Season, *sess.Episode)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/helparr/helparr/internal/playback"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Manage the TMDb Helper player definition",
}

var playerInstallCmd = &cobra.Command{
	Use:   "install <players-dir>",
	Short: "Install the player file into TMDb Helper's players directory",
	Long: `Write the player definition into TMDb Helper's players directory so
helper-initiated plays are routed to the daemon.

Example:
  helparr player install ~/.kodi/userdata/addon_data/plugin.video.themoviedb.helper/players`,
	Args: cobra.ExactArgs(1),
	RunE: runPlayerInstallCmd,
}

var playerUninstallCmd = &cobra.Command{
	Use:   "uninstall <players-dir>",
	Short: "Remove the player file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerUninstallCmd,
}

func init() {
	rootCmd.AddCommand(playerCmd)
	playerCmd.AddCommand(playerInstallCmd)
	playerCmd.AddCommand(playerUninstallCmd)
}

func runPlayerInstallCmd(_ *cobra.Command, args []string) error {
	installer := playback.NewInstaller(args[0], serverURL)
	if err := installer.Install(); err != nil {
		return fmt.Errorf("install failed: %w", err)
	}
	fmt.Printf("Installed %s\n", filepath.Join(args[0], playback.PlayerFileName))
	return nil
}

func runPlayerUninstallCmd(_ *cobra.Command, args []string) error {
	installer := playback.NewInstaller(args[0], serverURL)
	if err := installer.Uninstall(); err != nil {
		if errors.Is(err, playback.ErrNotInstalled) {
			fmt.Println("Player is not installed.")
			return nil
		}
		return fmt.Errorf("uninstall failed: %w", err)
	}
	fmt.Println("Player removed.")
	return nil
}

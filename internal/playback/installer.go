package playback

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PlayerFileName is the player definition file installed for TMDb Helper.
const PlayerFileName = "helparr.json"

// ErrNotInstalled is returned by Uninstall when no player file is present.
var ErrNotInstalled = errors.New("player not installed")

// playerTemplate is the TMDb Helper player definition. The __SERVER__ marker
// is replaced with the daemon's base URL so helper-initiated plays land on
// the play endpoint.
const playerTemplate = `{
    "name": "Helparr",
    "priority": 200,
    "is_resolvable": "false",
    "play_movie": "__SERVER__/api/v1/play?tmdb_id={tmdb_id}&type=movie",
    "play_episode": "__SERVER__/api/v1/play?tmdb_id={tmdb_id}&type=episode&season={season}&episode={episode}"
}
`

// Installer manages the player definition inside TMDb Helper's players
// directory.
type Installer struct {
	playersDir string
	serverURL  string
}

// NewInstaller creates an installer writing into playersDir, with play URLs
// pointing at serverURL.
func NewInstaller(playersDir, serverURL string) *Installer {
	return &Installer{
		playersDir: playersDir,
		serverURL:  strings.TrimSuffix(serverURL, "/"),
	}
}

func (i *Installer) path() string {
	return filepath.Join(i.playersDir, PlayerFileName)
}

func (i *Installer) render() []byte {
	return []byte(strings.ReplaceAll(playerTemplate, "__SERVER__", i.serverURL))
}

// Install writes the player definition, skipping the write when the
// installed file already matches.
func (i *Installer) Install() error {
	content := i.render()

	if existing, err := os.ReadFile(i.path()); err == nil && bytes.Equal(existing, content) {
		return nil
	}

	if err := os.MkdirAll(i.playersDir, 0o755); err != nil {
		return fmt.Errorf("create players directory: %w", err)
	}
	if err := os.WriteFile(i.path(), content, 0o644); err != nil {
		return fmt.Errorf("write player file: %w", err)
	}
	return nil
}

// Uninstall removes the player definition.
func (i *Installer) Uninstall() error {
	if _, err := os.Stat(i.path()); os.IsNotExist(err) {
		return ErrNotInstalled
	}
	if err := os.Remove(i.path()); err != nil {
		return fmt.Errorf("remove player file: %w", err)
	}
	return nil
}

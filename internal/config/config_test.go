package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[radarr]
url = "http://localhost:7878"
api_key = "key"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8591, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Kodi.URL)
	assert.Equal(t, time.Second, cfg.Watcher.PollInterval)
	assert.Equal(t, 2*time.Second, cfg.Watcher.SettleDelay)
	assert.Equal(t, "./data/helparr.db", cfg.Database.Path)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
host = "0.0.0.0"
port = 9000
log_level = "debug"

[radarr]
url = "http://radarr:7878"
api_key = "radarr-key"

[sonarr]
url = "http://sonarr:8989"
api_key = "sonarr-key"

[kodi]
url = "http://htpc:8080"
username = "kodi"
password = "secret"

[watcher]
poll_interval = "500ms"
settle_delay = "3s"

[player]
video_dir = "/video"
players_dir = "/players"

[database]
path = "/var/lib/helparr/helparr.db"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "http://radarr:7878", cfg.Radarr.URL)
	assert.Equal(t, "sonarr-key", cfg.Sonarr.APIKey)
	assert.Equal(t, "kodi", cfg.Kodi.Username)
	assert.Equal(t, 500*time.Millisecond, cfg.Watcher.PollInterval)
	assert.Equal(t, 3*time.Second, cfg.Watcher.SettleDelay)
	assert.Equal(t, "/video", cfg.Player.VideoDir)
	assert.Equal(t, "/var/lib/helparr/helparr.db", cfg.Database.Path)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("HELPARR_TEST_KEY", "secret-key")

	path := writeConfig(t, `
[radarr]
url = "http://localhost:7878"
api_key = "${HELPARR_TEST_KEY}"

[sonarr]
url = "http://localhost:8989"
api_key = "${HELPARR_UNSET_KEY}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "secret-key", cfg.Radarr.APIKey)
	// Unset variables are left as-is
	assert.Equal(t, "${HELPARR_UNSET_KEY}", cfg.Sonarr.APIKey)
}

func TestLoad_EnsureScheme(t *testing.T) {
	path := writeConfig(t, `
[radarr]
url = "localhost:7878"
api_key = "key"

[sonarr]
url = "https://sonarr.example.com"
api_key = "key"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7878", cfg.Radarr.URL)
	assert.Equal(t, "https://sonarr.example.com", cfg.Sonarr.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	assert.Error(t, err)
}

func TestValidate_Valid(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8591, LogLevel: "info"},
		Radarr: ArrConfig{URL: "http://localhost:7878", APIKey: "key"},
	}
	assert.Empty(t, cfg.Validate())
}

func TestValidate_NoService(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 8591}}

	errs := cfg.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at least one management service")
}

func TestValidate_APIKeyRequired(t *testing.T) {
	cfg := &Config{
		Radarr: ArrConfig{URL: "http://localhost:7878"},
		Sonarr: ArrConfig{URL: "http://localhost:8989"},
	}

	errs := cfg.Validate()
	assert.Contains(t, errs, "radarr.api_key: required when radarr.url is set")
	assert.Contains(t, errs, "sonarr.api_key: required when sonarr.url is set")
}

func TestValidate_BadPortAndLevel(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 70000, LogLevel: "verbose"},
		Radarr: ArrConfig{URL: "http://localhost:7878", APIKey: "key"},
	}

	errs := cfg.Validate()
	assert.Len(t, errs, 2)
}

func TestValidate_WatcherIntervals(t *testing.T) {
	cfg := &Config{
		Radarr:  ArrConfig{URL: "http://localhost:7878", APIKey: "key"},
		Watcher: WatcherConfig{PollInterval: -time.Second, SettleDelay: -time.Second},
	}

	errs := cfg.Validate()
	assert.Contains(t, errs, "watcher.poll_interval: must not be negative")
	assert.Contains(t, errs, "watcher.settle_delay: must not be negative")

	// Zero means "use the default applied at load time", not an error.
	cfg.Watcher = WatcherConfig{}
	assert.Empty(t, cfg.Validate())
}

func TestValidate_MissingVideoDirIsWarning(t *testing.T) {
	cfg := &Config{
		Radarr: ArrConfig{URL: "http://localhost:7878", APIKey: "key"},
		Player: PlayerConfig{VideoDir: "/nonexistent/video"},
	}

	errs := cfg.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "warning:")
}

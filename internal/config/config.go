// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Radarr   ArrConfig      `toml:"radarr"`
	Sonarr   ArrConfig      `toml:"sonarr"`
	Kodi     KodiConfig     `toml:"kodi"`
	Watcher  WatcherConfig  `toml:"watcher"`
	Player   PlayerConfig   `toml:"player"`
	Database DatabaseConfig `toml:"database"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// ArrConfig holds the connection settings for one management service
// (Radarr or Sonarr).
type ArrConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

type KodiConfig struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type WatcherConfig struct {
	PollInterval time.Duration `toml:"poll_interval"`
	SettleDelay  time.Duration `toml:"settle_delay"`
}

type PlayerConfig struct {
	VideoDir   string `toml:"video_dir"`
	PlayersDir string `toml:"players_dir"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8591
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Kodi.URL == "" {
		cfg.Kodi.URL = "http://127.0.0.1:8080"
	}
	if cfg.Watcher.PollInterval == 0 {
		cfg.Watcher.PollInterval = time.Second
	}
	if cfg.Watcher.SettleDelay == 0 {
		cfg.Watcher.SettleDelay = 2 * time.Second
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/helparr.db"
	}

	// The services accept bare host:port; normalize to an http URL.
	cfg.Radarr.URL = ensureScheme(cfg.Radarr.URL)
	cfg.Sonarr.URL = ensureScheme(cfg.Sonarr.URL)
	cfg.Kodi.URL = ensureScheme(cfg.Kodi.URL)

	return &cfg, nil
}

func ensureScheme(u string) string {
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "http://" + u
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}

package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// At least one management service required
	if c.Radarr.URL == "" && c.Sonarr.URL == "" {
		errs = append(errs, "radarr/sonarr: at least one management service must be configured")
	}

	// URL and API key travel together
	if c.Radarr.URL != "" && c.Radarr.APIKey == "" {
		errs = append(errs, "radarr.api_key: required when radarr.url is set")
	}
	if c.Sonarr.URL != "" && c.Sonarr.APIKey == "" {
		errs = append(errs, "sonarr.api_key: required when sonarr.url is set")
	}

	if c.Watcher.PollInterval < 0 {
		errs = append(errs, "watcher.poll_interval: must not be negative")
	}
	if c.Watcher.SettleDelay < 0 {
		errs = append(errs, "watcher.settle_delay: must not be negative")
	}

	// Placeholder video directory warning (non-fatal at load time; the play
	// path reports a proper error when no clip is found)
	if c.Player.VideoDir != "" {
		if _, err := os.Stat(c.Player.VideoDir); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("player.video_dir: warning: directory %q does not exist", c.Player.VideoDir))
		}
	}

	return errs
}

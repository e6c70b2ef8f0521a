package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	KeybindingsPath string
	LogPath         string
	DBPath          string
	UTC             bool
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		KeybindingsPath: os.Getenv("REDSAVED_CONFIG"),
		LogPath:         os.Getenv("REDSAVED_LOG_FILE"),
		DBPath:          os.Getenv("REDSAVED_DB_PATH"),
	}

	if raw := strings.TrimSpace(os.Getenv("REDSAVED_UTC")); raw != "" {
		utc, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("REDSAVED_UTC must be a boolean: %q", raw)
		}
		cfg.UTC = utc
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.KeybindingsPath != "" && !supportedExtension(c.KeybindingsPath) {
		return fmt.Errorf("keybindings file must be .yaml, .yml, .toml or .json: %s", c.KeybindingsPath)
	}
	if c.LogPath != "" && strings.HasSuffix(c.LogPath, string(filepath.Separator)) {
		return fmt.Errorf("log path must be a file: %s", c.LogPath)
	}
	return nil
}

func supportedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml", ".json":
		return true
	}
	return false
}

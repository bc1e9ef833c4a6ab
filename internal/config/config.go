// Package config loads the optional mkicns configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	AppDirName = "mkicns"
	FileName   = "mkicns-config.json"

	// DefaultIconsDir is where the iconset and bundle land when no
	// directory is configured.
	DefaultIconsDir = "assets/icons"
	// DefaultName is the bundle base name (app.iconset / app.icns).
	DefaultName = "app"
	// DefaultColor is the placeholder accent color (cyan).
	DefaultColor = "#06b6d4"
)

// Config holds all run parameters. Every field has a default; a
// missing config file is not an error since the tool needs no inputs.
type Config struct {
	IconsDir     string `json:"icons_dir,omitempty"`
	Name         string `json:"name,omitempty"`
	Color        string `json:"color,omitempty"`
	OnImageError string `json:"on_image_error,omitempty"` // "continue" | "abort"
	Bundler      string `json:"bundler,omitempty"`        // "iconutil" | "native"
	Log          bool   `json:"log,omitempty"`
	LogFormat    string `json:"log_format,omitempty"` // "text" | "sqlite"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		IconsDir:     DefaultIconsDir,
		Name:         DefaultName,
		Color:        DefaultColor,
		OnImageError: "continue",
		Bundler:      "iconutil",
		LogFormat:    "text",
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Validate checks the enum-valued fields.
func (c Config) Validate() error {
	switch c.OnImageError {
	case "continue", "abort":
	default:
		return fmt.Errorf("on_image_error must be %q or %q, got %q", "continue", "abort", c.OnImageError)
	}
	switch c.Bundler {
	case "iconutil", "native":
	default:
		return fmt.Errorf("bundler must be %q or %q, got %q", "iconutil", "native", c.Bundler)
	}
	switch c.LogFormat {
	case "text", "sqlite":
	default:
		return fmt.Errorf("log_format must be %q or %q, got %q", "text", "sqlite", c.LogFormat)
	}
	return nil
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty; a missing file is then an error)
//  2. mkicns-config.json next to the running binary
//  3. ~/.config/mkicns/mkicns-config.json (%APPDATA%\mkicns on Windows)
//
// If no file exists, the defaults are returned.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), FileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	if p := userConfigPath(); p != "" {
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	return Default(), nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(home, "AppData", "Roaming", AppDirName, FileName)
	}
	return filepath.Join(home, ".config", AppDirName, FileName)
}

// DataDir returns the platform-specific data directory for mkicns,
// used for the run log:
//   - Windows: %APPDATA%\mkicns
//   - Unix:    ~/.config/mkicns
//
// Falls back to os.TempDir()/mkicns if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Package config provides configuration parsing for hello.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config represents the greeter configuration.
type Config struct {
	// Name is used in the greeting line.
	Name string `json:"name" yaml:"name" toml:"name"`
	// Hostname overrides the user@host frame title when set.
	Hostname string `json:"hostname" yaml:"hostname" toml:"hostname"`

	// Location, Units, Lang and APIKey are passed to OpenWeatherMap.
	Location string `json:"location" yaml:"location" toml:"location"`
	Units    string `json:"units" yaml:"units" toml:"units"`
	Lang     string `json:"lang" yaml:"lang" toml:"lang"`
	APIKey   string `json:"api_key" yaml:"api_key" toml:"api_key"`

	// TimeFormat is "12h" or "24h"; anything else hides the time.
	TimeFormat string `json:"time_format" yaml:"time_format" toml:"time_format"`

	// Song toggles the now-playing line. Absent means enabled.
	Song *bool `json:"song" yaml:"song" toml:"song"`

	// PackageManagers lists the managers to query. Empty disables the
	// update and package lines.
	PackageManagers PackageManagers `json:"package_managers" yaml:"package_managers" toml:"package_managers"`
}

// SongEnabled reports whether the now-playing line should be shown.
func (c *Config) SongEnabled() bool {
	return c.Song == nil || *c.Song
}

// Op names the stage at which loading failed.
type Op string

const (
	OpRead     Op = "read"
	OpParse    Op = "parse"
	OpValidate Op = "validate"
)

// Error is returned by Load for every failure.
type Error struct {
	Op   Op
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// DefaultPath returns $XDG_CONFIG_HOME/hello/config.json, falling back to
// ~/.config/hello/config.json.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "hello", "config.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hello", "config.json")
}

// Load reads, decodes and validates the configuration at path. An empty
// path means DefaultPath. The decoder is chosen by file extension: .yaml
// and .yml use YAML, .toml uses TOML, anything else is JSON.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: OpRead, Path: path, Err: err}
	}

	cfg, err := Parse(data, Format(path))
	if err != nil {
		return nil, &Error{Op: OpParse, Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &Error{Op: OpValidate, Path: path, Err: err}
	}

	return cfg, nil
}

// Format returns the decoder name for path: "yaml", "toml" or "json".
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

// Parse decodes data in the given format without validating it.
func Parse(data []byte, format string) (*Config, error) {
	cfg := &Config{}

	var err error
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	case "toml":
		_, err = toml.Decode(string(data), cfg)
	case "json":
		err = json.Unmarshal(data, cfg)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required key is present.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"name", c.Name},
		{"location", c.Location},
		{"units", c.Units},
		{"lang", c.Lang},
		{"api_key", c.APIKey},
		{"time_format", c.TimeFormat},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required keys: %s", strings.Join(missing, ", "))
	}

	for i, m := range c.PackageManagers {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("package_managers[%d] is empty", i)
		}
	}

	return nil
}

// Package config loads copycheck configuration from a YAML file with
// documented defaults. Lookup order: .copycheck.yaml in the working
// directory, then in the user's home directory; a missing file just
// yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the configuration file name searched for in cwd and $HOME.
const File = ".copycheck.yaml"

// Config is the effective tool configuration.
type Config struct {
	// FrameSize is the minimum run of consecutive matching words.
	FrameSize int `yaml:"frameSize"`

	// DetectQuotes toggles separate highlighting of quoted matches.
	DetectQuotes bool `yaml:"detectQuotes"`

	// Scheme selects the highlight color scheme: "cmyk" or "rbg".
	Scheme string `yaml:"scheme"`

	// IgnorePhrases lists boilerplate phrases excluded from matching.
	IgnorePhrases []string `yaml:"ignorePhrases"`
}

// Default returns the documented default configuration.
func Default() *Config {
	return &Config{
		FrameSize:    11,
		DetectQuotes: true,
		Scheme:       "cmyk",
	}
}

// Load reads the configuration file at path into the defaults.
// An empty path triggers the cwd-then-home search; no file found is not
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = locate()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges once at the boundary.
func (c *Config) Validate() error {
	if c.FrameSize < 1 {
		return fmt.Errorf("frameSize must be >= 1, got %d", c.FrameSize)
	}
	if c.Scheme != "cmyk" && c.Scheme != "rbg" {
		return fmt.Errorf("scheme must be \"cmyk\" or \"rbg\", got %q", c.Scheme)
	}
	return nil
}

// locate returns the first existing config file path, or "".
func locate() string {
	if _, err := os.Stat(File); err == nil {
		return File
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, File)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Package file loads project configuration from a .markdown-doc.toml file
// in the working directory. The file is optional; every key has a default
// and the tool never writes it back.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the project configuration file looked up in the
// working directory.
const ConfigFileName = ".markdown-doc.toml"

// DefaultIgnoreFileName is the ignore list consulted by TOC operations
// unless the configuration names another file.
const DefaultIgnoreFileName = ".markdown-doc-ignore"

// Config is the parsed project configuration.
type Config struct {
	Toc    TocConfig    `toml:"toc"`
	Ignore IgnoreConfig `toml:"ignore"`
}

// TocConfig customises the TOC block markers.
type TocConfig struct {
	// StartMarker is the line opening the managed block.
	StartMarker string `toml:"start_marker"`

	// EndMarker is the line closing the managed block.
	EndMarker string `toml:"end_marker"`
}

// IgnoreConfig customises the ignore list lookup.
type IgnoreConfig struct {
	// File is the ignore file name, relative to the working directory.
	File string `toml:"file"`
}

// defaults returns the configuration used when no file is present.
func defaults() *Config {
	return &Config{
		Toc: TocConfig{
			StartMarker: "<!-- toc -->",
			EndMarker:   "<!-- tocstop -->",
		},
		Ignore: IgnoreConfig{
			File: DefaultIgnoreFileName,
		},
	}
}

// Load reads the configuration file from dir, falling back to defaults
// for a missing file or missing keys. A malformed file is an error rather
// than a silent fallback.
func Load(dir string) (*Config, error) {
	cfg := defaults()

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// An explicitly empty key falls back rather than disabling the feature.
	if cfg.Toc.StartMarker == "" {
		cfg.Toc.StartMarker = "<!-- toc -->"
	}
	if cfg.Toc.EndMarker == "" {
		cfg.Toc.EndMarker = "<!-- tocstop -->"
	}
	if cfg.Ignore.File == "" {
		cfg.Ignore.File = DefaultIgnoreFileName
	}
	return cfg, nil
}

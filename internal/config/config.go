// Package config loads process configuration for the hnpx tool: a YAML
// project file overridden by HNPX_* environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Filename is the project configuration file looked up next to the
// document.
const Filename = ".hnpx.yml"

// Config holds everything the CLI and the MCP server need at startup.
type Config struct {
	// Document is the path of the HNPX document file.
	Document string `yaml:"document" env:"HNPX_DOCUMENT"`
	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"HNPX_LOG_LEVEL"`
	// Transport selects how the MCP server speaks. Only stdio for now.
	Transport string `yaml:"transport" env:"HNPX_TRANSPORT"`
	// RenderFormat is the default render projection (outline, prose,
	// markdown).
	RenderFormat string `yaml:"render_format" env:"HNPX_RENDER_FORMAT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Document:     "book.hnpx",
		LogLevel:     "info",
		Transport:    "stdio",
		RenderFormat: "outline",
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path if it exists, then environment overrides. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults plus environment only.
	default:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Write serializes cfg to path as YAML. Used by init to seed a project
// file the user can edit.
func (c Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

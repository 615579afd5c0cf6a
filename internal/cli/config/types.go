// Package config provides configuration management for the syndna CLI.
//
// Configuration is layered, highest priority last: built-in defaults, an
// optional syndna.yaml config file, SYNDNA_* environment variables, and
// command-line flags.
package config

import "fmt"

// Config holds all CLI configuration options.
type Config struct {
	// PoolsPath is the pool document to load. Empty means the embedded
	// stock document.
	PoolsPath string `koanf:"pools"`

	// Addr is the listen address for the serve command.
	Addr string `koanf:"addr"`

	// Watch enables document watching and atomic reload in serve.
	Watch bool `koanf:"watch"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultAddr   = ":8609"
	DefaultOutput = "table"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "table", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid output format %q (expected table, json, or yaml)", c.OutputFormat)
	}
}

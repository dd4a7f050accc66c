// Package config loads tool configuration from a .typehash.kdl file with
// CLI flags layered on top. A missing file is not an error: defaults
// apply, and flags can override everything.
package config

import (
	"fmt"
	"runtime"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".typehash.kdl"

// Output formats for hash values.
const (
	FormatHex     = "hex"
	FormatBase63  = "base63"
	FormatDecimal = "decimal"
)

type Config struct {
	Version  int
	Output   Output
	Manifest Manifest
	Workers  int // parallel hash workers for manifest builds; 0 = NumCPU
}

type Output struct {
	Format string // "hex", "base63", or "decimal"
}

type Manifest struct {
	Path        string // default manifest path for build/verify
	Fingerprint bool   // stamp an xxhash64 content fingerprint into manifests
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: 1,
		Output:  Output{Format: FormatHex},
		Manifest: Manifest{
			Path:        "typehash.toml",
			Fingerprint: true,
		},
		Workers: 0,
	}
}

// Validate checks field values, normalizing where a default is implied.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatHex, FormatBase63, FormatDecimal:
	case "":
		c.Output.Format = FormatHex
	default:
		return fmt.Errorf("config: unknown output format %q (want hex, base63, or decimal)", c.Output.Format)
	}

	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be non-negative, got %d", c.Workers)
	}
	if c.Manifest.Path == "" {
		return fmt.Errorf("config: manifest path must not be empty")
	}
	return nil
}

// EffectiveWorkers resolves the worker count, defaulting to NumCPU.
func (c *Config) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

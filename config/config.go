// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Version pins which GFA spec a file or graph is checked against.
// The empty string means "detect from the H line's VN tag, or from
// the record types actually present".
type Version string

// Supported GFA versions.
const (
	VersionAuto Version = ""
	VersionGFA1 Version = "gfa1"
	VersionGFA2 Version = "gfa2"
)

// EditConfig holds the defaults used by the graph-editing operations.
type EditConfig struct {
	// SingleCopyCoverage is the expected coverage of a single-copy segment.
	// The copynumber command takes this value as a positional argument and
	// does not read this field.
	SingleCopyCoverage float64 `mapstructure:"single-copy-coverage"`

	// LowCoverageThreshold is the coverage below which a segment counts as
	// low-coverage. The prune command takes its threshold as a positional
	// argument and does not read this field.
	LowCoverageThreshold float64 `mapstructure:"low-coverage-threshold"`

	// CountTag is the optional tag (RC, KC, or FC) read when computing
	// coverage for pruning and copy-number operations.
	CountTag string `mapstructure:"count-tag"`
}

// Config is the root-level settings struct, filled from GFAPY_*
// environment variables and command-line flags; no config file is read.
type Config struct {
	// Version pins parsing/validation to a specific GFA version.
	// Left empty, the version is auto-detected.
	Version Version `mapstructure:"version"`

	// Validate controls whether records are validated against their
	// positional-field and tag schemas as they're parsed.
	Validate bool `mapstructure:"validate"`

	// Verbose makes the prune command list the segments it deleted on
	// stderr. No other command reads it.
	Verbose bool `mapstructure:"verbose"`

	// Edit holds the defaults used by the graph-editing operations.
	Edit EditConfig `mapstructure:"edit"`
}

// New returns a new Config populated by Viper settings (environment
// variables and/or command line arguments).
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	if c.Edit.SingleCopyCoverage == 0 {
		c.Edit.SingleCopyCoverage = 1.0
	}
	if c.Edit.CountTag == "" {
		c.Edit.CountTag = "RC"
	}

	return c
}

// Package config provides the golfstats settings and their defaults.
// All default values are defined here so there is a single source of truth.
package config

import "github.com/spf13/viper"

// Config file and environment lookup.
const (
	// ConfigName is the config file name without extension.
	ConfigName = ".golfstats"
	ConfigType = "yaml"

	// EnvPrefix prefixes environment overrides, e.g. GOLFSTATS_LOG_LEVEL.
	EnvPrefix = "GOLFSTATS"
)

// Setting defaults.
const (
	DefaultFormat   = "text"
	DefaultColor    = "auto"
	DefaultLogLevel = "warn"
)

// Setting keys.
const (
	KeyFormat   = "format"
	KeyColor    = "color"
	KeyVerbose  = "verbose"
	KeyLogLevel = "log.level"
)

// SetDefaults registers every default on v. Keys must be known to v for
// environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyColor, DefaultColor)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

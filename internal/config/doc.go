// Package config loads wavtrim's layered configuration.
//
// Defaults are overridden by a TOML file (an explicit --config path,
// ./wavtrim.toml or ~/.config/wavtrim/config.toml), then by WAVTRIM_*
// environment variables. The CLI applies flags on top and calls Validate,
// which checks every field against its struct tag and reports problems by
// their config file keys.
//
// Example file:
//
//	[trim]
//	length_ms = 1000
//	min_volume = 0.004
//
//	[output]
//	format = "wav"   # or "aiff"
//	workers = 4
//
//	[logging]
//	level = "info"
//	format = "auto"  # "console", "json"
package config

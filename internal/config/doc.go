// Package config loads, normalizes, and validates handlesort configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file from ~/.config/handlesort or the
// working directory. The Config type centralizes every knob the CLI needs:
// grouping thresholds, the extension allow-list, collision policy, the
// reserved camera-prefix table, and log output settings. Command-line flags
// override file values; the file overrides built-in defaults.
//
// Always obtain settings through this package so downstream code receives
// sanitized extension lists, canonical log formats, and clear validation
// errors.
package config

// Package config loads propctl runtime configuration from multiple sources
// (YAML files, environment variables, CLI flags) with precedence: CLI flags >
// YAML config > Environment variables > Defaults. It selects the properties
// file, its encoding, include limits, substitution flags and logging settings.
package config

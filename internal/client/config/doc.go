// Package config loads runtime settings for the TimeFlux CLI from three
// layered sources: built-in defaults, an optional JSON file (-c/-config),
// and command-line flags. Later sources override earlier ones.
package config

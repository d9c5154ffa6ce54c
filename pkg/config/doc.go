// Package config loads the service configuration.
//
// Sources are applied in order: built-in defaults, an optional YAML file,
// an optional .env file, then environment variables. Each package keeps its
// own Config type; this package only aggregates them.
package config

// Package config holds the runtime configuration for jsonld-cli.
//
// Configuration comes from three layers, later layers winning:
//
//  1. Compiled-in defaults (NewConfig).
//  2. An optional YAML config file (.jsonld-cli), searched for in the
//     current directory and then the user's home directory, or given
//     explicitly via --config.
//  3. Command-line flags.
//
// The Config struct is populated once in the command layer and passed down
// by value reference; nothing in this package or below reads flags or
// environment variables directly.
package config

// Package config provides configuration structures and loaders for devicemodels.
//
// Settings are layered, later sources winning:
//  1. NewConfig defaults
//  2. the YAML config file (see FindConfigFile)
//  3. DEVICEMODELS_* environment variables, optionally from a .env file
//  4. command-line flags, applied by the caller
package config

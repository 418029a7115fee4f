// Package config defines the clockwall settings and provides helpers to
// load, validate and save them in YAML format.
//
// Every field is optional: Validate fills in defaults, so a missing file is
// as good as an empty one. Selected fields can be overridden by CLOCKWALL_*
// environment variables, which the CLI may populate from a .env file.
package config

// Package common holds helpers shared by the clockwall services.
//
// It turns loaded settings into a configured global logger and resolves the
// settings themselves from the YAML file and CLOCKWALL_* environment.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

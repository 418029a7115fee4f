// Package version exposes clockwall build metadata.
//
// Version, Commit and BuildTime are injected at build time via -ldflags "-X".
package version

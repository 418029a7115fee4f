// Package snapshot renders the clock wall for a single instant into an SVG
// or PNG image.
package snapshot

// Package glyph holds the digit glyph table of the clock wall.
//
// A glyph is the hand configuration of a 4x6 grid of analog clock faces that
// together draw one decimal digit. Every hand configuration is built from a
// small set of primitive angle pairs (horizontal, vertical, four corners and
// the diagonal "empty" look). The table is read-only and safe to share.
package glyph

// Package wall drives the clock wall: six glyphs of 24 clock faces each.
//
// A Wall starts in the startup phase, where every face spins to a random
// position, and switches to the running phase after a short delay. While
// running it samples the time on every second boundary, looks up the glyph
// of each digit and turns every face forward to its new position. Frames are
// handed to a Surface, which is responsible for drawing and animating them.
package wall

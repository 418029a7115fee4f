// Package timedigits turns a wall-clock instant into the six digits shown on
// the clock wall and computes when the next second begins.
package timedigits

// Package terminal animates the clock wall in an ANSI terminal.
//
// Every clock face is a 3x3 character cell with a dot in the middle; each
// hand is a line character next to the dot in the direction it points,
// rounded to the nearest 45 degrees. Draw only retargets the hands; Run
// repaints the screen at a fixed frame rate and eases every hand from where
// it is to where the latest frame wants it.
package terminal

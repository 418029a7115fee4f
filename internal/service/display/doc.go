// Package display runs the live clock wall in the terminal.
//
// The wall and the terminal surface run side by side under one errgroup: the
// wall produces a frame per second, the surface eases the hands between
// frames. Cancelling the context tears both down.
package display

// Package face tracks the hand angles of a single analog clock face.
//
// Hands only ever rotate forward: a new target angle is reached from the
// previously rendered angle by the smallest non-negative rotation, so an
// animated hand never rewinds when it crosses the 0/360 boundary.
package face

// Package raster implements the monochrome drawing canvas for the
// device display and all of its drawing primitives.
//
// A Canvas is a fixed-size grid of 8-bit intensity samples where 255 is
// background and 0 is ink. The coordinate system is 0-based with the
// origin at the top-left corner, X increasing rightward and Y downward.
//
// # Copy-on-write
//
// Every drawing operation returns a new Canvas and never mutates its
// receiver. Pipelines processing independent requests can therefore run
// concurrently without sharing mutable state; there is nothing to lock.
//
// # Clipping
//
// Coordinates outside the canvas are silently skipped. Drawing a shape
// that is partially (or entirely) off-canvas paints the in-bounds
// portion and is never an error.
package raster

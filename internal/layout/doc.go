// Package layout holds the geometry value types used by the table layout
// engine: padding, alignment, points, sizes and rectangles.
//
// Coordinates are Y-up with the origin at the bottom-left corner of the
// parent box. Types are re-exported through the root aligntable package for
// public consumption.
package layout

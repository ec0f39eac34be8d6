// Package aligntable provides a two-pass table layout engine for scene-graph
// user interfaces.
//
// A Table holds rows, a Row holds cells, and a Cell holds at most one Box.
// Layout runs in two passes: preferred sizes are computed bottom-up (cells
// ask their children, nested tables recurse), then actual sizes are
// distributed and positions assigned top-down. Cells can fill leftover
// space, keep a fixed size, stay square or keep their aspect ratio. Tables
// nest inside cells and the protocol recurses.
//
// Coordinates are Y-up with the origin at the bottom-left of the parent.
// Every final size and position is truncated to a whole pixel.
//
// The package also carries a small host scene graph (Stage, Window,
// ScrollPane, Widget, Label) so trees can be built and laid out without an
// external renderer.
package aligntable

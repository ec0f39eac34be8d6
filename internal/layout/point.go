package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

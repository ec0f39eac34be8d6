package layout

import "math"

// Truncate drops the fractional part of v, rounding toward zero. Every size
// and position the engine hands to a box passes through here.
func Truncate(v float64) float64 {
	return math.Trunc(v)
}

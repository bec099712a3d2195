// Package measure provides the tolerance, projection, and clustering
// helpers shared by every classification stage.
//
// All approximate comparisons funnel through one named tolerance,
// [Epsilon]. No other tolerance constant appears in the algorithm, so the
// geometry behaves identically at every stage.
package measure

import "math"

// Epsilon is the single tolerance used for all approximate comparisons.
const Epsilon = 1e-9

// TendsToZero reports whether x is indistinguishable from zero
func TendsToZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// ApproxEqual reports whether a and b are indistinguishable
func ApproxEqual(a, b float64) bool {
	return TendsToZero(a - b)
}

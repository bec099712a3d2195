package measure

import (
	"math"

	"github.com/millfab/sectio/model"
)

// safeUnit normalizes v, treating near-zero vectors as failures
func safeUnit(v model.Vector3) (model.Vector3, bool) {
	if TendsToZero(v.Norm()) {
		return model.Vector3{}, false
	}
	return v.Unit()
}

// IsParallel reports whether u and v point along the same line, in either
// direction. Near-zero vectors are parallel to nothing.
func IsParallel(u, v model.Vector3) bool {
	uu, ok := safeUnit(u)
	if !ok {
		return false
	}
	vv, ok := safeUnit(v)
	if !ok {
		return false
	}
	return TendsToZero(math.Abs(uu.Dot(vv)) - 1)
}

// IsPerpendicular reports whether u and v meet at a right angle. Near-zero
// vectors are perpendicular to nothing.
func IsPerpendicular(u, v model.Vector3) bool {
	uu, ok := safeUnit(u)
	if !ok {
		return false
	}
	vv, ok := safeUnit(v)
	if !ok {
		return false
	}
	return TendsToZero(uu.Dot(vv))
}

// Project returns the scalar position of p along the axis line through
// origin. The axis is assumed unit length.
func Project(p, origin model.Point3, axis model.Vector3) float64 {
	return p.Sub(origin).Dot(axis)
}

// RawProject returns the scalar position of p along axis measured from the
// world origin. Only differences of raw projections are meaningful, which
// is all that spans and extents need.
func RawProject(p model.Point3, axis model.Vector3) float64 {
	return model.Vector3(p).Dot(axis)
}

// Canonical returns v with its sign fixed so that the first component
// larger than Epsilon in magnitude is positive. Opposite directions
// canonicalize to the same vector, which keeps results independent of face
// order and of the provider's orientation conventions.
func Canonical(v model.Vector3) model.Vector3 {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if TendsToZero(c) {
			continue
		}
		if c < 0 {
			return v.Neg()
		}
		return v
	}
	return v
}

// LexLess orders vectors component-wise with Epsilon-tolerant comparison.
// It is a deterministic tie-breaker, not a geometric relation.
func LexLess(u, v model.Vector3) bool {
	ua := [3]float64{u.X, u.Y, u.Z}
	va := [3]float64{v.X, v.Y, v.Z}
	for i := 0; i < 3; i++ {
		if ApproxEqual(ua[i], va[i]) {
			continue
		}
		return ua[i] < va[i]
	}
	return false
}

package model

import "gonum.org/v1/gonum/spatial/r3"

// Point3 represents a location in 3-space
type Point3 r3.Vec

// Vector3 represents a direction or displacement in 3-space
type Vector3 r3.Vec

// Sub returns the displacement from other to p
func (p Point3) Sub(other Point3) Vector3 {
	return Vector3(r3.Sub(r3.Vec(p), r3.Vec(other)))
}

// Add returns the point displaced by v
func (p Point3) Add(v Vector3) Point3 {
	return Point3(r3.Add(r3.Vec(p), r3.Vec(v)))
}

// Distance calculates the Euclidean distance to another point
func (p Point3) Distance(other Point3) float64 {
	return r3.Norm(r3.Sub(r3.Vec(p), r3.Vec(other)))
}

// Add returns the vector sum
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3(r3.Add(r3.Vec(v), r3.Vec(other)))
}

// Sub returns the vector difference
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3(r3.Sub(r3.Vec(v), r3.Vec(other)))
}

// Dot returns the dot product with another vector
func (v Vector3) Dot(other Vector3) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(other))
}

// Cross returns the cross product with another vector
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3(r3.Cross(r3.Vec(v), r3.Vec(other)))
}

// Scale returns the vector scaled by f
func (v Vector3) Scale(f float64) Vector3 {
	return Vector3(r3.Scale(f, r3.Vec(v)))
}

// Neg returns the vector pointing the opposite way
func (v Vector3) Neg() Vector3 {
	return v.Scale(-1)
}

// Norm returns the Euclidean length of the vector
func (v Vector3) Norm() float64 {
	return r3.Norm(r3.Vec(v))
}

// Unit returns the unit vector colinear to v. It reports false for the
// zero vector instead of producing NaNs.
func (v Vector3) Unit() (Vector3, bool) {
	n := v.Norm()
	if n == 0 {
		return Vector3{}, false
	}
	return v.Scale(1 / n), true
}

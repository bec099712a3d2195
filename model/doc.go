// Package model provides the geometric vocabulary for profile
// classification.
//
// This package defines the user-facing data structures on both sides of the
// classifier: the boundary representation (B-Rep) input types and the result
// types. All classification operations consume and produce these types,
// making them the primary API for integrating a CAD-side face provider.
//
// # Input Structure
//
// The [FaceSet] type represents one solid body as an unordered collection
// of faces:
//
//	fs := model.NewFaceSet(faces...)
//	if err := fs.Validate(); err != nil {
//		return err
//	}
//
// Each [Face] carries its surface geometry and boundary loops:
//
//   - [Plane] - flat surface with a unit normal
//   - [Cylinder] - cylindrical surface with origin, axis, and radius
//   - [Loop] - ordered edge cycle, either outer boundary or inner void
//   - [Edge] - line or general curve with endpoints and length
//
// Face order within a FaceSet never affects classification.
//
// # Geometry
//
// Geometric primitives are thin wrappers over gonum's spatial/r3 vectors:
//
//   - [Point3] - location with distance and displacement helpers
//   - [Vector3] - direction with dot, cross, and unit operations
//
// # Results
//
// The [ProfileResult] type reports the detected [Shape] family along with
// measured dimensions and advisory [Diagnostic] values. Diagnostics are
// ordinary values, never panics or errors; see [DiagnosticKind] for the
// taxonomy.
package model

// Package profile classifies solid bodies into stock-shape families.
//
// Given the boundary representation of one body as a [model.FaceSet], the
// classifier determines which standard stock shape the body was made from
// (round tube or bar, square tube, rectangular tube, angle, channel) and
// measures its defining dimensions: outer diameter or height/width, wall
// thickness, overall length, the cut length of the section outline, and the
// number of drilled holes.
//
// Classification runs in three stages:
//
//  1. Resolve the extrusion axis and the primary (end-cap) faces.
//  2. Branch on geometry: bodies with a cylindrical face take the round
//     path; bodies with only planar faces take the prismatic path.
//  3. Assemble measurements and diagnostics into a [model.ProfileResult].
//
// The classifier is a pure function of its input. It performs no I/O,
// holds no state between calls, and returns bit-identical results for the
// same input regardless of face order. Inconclusive classification is
// reported through [model.Diagnostic] values on a still-valid result, never
// through errors; the only error return is a structural precondition
// violation in the input.
//
// Basic usage:
//
//	result, err := profile.Classify(faceSet)
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.Shape, result.WallThickness)
package profile

package model

import (
	"fmt"
	"strings"
)

// Shape identifies the stock profile family of a classified body
type Shape int

const (
	// ShapeUnknown means classification could not resolve a family.
	ShapeUnknown Shape = iota
	// ShapeRound covers tubes and solid bars with a circular section.
	ShapeRound
	// ShapeSquare is a closed prismatic section with equal extents.
	ShapeSquare
	// ShapeRectangle is a closed prismatic section with unequal extents.
	ShapeRectangle
	// ShapeAngle is an open L-shaped section.
	ShapeAngle
	// ShapeChannel is an open U-shaped section.
	ShapeChannel
)

// String returns the string representation of the shape
func (s Shape) String() string {
	switch s {
	case ShapeRound:
		return "Round"
	case ShapeSquare:
		return "Square"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeAngle:
		return "Angle"
	case ShapeChannel:
		return "Channel"
	default:
		return "Unknown"
	}
}

// ParseShape maps a display name back to its Shape. Unrecognized names map
// to ShapeUnknown.
func ParseShape(name string) Shape {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "round":
		return ShapeRound
	case "square":
		return ShapeSquare
	case "rectangle":
		return ShapeRectangle
	case "angle":
		return ShapeAngle
	case "channel":
		return ShapeChannel
	default:
		return ShapeUnknown
	}
}

// DiagnosticKind identifies an advisory classification finding
type DiagnosticKind int

const (
	// DiagnosticInsufficientFaces means fewer faces than needed to
	// identify end caps were present; measurements are not valid.
	DiagnosticInsufficientFaces DiagnosticKind = iota
	// DiagnosticNoAxisFound means no cylindrical face and no line edge
	// provided an extrusion axis; axis and length are unset.
	DiagnosticNoAxisFound
	// DiagnosticAmbiguousClassification means the rules did not converge
	// on a family; partial measurements may still be present.
	DiagnosticAmbiguousClassification
	// DiagnosticSolidBar means a round body has no bore; wall thickness
	// holds the outer radius.
	DiagnosticSolidBar
	// DiagnosticThicknessOutOfRange means the wall thickness exceeds the
	// configured ratio of the outer dimension.
	DiagnosticThicknessOutOfRange
)

// String returns the string representation of the diagnostic kind
func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticInsufficientFaces:
		return "InsufficientFaces"
	case DiagnosticNoAxisFound:
		return "NoAxisFound"
	case DiagnosticAmbiguousClassification:
		return "AmbiguousClassification"
	case DiagnosticSolidBar:
		return "SolidBar"
	case DiagnosticThicknessOutOfRange:
		return "ThicknessOutOfRange"
	default:
		return "Unknown"
	}
}

// Diagnostic is an advisory finding attached to a result. Diagnostics are
// values, never errors: a result may carry several and still be usable.
// Messages are built from measurements and counts only, so identical bodies
// produce identical diagnostics regardless of face order.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

// String renders the diagnostic as "Kind: message"
func (d Diagnostic) String() string {
	if d.Message == "" {
		return d.Kind.String()
	}
	return d.Kind.String() + ": " + d.Message
}

// FormatDiagnostics renders diagnostics as a single human-readable line
func FormatDiagnostics(diags []Diagnostic) string {
	if len(diags) == 0 {
		return "no diagnostics"
	}
	parts := make([]string, 0, len(diags))
	for _, d := range diags {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, "; ")
}

// ProfileResult is the complete outcome of classifying one body. Zero
// measurement values mean the dimension was not determined; every valid
// determination is strictly positive.
type ProfileResult struct {
	Shape Shape

	// OuterDiameter is twice the outer cylinder radius. Round only.
	OuterDiameter float64
	// WallThickness is the material thickness between outer and inner
	// walls. For solid round bars it equals the outer radius and a
	// SolidBar diagnostic accompanies it.
	WallThickness float64
	// Height and Width are the prismatic section extents along two
	// derived perpendicular directions. Which extent lands in which
	// field depends on the reference wall, not on face order.
	Height float64
	Width  float64
	// Length is the body extent along Axis.
	Length float64
	// CutLength is the boundary length a cutting operation traverses at
	// the section ends, axis-parallel edges excluded.
	CutLength float64
	// HoleCount counts inner loops that are genuine holes, after the
	// section's own bore or inner wall loops are excluded.
	HoleCount int

	// Axis is the unit extrusion direction with a canonical sign. Zero
	// when no axis was found.
	Axis Vector3
	// StartPoint and EndPoint are the ends of the body on the axis line,
	// with EndPoint = StartPoint + Length*Axis.
	StartPoint Point3
	EndPoint   Point3

	Diagnostics []Diagnostic
}

// HasDiagnostic reports whether a diagnostic of the given kind is present
func (r *ProfileResult) HasDiagnostic(kind DiagnosticKind) bool {
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// Hollow reports whether the body has a measured wall around a void. Solid
// round bars carry a wall thickness too, so the SolidBar diagnostic is the
// distinguishing signal.
func (r *ProfileResult) Hollow() bool {
	return r.WallThickness > 0 && !r.HasDiagnostic(DiagnosticSolidBar)
}

// String renders a one-line summary of the shape and its measurements
func (r *ProfileResult) String() string {
	var b strings.Builder
	b.WriteString(r.Shape.String())
	if r.OuterDiameter > 0 {
		fmt.Fprintf(&b, " OD %g", r.OuterDiameter)
	}
	if r.Height > 0 {
		fmt.Fprintf(&b, " H %g", r.Height)
	}
	if r.Width > 0 {
		fmt.Fprintf(&b, " W %g", r.Width)
	}
	if r.WallThickness > 0 {
		fmt.Fprintf(&b, " wall %g", r.WallThickness)
	}
	if r.Length > 0 {
		fmt.Fprintf(&b, " length %g", r.Length)
	}
	if r.HoleCount > 0 {
		fmt.Fprintf(&b, " holes %d", r.HoleCount)
	}
	return b.String()
}

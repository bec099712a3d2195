package model

import (
	"errors"
	"fmt"
)

// CurveKind identifies the curve type of an edge
type CurveKind int

const (
	// CurveLine is a straight segment between two points.
	CurveLine CurveKind = iota
	// CurveOther is any non-linear curve: arc, circle, spline. Such edges
	// contribute length but carry no usable direction.
	CurveOther
)

// String returns the string representation of the curve kind
func (k CurveKind) String() string {
	switch k {
	case CurveLine:
		return "Line"
	case CurveOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Edge is a bounded curve on a face boundary. Start and End coincide for
// closed curves such as full circles; Length is always the true arc length.
type Edge struct {
	Kind   CurveKind
	Start  Point3
	End    Point3
	Length float64
}

// Direction returns the unit vector from Start to End. It reports false
// for non-line edges and for degenerate edges whose endpoints coincide.
func (e Edge) Direction() (Vector3, bool) {
	if e.Kind != CurveLine {
		return Vector3{}, false
	}
	return e.End.Sub(e.Start).Unit()
}

// LoopKind identifies whether a loop bounds material or a void
type LoopKind int

const (
	// LoopOuter bounds material: the outermost profile of a face.
	LoopOuter LoopKind = iota
	// LoopInner bounds a void: a bore, drilled hole, or cutout.
	LoopInner
)

// String returns the string representation of the loop kind
func (k LoopKind) String() string {
	switch k {
	case LoopOuter:
		return "Outer"
	case LoopInner:
		return "Inner"
	default:
		return "Unknown"
	}
}

// Loop is an ordered cycle of edges bounding a region of a face.
type Loop struct {
	Kind  LoopKind
	Edges []Edge
}

// Perimeter sums the edge lengths around the loop
func (l Loop) Perimeter() float64 {
	var total float64
	for _, e := range l.Edges {
		total += e.Length
	}
	return total
}

// Vertices returns the edge start points in loop order
func (l Loop) Vertices() []Point3 {
	pts := make([]Point3, 0, len(l.Edges))
	for _, e := range l.Edges {
		pts = append(pts, e.Start)
	}
	return pts
}

// SurfaceKind identifies the geometry of a face
type SurfaceKind int

const (
	SurfacePlane SurfaceKind = iota
	SurfaceCylinder
)

// String returns the string representation of the surface kind
func (k SurfaceKind) String() string {
	switch k {
	case SurfacePlane:
		return "Plane"
	case SurfaceCylinder:
		return "Cylinder"
	default:
		return "Unknown"
	}
}

// Surface describes the underlying geometry carried by a face. The concrete
// implementations are [Plane] and [Cylinder].
type Surface interface {
	Kind() SurfaceKind
}

// Plane is a flat surface. Normal is unit length by convention.
type Plane struct {
	Normal Vector3
}

// Kind returns SurfacePlane
func (Plane) Kind() SurfaceKind { return SurfacePlane }

// Cylinder is a right circular cylindrical surface. Axis is unit length by
// convention and Origin is a point on the axis line.
type Cylinder struct {
	Origin Point3
	Axis   Vector3
	Radius float64
}

// Kind returns SurfaceCylinder
func (Cylinder) Kind() SurfaceKind { return SurfaceCylinder }

// Face is one bounded surface of a solid body.
type Face struct {
	// ID is an opaque identifier assigned by the face provider. It is
	// carried through for callers; classification never depends on it.
	ID      string
	Area    float64
	Surface Surface
	Loops   []Loop
}

// Plane returns the planar surface geometry, if any
func (f Face) Plane() (Plane, bool) {
	p, ok := f.Surface.(Plane)
	return p, ok
}

// Cylinder returns the cylindrical surface geometry, if any
func (f Face) Cylinder() (Cylinder, bool) {
	c, ok := f.Surface.(Cylinder)
	return c, ok
}

// OuterLoops returns the loops bounding material
func (f Face) OuterLoops() []Loop {
	return f.loopsOfKind(LoopOuter)
}

// InnerLoops returns the loops bounding voids
func (f Face) InnerLoops() []Loop {
	return f.loopsOfKind(LoopInner)
}

func (f Face) loopsOfKind(kind LoopKind) []Loop {
	var out []Loop
	for _, l := range f.Loops {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}

// Centroid returns the mean of the outer-loop vertices. It reports false
// when the face has no outer-loop vertices.
func (f Face) Centroid() (Point3, bool) {
	var sum Vector3
	var n int
	for _, l := range f.OuterLoops() {
		for _, p := range l.Vertices() {
			sum = sum.Add(Vector3(p))
			n++
		}
	}
	if n == 0 {
		return Point3{}, false
	}
	return Point3(sum.Scale(1 / float64(n))), true
}

// FaceSet is the boundary representation of one solid body. Face order is
// irrelevant: classification treats the collection as a set.
type FaceSet struct {
	Faces []Face
}

// NewFaceSet collects faces into a set
func NewFaceSet(faces ...Face) *FaceSet {
	return &FaceSet{Faces: faces}
}

// ErrEmptyFaceSet reports a nil or empty input body
var ErrEmptyFaceSet = errors.New("empty face set")

// Validate checks the structural preconditions classification relies on:
// at least one face, positive areas and radii, loops with edges, non-zero
// plane normals and cylinder axes. It returns a descriptive error naming
// the first offending face.
func (fs *FaceSet) Validate() error {
	if fs == nil || len(fs.Faces) == 0 {
		return ErrEmptyFaceSet
	}
	for i, f := range fs.Faces {
		name := f.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if f.Area <= 0 {
			return fmt.Errorf("face %s: area must be positive, got %g", name, f.Area)
		}
		if f.Surface == nil {
			return fmt.Errorf("face %s: missing surface geometry", name)
		}
		switch s := f.Surface.(type) {
		case Plane:
			if s.Normal.Norm() == 0 {
				return fmt.Errorf("face %s: plane normal is zero", name)
			}
		case Cylinder:
			if s.Axis.Norm() == 0 {
				return fmt.Errorf("face %s: cylinder axis is zero", name)
			}
			if s.Radius <= 0 {
				return fmt.Errorf("face %s: cylinder radius must be positive, got %g", name, s.Radius)
			}
		default:
			return fmt.Errorf("face %s: unsupported surface kind %s", name, f.Surface.Kind())
		}
		if len(f.Loops) == 0 {
			return fmt.Errorf("face %s: no boundary loops", name)
		}
		for j, l := range f.Loops {
			if len(l.Edges) == 0 {
				return fmt.Errorf("face %s: loop %d has no edges", name, j)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the face set
func (fs *FaceSet) Clone() *FaceSet {
	if fs == nil {
		return nil
	}
	out := &FaceSet{Faces: make([]Face, len(fs.Faces))}
	for i, f := range fs.Faces {
		nf := f
		nf.Loops = make([]Loop, len(f.Loops))
		for j, l := range f.Loops {
			nl := l
			nl.Edges = append([]Edge(nil), l.Edges...)
			nf.Loops[j] = nl
		}
		out.Faces[i] = nf
	}
	return out
}

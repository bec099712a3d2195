package profile

import (
	"go.uber.org/zap"

	"github.com/millfab/sectio/measure"
	"github.com/millfab/sectio/model"
)

// resolveAxis determines the extrusion axis of the body.
//
// A cylindrical face settles the question immediately: the outer wall of a
// round body is extruded along its own axis. Ties at maximum radius break
// on the canonical axis direction, then on the cylinder origin, so the
// choice is a function of the geometry alone.
//
// Without a cylinder, the axis is the direction of the longest line edge
// found on the outer loops of the maximum-area faces. On a prismatic body
// the largest faces are walls or caps whose longest edges run the length of
// the stock. Ties at maximum length resolve to the smallest canonical
// direction.
func (r *run) resolveAxis() {
	best := -1
	for i, f := range r.faces {
		cyl, ok := f.Cylinder()
		if !ok {
			continue
		}
		if best < 0 || betterOuterCylinder(cyl, r.outerCyl) {
			best = i
			r.outerCyl = cyl
		}
	}
	if best >= 0 {
		axis, ok := r.outerCyl.Axis.Unit()
		if ok {
			r.hasCyl = true
			r.axis = measure.Canonical(axis)
			r.axisOK = true
			r.log.Debug("axis from cylinder",
				zap.Float64("radius", r.outerCyl.Radius),
				zap.Float64s("axis", []float64{r.axis.X, r.axis.Y, r.axis.Z}))
			return
		}
	}

	maxArea := 0.0
	for _, f := range r.faces {
		if f.Area > maxArea {
			maxArea = f.Area
		}
	}

	var bestDir model.Vector3
	bestLen := 0.0
	found := false
	for _, f := range r.faces {
		if !measure.ApproxEqual(f.Area, maxArea) {
			continue
		}
		for _, loop := range f.OuterLoops() {
			for _, e := range loop.Edges {
				dir, ok := e.Direction()
				if !ok {
					continue
				}
				dir = measure.Canonical(dir)
				longer := e.Length-bestLen > measure.Epsilon
				tied := measure.ApproxEqual(e.Length, bestLen) && measure.LexLess(dir, bestDir)
				if !found || longer || tied {
					found = true
					bestLen = e.Length
					bestDir = dir
				}
			}
		}
	}
	if !found {
		r.diagnose(model.DiagnosticNoAxisFound,
			"no cylindrical face and no line edge on the largest faces to derive an extrusion axis")
		return
	}

	r.axis = bestDir
	r.axisOK = true
	r.log.Debug("axis from longest edge",
		zap.Float64("edgeLength", bestLen),
		zap.Float64s("axis", []float64{r.axis.X, r.axis.Y, r.axis.Z}))
}

// betterOuterCylinder orders cylindrical faces for outer-wall selection:
// larger radius wins, with canonical axis direction and then origin as
// deterministic tie-breakers.
func betterOuterCylinder(a, b model.Cylinder) bool {
	if !measure.ApproxEqual(a.Radius, b.Radius) {
		return a.Radius > b.Radius
	}
	ca, cb := measure.Canonical(a.Axis), measure.Canonical(b.Axis)
	if measure.LexLess(ca, cb) {
		return true
	}
	if measure.LexLess(cb, ca) {
		return false
	}
	return measure.LexLess(model.Vector3(a.Origin), model.Vector3(b.Origin))
}

// resolvePrimaries identifies the end caps: the planar faces whose normal
// is parallel to the axis, restricted to the ties at maximum area within
// that subset. Side walls of a long tube dwarf the caps, so candidacy is
// limited to cap-like faces before the area rule applies. Length, start,
// and end points follow from the primaries' vertices.
func (r *run) resolvePrimaries() {
	r.primaryIdx = make(map[int]bool)

	maxArea := 0.0
	for _, f := range r.faces {
		p, ok := f.Plane()
		if !ok || !measure.IsParallel(p.Normal, r.axis) {
			continue
		}
		if f.Area > maxArea {
			maxArea = f.Area
		}
	}
	for i, f := range r.faces {
		p, ok := f.Plane()
		if !ok || !measure.IsParallel(p.Normal, r.axis) {
			continue
		}
		if measure.ApproxEqual(f.Area, maxArea) {
			r.primaryIdx[i] = true
		}
	}

	if len(r.primaryIdx) == 0 {
		r.diagnose(model.DiagnosticInsufficientFaces,
			"no planar face perpendicular to the axis qualifies as an end cap")
		return
	}

	var projections []float64
	for i := range r.primaryIdx {
		for _, loop := range r.faces[i].OuterLoops() {
			for _, p := range loop.Vertices() {
				projections = append(projections, measure.RawProject(p, r.axis))
			}
		}
	}
	min, max, ok := measure.Span(projections)
	if !ok {
		return
	}
	r.res.Length = max - min
	r.res.Axis = r.axis
	r.locateEnds()

	r.log.Debug("primaries resolved",
		zap.Int("count", len(r.primaryIdx)),
		zap.Float64("capArea", maxArea),
		zap.Float64("length", r.res.Length))
}

// locateEnds fixes the start point at the centroid of the primary face
// sitting at the low end of the axis projection, and the end point one
// body length further along the axis. For round bodies the centroid is
// dropped onto the cylinder's own axis line so both points sit on the
// section's centre.
func (r *run) locateEnds() {
	bestSet := false
	var start model.Point3
	for i := range r.primaryIdx {
		c, ok := r.faces[i].Centroid()
		if !ok {
			continue
		}
		proj := measure.RawProject(c, r.axis)
		if !bestSet {
			bestSet = true
			start = c
			continue
		}
		cur := measure.RawProject(start, r.axis)
		if proj-cur < -measure.Epsilon ||
			(measure.ApproxEqual(proj, cur) && measure.LexLess(model.Vector3(c), model.Vector3(start))) {
			start = c
		}
	}
	if !bestSet {
		return
	}

	if r.hasCyl {
		t := measure.Project(start, r.outerCyl.Origin, r.axis)
		start = r.outerCyl.Origin.Add(r.axis.Scale(t))
	}

	r.res.StartPoint = start
	r.res.EndPoint = start.Add(r.axis.Scale(r.res.Length))
}

// axisParallel reports whether a line edge runs along the body axis. Edges
// without a usable direction (curves, degenerate segments) never do.
func (r *run) axisParallel(e model.Edge) bool {
	dir, ok := e.Direction()
	if !ok {
		return false
	}
	return measure.IsParallel(dir, r.axis)
}

// capFace reports whether the face is planar with its normal along the
// axis: an end cap, shoulder, or hole bottom.
func (r *run) capFace(f model.Face) bool {
	p, ok := f.Plane()
	return ok && measure.IsParallel(p.Normal, r.axis)
}

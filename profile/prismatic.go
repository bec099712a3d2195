package profile

import (
	"math"

	"go.uber.org/zap"

	"github.com/millfab/sectio/measure"
	"github.com/millfab/sectio/model"
)

// prismaticSection is the working state of the prismatic path: the two
// cross-section directions, the projected vertex distances along each, and
// the collapsed directions of degenerate sections.
type prismaticSection struct {
	dirA, dirB model.Vector3
	distA      []float64
	distB      []float64

	// collapsed holds the direction and clustered position of each extent
	// that measured zero. Degenerate edges are recognized against it.
	collapsed []collapsedExtent
}

type collapsedExtent struct {
	dir   model.Vector3
	value float64
}

// classifyPrismatic measures a body with only planar faces: square and
// rectangular tube, angle, channel, or solid bar stock.
func (r *run) classifyPrismatic() {
	if len(r.primaryIdx) == 0 {
		// InsufficientFaces was diagnosed during resolution; without caps
		// there is no section to measure.
		return
	}

	sides := r.sideFaces()
	if len(sides) == 0 {
		r.diagnose(model.DiagnosticAmbiguousClassification,
			"no side walls perpendicular to the axis: cross-section extents cannot be measured")
		return
	}

	sec, ok := r.measureSection(sides)
	if !ok {
		r.diagnose(model.DiagnosticAmbiguousClassification,
			"side-wall normals do not span a cross-section plane")
		return
	}

	r.decideShape(sec)
	r.measureWall(sides)
	r.res.HoleCount = r.countPrismaticHoles()
	r.res.CutLength = r.prismaticCutLength(sec)
}

// sideFaces returns the indices of the planar faces whose normal lies in
// the cross-section plane: the outer and inner walls of the stock.
func (r *run) sideFaces() []int {
	var sides []int
	for i, f := range r.faces {
		if r.isPrimary(i) {
			continue
		}
		p, ok := f.Plane()
		if !ok {
			continue
		}
		if measure.IsPerpendicular(p.Normal, r.axis) {
			sides = append(sides, i)
		}
	}
	return sides
}

// measureSection derives two perpendicular cross-section directions from
// the largest side wall and projects every side-wall vertex onto them. The
// reference wall is chosen by area with a canonical-direction tie-break, so
// the same body always measures along the same pair of directions.
func (r *run) measureSection(sides []int) (*prismaticSection, bool) {
	var refNormal model.Vector3
	refArea := 0.0
	refSet := false
	for _, i := range sides {
		f := r.faces[i]
		normal := measure.Canonical(f.Surface.(model.Plane).Normal)
		larger := f.Area-refArea > measure.Epsilon
		tied := measure.ApproxEqual(f.Area, refArea) && measure.LexLess(refNormal, normal)
		if !refSet || larger || tied {
			refSet = true
			refArea = f.Area
			refNormal = normal
		}
	}

	dirA, ok := r.axis.Cross(refNormal).Unit()
	if !ok {
		return nil, false
	}
	dirB, ok := r.axis.Cross(dirA).Unit()
	if !ok {
		return nil, false
	}

	sec := &prismaticSection{dirA: dirA, dirB: dirB}
	for _, i := range sides {
		for _, loop := range r.faces[i].OuterLoops() {
			for _, p := range loop.Vertices() {
				sec.distA = append(sec.distA, measure.RawProject(p, dirA))
				sec.distB = append(sec.distB, measure.RawProject(p, dirB))
			}
		}
	}

	minA, maxA, _ := measure.Span(sec.distA)
	minB, maxB, _ := measure.Span(sec.distB)
	r.res.Height = maxA - minA
	r.res.Width = maxB - minB

	if measure.TendsToZero(r.res.Height) {
		sec.collapsed = append(sec.collapsed, collapsedExtent{dirA, (minA + maxA) / 2})
	}
	if measure.TendsToZero(r.res.Width) {
		sec.collapsed = append(sec.collapsed, collapsedExtent{dirB, (minB + maxB) / 2})
	}

	return sec, true
}

// decideShape applies the family rules to the measured section.
//
// Degenerate extents short-circuit the parity test: a section collapsed in
// both directions reads as an angle, in exactly one as a channel. Otherwise
// the count of distinct wall positions along each direction decides open
// versus closed: a closed tube crosses each direction an even number of
// times (outer wall, inner wall, inner wall, outer wall), while an open
// section leaves an odd count on at least one. Closed sections split on
// extent equality, open ones on how much shallower the section is in one
// direction than the other.
func (r *run) decideShape(sec *prismaticSection) {
	height, width := r.res.Height, r.res.Width

	if len(sec.collapsed) > 0 {
		if len(sec.collapsed) == 2 {
			r.res.Shape = model.ShapeAngle
		} else {
			r.res.Shape = model.ShapeChannel
		}
		r.log.Debug("degenerate section",
			zap.Int("collapsedExtents", len(sec.collapsed)),
			zap.String("shape", r.res.Shape.String()))
		return
	}

	countA := len(measure.DistinctDistances(sec.distA))
	countB := len(measure.DistinctDistances(sec.distB))
	r.log.Debug("section measured",
		zap.Float64("height", height),
		zap.Float64("width", width),
		zap.Int("distinctA", countA),
		zap.Int("distinctB", countB))

	if countA%2 != 0 || countB%2 != 0 {
		ratio := smallerExtent(height, width) / math.Max(height, width)
		if r.cfg.OpenSectionRatio-ratio > measure.Epsilon {
			r.res.Shape = model.ShapeChannel
		} else {
			r.res.Shape = model.ShapeAngle
		}
		return
	}

	if measure.ApproxEqual(height, width) {
		r.res.Shape = model.ShapeSquare
	} else {
		r.res.Shape = model.ShapeRectangle
	}
}

// smallerExtent returns the lesser of two measured extents, ignoring any
// that collapsed to zero.
func smallerExtent(a, b float64) float64 {
	if measure.TendsToZero(a) {
		return b
	}
	if measure.TendsToZero(b) {
		return a
	}
	return math.Min(a, b)
}

// wallGroup collects the plane positions of side walls sharing one normal
// direction.
type wallGroup struct {
	dir       model.Vector3
	positions []float64
}

// measureWall derives the wall thickness from matched pairs of parallel
// side walls. Walls are grouped by canonical normal direction; within a
// group each wall sits at one position along that direction, and the
// smallest positive gap between neighbouring positions is the outer-to-
// inner offset of one leg. The smallest such gap across groups is the wall.
//
// A solid bar has only two wall positions per direction, so its smallest
// gap equals the full span; that is reported as the thickness without the
// plausibility flag, which applies to hollow-like sections only.
func (r *run) measureWall(sides []int) {
	var groups []wallGroup
	for _, i := range sides {
		f := r.faces[i]
		dir := measure.Canonical(f.Surface.(model.Plane).Normal)

		var projections []float64
		for _, loop := range f.OuterLoops() {
			for _, p := range loop.Vertices() {
				projections = append(projections, measure.RawProject(p, dir))
			}
		}
		if len(projections) == 0 {
			continue
		}
		position := measure.SortedSum(projections) / float64(len(projections))

		matched := false
		for g := range groups {
			if measure.IsParallel(groups[g].dir, dir) {
				groups[g].positions = append(groups[g].positions, position)
				matched = true
				break
			}
		}
		if !matched {
			groups = append(groups, wallGroup{dir: dir, positions: []float64{position}})
		}
	}

	sortGroups(groups)

	wall := 0.0
	wallSpan := 0.0
	found := false
	for _, g := range groups {
		reps := measure.DistinctDistances(g.positions)
		if len(reps) < 2 {
			continue
		}
		span := reps[len(reps)-1] - reps[0]
		for i := 1; i < len(reps); i++ {
			gap := reps[i] - reps[i-1]
			if gap <= measure.Epsilon {
				continue
			}
			if !found || wall-gap > measure.Epsilon {
				found = true
				wall = gap
				wallSpan = span
			}
		}
	}
	if !found {
		return
	}

	r.res.WallThickness = wall

	hollow := wallSpan-wall > measure.Epsilon
	base := smallerExtent(r.res.Height, r.res.Width) / 2
	if hollow && base > 0 {
		ratio := wall / base
		if ratio-r.cfg.MaxWallRatio > measure.Epsilon {
			r.diagnose(model.DiagnosticThicknessOutOfRange,
				"wall %g is %.2f of the half-extent %g, above the configured %.2f",
				wall, ratio, base, r.cfg.MaxWallRatio)
		}
	}
}

// sortGroups orders wall groups by canonical direction so the thickness
// scan visits them the same way for any face order.
func sortGroups(groups []wallGroup) {
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && measure.LexLess(groups[j].dir, groups[j-1].dir); j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
}

// countPrismaticHoles counts the inner loops on the end caps that are
// genuine holes. On a closed tube each cap carries one inner loop tracing
// the inner wall; the largest inner loop per cap is that outline and is
// excluded. Open and degenerate sections consume no loop.
func (r *run) countPrismaticHoles() int {
	closed := r.res.Shape == model.ShapeSquare || r.res.Shape == model.ShapeRectangle

	count := 0
	for i := range r.primaryIdx {
		inner := r.faces[i].InnerLoops()
		if len(inner) == 0 {
			continue
		}
		count += len(inner)
		if closed {
			count--
		}
	}
	return count
}

// prismaticCutLength totals the section outline on the end caps, skipping
// axis-parallel edges and, on degenerate sections, edges lying entirely on
// a collapsed extent: both contribute no distinguishable profile.
func (r *run) prismaticCutLength(sec *prismaticSection) float64 {
	var lengths []float64
	for i := range r.primaryIdx {
		for _, loop := range r.faces[i].Loops {
			for _, e := range loop.Edges {
				if r.axisParallel(e) || onCollapsedExtent(e, sec.collapsed) {
					continue
				}
				lengths = append(lengths, e.Length)
			}
		}
	}
	return measure.SortedSum(lengths)
}

// onCollapsedExtent reports whether both endpoints of the edge sit at the
// collapsed position of every degenerate direction.
func onCollapsedExtent(e model.Edge, collapsed []collapsedExtent) bool {
	if len(collapsed) == 0 {
		return false
	}
	for _, c := range collapsed {
		if !measure.ApproxEqual(measure.RawProject(e.Start, c.dir), c.value) ||
			!measure.ApproxEqual(measure.RawProject(e.End, c.dir), c.value) {
			return false
		}
	}
	return true
}

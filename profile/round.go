package profile

import (
	"math"

	"go.uber.org/zap"

	"github.com/millfab/sectio/measure"
	"github.com/millfab/sectio/model"
)

// classifyRound measures a body whose outer wall is cylindrical: a tube
// when a coaxial bore exists, a solid bar otherwise.
func (r *run) classifyRound() {
	outerRadius := r.outerCyl.Radius
	r.res.Shape = model.ShapeRound
	r.res.OuterDiameter = 2 * outerRadius

	innerRadius, hasBore := r.findBore(outerRadius)
	if hasBore {
		r.res.WallThickness = outerRadius - innerRadius
		ratio := r.res.WallThickness / outerRadius
		if ratio-r.cfg.MaxWallRatio > measure.Epsilon {
			r.diagnose(model.DiagnosticThicknessOutOfRange,
				"wall %g is %.2f of outer radius %g, above the configured %.2f",
				r.res.WallThickness, ratio, outerRadius, r.cfg.MaxWallRatio)
		}
	} else {
		r.res.WallThickness = outerRadius
		r.diagnose(model.DiagnosticSolidBar,
			"no coaxial bore: solid bar of radius %g", outerRadius)
	}

	r.res.HoleCount = r.countRoundHoles(innerRadius, hasBore)
	r.res.CutLength = r.roundCutLength()

	r.log.Debug("round section measured",
		zap.Float64("outerDiameter", r.res.OuterDiameter),
		zap.Float64("wall", r.res.WallThickness),
		zap.Bool("hollow", hasBore),
		zap.Int("holes", r.res.HoleCount))
}

// findBore locates the inner wall of a tube: the largest cylindrical face
// strictly inside the outer radius whose axis runs along the body axis.
// Cross-drilled holes are cylindrical too but not coaxial, so the axis test
// keeps them out of the wall measurement.
func (r *run) findBore(outerRadius float64) (float64, bool) {
	best := 0.0
	found := false
	for _, f := range r.faces {
		cyl, ok := f.Cylinder()
		if !ok {
			continue
		}
		if cyl.Radius >= outerRadius || measure.ApproxEqual(cyl.Radius, outerRadius) {
			continue
		}
		if !measure.IsParallel(cyl.Axis, r.axis) {
			continue
		}
		if !found || cyl.Radius > best {
			best = cyl.Radius
			found = true
		}
	}
	return best, found
}

// countRoundHoles counts the inner loops that are genuine holes. A through
// bore traces one inner loop on each end cap; when the bore is already
// captured as wall thickness those loops are excluded, one per cap,
// recognized by their perimeter.
func (r *run) countRoundHoles(innerRadius float64, hasBore bool) int {
	borePerimeter := 2 * math.Pi * innerRadius
	count := 0
	for _, f := range r.faces {
		boreSeen := false
		for _, loop := range f.InnerLoops() {
			if hasBore && !boreSeen && r.capFace(f) &&
				measure.ApproxEqual(loop.Perimeter(), borePerimeter) {
				boreSeen = true
				continue
			}
			count++
		}
	}
	return count
}

// roundCutLength totals the boundary a cutting operation traverses at the
// section ends: every edge on the cap faces, outer and inner loops alike,
// except edges running along the axis. Cylindrical faces repeat the same
// rim circles the caps already carry, so they are not visited.
func (r *run) roundCutLength() float64 {
	var lengths []float64
	for _, f := range r.faces {
		if !r.capFace(f) {
			continue
		}
		for _, loop := range f.Loops {
			for _, e := range loop.Edges {
				if r.axisParallel(e) {
					continue
				}
				lengths = append(lengths, e.Length)
			}
		}
	}
	return measure.SortedSum(lengths)
}

package diagram

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/plot/plotter"

	"github.com/millfab/sectio/model"
)

// Sketch renders the section as a fixed-size character grid with the
// principal dimensions labelled beneath. Shapes without usable
// measurements render a plain textual note instead of a drawing.
func Sketch(res *model.ProfileResult) string {
	if res == nil {
		return "no result"
	}

	g := newGrid(41, 21)
	switch res.Shape {
	case model.ShapeRound:
		if res.OuterDiameter <= 0 {
			return res.Shape.String() + " (no measurements to draw)"
		}
		outer := res.OuterDiameter / 2
		g.ring(1)
		if res.Hollow() && res.WallThickness < outer {
			g.ring((outer - res.WallThickness) / outer)
		}
	case model.ShapeSquare, model.ShapeRectangle, model.ShapeAngle, model.ShapeChannel:
		outlines, err := sectionOutlines(res)
		if err != nil {
			return res.Shape.String() + " (no measurements to draw)"
		}
		g.polylines(outlines)
	default:
		return res.Shape.String() + ": " + model.FormatDiagnostics(res.Diagnostics)
	}

	var b strings.Builder
	b.WriteString(g.String())
	b.WriteString(dimensions(res))
	return b.String()
}

// dimensions renders the labelled measurement line under the sketch.
func dimensions(res *model.ProfileResult) string {
	var parts []string
	if res.OuterDiameter > 0 {
		parts = append(parts, fmt.Sprintf("OD %g", res.OuterDiameter))
	}
	if res.Height > 0 {
		parts = append(parts, fmt.Sprintf("H %g", res.Height))
	}
	if res.Width > 0 {
		parts = append(parts, fmt.Sprintf("W %g", res.Width))
	}
	if res.WallThickness > 0 {
		parts = append(parts, fmt.Sprintf("wall %g", res.WallThickness))
	}
	if res.Length > 0 {
		parts = append(parts, fmt.Sprintf("length %g", res.Length))
	}
	return res.Shape.String() + ": " + strings.Join(parts, "  ") + "\n"
}

// grid is a character canvas mapping the unit square onto its cells, with
// a 2:1 horizontal stretch to counter terminal character aspect.
type grid struct {
	w, h  int
	cells [][]byte
}

func newGrid(w, h int) *grid {
	cells := make([][]byte, h)
	for i := range cells {
		cells[i] = []byte(strings.Repeat(" ", w))
	}
	return &grid{w: w, h: h, cells: cells}
}

// set marks the cell nearest to the normalized coordinates (0..1, 0..1),
// with y growing upward.
func (g *grid) set(x, y float64) {
	col := int(math.Round(x * float64(g.w-1)))
	row := int(math.Round((1 - y) * float64(g.h-1)))
	if col < 0 || col >= g.w || row < 0 || row >= g.h {
		return
	}
	g.cells[row][col] = '#'
}

// ring draws a circle of the given radius fraction centred on the grid.
func (g *grid) ring(fraction float64) {
	const steps = 256
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		g.set(0.5+fraction*math.Cos(a)/2, 0.5+fraction*math.Sin(a)/2)
	}
}

// polylines draws outlines scaled to fit the grid with a small margin.
func (g *grid) polylines(outlines []plotter.XYs) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, outline := range outlines {
		for _, p := range outline {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	scale := math.Max(maxX-minX, maxY-minY)
	if scale <= 0 {
		return
	}

	const margin = 0.04
	for _, outline := range outlines {
		for i := 1; i < len(outline); i++ {
			g.segment(
				margin+(1-2*margin)*(outline[i-1].X-minX)/scale,
				margin+(1-2*margin)*(outline[i-1].Y-minY)/scale,
				margin+(1-2*margin)*(outline[i].X-minX)/scale,
				margin+(1-2*margin)*(outline[i].Y-minY)/scale,
			)
		}
	}
}

// segment draws a straight stroke by dense sampling.
func (g *grid) segment(x0, y0, x1, y1 float64) {
	steps := 2 * (g.w + g.h)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g.set(x0+t*(x1-x0), y0+t*(y1-y0))
	}
}

func (g *grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

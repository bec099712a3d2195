// Package diagram renders classified cross-sections for manual review,
// either as a PNG image or as a terminal sketch. Rendering works purely
// from the measurements on a [model.ProfileResult]; the original face
// geometry is not needed.
package diagram

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/millfab/sectio/model"
)

// SaveImage writes a section diagram to an image file. The format follows
// the file extension (png, svg, pdf, and the other formats gonum/plot
// supports). Unknown shapes and results without usable measurements return
// a descriptive error.
func SaveImage(res *model.ProfileResult, path string) error {
	outlines, err := sectionOutlines(res)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s section", res.Shape)
	p.X.Label.Text = "m"
	p.Y.Label.Text = "m"

	for _, outline := range outlines {
		line, err := plotter.NewLine(outline)
		if err != nil {
			return fmt.Errorf("building outline: %w", err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	if err := p.Save(4*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving diagram: %w", err)
	}
	return nil
}

// sectionOutlines builds the closed outline polylines of the section, outer
// first, inner second when the section is hollow.
func sectionOutlines(res *model.ProfileResult) ([]plotter.XYs, error) {
	if res == nil {
		return nil, fmt.Errorf("diagram: nil result")
	}
	switch res.Shape {
	case model.ShapeRound:
		return roundOutlines(res)
	case model.ShapeSquare, model.ShapeRectangle:
		return rectOutlines(res)
	case model.ShapeAngle:
		return angleOutlines(res)
	case model.ShapeChannel:
		return channelOutlines(res)
	default:
		return nil, fmt.Errorf("diagram: cannot draw %s shape", res.Shape)
	}
}

func roundOutlines(res *model.ProfileResult) ([]plotter.XYs, error) {
	outer := res.OuterDiameter / 2
	if outer <= 0 {
		return nil, fmt.Errorf("diagram: round section without an outer diameter")
	}
	outlines := []plotter.XYs{circle(outer)}
	if res.Hollow() && res.WallThickness < outer {
		outlines = append(outlines, circle(outer-res.WallThickness))
	}
	return outlines, nil
}

// circle samples a full circle at fixed angular steps, closed back to its
// starting point.
func circle(radius float64) plotter.XYs {
	const steps = 64
	pts := make(plotter.XYs, steps+1)
	for i := 0; i <= steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		pts[i] = plotter.XY{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return pts
}

func rectOutlines(res *model.ProfileResult) ([]plotter.XYs, error) {
	h, w := res.Height, res.Width
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("diagram: %s section without extents", res.Shape)
	}
	outlines := []plotter.XYs{closedPolygon(
		xy(0, 0), xy(w, 0), xy(w, h), xy(0, h),
	)}
	t := res.WallThickness
	if res.Hollow() && 2*t < h && 2*t < w {
		outlines = append(outlines, closedPolygon(
			xy(t, t), xy(w-t, t), xy(w-t, h-t), xy(t, h-t),
		))
	}
	return outlines, nil
}

func angleOutlines(res *model.ProfileResult) ([]plotter.XYs, error) {
	h, w, t := res.Height, res.Width, res.WallThickness
	if h <= 0 || w <= 0 || t <= 0 || t >= h || t >= w {
		return nil, fmt.Errorf("diagram: angle section needs extents and a thinner wall")
	}
	return []plotter.XYs{closedPolygon(
		xy(0, 0), xy(w, 0), xy(w, t), xy(t, t), xy(t, h), xy(0, h),
	)}, nil
}

func channelOutlines(res *model.ProfileResult) ([]plotter.XYs, error) {
	h, w, t := res.Height, res.Width, res.WallThickness
	if h <= 0 || w <= 0 || t <= 0 {
		return nil, fmt.Errorf("diagram: channel section needs extents and a wall")
	}
	// Draw with the web along the bottom and the larger extent as width.
	if h > w {
		h, w = w, h
	}
	if t >= h || 2*t >= w {
		return nil, fmt.Errorf("diagram: channel wall %g too thick for %g x %g section", t, h, w)
	}
	return []plotter.XYs{closedPolygon(
		xy(0, 0), xy(w, 0), xy(w, h), xy(w-t, h), xy(w-t, t),
		xy(t, t), xy(t, h), xy(0, h),
	)}, nil
}

func xy(x, y float64) plotter.XY {
	return plotter.XY{X: x, Y: y}
}

func closedPolygon(pts ...plotter.XY) plotter.XYs {
	out := make(plotter.XYs, 0, len(pts)+1)
	out = append(out, pts...)
	out = append(out, pts[0])
	return out
}

// Package solids builds synthetic stock bodies as boundary representations.
//
// The builders stand in for a CAD-side face provider: they produce the
// face sets a modelling kernel would emit for common stock shapes, with
// exact areas and loop perimeters. All bodies extrude along +Z with the
// start cap on the Z=0 plane, and dimensions are metres. Builders panic on
// dimensions that cannot form the requested solid, since fixture geometry
// is programmer input.
package solids

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/millfab/sectio/model"
)

func mustPositive(name string, v float64) {
	if v <= 0 {
		panic(fmt.Sprintf("solids: %s must be positive, got %g", name, v))
	}
}

func pt(x, y, z float64) model.Point3 {
	return model.Point3{X: x, Y: y, Z: z}
}

// newFace assembles a face with a fresh provider-style identifier
func newFace(area float64, surface model.Surface, loops ...model.Loop) model.Face {
	return model.Face{
		ID:      uuid.NewString(),
		Area:    area,
		Surface: surface,
		Loops:   loops,
	}
}

// circleEdge is a full circle in a Z=const plane, seamed at angle zero
func circleEdge(center model.Point3, radius float64) model.Edge {
	seam := model.Point3{X: center.X + radius, Y: center.Y, Z: center.Z}
	return model.Edge{
		Kind:   model.CurveOther,
		Start:  seam,
		End:    seam,
		Length: 2 * math.Pi * radius,
	}
}

func circleLoop(kind model.LoopKind, center model.Point3, radius float64) model.Loop {
	return model.Loop{Kind: kind, Edges: []model.Edge{circleEdge(center, radius)}}
}

// polyLoop closes the polygon through pts with line edges
func polyLoop(kind model.LoopKind, pts ...model.Point3) model.Loop {
	edges := make([]model.Edge, 0, len(pts))
	for i := range pts {
		start := pts[i]
		end := pts[(i+1)%len(pts)]
		edges = append(edges, model.Edge{
			Kind:   model.CurveLine,
			Start:  start,
			End:    end,
			Length: start.Distance(end),
		})
	}
	return model.Loop{Kind: kind, Edges: edges}
}

// quadWall is a rectangular prism wall spanning z in [0, length]
func quadWall(normal model.Vector3, a, b model.Point3, length, area float64) model.Face {
	at := model.Point3{X: a.X, Y: a.Y, Z: length}
	bt := model.Point3{X: b.X, Y: b.Y, Z: length}
	return newFace(area, model.Plane{Normal: normal}, polyLoop(model.LoopOuter, a, b, bt, at))
}

// RoundTube builds a hollow circular tube with a coaxial through bore.
func RoundTube(outerRadius, innerRadius, length float64) *model.FaceSet {
	mustPositive("outerRadius", outerRadius)
	mustPositive("innerRadius", innerRadius)
	mustPositive("length", length)
	if innerRadius >= outerRadius {
		panic(fmt.Sprintf("solids: innerRadius %g must be smaller than outerRadius %g", innerRadius, outerRadius))
	}

	bottom := pt(0, 0, 0)
	top := model.Point3{Z: length}
	capArea := math.Pi * (outerRadius*outerRadius - innerRadius*innerRadius)

	return model.NewFaceSet(
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: -1}},
			circleLoop(model.LoopOuter, bottom, outerRadius),
			circleLoop(model.LoopInner, bottom, innerRadius)),
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: 1}},
			circleLoop(model.LoopOuter, top, outerRadius),
			circleLoop(model.LoopInner, top, innerRadius)),
		newFace(2*math.Pi*outerRadius*length,
			model.Cylinder{Origin: bottom, Axis: model.Vector3{Z: 1}, Radius: outerRadius},
			model.Loop{Kind: model.LoopOuter, Edges: []model.Edge{
				circleEdge(bottom, outerRadius),
				circleEdge(top, outerRadius),
			}}),
		newFace(2*math.Pi*innerRadius*length,
			model.Cylinder{Origin: bottom, Axis: model.Vector3{Z: 1}, Radius: innerRadius},
			model.Loop{Kind: model.LoopOuter, Edges: []model.Edge{
				circleEdge(bottom, innerRadius),
				circleEdge(top, innerRadius),
			}}),
	)
}

// RoundBar builds a solid circular bar.
func RoundBar(radius, length float64) *model.FaceSet {
	mustPositive("radius", radius)
	mustPositive("length", length)

	bottom := pt(0, 0, 0)
	top := model.Point3{Z: length}
	capArea := math.Pi * radius * radius

	return model.NewFaceSet(
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: -1}},
			circleLoop(model.LoopOuter, bottom, radius)),
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: 1}},
			circleLoop(model.LoopOuter, top, radius)),
		newFace(2*math.Pi*radius*length,
			model.Cylinder{Origin: bottom, Axis: model.Vector3{Z: 1}, Radius: radius},
			model.Loop{Kind: model.LoopOuter, Edges: []model.Edge{
				circleEdge(bottom, radius),
				circleEdge(top, radius),
			}}),
	)
}

// SquareTube builds a closed hollow section with equal outer extents.
func SquareTube(side, wall, length float64) *model.FaceSet {
	return RectTube(side, side, wall, length)
}

// RectTube builds a closed hollow section: outer extents height (Y) by
// width (X) with a uniform wall.
func RectTube(height, width, wall, length float64) *model.FaceSet {
	mustPositive("height", height)
	mustPositive("width", width)
	mustPositive("wall", wall)
	mustPositive("length", length)
	if 2*wall >= height || 2*wall >= width {
		panic(fmt.Sprintf("solids: wall %g too thick for %g x %g section", wall, height, width))
	}

	ih := height - 2*wall
	iw := width - 2*wall
	capArea := height*width - ih*iw

	capLoops := func(z float64) []model.Loop {
		return []model.Loop{
			polyLoop(model.LoopOuter,
				pt(0, 0, z),
				pt(width, 0, z),
				pt(width, height, z),
				pt(0, height, z)),
			polyLoop(model.LoopInner,
				pt(wall, wall, z),
				pt(width - wall, wall, z),
				pt(width - wall, height - wall, z),
				pt(wall, height - wall, z)),
		}
	}

	return model.NewFaceSet(
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: -1}}, capLoops(0)...),
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: 1}}, capLoops(length)...),

		// outer walls
		quadWall(model.Vector3{X: -1}, pt(0, 0, 0), pt(0, height, 0), length, height*length),
		quadWall(model.Vector3{X: 1}, pt(width, 0, 0), pt(width, height, 0), length, height*length),
		quadWall(model.Vector3{Y: -1}, pt(0, 0, 0), pt(width, 0, 0), length, width*length),
		quadWall(model.Vector3{Y: 1}, pt(0, height, 0), pt(width, height, 0), length, width*length),

		// inner walls
		quadWall(model.Vector3{X: 1}, pt(wall, wall, 0), pt(wall, height - wall, 0), length, ih*length),
		quadWall(model.Vector3{X: -1}, pt(width - wall, wall, 0), pt(width - wall, height - wall, 0), length, ih*length),
		quadWall(model.Vector3{Y: 1}, pt(wall, wall, 0), pt(width - wall, wall, 0), length, iw*length),
		quadWall(model.Vector3{Y: -1}, pt(wall, height - wall, 0), pt(width - wall, height - wall, 0), length, iw*length),
	)
}

// Angle builds an open L-section: legA along +X, legB along +Y, sharing a
// corner at the origin.
func Angle(legA, legB, thickness, length float64) *model.FaceSet {
	mustPositive("legA", legA)
	mustPositive("legB", legB)
	mustPositive("thickness", thickness)
	mustPositive("length", length)
	if thickness >= legA || thickness >= legB {
		panic(fmt.Sprintf("solids: thickness %g too thick for %g x %g legs", thickness, legA, legB))
	}

	t := thickness
	capArea := legA*t + (legB-t)*t

	capLoop := func(z float64) model.Loop {
		return polyLoop(model.LoopOuter,
			pt(0, 0, z),
			pt(legA, 0, z),
			pt(legA, t, z),
			pt(t, t, z),
			pt(t, legB, z),
			pt(0, legB, z))
	}

	return model.NewFaceSet(
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: -1}}, capLoop(0)),
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: 1}}, capLoop(length)),

		quadWall(model.Vector3{Y: -1}, pt(0, 0, 0), pt(legA, 0, 0), length, legA*length),
		quadWall(model.Vector3{X: 1}, pt(legA, 0, 0), pt(legA, t, 0), length, t*length),
		quadWall(model.Vector3{Y: 1}, pt(t, t, 0), pt(legA, t, 0), length, (legA-t)*length),
		quadWall(model.Vector3{X: 1}, pt(t, t, 0), pt(t, legB, 0), length, (legB-t)*length),
		quadWall(model.Vector3{Y: 1}, pt(0, legB, 0), pt(t, legB, 0), length, t*length),
		quadWall(model.Vector3{X: -1}, pt(0, 0, 0), pt(0, legB, 0), length, legB*length),
	)
}

// Channel builds an open U-section: web along the bottom (Y=0), flanges
// rising to Y=height, opening towards +Y. Width is the outer X extent.
func Channel(height, width, thickness, length float64) *model.FaceSet {
	mustPositive("height", height)
	mustPositive("width", width)
	mustPositive("thickness", thickness)
	mustPositive("length", length)
	if thickness >= height || 2*thickness >= width {
		panic(fmt.Sprintf("solids: thickness %g too thick for %g x %g section", thickness, height, width))
	}

	t := thickness
	capArea := width*t + 2*t*(height-t)

	capLoop := func(z float64) model.Loop {
		return polyLoop(model.LoopOuter,
			pt(0, 0, z),
			pt(width, 0, z),
			pt(width, height, z),
			pt(width - t, height, z),
			pt(width - t, t, z),
			pt(t, t, z),
			pt(t, height, z),
			pt(0, height, z))
	}

	return model.NewFaceSet(
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: -1}}, capLoop(0)),
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: 1}}, capLoop(length)),

		quadWall(model.Vector3{Y: -1}, pt(0, 0, 0), pt(width, 0, 0), length, width*length),
		quadWall(model.Vector3{X: 1}, pt(width, 0, 0), pt(width, height, 0), length, height*length),
		quadWall(model.Vector3{Y: 1}, pt(width - t, height, 0), pt(width, height, 0), length, t*length),
		quadWall(model.Vector3{X: -1}, pt(width - t, t, 0), pt(width - t, height, 0), length, (height-t)*length),
		quadWall(model.Vector3{Y: 1}, pt(t, t, 0), pt(width - t, t, 0), length, (width-2*t)*length),
		quadWall(model.Vector3{X: 1}, pt(t, t, 0), pt(t, height, 0), length, (height-t)*length),
		quadWall(model.Vector3{Y: 1}, pt(0, height, 0), pt(t, height, 0), length, t*length),
		quadWall(model.Vector3{X: -1}, pt(0, 0, 0), pt(0, height, 0), length, height*length),
	)
}

// DrillCapHoles adds count circular inner loops of the given radius to
// each end cap of fs, spaced along X from the cap centroid. The loops
// model drilled bolt holes for hole-count coverage; the caller is
// responsible for keeping them inside the cap outline.
func DrillCapHoles(fs *model.FaceSet, radius float64, count int) {
	mustPositive("radius", radius)
	if count <= 0 {
		panic(fmt.Sprintf("solids: count must be positive, got %d", count))
	}

	for i, f := range fs.Faces {
		p, ok := f.Plane()
		if !ok || p.Normal.Z == 0 {
			continue
		}
		center, ok := f.Centroid()
		if !ok {
			continue
		}
		for k := 0; k < count; k++ {
			at := model.Point3{
				X: center.X + float64(k)*3*radius,
				Y: center.Y,
				Z: center.Z,
			}
			fs.Faces[i].Loops = append(fs.Faces[i].Loops,
				circleLoop(model.LoopInner, at, radius))
		}
	}
}

// Plate builds a solid rectangular bar: width (X) by thickness (Y).
func Plate(width, thickness, length float64) *model.FaceSet {
	mustPositive("width", width)
	mustPositive("thickness", thickness)
	mustPositive("length", length)

	capArea := width * thickness
	capLoop := func(z float64) model.Loop {
		return polyLoop(model.LoopOuter,
			pt(0, 0, z),
			pt(width, 0, z),
			pt(width, thickness, z),
			pt(0, thickness, z))
	}

	return model.NewFaceSet(
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: -1}}, capLoop(0)),
		newFace(capArea, model.Plane{Normal: model.Vector3{Z: 1}}, capLoop(length)),

		quadWall(model.Vector3{X: -1}, pt(0, 0, 0), pt(0, thickness, 0), length, thickness*length),
		quadWall(model.Vector3{X: 1}, pt(width, 0, 0), pt(width, thickness, 0), length, thickness*length),
		quadWall(model.Vector3{Y: -1}, pt(0, 0, 0), pt(width, 0, 0), length, width*length),
		quadWall(model.Vector3{Y: 1}, pt(0, thickness, 0), pt(width, thickness, 0), length, width*length),
	)
}

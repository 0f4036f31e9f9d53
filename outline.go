// seehuhn.de/go/radar - geometry for multi-axis charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package radar

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outline describes a closed guide shape: a boundary or a ring.
type Outline struct {
	// Shape tells whether the outline is a circle or a polygon.
	Shape Shape

	// Center and Radius describe a circle. For polygons, Radius is the
	// distance of the vertices from Center along their axes.
	Center vec.Vec2
	Radius float64

	// Vertices are the corners of a polygon, in axis order. The polygon
	// is implicitly closed. Vertices is nil for circles.
	Vertices []vec.Vec2
}

// Empty reports whether the outline has nothing to draw.
func (o Outline) Empty() bool {
	if o.Shape == ShapePolygon {
		return len(o.Vertices) == 0
	}
	return o.Radius == 0
}

// Path returns the outline as a closed path. Circles are approximated by
// four cubic Bézier curves.
func (o Outline) Path() *path.Data {
	if o.Empty() {
		return &path.Data{}
	}
	if o.Shape == ShapePolygon {
		return polygonPath(o.Vertices)
	}
	return circlePath(o.Center, math.Abs(o.Radius))
}

// polygonPath builds a closed path through the given points.
func polygonPath(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p = p.LineTo(pt)
	}
	return p.Close()
}

// circlePath builds a circle starting on the positive x-axis, turning
// towards the positive y-axis like the chart axes do.
func circlePath(c vec.Vec2, r float64) *path.Data {
	k := kappa * r
	pt := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: c.X + dx, Y: c.Y + dy}
	}
	return (&path.Data{}).
		MoveTo(pt(r, 0)).
		CubeTo(pt(r, k), pt(k, r), pt(0, r)).
		CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0)).
		CubeTo(pt(-r, -k), pt(-k, -r), pt(0, -r)).
		CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
		Close()
}

// Outer returns the outer boundary. For polygons it has one vertex per
// data axis.
func (l Layout) Outer() Outline {
	o := Outline{Shape: l.Shape, Center: l.Origin(), Radius: l.Radius}
	if l.Shape == ShapePolygon {
		o.Vertices = l.axisPoints(l.DataAxes, 1)
	}
	return o
}

// Inner returns the inner boundary. The second return value is false if
// the inner boundary is not drawn, either because it is disabled or
// because the inner radius is not positive.
//
// A circular inner boundary has radius InnerRadius. A polygonal one runs
// through the points at distance 0 of every data axis, i.e. it has radius
// CenterOffset.
func (l Layout) Inner() (Outline, bool) {
	o := Outline{Shape: l.Shape, Center: l.Origin(), Radius: l.InnerRadius}
	if l.Shape == ShapePolygon {
		o.Radius = l.CenterOffset
		o.Vertices = l.axisPoints(l.DataAxes, 0)
	}
	return o, l.ShowInnerBoundary && l.InnerRadius > 0
}

// RingDistance returns the normalized distance of ring k.
func (l Layout) RingDistance(k int) float64 {
	return float64(k+1) / float64(l.RingCount+1)
}

// Rings returns the guide rings, innermost first. Polygon rings have one
// vertex per segment, so that the grid does not depend on the data. The
// result is empty if there are no rings, or for polygons without
// segments.
func (l Layout) Rings() []Outline {
	if l.RingCount == 0 {
		return nil
	}
	if l.Shape == ShapePolygon && l.Segments == 0 {
		return nil
	}

	rings := make([]Outline, l.RingCount)
	for k := range rings {
		dist := l.RingDistance(k)
		rings[k] = Outline{
			Shape:  l.Shape,
			Center: l.Origin(),
			Radius: l.CenterOffset + dist*(l.Radius-l.CenterOffset),
		}
		if l.Shape == ShapePolygon {
			rings[k].Vertices = l.axisPoints(l.Segments, dist)
		}
	}
	return rings
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

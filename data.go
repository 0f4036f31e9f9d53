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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Series is the data polygon of a chart.
type Series struct {
	// Values is the data series the polygon was built from.
	Values []float64

	// Angles holds the axis angle of every value.
	Angles []float64

	// Vertices holds the data points. The polygon is implicitly closed.
	Vertices []vec.Vec2

	// Circumference holds the point on the outer boundary of every data
	// axis. These are the anchors for the labels.
	Circumference []vec.Vec2
}

// Series builds the data polygon. The axis count is always the length of
// data, independent of the number of segments. Values are not clamped:
// values above 1 reach beyond the outer boundary and negative values
// reach through the inner boundary.
func (l Layout) Series(data []float64) Series {
	n := len(data)
	s := Series{
		Values:        append([]float64(nil), data...),
		Angles:        AxisAngles(n, l.AngleOffset),
		Vertices:      make([]vec.Vec2, n),
		Circumference: make([]vec.Vec2, n),
	}
	for i, v := range data {
		a := s.Angles[i]
		s.Vertices[i] = l.Project(a, v)
		s.Circumference[i] = l.Project(a, 1)
	}
	return s
}

// Len returns the number of data points.
func (s Series) Len() int {
	return len(s.Vertices)
}

// Path returns the closed data polygon. The path is empty for an empty
// series.
func (s Series) Path() *path.Data {
	return polygonPath(s.Vertices)
}

// Markers returns a circle of radius r around every data point.
func (s Series) Markers(r float64) []Outline {
	if r <= 0 {
		return nil
	}
	markers := make([]Outline, len(s.Vertices))
	for i, v := range s.Vertices {
		markers[i] = Outline{Shape: ShapeCircle, Center: v, Radius: r}
	}
	return markers
}

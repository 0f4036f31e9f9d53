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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Layout holds the values derived from a [Config] for one data length.
// All other geometry is obtained from a Layout via the projector
// [Layout.Project].
type Layout struct {
	// Radius is the outer radius, clamped to be finite and non-negative.
	Radius float64

	// InnerRadius is copied from the configuration. Infinite and NaN values
	// become 0.
	InnerRadius float64

	// Center is both coordinates of the chart center.
	Center float64

	// CenterOffset is the distance from Center at which a value of 0 is
	// drawn. It is 0 or InnerRadius, depending on the placement.
	CenterOffset float64

	// StrokeWidth is copied from the configuration.
	StrokeWidth float64

	// Shape is copied from the configuration.
	Shape Shape

	// AngleOffset is copied from the configuration.
	AngleOffset float64

	// Segments is the axis count of spokes, ticks and polygon rings.
	Segments int

	// DataAxes is the axis count of the data polygon and the polygon
	// boundaries, equal to the length of the data series.
	DataAxes int

	// RingCount is the number of guide rings, non-negative.
	RingCount int

	// TickCount is the number of indicator ticks per spoke, non-negative.
	TickCount int

	// TickLength is half the length of an indicator tick.
	TickLength float64

	// ShowInnerBoundary is copied from the configuration.
	ShowInnerBoundary bool
}

// NewLayout resolves the configuration for a data series of length
// dataLen.
func NewLayout(cfg Config, dataLen int) Layout {
	radius := cfg.Radius
	if radius < 0 || !isFinite(radius) {
		Logger().Debug("radar: invalid radius clamped", "radius", cfg.Radius)
		radius = 0
	}
	innerRadius := cfg.InnerRadius
	if !isFinite(innerRadius) {
		Logger().Debug("radar: non-finite inner radius clamped", "inner_radius", cfg.InnerRadius)
		innerRadius = 0
	}

	l := Layout{
		Radius:            radius,
		InnerRadius:       innerRadius,
		Center:            radius + cfg.StrokeWidth + Buffer,
		StrokeWidth:       cfg.StrokeWidth,
		Shape:             cfg.Shape,
		AngleOffset:       cfg.AngleOffset,
		Segments:          cfg.SegmentCount(dataLen),
		DataAxes:          max(dataLen, 0),
		RingCount:         max(cfg.Rings, 0),
		TickCount:         max(cfg.IndicatorSections, 0),
		TickLength:        cfg.IndicatorSectionLength,
		ShowInnerBoundary: cfg.ShowInnerBoundary,
	}
	l.CenterOffset = centerOffset(cfg.Placement, innerRadius)
	return l
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// centerOffset resolves the placement mode. Unknown modes scale from the
// center.
func centerOffset(p CenterPlacement, innerRadius float64) float64 {
	switch p {
	case PlacementInner:
		return innerRadius
	case PlacementCenter:
		return 0
	default:
		return 0
	}
}

// Origin returns the chart center.
func (l Layout) Origin() vec.Vec2 {
	return vec.Vec2{X: l.Center, Y: l.Center}
}

// CanvasSize returns the width (and height) of the square which holds the
// chart including its stroke and margin on all sides.
func (l Layout) CanvasSize() float64 {
	return 2 * l.Center
}

// Extent returns the width (and height) of the drawing surface. This is
// the canvas size plus one more margin.
func (l Layout) Extent() float64 {
	return 2*l.Center + Buffer
}

// Bounds returns the drawing surface as a rectangle.
func (l Layout) Bounds() rect.Rect {
	e := l.Extent()
	return rect.Rect{LLx: 0, LLy: 0, URx: e, URy: e}
}

// Project maps a normalized distance along the axis at the given angle to
// a point. A distance of 0 lies on the inner boundary (or the center, for
// PlacementCenter) and a distance of 1 lies on the outer boundary. Other
// distances are extrapolated linearly.
func (l Layout) Project(angle, dist float64) vec.Vec2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	scale := l.Radius - l.CenterOffset
	return vec.Vec2{
		X: l.Center + cos*l.CenterOffset + cos*scale*dist,
		Y: l.Center + sin*l.CenterOffset + sin*scale*dist,
	}
}

// axisPoints projects the same distance onto n evenly spaced axes.
func (l Layout) axisPoints(n int, dist float64) []vec.Vec2 {
	if n <= 0 {
		return nil
	}
	pts := make([]vec.Vec2, n)
	for i := range pts {
		pts[i] = l.Project(AngleOf(i, n, l.AngleOffset), dist)
	}
	return pts
}

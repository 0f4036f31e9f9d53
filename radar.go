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

// Package radar computes the geometry of multi-axis ("radar" or "spider")
// charts.
//
// A chart is described by a [Config] and a data series of normalized
// values, one per axis. [Compute] turns both into a [Geometry]: the outer
// and inner boundary, the guide rings, the spokes with their indicator
// ticks, and the data polygon. All coordinates are in layout units with
// the origin in the top-left corner of the canvas and y growing downwards.
//
// Label placement is a second phase. The caller renders the labels,
// measures them, and passes the sizes to [Geometry.PlaceLabels] (or lets a
// [Measurer] do it via [Geometry.LayoutLabels]).
//
// The engine has no state: every call recomputes everything from its
// arguments.
package radar

import "fmt"

// Buffer is the margin added around the chart, in layout units. It keeps
// stroke overdraw and labels from being clipped at the canvas edge.
const Buffer = 10

// Shape selects how the boundaries and rings are drawn. It does not
// affect the placement of data points.
type Shape int

const (
	// ShapeCircle draws the boundaries and rings as circles.
	ShapeCircle Shape = iota

	// ShapePolygon draws the boundaries and rings as polygons with one
	// vertex per axis.
	ShapePolygon
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapePolygon:
		return "polygon"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Shape) MarshalText() ([]byte, error) {
	switch s {
	case ShapeCircle, ShapePolygon:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (s *Shape) UnmarshalText(text []byte) error {
	switch string(text) {
	case "circle":
		*s = ShapeCircle
	case "polygon":
		*s = ShapePolygon
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, text)
	}
	return nil
}

// CenterPlacement selects where the scaling of data values and rings
// originates.
type CenterPlacement int

const (
	// PlacementInner scales from the inner boundary: a value of 0 lies on
	// the inner boundary.
	PlacementInner CenterPlacement = iota

	// PlacementCenter scales from the chart center: a value of 0 lies on
	// the center point.
	PlacementCenter
)

func (p CenterPlacement) String() string {
	switch p {
	case PlacementInner:
		return "inner"
	case PlacementCenter:
		return "center"
	default:
		return fmt.Sprintf("CenterPlacement(%d)", int(p))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p CenterPlacement) MarshalText() ([]byte, error) {
	switch p {
	case PlacementInner, PlacementCenter:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPlacement, int(p))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (p *CenterPlacement) UnmarshalText(text []byte) error {
	switch string(text) {
	case "inner":
		*p = PlacementInner
	case "center":
		*p = PlacementCenter
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlacement, text)
	}
	return nil
}

// Config describes one chart. Use [NewConfig] to get the default values;
// the zero Config is a chart of radius 0.
type Config struct {
	// Radius is the outer radius. Negative, infinite and NaN values are
	// treated as 0.
	Radius float64

	// InnerRadius is the radius of the inner boundary. It is used as is,
	// a negative value inverts the direction of the center offset.
	InnerRadius float64

	// Placement selects the origin of value scaling.
	Placement CenterPlacement

	// Shape selects circles or polygons for boundaries and rings.
	Shape Shape

	// AngleOffset rotates all axes, in radians.
	AngleOffset float64

	// Segments is the number of spokes. It is ignored if AlignSegments
	// is set.
	Segments int

	// AlignSegments forces the number of spokes to the length of the
	// data series.
	AlignSegments bool

	// Rings is the number of guide rings between the inner and the outer
	// boundary.
	Rings int

	// IndicatorSections is the number of ticks on every spoke.
	IndicatorSections int

	// IndicatorSectionLength is half the length of a tick.
	IndicatorSectionLength float64

	// StrokeWidth is the line width the chart will be drawn with. It
	// enlarges the canvas.
	StrokeWidth float64

	// ShowInnerBoundary enables the inner boundary.
	ShowInnerBoundary bool

	// Slices, if positive, is the required length of the data series.
	// Data of any other length is rejected by [Compute].
	Slices int
}

// NewConfig returns a configuration with the given radius and default
// values for all other fields.
func NewConfig(radius float64) Config {
	return Config{
		Radius:                 radius,
		InnerRadius:            radius / 10,
		Placement:              PlacementInner,
		Shape:                  ShapeCircle,
		IndicatorSectionLength: defaultIndicatorSectionLength,
		StrokeWidth:            defaultStrokeWidth,
		ShowInnerBoundary:      true,
	}
}

// SegmentCount returns the number of axes used for spokes, ticks and
// polygon rings, for a data series of length dataLen.
func (c Config) SegmentCount(dataLen int) int {
	if c.AlignSegments {
		return dataLen
	}
	return max(c.Segments, 0)
}

// Validate checks the parts of the configuration that cannot be degraded
// to an empty drawing. Degenerate values such as a zero radius or zero
// segments are not errors.
func (c Config) Validate(dataLen int) error {
	switch c.Shape {
	case ShapeCircle, ShapePolygon:
		// pass
	default:
		return &ConfigurationError{Field: "shape", Got: int(c.Shape), Err: ErrUnknownShape}
	}
	if c.Slices > 0 && dataLen != c.Slices {
		return &ConfigurationError{Field: "slices", Want: c.Slices, Got: dataLen, Err: ErrAxisMismatch}
	}
	return nil
}

// Default values used by NewConfig.
const (
	// defaultIndicatorSectionLength is half the length of an indicator
	// tick.
	defaultIndicatorSectionLength = 5.0

	// defaultStrokeWidth is the default line width.
	defaultStrokeWidth = 1.0
)

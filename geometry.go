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

// Geometry is the complete layout of one chart.
type Geometry struct {
	// Layout holds the derived values: center, offsets, axis counts.
	Layout Layout

	// Outer is the outer boundary.
	Outer Outline

	// Inner is the inner boundary, or nil if it is not drawn.
	Inner *Outline

	// Rings holds the guide rings, innermost first.
	Rings []Outline

	// Spokes holds one line per segment axis.
	Spokes []Segment

	// Ticks holds the indicator ticks, spoke by spoke.
	Ticks []Tick

	// Data is the data polygon.
	Data Series
}

// Compute lays out a chart. It fails with a [*ConfigurationError] if the
// configuration cannot be drawn, for example if the data length differs
// from a required number of slices. Degenerate values never cause an
// error; the affected parts of the chart are simply empty.
//
// Compute is a pure function: the same arguments always give the same
// result, and the result shares no memory with data.
func Compute(cfg Config, data []float64) (*Geometry, error) {
	if err := cfg.Validate(len(data)); err != nil {
		Logger().Debug("radar: configuration rejected", "error", err)
		return nil, err
	}

	l := NewLayout(cfg, len(data))
	g := &Geometry{
		Layout: l,
		Outer:  l.Outer(),
		Rings:  l.Rings(),
		Spokes: l.Spokes(),
		Ticks:  l.Ticks(),
		Data:   l.Series(data),
	}
	if inner, ok := l.Inner(); ok {
		g.Inner = &inner
	}
	return g, nil
}

// PlaceLabels positions labels of the given sizes at the data axes. See
// [Layout.PlaceLabels].
func (g *Geometry) PlaceLabels(sizes []Size, gap float64) []LabelPlacement {
	return g.Layout.PlaceLabels(g.Data.Circumference, sizes, gap)
}

// LayoutLabels measures the labels with m and positions them at the data
// axes.
func (g *Geometry) LayoutLabels(labels []string, m Measurer, gap float64) []LabelPlacement {
	sizes := make([]Size, len(labels))
	for i, label := range labels {
		sizes[i] = m.Measure(label)
	}
	return g.PlaceLabels(sizes, gap)
}

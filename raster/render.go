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

// Package raster draws chart geometry computed by package radar into an
// RGBA image.
package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/radar"
)

// ErrCanvasSize indicates a chart whose extent is not a usable image size.
var ErrCanvasSize = errors.New("invalid canvas size")

// Render draws the chart described by g. Labels are drawn next to the
// data axes, label i at axis i; pass nil for a chart without labels.
//
// The image is square with side length g.Layout.Extent(), rounded up.
// Extents which are not finite, negative, or larger than MaxCanvasSize
// give an error wrapping ErrCanvasSize.
func Render(g *radar.Geometry, labels []string, st Style) (*image.RGBA, error) {
	e := g.Layout.Extent()
	if !(e >= 0 && e <= MaxCanvasSize) {
		return nil, fmt.Errorf("%w: extent %g", ErrCanvasSize, e)
	}
	size := int(math.Ceil(e))
	c := NewCanvas(size, size)
	if st.Background != nil {
		c.Clear(st.Background)
	}

	for _, l := range Layers(g, st) {
		c.Fill(l.Path, l.Fill)
		pen := st.pen(g.Layout.StrokeWidth)
		pen.Dash = l.Dash
		c.Stroke(l.Path, pen, l.Stroke)
	}

	if len(labels) > 0 && st.LabelColor != nil {
		m, err := NewFaceMeasurer(st.FontSize)
		if err != nil {
			return nil, fmt.Errorf("loading label font: %w", err)
		}
		for i, p := range g.LayoutLabels(labels, m, st.LabelGap) {
			c.DrawText(m.Face, p.Position, labels[i], st.LabelColor)
		}
	}

	radar.Logger().Debug("raster: chart rendered",
		"size", size,
		"axes", g.Data.Len(),
		"labels", len(labels))
	return c.Image(), nil
}

// MaxCanvasSize is the largest image side length Render allocates.
const MaxCanvasSize = 1 << 14

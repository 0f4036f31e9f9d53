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

package raster

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/radar"
)

// Layer is one paint operation of a chart: the path is filled first, then
// stroked with the chart's line width.
type Layer struct {
	Name   string
	Path   *path.Data
	Fill   color.Color // nil for no fill
	Stroke color.Color // nil for no outline
	Dash   []float64   // dash pattern of the outline, nil for solid
}

// Layers returns the paint operations for g in drawing order: outer
// boundary, inner boundary, spokes with ticks, rings, data polygon, data
// point markers. Layers with nothing to paint are omitted. Labels are not
// included.
//
// All drawing surfaces use this order.
func Layers(g *radar.Geometry, st Style) []Layer {
	var res []Layer
	add := func(l Layer) {
		if l.Fill == nil && l.Stroke == nil {
			return
		}
		res = append(res, l)
	}

	add(Layer{Name: "outer", Path: g.Outer.Path(), Fill: st.ChartFill, Stroke: st.Stroke})
	if g.Inner != nil {
		add(Layer{Name: "inner", Path: g.Inner.Path(), Stroke: st.InnerStroke})
	}
	if len(g.Spokes) > 0 {
		add(Layer{Name: "spokes", Path: spokePath(g), Stroke: st.InnerStroke})
	}
	for _, ring := range g.Rings {
		add(Layer{Name: "ring", Path: ring.Path(), Stroke: st.Stroke})
	}
	if g.Data.Len() > 0 {
		add(Layer{
			Name:   "data",
			Path:   g.Data.Path(),
			Fill:   WithOpacity(st.DataFill, st.DataFillOpacity),
			Stroke: st.DataStroke,
			Dash:   st.DataDash,
		})
	}
	for _, m := range g.Data.Markers(st.PointRadius) {
		add(Layer{Name: "marker", Path: m.Path(), Fill: st.PointColor})
	}
	return res
}

// spokePath collects the spokes and the indicator ticks into one path.
func spokePath(g *radar.Geometry) *path.Data {
	p := &path.Data{}
	for _, s := range g.Spokes {
		p = p.MoveTo(s.A).LineTo(s.B)
	}
	for _, t := range g.Ticks {
		p = p.MoveTo(t.A).LineTo(t.B)
	}
	return p
}

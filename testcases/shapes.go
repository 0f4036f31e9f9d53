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

package testcases

import "seehuhn.de/go/radar"

var circleCases = []Case{
	{
		Name: "six_axes_inner",
		Config: config(100, func(c *radar.Config) {
			c.InnerRadius = 10
			c.AlignSegments = true
		}),
		Data: sixValues,
	},
	{
		Name: "six_axes_center",
		Config: config(100, func(c *radar.Config) {
			c.Placement = radar.PlacementCenter
			c.AlignSegments = true
		}),
		Data: sixValues,
	},
	{
		Name: "rotated",
		Config: config(80, func(c *radar.Config) {
			c.AngleOffset = quarterTurn
			c.AlignSegments = true
		}),
		Data: []float64{0.9, 0.3, 0.6, 0.75, 0.5},
	},
	{
		Name: "no_inner_boundary",
		Config: config(60, func(c *radar.Config) {
			c.ShowInnerBoundary = false
			c.Segments = 4
		}),
		Data: []float64{0.25, 0.5, 0.75, 1},
	},
	{
		Name: "thick_stroke",
		Config: config(60, func(c *radar.Config) {
			c.StrokeWidth = 4
			c.AlignSegments = true
		}),
		Data: []float64{0.8, 0.4, 0.9},
	},
}

var polygonCases = []Case{
	{
		Name: "triangle",
		Config: config(100, func(c *radar.Config) {
			c.Shape = radar.ShapePolygon
			c.Segments = 7
			c.AlignSegments = true
		}),
		Data: []float64{1, 0.5, 0},
	},
	{
		Name: "hexagon",
		Config: config(100, func(c *radar.Config) {
			c.Shape = radar.ShapePolygon
			c.AlignSegments = true
		}),
		Data: sixValues,
	},
	{
		Name: "grid_differs_from_data",
		Config: config(100, func(c *radar.Config) {
			c.Shape = radar.ShapePolygon
			c.Segments = 6
			c.Rings = 2
		}),
		Data: []float64{0.9, 0.4, 0.7},
	},
	{
		Name: "strict_slices",
		Config: config(90, func(c *radar.Config) {
			c.Shape = radar.ShapePolygon
			c.Slices = 5
			c.AlignSegments = true
			c.AngleOffset = quarterTurn
		}),
		Data: []float64{0.2, 0.4, 0.6, 0.8, 1},
	},
}

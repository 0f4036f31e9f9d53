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

var ringCases = []Case{
	{
		Name: "circle_four_rings",
		Config: config(100, func(c *radar.Config) {
			c.Rings = 4
			c.AlignSegments = true
		}),
		Data: sixValues,
	},
	{
		Name: "circle_rings_from_center",
		Config: config(100, func(c *radar.Config) {
			c.Rings = 3
			c.Placement = radar.PlacementCenter
			c.AlignSegments = true
		}),
		Data: []float64{0.5, 0.5, 0.5, 0.5},
	},
	{
		Name: "polygon_five_segments",
		Config: config(100, func(c *radar.Config) {
			c.Shape = radar.ShapePolygon
			c.Rings = 3
			c.Segments = 5
		}),
		Data: []float64{0.3, 0.9, 0.6, 0.8, 0.4},
	},
}

var indicatorCases = []Case{
	{
		Name: "three_ticks",
		Config: config(100, func(c *radar.Config) {
			c.IndicatorSections = 3
			c.AlignSegments = true
		}),
		Data: sixValues,
	},
	{
		Name: "long_ticks_polygon",
		Config: config(100, func(c *radar.Config) {
			c.Shape = radar.ShapePolygon
			c.Segments = 8
			c.IndicatorSections = 4
			c.IndicatorSectionLength = 8
			c.Rings = 4
		}),
		Data: []float64{0.7, 0.2, 0.9, 0.5, 0.6, 0.3, 1, 0.4},
	},
}

var labelCases = []Case{
	{
		Name: "compass",
		Config: config(80, func(c *radar.Config) {
			c.AngleOffset = quarterTurn
			c.AlignSegments = true
			c.Rings = 3
		}),
		Data:   []float64{0.9, 0.6, 0.3, 0.8},
		Labels: []string{"north", "east", "south", "west"},
	},
	{
		Name: "skills",
		Config: config(100, func(c *radar.Config) {
			c.Shape = radar.ShapePolygon
			c.AlignSegments = true
			c.Rings = 4
		}),
		Data:   sixValues,
		Labels: []string{"speed", "strength", "stamina", "skill", "luck", "wits"},
	},
}

var degenerateCases = []Case{
	{
		Name: "empty_data",
		Config: config(50, func(c *radar.Config) {
			c.Rings = 2
			c.Segments = 4
		}),
		Data: nil,
	},
	{
		Name:   "zero_radius",
		Config: config(0, alignSegments),
		Data:   []float64{0.5, 0.5, 0.5},
	},
	{
		Name: "negative_radius",
		Config: config(-40, func(c *radar.Config) {
			c.Rings = 2
			c.AlignSegments = true
		}),
		Data: []float64{1, 1, 1},
	},
	{
		Name: "negative_inner_radius",
		Config: config(60, func(c *radar.Config) {
			c.InnerRadius = -10
			c.AlignSegments = true
		}),
		Data: []float64{0.5, 1, 0.25},
	},
	{
		Name:   "values_out_of_range",
		Config: config(60, alignSegments),
		Data:   []float64{1.2, -0.1, 0.5, 1},
	},
	{
		Name: "polygon_rings_without_segments",
		Config: config(60, func(c *radar.Config) {
			c.Shape = radar.ShapePolygon
			c.Rings = 3
		}),
		Data: []float64{0.4, 0.8, 0.6},
	},
	{
		Name: "single_axis",
		Config: config(60, func(c *radar.Config) {
			c.AlignSegments = true
			c.IndicatorSections = 2
		}),
		Data: []float64{0.7},
	},
}

func alignSegments(c *radar.Config) {
	c.AlignSegments = true
}

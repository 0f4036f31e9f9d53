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

// Command export writes the computed geometry of every chart fixture to
// JSON, for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/radar"
	"seehuhn.de/go/radar/testcases"
)

func main() {
	var out struct {
		Charts []jsonChart `json:"charts"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			g, err := radar.Compute(tc.Config, tc.Data)
			if err != nil {
				panic(err)
			}
			out.Charts = append(out.Charts, toJSON(category, tc, g))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/geometry.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonChart struct {
	Name         string          `json:"name"`
	Config       radar.Config    `json:"config"`
	Data         []float64       `json:"data"`
	Center       float64         `json:"center"`
	CenterOffset float64         `json:"center_offset"`
	Extent       float64         `json:"extent"`
	Outer        []jsonSegment   `json:"outer"`
	Inner        []jsonSegment   `json:"inner,omitempty"`
	Rings        [][]jsonSegment `json:"rings,omitempty"`
	Spokes       [][]float64     `json:"spokes,omitempty"`
	Ticks        [][]float64     `json:"ticks,omitempty"`
	Vertices     [][]float64     `json:"vertices,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.Case, g *radar.Geometry) jsonChart {
	jc := jsonChart{
		Name:         category + "_" + tc.Name,
		Config:       tc.Config,
		Data:         tc.Data,
		Center:       g.Layout.Center,
		CenterOffset: g.Layout.CenterOffset,
		Extent:       g.Layout.Extent(),
		Outer:        pathToJSON(g.Outer.Path()),
	}
	if g.Inner != nil {
		jc.Inner = pathToJSON(g.Inner.Path())
	}
	for _, ring := range g.Rings {
		jc.Rings = append(jc.Rings, pathToJSON(ring.Path()))
	}
	for _, s := range g.Spokes {
		jc.Spokes = append(jc.Spokes, segmentToJSON(s))
	}
	for _, t := range g.Ticks {
		jc.Ticks = append(jc.Ticks, segmentToJSON(t.Segment))
	}
	for _, v := range g.Data.Vertices {
		jc.Vertices = append(jc.Vertices, point(v))
	}
	return jc
}

func segmentToJSON(s radar.Segment) []float64 {
	return []float64{s.A.X, s.A.Y, s.B.X, s.B.Y}
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = point(pt)
		}
		segs = append(segs, seg)
	}
	return segs
}

func point(v vec.Vec2) []float64 {
	return []float64{v.X, v.Y}
}

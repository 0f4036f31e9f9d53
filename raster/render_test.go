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
	"errors"
	"image"
	"image/color"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/radar"
	"seehuhn.de/go/radar/testcases"
)

func TestMeasure(t *testing.T) {
	m, err := NewFaceMeasurer(12)
	if err != nil {
		t.Fatal(err)
	}

	empty := m.Measure("")
	if empty.Width != 0 {
		t.Errorf("empty label has width %g", empty.Width)
	}
	one := m.Measure("W")
	two := m.Measure("WW")
	if !(one.Width > 0 && two.Width > one.Width) {
		t.Errorf("widths %g, %g", one.Width, two.Width)
	}
	if one.Height <= 0 || one.Height != two.Height || one.Height != empty.Height {
		t.Errorf("heights %g, %g, %g", empty.Height, one.Height, two.Height)
	}

	big, err := NewFaceMeasurer(24)
	if err != nil {
		t.Fatal(err)
	}
	if w := big.Measure("W").Width; w <= one.Width {
		t.Errorf("24px label not wider than 12px label: %g <= %g", w, one.Width)
	}
}

func TestDrawText(t *testing.T) {
	m, err := NewFaceMeasurer(20)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(100, 40)
	c.DrawText(m.Face, vec.Vec2{X: 10, Y: 5}, "Hello", color.Black)

	sz := m.Measure("Hello")
	ink := inkBounds(c.Image())
	if ink.Empty() {
		t.Fatal("no text drawn")
	}
	box := image.Rect(10, 5, 10+int(math.Ceil(sz.Width)), 5+int(math.Ceil(sz.Height)))
	if !ink.In(box.Inset(-1)) {
		t.Errorf("ink %v outside measured box %v", ink, box)
	}
}

func TestWithOpacity(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	cases := []struct {
		a    float64
		want uint8
	}{
		{1, 255},
		{0.5, 128},
		{0, 0},
		{2, 255},
		{-1, 0},
	}
	for _, c := range cases {
		got := WithOpacity(red, c.a).(color.NRGBA)
		if got.A != c.want || got.R != 255 {
			t.Errorf("opacity %g: %v", c.a, got)
		}
	}
	if WithOpacity(nil, 0.5) != nil {
		t.Error("nil colour not preserved")
	}
}

func TestRenderAll(t *testing.T) {
	st := DefaultStyle()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				g, err := radar.Compute(tc.Config, tc.Data)
				if err != nil {
					t.Fatal(err)
				}
				img, err := Render(g, tc.Labels, st)
				if err != nil {
					t.Fatal(err)
				}

				size := int(math.Ceil(g.Layout.Extent()))
				if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
					t.Errorf("image size %v, want %dx%d", b.Size(), size, size)
				}
				white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
				if got := img.RGBAAt(0, 0); got != white {
					t.Errorf("corner pixel %v, want background", got)
				}
				if g.Layout.Radius > 0 && inkBounds(img).Empty() {
					t.Error("nothing drawn")
				}
			})
		}
	}
}

func TestRenderLabels(t *testing.T) {
	cfg := radar.NewConfig(60)
	cfg.AlignSegments = true
	g, err := radar.Compute(cfg, []float64{0.5, 0.5, 0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}

	st := DefaultStyle()
	plain, err := Render(g, nil, st)
	if err != nil {
		t.Fatal(err)
	}
	labelled, err := Render(g, []string{"east", "south", "west", "north"}, st)
	if err != nil {
		t.Fatal(err)
	}
	if slices.Equal(plain.Pix, labelled.Pix) {
		t.Error("labels did not change the image")
	}

	st.LabelColor = nil
	hidden, err := Render(g, []string{"east", "south", "west", "north"}, st)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(plain.Pix, hidden.Pix) {
		t.Error("labels drawn without a label colour")
	}
}

// The data polygon is painted with the configured opacity.
func TestRenderDataFill(t *testing.T) {
	cfg := radar.NewConfig(60)
	cfg.AlignSegments = true
	cfg.ShowInnerBoundary = false
	g, err := radar.Compute(cfg, []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}

	st := DefaultStyle()
	st.PointColor = nil
	img, err := Render(g, nil, st)
	if err != nil {
		t.Fatal(err)
	}

	// a point inside the data polygon, away from spokes and outlines
	o := g.Layout.Origin()
	px := img.RGBAAt(int(o.X)+15, int(o.Y)+10)
	if px.R != 255 || px.G < 120 || px.G > 135 || px.G != px.B {
		t.Errorf("data fill pixel %v, want half transparent red on white", px)
	}
}

// inkBounds returns the bounding box of all pixels which are neither
// transparent nor white.
func inkBounds(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			if px.A == 0 || (px.R == 255 && px.G == 255 && px.B == 255) {
				continue
			}
			r = r.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return r
}

func BenchmarkRender(b *testing.B) {
	var geoms []*radar.Geometry
	var labels [][]string
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			g, err := radar.Compute(tc.Config, tc.Data)
			if err != nil {
				b.Fatal(err)
			}
			geoms = append(geoms, g)
			labels = append(labels, tc.Labels)
		}
	}
	st := DefaultStyle()

	b.ReportAllocs()
	for b.Loop() {
		for i, g := range geoms {
			if _, err := Render(g, labels[i], st); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func TestRenderCanvasSize(t *testing.T) {
	cases := []struct {
		name   string
		radius float64
		stroke float64
	}{
		{"huge radius", 1e6, 1},
		{"infinite stroke", 50, math.Inf(1)},
		{"NaN stroke", 50, math.NaN()},
		{"negative extent", 0, -100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := radar.NewConfig(c.radius)
			cfg.StrokeWidth = c.stroke
			g, err := radar.Compute(cfg, []float64{1, 1, 1})
			if err != nil {
				t.Fatal(err)
			}
			img, err := Render(g, nil, DefaultStyle())
			if !errors.Is(err, ErrCanvasSize) {
				t.Errorf("got %v, want ErrCanvasSize", err)
			}
			if img != nil {
				t.Error("image allocated")
			}
		})
	}

	// infinite radii are clamped by the layout and render as an empty chart
	g, err := radar.Compute(radar.NewConfig(math.Inf(1)), []float64{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Render(g, nil, DefaultStyle()); err != nil {
		t.Errorf("infinite radius: %v", err)
	}
}

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

package chartfile

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/radar"
	"seehuhn.de/go/radar/raster"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(strings.NewReader(`{"data": [1, 0.5]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := radar.NewConfig(100)
	if c.Config != want {
		t.Errorf("config = %+v, want %+v", c.Config, want)
	}
	if !slices.Equal(c.Data, []float64{1, 0.5}) {
		t.Errorf("data = %v", c.Data)
	}
	if c.Labels != nil {
		t.Errorf("labels = %q, want nil", c.Labels)
	}
	def := raster.DefaultStyle()
	if c.Style.DataFillOpacity != def.DataFillOpacity || c.Style.PointRadius != def.PointRadius {
		t.Errorf("style differs from default: %+v", c.Style)
	}
}

func TestLoadInnerRadius(t *testing.T) {
	c, err := Load(strings.NewReader(`{"radius": 200}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Config.InnerRadius != 20 {
		t.Errorf("inner radius = %g, want 20", c.Config.InnerRadius)
	}

	c, err = Load(strings.NewReader(`{"radius": 200, "inner_radius": 0}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Config.InnerRadius != 0 {
		t.Errorf("explicit inner radius = %g, want 0", c.Config.InnerRadius)
	}
}

func TestLoadAll(t *testing.T) {
	in := `{
		"radius": 80,
		"placement": "center",
		"shape": "polygon",
		"angle_offset": -1.5,
		"segments": 7,
		"align_segments": false,
		"rings": 3,
		"indicator_sections": 2,
		"indicator_section_length": 4,
		"stroke_width": 2,
		"show_inner_boundary": false,
		"slices": 3,
		"data": [0.1, 0.2, 0.3],
		"labels": ["a", "b", "c"],
		"style": {
			"background": "none",
			"data_fill": "#1f77b480",
			"data_fill_opacity": 1,
			"dash": [4, 2],
			"point_radius": 0,
			"font_size": 10,
			"label_gap": 3,
			"line_cap": "round",
			"line_join": "bevel"
		}
	}`
	c, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	want := radar.Config{
		Radius:                 80,
		InnerRadius:            8,
		Placement:              radar.PlacementCenter,
		Shape:                  radar.ShapePolygon,
		AngleOffset:            -1.5,
		Segments:               7,
		Rings:                  3,
		IndicatorSections:      2,
		IndicatorSectionLength: 4,
		StrokeWidth:            2,
		Slices:                 3,
	}
	if c.Config != want {
		t.Errorf("config = %+v, want %+v", c.Config, want)
	}
	if !slices.Equal(c.Labels, []string{"a", "b", "c"}) {
		t.Errorf("labels = %q", c.Labels)
	}

	st := c.Style
	if st.Background != nil {
		t.Errorf("background = %v, want nil", st.Background)
	}
	if st.DataFill != (color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0x80}) {
		t.Errorf("data fill = %v", st.DataFill)
	}
	if !slices.Equal(st.DataDash, []float64{4, 2}) {
		t.Errorf("dash = %v", st.DataDash)
	}
	if st.DataFillOpacity != 1 || st.PointRadius != 0 || st.FontSize != 10 || st.LabelGap != 3 {
		t.Errorf("style numbers = %+v", st)
	}
	if st.Cap != graphics.LineCapRound || st.Join != graphics.LineJoinBevel {
		t.Errorf("cap/join = %v/%v", st.Cap, st.Join)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"syntax", `{"radius": }`},
		{"unknown field", `{"radios": 10}`},
		{"unknown shape", `{"shape": "star"}`},
		{"unknown placement", `{"placement": "outer"}`},
		{"bad colour", `{"style": {"stroke": "red"}}`},
		{"bad cap", `{"style": {"line_cap": "pointy"}}`},
		{"bad join", `{"style": {"line_join": "mitre"}}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(c.in)); err == nil {
				t.Error("expected error")
			}
		})
	}

	_, err := Load(strings.NewReader(`{"shape": "star"}`))
	if !errors.Is(err, radar.ErrUnknownShape) {
		t.Errorf("unknown shape: got %v, want ErrUnknownShape", err)
	}
}

func TestLoadFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "chart.json")
	err := os.WriteFile(fileName, []byte(`{"rings": 5}`), 0644)
	if err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if c.Config.Rings != 5 {
		t.Errorf("rings = %d, want 5", c.Config.Rings)
	}

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.Color
	}{
		{"#000000", color.NRGBA{A: 255}},
		{"#ff8000", color.NRGBA{R: 255, G: 128, A: 255}},
		{"#FF800040", color.NRGBA{R: 255, G: 128, A: 64}},
		{"none", nil},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "#", "fff", "#fff", "#12345", "#gggggg", "#+12345"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("%q: got %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestInnerRadiusSet(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`{"radius": 50}`, false},
		{`{"radius": 50, "inner_radius": 0}`, true},
		{`{"inner_radius": 12}`, true},
	}
	for _, c := range cases {
		chart, err := Load(strings.NewReader(c.in))
		if err != nil {
			t.Fatal(err)
		}
		if chart.InnerRadiusSet != c.want {
			t.Errorf("%s: InnerRadiusSet = %t, want %t", c.in, chart.InnerRadiusSet, c.want)
		}
	}
}

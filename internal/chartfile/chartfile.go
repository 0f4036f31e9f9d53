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

// Package chartfile reads chart descriptions from JSON.
//
// A chart file holds the chart configuration, an optional style, the data
// series and the axis labels:
//
//	{
//	  "radius": 120,
//	  "shape": "polygon",
//	  "align_segments": true,
//	  "rings": 4,
//	  "data": [1, 0.5, 1, 0, 0.2, 0.67],
//	  "labels": ["a", "b", "c", "d", "e", "f"],
//	  "style": {"data_fill": "#1f77b4", "dash": [4, 2]}
//	}
//
// Fields which are absent keep the values of [radar.NewConfig] and
// [raster.DefaultStyle]. If "inner_radius" is absent, it is one tenth of
// the radius given in the file.
package chartfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/radar"
	"seehuhn.de/go/radar/raster"
)

// ErrInvalidColor indicates a colour which is not of the form "#rrggbb",
// "#rrggbbaa" or "none".
var ErrInvalidColor = errors.New("invalid colour")

// Chart is a chart description read from a file.
type Chart struct {
	Config radar.Config
	Style  raster.Style
	Data   []float64
	Labels []string

	// InnerRadiusSet reports whether the file gave the inner radius
	// explicitly, rather than deriving it from the radius.
	InnerRadiusSet bool
}

// file is the JSON form of a chart. Pointer fields distinguish absent
// values from zero values.
type file struct {
	Radius                 *float64               `json:"radius"`
	InnerRadius            *float64               `json:"inner_radius"`
	Placement              *radar.CenterPlacement `json:"placement"`
	Shape                  *radar.Shape           `json:"shape"`
	AngleOffset            *float64               `json:"angle_offset"`
	Segments               *int                   `json:"segments"`
	AlignSegments          *bool                  `json:"align_segments"`
	Rings                  *int                   `json:"rings"`
	IndicatorSections      *int                   `json:"indicator_sections"`
	IndicatorSectionLength *float64               `json:"indicator_section_length"`
	StrokeWidth            *float64               `json:"stroke_width"`
	ShowInnerBoundary      *bool                  `json:"show_inner_boundary"`
	Slices                 *int                   `json:"slices"`

	Data   []float64  `json:"data"`
	Labels []string   `json:"labels"`
	Style  *fileStyle `json:"style"`
}

type fileStyle struct {
	Background      *string   `json:"background"`
	ChartFill       *string   `json:"chart_fill"`
	Stroke          *string   `json:"stroke"`
	InnerStroke     *string   `json:"inner_stroke"`
	DataFill        *string   `json:"data_fill"`
	DataFillOpacity *float64  `json:"data_fill_opacity"`
	DataStroke      *string   `json:"data_stroke"`
	Dash            []float64 `json:"dash"`
	PointColor      *string   `json:"point_color"`
	PointRadius     *float64  `json:"point_radius"`
	LabelColor      *string   `json:"label_color"`
	FontSize        *float64  `json:"font_size"`
	LabelGap        *float64  `json:"label_gap"`
	LineCap         *string   `json:"line_cap"`
	LineJoin        *string   `json:"line_join"`
}

// Load reads a chart description from r. Unknown fields are an error.
func Load(r io.Reader) (*Chart, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var in file
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("decoding chart: %w", err)
	}

	radius := defaultRadius
	if in.Radius != nil {
		radius = *in.Radius
	}
	cfg := radar.NewConfig(radius)
	set(&cfg.InnerRadius, in.InnerRadius)
	set(&cfg.Placement, in.Placement)
	set(&cfg.Shape, in.Shape)
	set(&cfg.AngleOffset, in.AngleOffset)
	set(&cfg.Segments, in.Segments)
	set(&cfg.AlignSegments, in.AlignSegments)
	set(&cfg.Rings, in.Rings)
	set(&cfg.IndicatorSections, in.IndicatorSections)
	set(&cfg.IndicatorSectionLength, in.IndicatorSectionLength)
	set(&cfg.StrokeWidth, in.StrokeWidth)
	set(&cfg.ShowInnerBoundary, in.ShowInnerBoundary)
	set(&cfg.Slices, in.Slices)

	st := raster.DefaultStyle()
	if in.Style != nil {
		if err := in.Style.apply(&st); err != nil {
			return nil, err
		}
	}

	return &Chart{
		Config: cfg,
		Style:  st,
		Data:   in.Data,
		Labels: in.Labels,

		InnerRadiusSet: in.InnerRadius != nil,
	}, nil
}

// LoadFile reads a chart description from the named file.
func LoadFile(fileName string) (*Chart, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return c, nil
}

func (fs *fileStyle) apply(st *raster.Style) error {
	colors := []struct {
		name string
		in   *string
		out  *color.Color
	}{
		{"background", fs.Background, &st.Background},
		{"chart_fill", fs.ChartFill, &st.ChartFill},
		{"stroke", fs.Stroke, &st.Stroke},
		{"inner_stroke", fs.InnerStroke, &st.InnerStroke},
		{"data_fill", fs.DataFill, &st.DataFill},
		{"data_stroke", fs.DataStroke, &st.DataStroke},
		{"point_color", fs.PointColor, &st.PointColor},
		{"label_color", fs.LabelColor, &st.LabelColor},
	}
	for _, c := range colors {
		if c.in == nil {
			continue
		}
		col, err := ParseColor(*c.in)
		if err != nil {
			return fmt.Errorf("style %s: %w", c.name, err)
		}
		*c.out = col
	}

	set(&st.DataFillOpacity, fs.DataFillOpacity)
	set(&st.PointRadius, fs.PointRadius)
	set(&st.FontSize, fs.FontSize)
	set(&st.LabelGap, fs.LabelGap)
	if fs.Dash != nil {
		st.DataDash = fs.Dash
	}

	if fs.LineCap != nil {
		lc, ok := lineCaps[*fs.LineCap]
		if !ok {
			return fmt.Errorf("style line_cap: unknown value %q", *fs.LineCap)
		}
		st.Cap = lc
	}
	if fs.LineJoin != nil {
		lj, ok := lineJoins[*fs.LineJoin]
		if !ok {
			return fmt.Errorf("style line_join: unknown value %q", *fs.LineJoin)
		}
		st.Join = lj
	}
	return nil
}

// ParseColor parses a colour of the form "#rrggbb" or "#rrggbbaa". The
// value "none" gives a nil colour, which disables the corresponding part
// of the chart.
func ParseColor(s string) (color.Color, error) {
	if s == "none" {
		return nil, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	x, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		x = x<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(x >> 24),
		G: uint8(x >> 16),
		B: uint8(x >> 8),
		A: uint8(x),
	}, nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

var lineCaps = map[string]graphics.LineCapStyle{
	"butt":   graphics.LineCapButt,
	"round":  graphics.LineCapRound,
	"square": graphics.LineCapSquare,
}

var lineJoins = map[string]graphics.LineJoinStyle{
	"miter": graphics.LineJoinMiter,
	"round": graphics.LineJoinRound,
	"bevel": graphics.LineJoinBevel,
}

// defaultRadius is the outer radius of a chart file without "radius".
const defaultRadius = 100.0

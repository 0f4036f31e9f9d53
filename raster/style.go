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

	"seehuhn.de/go/pdf/graphics"
)

// Style holds the colours and pens of a chart. A nil colour disables the
// corresponding part.
type Style struct {
	Background  color.Color // whole canvas
	ChartFill   color.Color // inside the outer boundary
	Stroke      color.Color // outer boundary and rings
	InnerStroke color.Color // inner boundary, spokes and ticks

	DataFill        color.Color
	DataFillOpacity float64 // 0..1, applied on top of DataFill's alpha
	DataStroke      color.Color
	DataDash        []float64 // dash pattern of the data outline, nil for solid

	PointColor  color.Color
	PointRadius float64

	LabelColor color.Color
	FontSize   float64 // in pixels
	LabelGap   float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle
}

// DefaultStyle returns black guide lines on white, and a half transparent
// red data polygon.
func DefaultStyle() Style {
	return Style{
		Background:      color.White,
		Stroke:          color.Black,
		InnerStroke:     color.Black,
		DataFill:        color.NRGBA{R: 255, A: 255},
		DataFillOpacity: 0.5,
		DataStroke:      color.Black,
		PointColor:      color.Black,
		PointRadius:     5,
		LabelColor:      color.Black,
		FontSize:        12,
		Cap:             graphics.LineCapButt,
		Join:            graphics.LineJoinMiter,
	}
}

// pen returns the pen for lines of the given width.
func (s *Style) pen(width float64) Pen {
	return Pen{
		Width:      width,
		Cap:        s.Cap,
		Join:       s.Join,
		MiterLimit: defaultMiterLimit,
	}
}

// WithOpacity scales the alpha channel of col by a, clamped to 0..1.
func WithOpacity(col color.Color, a float64) color.Color {
	if col == nil {
		return nil
	}
	a = max(0, min(1, a))
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}

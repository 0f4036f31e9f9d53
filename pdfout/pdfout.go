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

// Package pdfout writes chart geometry computed by package radar as a
// single page PDF file.
package pdfout

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/radar"
	"seehuhn.de/go/radar/raster"
)

// Write creates a PDF file showing the chart described by g, using the
// colours and pens of st. One layout unit becomes one PDF point.
//
// Extents which are not finite and positive give an error wrapping
// [raster.ErrCanvasSize].
//
// PDF output is grayscale: colours are converted to their luminance, and
// translucent colours are blended with white. Labels are not included.
func Write(fileName string, g *radar.Geometry, st raster.Style) error {
	e := g.Layout.Extent()
	if !(e > 0 && !math.IsInf(e, 1)) {
		return fmt.Errorf("%w: extent %g", raster.ErrCanvasSize, e)
	}
	paper := &pdf.Rectangle{URx: e, URy: e}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// The chart uses a top-left origin, PDF uses bottom-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, e})

	if st.Background != nil {
		page.SetFillColor(pdfcolor.DeviceGray(luminance(st.Background)))
		page.Rectangle(0, 0, e, e)
		page.Fill()
	}

	drawPath := func(d *path.Data) bool {
		empty := true
		for cmd, pts := range d.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
			empty = false
		}
		return !empty
	}

	if g.Layout.StrokeWidth > 0 {
		page.SetLineWidth(g.Layout.StrokeWidth)
	}
	page.SetLineCap(st.Cap)
	page.SetLineJoin(st.Join)

	var dash []float64
	for _, l := range raster.Layers(g, st) {
		if l.Fill != nil {
			page.SetFillColor(pdfcolor.DeviceGray(luminance(blendWhite(l.Fill))))
			if drawPath(l.Path) {
				page.Fill()
			}
		}
		if l.Stroke != nil && g.Layout.StrokeWidth > 0 {
			if !slices.Equal(l.Dash, dash) {
				page.SetLineDash(l.Dash, 0)
				dash = l.Dash
			}
			page.SetStrokeColor(pdfcolor.DeviceGray(luminance(blendWhite(l.Stroke))))
			if drawPath(l.Path) {
				page.Stroke()
			}
		}
	}

	radar.Logger().Debug("pdfout: chart written", "file", fileName, "extent", e)
	return page.Close()
}

// luminance converts col to a gray level between 0 and 1.
func luminance(col color.Color) float64 {
	g := color.GrayModel.Convert(col).(color.Gray)
	return float64(g.Y) / 255
}

// blendWhite mixes col with white according to its alpha channel, as if
// painted onto a white page.
func blendWhite(col color.Color) color.Gray {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	opaque := color.GrayModel.Convert(color.NRGBA{R: n.R, G: n.G, B: n.B, A: 255}).(color.Gray)
	a := float64(n.A) / 255
	y := 255 - a*(255-float64(opaque.Y))
	return color.Gray{Y: uint8(y + 0.5)}
}

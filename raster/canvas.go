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
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Canvas paints paths onto an RGBA image. Coverage is computed by
// [vector.Rasterizer]; strokes are converted to filled outlines first.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// Flatness controls curve approximation accuracy in pixels.
	// Typical values: 0.25–1.0. Must be positive.
	Flatness float64

	img *image.RGBA
	vr  *vector.Rasterizer

	// Internal buffers (reused across calls)
	stroke        []vec.Vec2 // stroke outline polygons (contiguous)
	strokeOffsets []int      // start index of each polygon in stroke[]
}

// NewCanvas allocates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Flatness: defaultFlatness,
		img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		vr:       vector.NewRasterizer(width, height),
	}
}

// Image returns the image the canvas draws on.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear sets every pixel to col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Fill paints the interior of p, using the nonzero winding rule.
func (c *Canvas) Fill(p *path.Data, col color.Color) {
	if col == nil {
		return
	}
	c.reset()
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			c.vr.MoveTo(f32(pts[0].X), f32(pts[0].Y))
		case path.CmdLineTo:
			c.vr.LineTo(f32(pts[0].X), f32(pts[0].Y))
		case path.CmdQuadTo:
			c.vr.QuadTo(f32(pts[0].X), f32(pts[0].Y), f32(pts[1].X), f32(pts[1].Y))
		case path.CmdCubeTo:
			c.vr.CubeTo(f32(pts[0].X), f32(pts[0].Y), f32(pts[1].X), f32(pts[1].Y), f32(pts[2].X), f32(pts[2].Y))
		case path.CmdClose:
			c.vr.ClosePath()
		}
	}
	c.draw(col)
}

// Stroke paints the outline of p with the given pen.
func (c *Canvas) Stroke(p *path.Data, pen Pen, col color.Color) {
	if col == nil || pen.Width <= 0 {
		return
	}
	if pen.MiterLimit < 1 {
		pen.MiterLimit = defaultMiterLimit
	}

	c.stroke = c.stroke[:0]
	c.strokeOffsets = c.strokeOffsets[:0]
	for _, pl := range flatten(p, c.Flatness) {
		if len(pen.Dash) > 0 {
			for _, dash := range applyDash(pl, pen.Dash, pen.DashPhase, c.Flatness) {
				c.outlinePolyline(dash, &pen)
			}
		} else {
			c.outlinePolyline(pl, &pen)
		}
	}
	if len(c.strokeOffsets) == 0 {
		return
	}

	// fill all stroke polygons together, so that overlaps are painted once
	c.reset()
	for i, start := range c.strokeOffsets {
		end := len(c.stroke)
		if i+1 < len(c.strokeOffsets) {
			end = c.strokeOffsets[i+1]
		}
		poly := c.stroke[start:end]
		c.vr.MoveTo(f32(poly[0].X), f32(poly[0].Y))
		for _, pt := range poly[1:] {
			c.vr.LineTo(f32(pt.X), f32(pt.Y))
		}
		c.vr.ClosePath()
	}
	c.draw(col)
}

func (c *Canvas) reset() {
	b := c.img.Bounds()
	c.vr.Reset(b.Dx(), b.Dy())
}

// draw composites the accumulated coverage in colour col over the image.
func (c *Canvas) draw(col color.Color) {
	c.vr.DrawOp = draw.Over
	c.vr.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func f32(x float64) float32 {
	return float32(x)
}

// Default values for canvas parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in
	// pixels. 0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit is the default miter limit, matching PDF/PostScript.
	defaultMiterLimit = 10.0
)

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
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/radar"
)

// NewFace returns the Go Regular font at the given size in pixels.
func NewFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// FaceMeasurer measures labels as they are drawn by [Canvas.DrawText].
type FaceMeasurer struct {
	Face font.Face
}

// NewFaceMeasurer returns a measurer for the Go Regular font at the given
// size in pixels.
func NewFaceMeasurer(size float64) (FaceMeasurer, error) {
	face, err := NewFace(size)
	if err != nil {
		return FaceMeasurer{}, err
	}
	return FaceMeasurer{Face: face}, nil
}

// Measure implements the [radar.Measurer] interface. The height is the
// line height from ascent to descent.
func (m FaceMeasurer) Measure(label string) radar.Size {
	metrics := m.Face.Metrics()
	return radar.Size{
		Width:  fromFixed(font.MeasureString(m.Face, label)),
		Height: fromFixed(metrics.Ascent + metrics.Descent),
	}
}

// DrawText draws a single line of text with its top-left corner at pos.
func (c *Canvas) DrawText(face font.Face, pos vec.Vec2, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: toFixed(pos.X),
			Y: toFixed(pos.Y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}

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

package radar

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Size is the measured size of a rendered label.
type Size struct {
	Width, Height float64
}

// Measurer measures label text. It is implemented by the drawing surface.
type Measurer interface {
	Measure(label string) Size
}

// Zone classifies an anchor coordinate relative to the chart center.
type Zone int

const (
	// ZoneMiddle is the band of half a radius around the center. Labels
	// in this band are centered on their anchor.
	ZoneMiddle Zone = iota

	// ZoneBefore is the left (for x) or top (for y) part of the chart.
	// Labels are placed entirely before the anchor.
	ZoneBefore

	// ZoneAfter is the right (for x) or bottom (for y) part of the chart.
	// Labels are placed entirely after the anchor.
	ZoneAfter
)

// LabelPlacement is the position of one label.
type LabelPlacement struct {
	Anchor   vec.Vec2 // point on the outer boundary
	Size     Size     // measured label size
	Offset   vec.Vec2 // from Anchor to the top-left corner of the label
	Position vec.Vec2 // top-left corner of the label

	Horizontal, Vertical Zone
}

// Bounds returns the rectangle covered by the label.
func (p LabelPlacement) Bounds() rect.Rect {
	return rect.Rect{
		LLx: p.Position.X,
		LLy: p.Position.Y,
		URx: p.Position.X + p.Size.Width,
		URy: p.Position.Y + p.Size.Height,
	}
}

// PlaceLabels positions labels of the given sizes next to their anchor
// points, so that labels stay outside the chart on the left and right and
// are centered above and below it. The zone boundaries are a quarter of
// the radius away from the center. gap is the distance between anchor and
// label, it does not apply to centered coordinates.
//
// Label i belongs to anchors[i]. If the slices differ in length, the extra
// elements of the longer one are ignored.
func (l Layout) PlaceLabels(anchors []vec.Vec2, sizes []Size, gap float64) []LabelPlacement {
	n := min(len(anchors), len(sizes))
	if n == 0 {
		return nil
	}

	lo := l.Center - l.Radius/4
	hi := l.Center + l.Radius/4

	res := make([]LabelPlacement, n)
	for i := range n {
		a := anchors[i]
		sz := sizes[i]
		hZone := zoneOf(a.X, lo, hi)
		vZone := zoneOf(a.Y, lo, hi)
		off := vec.Vec2{
			X: zoneShift(hZone, sz.Width, gap),
			Y: zoneShift(vZone, sz.Height, gap),
		}
		res[i] = LabelPlacement{
			Anchor:     a,
			Size:       sz,
			Offset:     off,
			Position:   a.Add(off),
			Horizontal: hZone,
			Vertical:   vZone,
		}
	}
	return res
}

func zoneOf(x, lo, hi float64) Zone {
	switch {
	case x < lo:
		return ZoneBefore
	case x > hi:
		return ZoneAfter
	default:
		return ZoneMiddle
	}
}

// zoneShift returns the offset from the anchor coordinate to the start of
// a label of the given extent.
func zoneShift(z Zone, extent, gap float64) float64 {
	switch z {
	case ZoneBefore:
		return -(extent + gap)
	case ZoneAfter:
		return gap
	default:
		return -extent / 2
	}
}

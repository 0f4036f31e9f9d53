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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Segment is a straight line from A to B.
type Segment struct {
	A, B vec.Vec2
}

// Length returns the distance between the end points.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Tick is an indicator mark across a spoke.
type Tick struct {
	Axis  int      // index of the spoke
	Index int      // index of the tick along the spoke, from the inside out
	Mid   vec.Vec2 // point where the tick crosses the spoke
	Segment
}

// Spokes returns one line per segment axis, from the chart center to the
// outer boundary.
func (l Layout) Spokes() []Segment {
	if l.Segments == 0 {
		return nil
	}
	origin := l.Origin()
	spokes := make([]Segment, l.Segments)
	for i := range spokes {
		spokes[i] = Segment{
			A: origin,
			B: l.Project(AngleOf(i, l.Segments, l.AngleOffset), 1),
		}
	}
	return spokes
}

// Ticks returns the indicator ticks of all spokes, spoke by spoke. Tick j
// of a spoke sits at normalized distance (j+1)/(TickCount+1) and
// extends by TickLength to both sides, perpendicular to the
// spoke.
func (l Layout) Ticks() []Tick {
	n := l.TickCount
	if l.Segments == 0 || n == 0 {
		return nil
	}

	ticks := make([]Tick, 0, l.Segments*n)
	for i := range l.Segments {
		angle := AngleOf(i, l.Segments, l.AngleOffset)
		perp := angle + math.Pi/2
		d := vec.Vec2{X: math.Cos(perp), Y: math.Sin(perp)}.Mul(l.TickLength)
		for j := range n {
			mid := l.Project(angle, float64(j+1)/float64(n+1))
			ticks = append(ticks, Tick{
				Axis:    i,
				Index:   j,
				Mid:     mid,
				Segment: Segment{A: mid.Sub(d), B: mid.Add(d)},
			})
		}
	}
	return ticks
}

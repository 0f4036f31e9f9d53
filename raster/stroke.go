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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Pen describes how lines are stroked.
type Pen struct {
	// Width is the line width. Nothing is drawn for widths <= 0.
	Width float64

	// Cap is the style of the open ends of lines.
	Cap graphics.LineCapStyle

	// Join is the style of corners.
	Join graphics.LineJoinStyle

	// MiterLimit caps the length of miter joins, relative to the line
	// width. Must be at least 1.
	MiterLimit float64

	// Dash holds alternating on/off lengths. Nil means solid lines.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which every
	// subpath starts.
	DashPhase float64
}

// polyline is a flattened subpath.
type polyline struct {
	pts    []vec.Vec2
	closed bool
}

// strokeSegment is a line segment with precomputed direction.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// flatten converts a path to polylines. Curves are replaced by line
// segments which deviate from the curve by at most flatness.
func flatten(p *path.Data, flatness float64) []polyline {
	var res []polyline
	var cur polyline
	var current vec.Vec2

	flush := func() {
		if len(cur.pts) > 0 {
			res = append(res, cur)
		}
		cur = polyline{}
	}
	emit := func(_, to vec.Vec2) {
		cur.pts = append(cur.pts, to)
	}
	begin := func() {
		// drawing after a close starts a new subpath at the current point
		if len(cur.pts) == 0 {
			cur.pts = append(cur.pts, current)
		}
	}

	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = pts[0]
			cur.pts = append(cur.pts, current)

		case path.CmdLineTo:
			begin()
			emit(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			begin()
			flattenQuadratic(current, pts[0], pts[1], flatness, emit)
			current = pts[1]

		case path.CmdCubeTo:
			begin()
			flattenCubic(current, pts[0], pts[1], pts[2], flatness, emit)
			current = pts[2]

		case path.CmdClose:
			if len(cur.pts) > 0 {
				cur.closed = true
				current = cur.pts[0]
				flush()
			}
		}
	}
	flush()
	return res
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errLen := e.Length(); errLen > flatness {
		n = int(math.Ceil(math.Sqrt(errLen / flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// The segment count follows Wang's formula.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		if nFloat := math.Sqrt(3 * m / (4 * flatness)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// applyDash splits a polyline into the "on" parts of a dash pattern.
// Closed polylines are unrolled, the dashes do not wrap around. Invalid
// patterns, and patterns whose total length is below minLen, leave the
// polyline solid.
func applyDash(pl polyline, dash []float64, phase, minLen float64) []polyline {
	n := len(dash)
	patternLen := 0.0
	for _, d := range dash {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return []polyline{pl}
		}
		patternLen += d
	}
	if n%2 == 1 {
		patternLen *= 2
	}
	if patternLen <= 0 || patternLen < minLen {
		return []polyline{pl}
	}
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		phase = 0
	}

	pts := pl.pts
	if pl.closed && len(pts) > 1 {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	if len(pts) < 2 {
		return nil
	}

	// find the dash element containing the phase
	phase = math.Mod(phase, patternLen)
	if phase < 0 {
		phase += patternLen
	}
	idx := 0
	for phase >= dash[idx%n] {
		phase -= dash[idx%n]
		idx++
	}
	remaining := dash[idx%n] - phase
	on := idx%2 == 0

	var res []polyline
	var cur []vec.Vec2
	if on {
		cur = append(cur, pts[0])
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		ab := b.Sub(a)
		segLen := ab.Length()
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			split := a.Add(ab.Mul(pos / segLen))
			if on {
				res = append(res, polyline{pts: append(cur, split)})
				cur = nil
			} else {
				cur = []vec.Vec2{split}
			}
			idx++
			remaining = dash[idx%n]
			on = idx%2 == 0
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		res = append(res, polyline{pts: cur})
	}
	return res
}

// strokeSegments converts a polyline to segments, skipping degenerate
// ones.
func strokeSegments(pl polyline) []strokeSegment {
	pts := pl.pts
	if pl.closed && len(pts) > 1 {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	var segs []strokeSegment
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		length := d.Length()
		if length < zeroLengthThreshold {
			continue
		}
		t := d.Mul(1 / length)
		segs = append(segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
	}
	return segs
}

// outlinePolyline adds the stroke outline of pl to c.stroke. The outline
// is a union of polygons: one rectangle per segment, plus cap and join
// pieces. All polygons have the same orientation, so that overlaps are
// painted once.
func (c *Canvas) outlinePolyline(pl polyline, pen *Pen) {
	d := pen.Width / 2
	segs := strokeSegments(pl)
	if len(segs) == 0 {
		// a dot: only round caps produce ink
		if len(pl.pts) > 0 && pen.Cap == graphics.LineCapRound {
			c.addDisc(pl.pts[0], d)
		}
		return
	}

	for _, s := range segs {
		c.addPolygon(
			s.A.Add(s.N.Mul(d)),
			s.B.Add(s.N.Mul(d)),
			s.B.Sub(s.N.Mul(d)),
			s.A.Sub(s.N.Mul(d)),
		)
	}

	for i := 1; i < len(segs); i++ {
		c.addJoin(&segs[i-1], &segs[i], d, pen)
	}
	if pl.closed {
		c.addJoin(&segs[len(segs)-1], &segs[0], d, pen)
	} else {
		first, last := &segs[0], &segs[len(segs)-1]
		c.addCap(first.A, first.T.Mul(-1), d, pen.Cap)
		c.addCap(last.B, last.T, d, pen.Cap)
	}
}

// addJoin fills the wedge on the outer side of the corner between s1 and
// s2.
func (c *Canvas) addJoin(s1, s2 *strokeSegment, d float64, pen *Pen) {
	P := s1.B
	cosTheta := s1.T.Dot(s2.T)
	sinTheta := s1.T.X*s2.T.Y - s1.T.Y*s2.T.X
	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}

	if pen.Join == graphics.LineJoinRound {
		c.addDisc(P, d)
		return
	}

	// for a turn towards +N, the outer side is -N
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	p1 := P.Add(s1.N.Mul(side * d))
	p2 := P.Add(s2.N.Mul(side * d))

	if pen.Join == graphics.LineJoinMiter && cosTheta > cuspCosineThreshold {
		// miter length relative to the line width is 1/sin(φ/2) = 1/cos(θ/2)
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		if sinHalf > 0 && 1/sinHalf <= pen.MiterLimit+miterEpsilon {
			bisector := s1.N.Add(s2.N).Mul(side)
			if l := bisector.Length(); l > zeroLengthThreshold {
				miter := P.Add(bisector.Mul(d / (sinHalf * l)))
				c.addPolygon(P, p1, miter, p2)
				return
			}
		}
	}

	// bevel
	c.addPolygon(P, p1, p2)
}

// addCap adds the cap at P, where T points away from the line.
func (c *Canvas) addCap(P, T vec.Vec2, d float64, style graphics.LineCapStyle) {
	switch style {
	case graphics.LineCapRound:
		c.addDisc(P, d)
	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}
		ext := P.Add(T.Mul(d))
		c.addPolygon(P.Add(N.Mul(d)), ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)), P.Sub(N.Mul(d)))
	}
}

// addDisc adds a circle of radius r, approximated by a polygon whose
// edges deviate from the circle by at most c.Flatness.
func (c *Canvas) addDisc(center vec.Vec2, r float64) {
	if r <= 0 {
		return
	}
	n := 8
	if r > c.Flatness {
		step := 2 * math.Acos(1-c.Flatness/r)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	start := len(c.stroke)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		c.stroke = append(c.stroke, vec.Vec2{
			X: center.X + r*math.Cos(angle),
			Y: center.Y + r*math.Sin(angle),
		})
	}
	c.finishPolygon(start)
}

// addPolygon adds a polygon to c.stroke.
func (c *Canvas) addPolygon(pts ...vec.Vec2) {
	start := len(c.stroke)
	c.stroke = append(c.stroke, pts...)
	c.finishPolygon(start)
}

// finishPolygon records the polygon starting at c.stroke[start] and
// brings it into the common orientation (negative signed area).
func (c *Canvas) finishPolygon(start int) {
	poly := c.stroke[start:]
	if len(poly) < 3 {
		c.stroke = c.stroke[:start]
		return
	}
	area := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	if area > 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	c.strokeOffsets = append(c.strokeOffsets, start)
}

// Numerical tolerances for stroking.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	// Segments shorter than this are skipped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold is the cosine threshold for detecting cusps
	// (path doubling back on itself). cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999

	// miterEpsilon absorbs rounding at the miter limit.
	miterEpsilon = 1e-10
)

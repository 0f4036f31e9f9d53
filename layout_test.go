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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// near reports whether two points agree up to rounding errors.
func near(a, b vec.Vec2) bool {
	return a.Sub(b).Length() < 1e-9
}

func TestNewLayout(t *testing.T) {
	cfg := NewConfig(100)
	l := NewLayout(cfg, 6)

	if l.Radius != 100 || l.InnerRadius != 10 {
		t.Errorf("radii = %g, %g; want 100, 10", l.Radius, l.InnerRadius)
	}
	if l.Center != 111 {
		t.Errorf("center = %g, want 111", l.Center)
	}
	if l.CenterOffset != 10 {
		t.Errorf("center offset = %g, want 10", l.CenterOffset)
	}
	if l.CanvasSize() != 222 || l.Extent() != 232 {
		t.Errorf("canvas size %g, extent %g; want 222, 232", l.CanvasSize(), l.Extent())
	}
	want := rect.Rect{LLx: 0, LLy: 0, URx: 232, URy: 232}
	if l.Bounds() != want {
		t.Errorf("bounds = %v, want %v", l.Bounds(), want)
	}
	if l.DataAxes != 6 || l.Segments != 0 {
		t.Errorf("axes = %d data, %d segments; want 6, 0", l.DataAxes, l.Segments)
	}
}

func TestCenterPlacement(t *testing.T) {
	cases := []struct {
		placement CenterPlacement
		inner     float64
		want      float64
	}{
		{PlacementInner, 10, 10},
		{PlacementInner, -5, -5},
		{PlacementInner, 0, 0},
		{PlacementCenter, 10, 0},
		{CenterPlacement(7), 10, 0},
	}
	for _, c := range cases {
		cfg := NewConfig(100)
		cfg.Placement = c.placement
		cfg.InnerRadius = c.inner
		l := NewLayout(cfg, 3)
		if l.CenterOffset != c.want {
			t.Errorf("%s, inner %g: offset %g, want %g",
				c.placement, c.inner, l.CenterOffset, c.want)
		}
	}
}

func TestNegativeRadius(t *testing.T) {
	for _, r := range []float64{-40, math.NaN(), math.Inf(1), math.Inf(-1)} {
		cfg := NewConfig(100)
		cfg.Radius = r
		l := NewLayout(cfg, 3)
		if l.Radius != 0 {
			t.Errorf("radius %g: clamped to %g, want 0", r, l.Radius)
		}
		if l.Center != defaultStrokeWidth+Buffer {
			t.Errorf("radius %g: center %g", r, l.Center)
		}
	}
}

func TestNonFiniteInnerRadius(t *testing.T) {
	for _, r := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		cfg := NewConfig(100)
		cfg.InnerRadius = r
		l := NewLayout(cfg, 3)
		if l.InnerRadius != 0 || l.CenterOffset != 0 {
			t.Errorf("inner radius %g: got %g, offset %g; want 0", r, l.InnerRadius, l.CenterOffset)
		}
		if _, ok := l.Inner(); ok {
			t.Errorf("inner radius %g: inner boundary visible", r)
		}
		for i, v := range l.Series([]float64{0, 0.5, 1}).Vertices {
			if !isFinite(v.X) || !isFinite(v.Y) {
				t.Errorf("inner radius %g: vertex %d = %v", r, i, v)
			}
		}
	}
}

func TestSegmentCount(t *testing.T) {
	cases := []struct {
		segments int
		align    bool
		dataLen  int
		want     int
	}{
		{0, false, 6, 0},
		{5, false, 6, 5},
		{-3, false, 6, 0},
		{7, true, 3, 3},
		{7, true, 0, 0},
	}
	for _, c := range cases {
		cfg := NewConfig(100)
		cfg.Segments = c.segments
		cfg.AlignSegments = c.align
		if got := NewLayout(cfg, c.dataLen).Segments; got != c.want {
			t.Errorf("segments %d, align %t, data %d: got %d, want %d",
				c.segments, c.align, c.dataLen, got, c.want)
		}
	}
}

func TestProject(t *testing.T) {
	cfg := NewConfig(100)
	l := NewLayout(cfg, 4)
	origin := l.Origin()

	if got := l.Project(0, 1); !near(got, vec.Vec2{X: 211, Y: 111}) {
		t.Errorf("Project(0, 1) = %v", got)
	}
	if got := l.Project(math.Pi/2, 0.5); !near(got, vec.Vec2{X: 111, Y: 111 + 55}) {
		t.Errorf("Project(π/2, 0.5) = %v", got)
	}

	// distance 0 is the inner boundary point, in both placement modes
	for _, p := range []CenterPlacement{PlacementInner, PlacementCenter} {
		cfg.Placement = p
		l := NewLayout(cfg, 4)
		for _, a := range AxisAngles(7, 0.2) {
			d := l.Project(a, 0).Sub(origin).Length()
			if math.Abs(d-l.CenterOffset) > 1e-9 {
				t.Errorf("%s: Project(%g, 0) at distance %g, want %g", p, a, d, l.CenterOffset)
			}
		}
	}

	// values beyond 1 are extrapolated
	d := l.Project(1, 1.5).Sub(origin).Length()
	if want := 10 + 1.5*90; math.Abs(d-want) > 1e-9 {
		t.Errorf("Project(1, 1.5) at distance %g, want %g", d, want)
	}
}

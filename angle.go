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

import "math"

// AngleOf returns the angle of axis index out of axisCount axes, in
// radians, rotated by offset. Axis 0 points along the positive x-axis and
// angles grow towards the positive y-axis.
//
// axisCount must be positive. Callers treat an axis count of zero as
// "nothing to draw", see [AxisAngles].
func AngleOf(index, axisCount int, offset float64) float64 {
	return float64(index)/float64(axisCount)*fullTurn + offset
}

// AxisAngles returns the angles of all n axes. The result is nil if n is
// not positive.
func AxisAngles(n int, offset float64) []float64 {
	if n <= 0 {
		return nil
	}
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = AngleOf(i, n, offset)
	}
	return angles
}

// fullTurn is 2π. It must stay the exact constant: angles of different
// charts are compared with each other.
const fullTurn = 2 * math.Pi

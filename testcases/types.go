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

package testcases

import (
	"math"

	"seehuhn.de/go/radar"
)

// Case defines a single chart fixture.
type Case struct {
	Name   string       // lowercase a-z, 0-9 and _ only
	Config radar.Config // chart configuration
	Data   []float64    // data series
	Labels []string     // axis labels, may be nil
}

// config returns the default configuration for the given radius, modified
// by f.
func config(radius float64, f func(c *radar.Config)) radar.Config {
	c := radar.NewConfig(radius)
	if f != nil {
		f(&c)
	}
	return c
}

// quarterTurn rotates the first axis to point upwards.
const quarterTurn = -math.Pi / 2

// sixValues is a six axis series with a zero value on axis 3.
var sixValues = []float64{1, 0.5, 1, 0, 0.2, 0.67}

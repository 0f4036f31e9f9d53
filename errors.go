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
	"errors"
	"fmt"
)

// ErrAxisMismatch indicates that the length of the data series does not
// match the axis count required by the configuration.
var ErrAxisMismatch = errors.New("data length does not match axis count")

// ErrUnknownShape indicates a Shape value other than ShapeCircle and
// ShapePolygon.
var ErrUnknownShape = errors.New("unknown shape")

// ErrUnknownPlacement indicates a CenterPlacement value other than
// PlacementInner and PlacementCenter.
var ErrUnknownPlacement = errors.New("unknown center placement")

// ConfigurationError is returned by [Compute] for configurations which
// cannot be drawn. No geometry is produced in this case.
type ConfigurationError struct {
	Field string // name of the offending Config field
	Want  int    // required value, if any
	Got   int    // actual value
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Want != 0 {
		return fmt.Sprintf("invalid chart configuration (%s): %v: want %d, got %d",
			e.Field, e.Err, e.Want, e.Got)
	}
	return fmt.Sprintf("invalid chart configuration (%s): %v: %d", e.Field, e.Err, e.Got)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

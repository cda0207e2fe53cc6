/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package proj

import (
	"strings"

	"github.com/pkg/errors"
)

const enu = "enu"

// A Transformer takes input coordinates and returns output coordinates and
// an error.
type Transformer func(X, Y float64) (x, y float64, err error)

// NewTransform creates a function that transforms a point from sr to the
// destination spatial reference.
func (sr *SR) NewTransform(dst *SR) (Transformer, error) {
	if dst == nil {
		return nil, errors.New("proj: destination is nil")
	}
	return func(x, y float64) (float64, float64, error) {
		p, err := Transform(sr, dst, Point{X: x, Y: y})
		if err != nil {
			return 0, 0, err
		}
		return p.X, p.Y, nil
	}, nil
}

// Transform converts p from the src spatial reference to dst. Geographic
// coordinates are in degrees and projected coordinates are in the units
// of the spatial reference. The point either passes through every stage
// or an error is returned along with the zero Point.
func Transform(src, dst *SR, p Point) (Point, error) {
	if src == nil || dst == nil {
		return Point{}, errors.New("proj: nil spatial reference")
	}
	var err error
	if src.def.Axis != enu {
		if p, err = adjustAxis(src.def.Axis, false, p); err != nil {
			return Point{}, err
		}
	}

	// Transform source points to long/lat, if they aren't already.
	if src.geographic {
		p.X *= Deg2Rad
		p.Y *= Deg2Rad
	} else {
		p.X *= src.def.ToMeter
		p.Y *= src.def.ToMeter
		if p.X, p.Y, err = src.proj.Inverse(p.X, p.Y); err != nil {
			return Point{}, errors.Wrapf(err, "inverse %s", src.def.Name)
		}
	}
	if isSet(src.def.FromGreenwich) {
		p.X += src.def.FromGreenwich
	}

	if p.X, p.Y, p.Z, err = datumTransform(src.datum, dst.datum, p.X, p.Y, p.Z); err != nil {
		return Point{}, errors.Wrap(err, "datum shift")
	}

	if isSet(dst.def.FromGreenwich) {
		p.X -= dst.def.FromGreenwich
	}
	if dst.geographic {
		p.X *= Rad2Deg
		p.Y *= Rad2Deg
	} else {
		if p.X, p.Y, err = dst.proj.Forward(p.X, p.Y); err != nil {
			return Point{}, errors.Wrapf(err, "forward %s", dst.def.Name)
		}
		p.X /= dst.def.ToMeter
		p.Y /= dst.def.ToMeter
	}

	if dst.def.Axis != enu {
		if p, err = adjustAxis(dst.def.Axis, true, p); err != nil {
			return Point{}, err
		}
	}
	return p, nil
}

func checkAxis(axis string) error {
	if len(axis) != 3 {
		return configErr("axis", "%q must have three characters", axis)
	}
	var seen [3]bool
	for _, c := range axis {
		i := strings.IndexRune("ewnsud", c)
		if i < 0 {
			return configErr("axis", "%q contains invalid direction %q", axis, c)
		}
		if seen[i/2] {
			return configErr("axis", "%q repeats a direction", axis)
		}
		seen[i/2] = true
	}
	return nil
}

// adjustAxis converts between the east-north-up orientation used
// internally and the axis orientation of a spatial reference. denorm is
// true when converting from internal to the spatial reference.
func adjustAxis(axis string, denorm bool, p Point) (Point, error) {
	in := [3]float64{p.X, p.Y, p.Z}
	out := in
	for i := 0; i < 3; i++ {
		var v float64
		var t int
		switch axis[i] {
		case 'e', 'w':
			t = 0
		case 'n', 's':
			t = 1
		case 'u', 'd':
			t = 2
		default:
			return Point{}, configErr("axis", "unknown axis %q", axis[i])
		}
		sgn := 1.0
		if axis[i] == 'w' || axis[i] == 's' || axis[i] == 'd' {
			sgn = -1
		}
		if denorm {
			// internal component t is written to position i
			v = in[t]
			out[i] = sgn * v
		} else {
			// position i holds internal component t
			v = in[i]
			out[t] = sgn * v
		}
	}
	return Point{X: out[0], Y: out[1], Z: out[2]}, nil
}

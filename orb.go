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
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// Orb returns a copy of g with every coordinate transformed by t. The
// input geometry is not modified. If any coordinate fails, the first
// error is returned and the result is nil.
func (t Transformer) Orb(g orb.Geometry) (orb.Geometry, error) {
	if g == nil {
		return nil, nil
	}
	var err error
	out := project.Geometry(orb.Clone(g), func(p orb.Point) orb.Point {
		if err != nil {
			return p
		}
		var x, y float64
		if x, y, err = t(p[0], p[1]); err != nil {
			return p
		}
		return orb.Point{x, y}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

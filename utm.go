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

import "math"

// utm is Transverse Mercator with the central meridian, scale and false
// origin fixed by the zone.
type utm struct {
	*tmerc
}

func newUTM(d *Definition, e Ellipsoid) (Projection, error) {
	if !isSet(d.Zone) {
		return nil, configErr("utm", "zone must be specified")
	}
	zone := math.Abs(d.Zone)
	if zone < 1 || zone > 60 || zone != math.Trunc(zone) {
		return nil, configErr("utm", "invalid zone %g", d.Zone)
	}
	t := d.Clone()
	t.Lat0 = 0
	t.Long0 = (6*zone - 183) * Deg2Rad
	t.X0 = 500000
	t.Y0 = 0
	if t.UTMSouth {
		t.Y0 = 10000000
	}
	t.K0 = 0.9996
	return utm{initTMerc(t, e)}, nil
}

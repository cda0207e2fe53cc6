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

// eqc is the Equidistant Cylindrical (Plate Carree) projection.
type eqc struct {
	a, rc               float64
	lat0, long0, x0, y0 float64
}

func newEqc(d *Definition, e Ellipsoid) (Projection, error) {
	return &eqc{
		a:     e.A,
		rc:    math.Cos(orDefault(d.LatTS, 0)),
		lat0:  orDefault(d.Lat0, 0),
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
	}, nil
}

// Forward maps lat,long to x,y.
func (p *eqc) Forward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - p.long0)
	dlat := adjustLat(lat - p.lat0)
	return p.x0 + p.a*dlon*p.rc, p.y0 + p.a*dlat, nil
}

// Inverse maps x,y to lat/long.
func (p *eqc) Inverse(x, y float64) (lon, lat float64, err error) {
	lon = adjustLon(p.long0 + (x-p.x0)/(p.a*p.rc))
	lat = adjustLat(p.lat0 + (y-p.y0)/p.a)
	return lon, lat, nil
}

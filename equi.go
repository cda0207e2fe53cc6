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

// equi is the Equirectangular projection scaled at lat_0.
type equi struct {
	a, cosLat0    float64
	long0, x0, y0 float64
}

func newEqui(d *Definition, e Ellipsoid) (Projection, error) {
	return &equi{
		a:       e.A,
		cosLat0: math.Cos(orDefault(d.Lat0, 0)),
		long0:   orDefault(d.Long0, 0),
		x0:      orDefault(d.X0, 0),
		y0:      orDefault(d.Y0, 0),
	}, nil
}

// Forward maps lat,long to x,y.
func (p *equi) Forward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - p.long0)
	return p.x0 + p.a*dlon*p.cosLat0, p.y0 + p.a*lat, nil
}

// Inverse maps x,y to lat/long.
func (p *equi) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y -= p.y0
	lat = y / p.a
	if math.Abs(lat) > halfPi {
		return math.NaN(), math.NaN(), outOfRange("equi inverse", "northing %g beyond the pole", y)
	}
	return adjustLon(p.long0 + x/(p.a*p.cosLat0)), lat, nil
}

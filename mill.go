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

// mill is the Miller Cylindrical projection on the sphere of radius a.
type mill struct {
	a, long0, x0, y0 float64
}

func newMill(d *Definition, e Ellipsoid) (Projection, error) {
	return &mill{
		a:     e.A,
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
	}, nil
}

// Forward maps lat,long to x,y.
func (p *mill) Forward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - p.long0)
	x = p.x0 + p.a*dlon
	y = p.y0 + p.a*math.Log(math.Tan(math.Pi/4+lat/2.5))*1.25
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *mill) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y -= p.y0
	lon = adjustLon(p.long0 + x/p.a)
	lat = 2.5 * (math.Atan(math.Exp(0.8*y/p.a)) - math.Pi/4)
	return lon, lat, nil
}

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

// gnom is the Gnomonic projection on the sphere of radius a.
type gnom struct {
	a, k0               float64
	lat0, long0, x0, y0 float64
	sinp14, cosp14      float64
}

func newGnom(d *Definition, e Ellipsoid) (Projection, error) {
	p := &gnom{
		a:     e.A,
		k0:    orDefault(d.K0, 1),
		lat0:  orDefault(d.Lat0, 0),
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
	}
	p.sinp14 = math.Sin(p.lat0)
	p.cosp14 = math.Cos(p.lat0)
	return p, nil
}

// Forward maps lat,long to x,y. Points 90 degrees or more from the
// center have no image.
func (p *gnom) Forward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - p.long0)
	sinphi := math.Sin(lat)
	cosphi := math.Cos(lat)
	coslon := math.Cos(dlon)
	g := p.sinp14*sinphi + p.cosp14*cosphi*coslon
	if g <= epsln {
		return math.NaN(), math.NaN(), infinite("gnom forward")
	}
	x = p.x0 + p.a*p.k0*cosphi*math.Sin(dlon)/g
	y = p.y0 + p.a*p.k0*(p.cosp14*sinphi-p.sinp14*cosphi*coslon)/g
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *gnom) Inverse(x, y float64) (lon, lat float64, err error) {
	x = (x - p.x0) / p.a / p.k0
	y = (y - p.y0) / p.a / p.k0
	rh := math.Hypot(x, y)
	if rh == 0 {
		return p.long0, p.lat0, nil
	}
	c := math.Atan(rh)
	sinc := math.Sin(c)
	cosc := math.Cos(c)
	lat = asinz(cosc*p.sinp14 + y*sinc*p.cosp14/rh)
	lon = math.Atan2(x*sinc, rh*p.cosp14*cosc-y*p.sinp14*sinc)
	return adjustLon(p.long0 + lon), lat, nil
}

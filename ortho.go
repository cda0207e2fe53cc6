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

// ortho is the Orthographic projection on the sphere of radius a.
type ortho struct {
	a                   float64
	lat0, long0, x0, y0 float64
	sinp14, cosp14      float64
}

func newOrtho(d *Definition, e Ellipsoid) (Projection, error) {
	p := &ortho{
		a:     e.A,
		lat0:  orDefault(d.Lat0, 0),
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
	}
	p.sinp14 = math.Sin(p.lat0)
	p.cosp14 = math.Cos(p.lat0)
	return p, nil
}

// Forward maps lat,long to x,y. Only the visible hemisphere is defined.
func (p *ortho) Forward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - p.long0)
	sinphi := math.Sin(lat)
	cosphi := math.Cos(lat)
	coslon := math.Cos(dlon)
	g := p.sinp14*sinphi + p.cosp14*cosphi*coslon
	if g < 0 && math.Abs(g) > epsln {
		return math.NaN(), math.NaN(), outOfRange("ortho forward", "point on the far hemisphere")
	}
	x = p.x0 + p.a*cosphi*math.Sin(dlon)
	y = p.y0 + p.a*(p.cosp14*sinphi-p.sinp14*cosphi*coslon)
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *ortho) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y -= p.y0
	rh := math.Hypot(x, y)
	if rh > p.a+0.0000001 {
		return math.NaN(), math.NaN(), outOfRange("ortho inverse", "radius %g larger than the sphere", rh)
	}
	if rh <= epsln {
		return p.long0, p.lat0, nil
	}
	z := asinz(rh / p.a)
	sinz := math.Sin(z)
	cosz := math.Cos(z)
	lat = asinz(cosz*p.sinp14 + y*sinz*p.cosp14/rh)
	if math.Abs(math.Abs(p.lat0)-halfPi) <= epsln {
		if p.lat0 >= 0 {
			return adjustLon(p.long0 + math.Atan2(x, -y)), lat, nil
		}
		return adjustLon(p.long0 - math.Atan2(-x, y)), lat, nil
	}
	con := cosz - p.sinp14*math.Sin(lat)
	return adjustLon(p.long0 + math.Atan2(x*sinz*p.cosp14, con*rh)), lat, nil
}

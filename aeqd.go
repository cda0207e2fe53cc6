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

// aeqd is the Azimuthal Equidistant projection on the sphere of radius a.
type aeqd struct {
	a                   float64
	lat0, long0, x0, y0 float64
	sinp12, cosp12      float64
}

func newAeqd(d *Definition, e Ellipsoid) (Projection, error) {
	p := &aeqd{
		a:     e.A,
		lat0:  orDefault(d.Lat0, 0),
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
	}
	p.sinp12 = math.Sin(p.lat0)
	p.cosp12 = math.Cos(p.lat0)
	return p, nil
}

// Forward maps lat,long to x,y. The antipode of the center has no
// single image.
func (p *aeqd) Forward(lon, lat float64) (x, y float64, err error) {
	sinphi := math.Sin(lat)
	cosphi := math.Cos(lat)
	dlon := adjustLon(lon - p.long0)
	coslon := math.Cos(dlon)
	g := p.sinp12*sinphi + p.cosp12*cosphi*coslon
	ksp := 1.0
	if math.Abs(math.Abs(g)-1) < epsln {
		if g < 0 {
			return math.NaN(), math.NaN(), infinite("aeqd forward")
		}
	} else {
		z := math.Acos(g)
		ksp = z / math.Sin(z)
	}
	x = p.x0 + p.a*ksp*cosphi*math.Sin(dlon)
	y = p.y0 + p.a*ksp*(p.cosp12*sinphi-p.sinp12*cosphi*coslon)
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *aeqd) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y -= p.y0
	rh := math.Hypot(x, y)
	if rh > math.Pi*p.a {
		return math.NaN(), math.NaN(), outOfRange("aeqd inverse", "radius %g beyond the antipode", rh)
	}
	if rh <= epsln {
		return p.long0, p.lat0, nil
	}
	z := rh / p.a
	sinz := math.Sin(z)
	cosz := math.Cos(z)
	lon = p.long0
	lat = asinz(cosz*p.sinp12 + y*sinz*p.cosp12/rh)
	if math.Abs(math.Abs(p.lat0)-halfPi) <= epsln {
		if p.lat0 >= 0 {
			lon = adjustLon(p.long0 + math.Atan2(x, -y))
		} else {
			lon = adjustLon(p.long0 - math.Atan2(-x, y))
		}
	} else {
		con := cosz - p.sinp12*math.Sin(lat)
		if math.Abs(con) >= epsln || math.Abs(x) >= epsln {
			lon = adjustLon(p.long0 + math.Atan2(x*sinz*p.cosp12, con*rh))
		}
	}
	return lon, lat, nil
}

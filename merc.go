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

// merc is the Mercator projection.
type merc struct {
	a, e, k0 float64
	long0    float64
	x0, y0   float64
	sphere   bool
}

func newMerc(d *Definition, e Ellipsoid) (Projection, error) {
	p := &merc{
		a:      e.A,
		e:      e.E,
		long0:  orDefault(d.Long0, 0),
		x0:     orDefault(d.X0, 0),
		y0:     orDefault(d.Y0, 0),
		sphere: e.Sphere,
	}
	if isSet(d.LatTS) {
		if p.sphere {
			p.k0 = math.Cos(d.LatTS)
		} else {
			p.k0 = msfnz(p.e, math.Sin(d.LatTS), math.Cos(d.LatTS))
		}
	} else {
		p.k0 = orDefault(d.K0, 1)
	}
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *merc) Forward(lon, lat float64) (x, y float64, err error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat*Rad2Deg > 90 || lat*Rad2Deg < -90 ||
		lon*Rad2Deg > 180 || lon*Rad2Deg < -180 {
		return math.NaN(), math.NaN(), outOfRange("merc forward", "longitude %g, latitude %g", lon, lat)
	}
	if math.Abs(math.Abs(lat)-halfPi) <= epsln {
		return math.NaN(), math.NaN(), infinite("merc forward")
	}
	x = p.x0 + p.a*p.k0*adjustLon(lon-p.long0)
	if p.sphere {
		y = p.y0 + p.a*p.k0*math.Log(math.Tan(fortPi+0.5*lat))
	} else {
		ts := tsfnz(p.e, lat, math.Sin(lat))
		y = p.y0 - p.a*p.k0*math.Log(ts)
	}
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *merc) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y -= p.y0
	if p.sphere {
		lat = halfPi - 2*math.Atan(math.Exp(-y/(p.a*p.k0)))
	} else {
		ts := math.Exp(-y / (p.a * p.k0))
		if lat, err = phi2z(p.e, ts); err != nil {
			return math.NaN(), math.NaN(), err
		}
	}
	lon = adjustLon(p.long0 + x/(p.a*p.k0))
	return lon, lat, nil
}

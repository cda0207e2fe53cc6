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

// sinu is the Sinusoidal projection.
type sinu struct {
	a, es         float64
	long0, x0, y0 float64
	sphere        bool
	en            [5]float64
}

func newSinu(d *Definition, e Ellipsoid) (Projection, error) {
	p := &sinu{
		a:      e.A,
		es:     e.Es,
		long0:  orDefault(d.Long0, 0),
		x0:     orDefault(d.X0, 0),
		y0:     orDefault(d.Y0, 0),
		sphere: e.Sphere,
	}
	if !p.sphere {
		p.en = pjEnfn(p.es)
	}
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *sinu) Forward(lon, lat float64) (x, y float64, err error) {
	lon = adjustLon(lon - p.long0)
	if p.sphere {
		return p.x0 + p.a*lon*math.Cos(lat), p.y0 + p.a*lat, nil
	}
	s := math.Sin(lat)
	c := math.Cos(lat)
	y = p.a * pjMlfn(lat, s, c, p.en)
	x = p.a * lon * c / math.Sqrt(1-p.es*s*s)
	return p.x0 + x, p.y0 + y, nil
}

// Inverse maps x,y to lat/long.
func (p *sinu) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y -= p.y0
	if p.sphere {
		lat = y / p.a
		if math.Abs(lat) > halfPi+epsln {
			return math.NaN(), math.NaN(), outOfRange("sinu inverse", "northing %g beyond the pole", y)
		}
		c := math.Cos(lat)
		if math.Abs(c) < epsln {
			return p.long0, lat, nil
		}
		return adjustLon(p.long0 + x/(p.a*c)), lat, nil
	}
	if lat, err = pjInvMlfn(y/p.a, p.es, p.en); err != nil {
		return math.NaN(), math.NaN(), err
	}
	s := math.Abs(lat)
	switch {
	case s < halfPi:
		s = math.Sin(lat)
		lon = adjustLon(p.long0 + x*math.Sqrt(1-p.es*s*s)/(p.a*math.Cos(lat)))
	case s-epsln < halfPi:
		lon = p.long0
	default:
		return math.NaN(), math.NaN(), outOfRange("sinu inverse", "northing %g beyond the pole", y)
	}
	return lon, lat, nil
}

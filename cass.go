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

const (
	cassC1 = .16666666666666666666
	cassC2 = .00833333333333333333
	cassC3 = .04166666666666666666
	cassC4 = .33333333333333333333
	cassC5 = .06666666666666666666
)

// cass is the Cassini-Soldner projection.
type cass struct {
	a, es               float64
	lat0, long0, x0, y0 float64
	sphere              bool
	en                  [5]float64
	m0                  float64
}

func newCass(d *Definition, e Ellipsoid) (Projection, error) {
	p := &cass{
		a:      e.A,
		es:     e.Es,
		lat0:   orDefault(d.Lat0, 0),
		long0:  orDefault(d.Long0, 0),
		x0:     orDefault(d.X0, 0),
		y0:     orDefault(d.Y0, 0),
		sphere: e.Sphere,
	}
	if !p.sphere {
		p.en = pjEnfn(p.es)
		p.m0 = pjMlfn(p.lat0, math.Sin(p.lat0), math.Cos(p.lat0), p.en)
	}
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *cass) Forward(lon, lat float64) (x, y float64, err error) {
	lam := adjustLon(lon - p.long0)
	if p.sphere {
		x = math.Asin(math.Cos(lat) * math.Sin(lam))
		y = math.Atan2(math.Tan(lat), math.Cos(lam)) - p.lat0
	} else {
		n := math.Sin(lat)
		c := math.Cos(lat)
		y = pjMlfn(lat, n, c, p.en)
		n = 1 / math.Sqrt(1-p.es*n*n)
		tn := math.Tan(lat)
		t := tn * tn
		a1 := lam * c
		c *= p.es * c / (1 - p.es)
		a2 := a1 * a1
		x = n * a1 * (1 - a2*t*(cassC1-(8-t+8*c)*a2*cassC2))
		y -= p.m0 - n*tn*a2*(.5+(5-t+6*c)*a2*cassC3)
	}
	return p.a*x + p.x0, p.a*y + p.y0, nil
}

// Inverse maps x,y to lat/long.
func (p *cass) Inverse(x, y float64) (lon, lat float64, err error) {
	x = (x - p.x0) / p.a
	y = (y - p.y0) / p.a
	var lam float64
	if p.sphere {
		dd := y + p.lat0
		lat = math.Asin(math.Sin(dd) * math.Cos(x))
		lam = math.Atan2(math.Tan(x), math.Cos(dd))
	} else {
		ph1, err := pjInvMlfn(p.m0+y, p.es, p.en)
		if err != nil {
			return math.NaN(), math.NaN(), err
		}
		tn := math.Tan(ph1)
		t := tn * tn
		n := math.Sin(ph1)
		r := 1 / (1 - p.es*n*n)
		n = math.Sqrt(r)
		r *= (1 - p.es) * n
		dd := x / n
		d2 := dd * dd
		lat = ph1 - (n*tn/r)*d2*(.5-(1+3*t)*d2*cassC3)
		lam = dd * (1 + t*d2*(-cassC4+(1+3*t)*d2*cassC5)) / math.Cos(ph1)
	}
	return adjustLon(p.long0 + lam), lat, nil
}

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

// cea is the Lambert Cylindrical Equal Area projection, standard
// parallel lat_ts.
type cea struct {
	a, e, k0      float64
	long0, x0, y0 float64
	qp            float64
	sphere        bool
}

func newCea(d *Definition, e Ellipsoid) (Projection, error) {
	latTS := orDefault(d.LatTS, 0)
	p := &cea{
		a:      e.A,
		e:      e.E,
		long0:  orDefault(d.Long0, 0),
		x0:     orDefault(d.X0, 0),
		y0:     orDefault(d.Y0, 0),
		sphere: e.Sphere,
	}
	if p.sphere {
		p.k0 = math.Cos(latTS)
	} else {
		s := math.Sin(latTS)
		p.k0 = math.Cos(latTS) / math.Sqrt(1-e.Es*s*s)
		p.qp = qsfnz(p.e, 1)
	}
	if p.k0 < epsln {
		return nil, configErr("cea", "standard parallel at a pole")
	}
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *cea) Forward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - p.long0)
	x = p.x0 + p.a*dlon*p.k0
	if p.sphere {
		return x, p.y0 + p.a*math.Sin(lat)/p.k0, nil
	}
	return x, p.y0 + p.a*qsfnz(p.e, math.Sin(lat))/(2*p.k0), nil
}

// Inverse maps x,y to lat/long.
func (p *cea) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y -= p.y0
	lon = adjustLon(p.long0 + x/p.a/p.k0)
	if p.sphere {
		s := y / p.a * p.k0
		if math.Abs(s) > 1+epsln {
			return math.NaN(), math.NaN(), outOfRange("cea inverse", "northing %g beyond the pole", y)
		}
		return lon, asinz(s), nil
	}
	q := 2 * y * p.k0 / p.a
	if math.Abs(q) > p.qp+epsln {
		return math.NaN(), math.NaN(), outOfRange("cea inverse", "northing %g beyond the pole", y)
	}
	if lat, err = iqsfnz(p.e, q); err != nil {
		return math.NaN(), math.NaN(), err
	}
	return lon, lat, nil
}

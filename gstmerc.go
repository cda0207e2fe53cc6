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

// gstmerc is the Gauss-Schreiber Transverse Mercator projection.
type gstmerc struct {
	e, lc, rs, cp, n2 float64
	xs, ys            float64
}

func newGstmerc(d *Definition, e Ellipsoid) (Projection, error) {
	lat0 := orDefault(d.Lat0, 0)
	k0 := orDefault(d.K0, 1)
	p := &gstmerc{e: e.E, lc: orDefault(d.Long0, 0)}
	p.rs = math.Sqrt(1 + p.e*p.e*math.Pow(math.Cos(lat0), 4)/(1-p.e*p.e))
	sinz := math.Sin(lat0)
	pc := math.Asin(sinz / p.rs)
	p.cp = latiso(0, pc, math.Sin(pc)) - p.rs*latiso(p.e, lat0, sinz)
	p.n2 = k0 * e.A * math.Sqrt(1-p.e*p.e) / (1 - p.e*p.e*sinz*sinz)
	p.xs = orDefault(d.X0, 0)
	p.ys = orDefault(d.Y0, 0) - p.n2*pc
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *gstmerc) Forward(lon, lat float64) (x, y float64, err error) {
	if math.Abs(math.Abs(lat)-halfPi) <= epsln {
		return math.NaN(), math.NaN(), infinite("gstmerc forward")
	}
	l := p.rs * adjustLon(lon-p.lc)
	ls := p.cp + p.rs*latiso(p.e, lat, math.Sin(lat))
	lat1 := math.Asin(math.Sin(l) / math.Cosh(ls))
	ls1 := latiso(0, lat1, math.Sin(lat1))
	x = p.xs + p.n2*ls1
	y = p.ys + p.n2*math.Atan(math.Sinh(ls)/math.Cos(l))
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *gstmerc) Inverse(x, y float64) (lon, lat float64, err error) {
	l := math.Atan(math.Sinh((x-p.xs)/p.n2) / math.Cos((y-p.ys)/p.n2))
	lat1 := math.Asin(math.Sin((y-p.ys)/p.n2) / math.Cosh((x-p.xs)/p.n2))
	lc := latiso(0, lat1, math.Sin(lat1))
	if lat, err = invlatiso(p.e, (lc-p.cp)/p.rs); err != nil {
		return math.NaN(), math.NaN(), err
	}
	return adjustLon(p.lc + l/p.rs), lat, nil
}

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

// lcc is the Lambert Conformal Conic projection with one or two standard
// parallels.
type lcc struct {
	a, e, k0      float64
	long0, x0, y0 float64
	ns, f0, rh    float64
}

func newLCC(d *Definition, e Ellipsoid) (Projection, error) {
	lat0 := orDefault(d.Lat0, 0)
	lat1 := orDefault(d.Lat1, lat0)
	lat2 := orDefault(d.Lat2, lat1)
	if math.Abs(lat1+lat2) < epsln {
		return nil, configErr("lcc", "standard parallels cannot be equal and on opposite sides of the equator")
	}
	p := &lcc{
		a:     e.A,
		e:     e.E,
		k0:    orDefault(d.K0, 1),
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
	}

	sin1, cos1 := math.Sin(lat1), math.Cos(lat1)
	ms1 := msfnz(p.e, sin1, cos1)
	ts1 := tsfnz(p.e, lat1, sin1)

	sin2, cos2 := math.Sin(lat2), math.Cos(lat2)
	ms2 := msfnz(p.e, sin2, cos2)
	ts2 := tsfnz(p.e, lat2, sin2)

	ts0 := tsfnz(p.e, lat0, math.Sin(lat0))

	if math.Abs(lat1-lat2) > epsln {
		p.ns = math.Log(ms1/ms2) / math.Log(ts1/ts2)
	} else {
		p.ns = sin1
	}
	if math.IsNaN(p.ns) {
		p.ns = sin1
	}
	p.f0 = ms1 / (p.ns * math.Pow(ts1, p.ns))
	p.rh = p.a * p.f0 * math.Pow(ts0, p.ns)
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *lcc) Forward(lon, lat float64) (x, y float64, err error) {
	if math.IsNaN(lat) || math.Abs(lat) > halfPi+epsln {
		return math.NaN(), math.NaN(), outOfRange("lcc forward", "latitude %g", lat)
	}
	var rh1 float64
	if math.Abs(math.Abs(lat)-halfPi) > epsln {
		ts := tsfnz(p.e, lat, math.Sin(lat))
		rh1 = p.a * p.f0 * math.Pow(ts, p.ns)
	} else if lat*p.ns <= 0 {
		// the pole opposite the cone apex
		return math.NaN(), math.NaN(), infinite("lcc forward")
	}
	theta := p.ns * adjustLon(lon-p.long0)
	x = p.k0*(rh1*math.Sin(theta)) + p.x0
	y = p.k0*(p.rh-rh1*math.Cos(theta)) + p.y0
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *lcc) Inverse(x, y float64) (lon, lat float64, err error) {
	x = (x - p.x0) / p.k0
	y = p.rh - (y-p.y0)/p.k0
	rh1, con := math.Hypot(x, y), 1.0
	if p.ns <= 0 {
		rh1, con = -rh1, -1
	}
	var theta float64
	if rh1 != 0 {
		theta = math.Atan2(con*x, con*y)
	}
	if rh1 != 0 || p.ns > 0 {
		ts := math.Pow(rh1/(p.a*p.f0), 1/p.ns)
		if lat, err = phi2z(p.e, ts); err != nil {
			return math.NaN(), math.NaN(), err
		}
	} else {
		lat = -halfPi
	}
	return adjustLon(theta/p.ns + p.long0), lat, nil
}

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

// eqdc is the Equidistant Conic projection with one or two standard
// parallels.
type eqdc struct {
	a, e           float64
	long0, x0, y0  float64
	e0, e1, e2, e3 float64
	ns, g, rh      float64
}

func newEqdc(d *Definition, e Ellipsoid) (Projection, error) {
	lat0 := orDefault(d.Lat0, 0)
	lat1 := orDefault(d.Lat1, lat0)
	p := &eqdc{
		a:     e.A,
		e:     e.E,
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
		e0:    e0fn(e.Es),
		e1:    e1fn(e.Es),
		e2:    e2fn(e.Es),
		e3:    e3fn(e.Es),
	}
	sinphi := math.Sin(lat1)
	ms1 := msfnz(p.e, sinphi, math.Cos(lat1))
	ml1 := mlfn(p.e0, p.e1, p.e2, p.e3, lat1)

	p.ns = sinphi
	if isSet(d.Lat2) {
		lat2 := d.Lat2
		if math.Abs(lat1+lat2) < epsln {
			return nil, configErr("eqdc", "standard parallels cannot be equal and on opposite sides of the equator")
		}
		sinphi = math.Sin(lat2)
		ms2 := msfnz(p.e, sinphi, math.Cos(lat2))
		ml2 := mlfn(p.e0, p.e1, p.e2, p.e3, lat2)
		if math.Abs(lat1-lat2) >= epsln {
			p.ns = (ms1 - ms2) / (ml2 - ml1)
		} else {
			p.ns = sinphi
		}
	}
	if math.Abs(p.ns) < epsln {
		return nil, configErr("eqdc", "standard parallel on the equator")
	}
	p.g = ml1 + ms1/p.ns
	p.rh = p.a * (p.g - mlfn(p.e0, p.e1, p.e2, p.e3, lat0))
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *eqdc) Forward(lon, lat float64) (x, y float64, err error) {
	ml := mlfn(p.e0, p.e1, p.e2, p.e3, lat)
	rh1 := p.a * (p.g - ml)
	theta := p.ns * adjustLon(lon-p.long0)
	return p.x0 + rh1*math.Sin(theta), p.y0 + p.rh - rh1*math.Cos(theta), nil
}

// Inverse maps x,y to lat/long.
func (p *eqdc) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y = p.rh - y + p.y0
	rh1, con := math.Hypot(x, y), 1.0
	if p.ns < 0 {
		rh1, con = -rh1, -1
	}
	var theta float64
	if rh1 != 0 {
		theta = math.Atan2(con*x, con*y)
	}
	ml := p.g - rh1/p.a
	if lat, err = phi3z(ml, p.e0, p.e1, p.e2, p.e3); err != nil {
		return math.NaN(), math.NaN(), err
	}
	return adjustLon(p.long0 + theta/p.ns), lat, nil
}

// phi3z computes the latitude for the meridional distance ml.
func phi3z(ml, e0, e1, e2, e3 float64) (float64, error) {
	const iterations = 15
	phi := ml
	for i := 0; i < iterations; i++ {
		dphi := (ml+e1*math.Sin(2*phi)-e2*math.Sin(4*phi)+e3*math.Sin(6*phi))/e0 - phi
		phi += dphi
		if math.Abs(dphi) <= 0.0000000001 {
			return phi, nil
		}
	}
	return math.NaN(), noConvergence("phi3z", iterations)
}

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

// aea is the Albers Conical Equal Area projection.
type aea struct {
	a, e, es      float64
	long0, x0, y0 float64
	ns0, c, rh    float64
}

func newAEA(d *Definition, e Ellipsoid) (Projection, error) {
	lat0 := orDefault(d.Lat0, 0)
	lat1 := orDefault(d.Lat1, lat0)
	lat2 := orDefault(d.Lat2, lat1)
	if math.Abs(lat1+lat2) < epsln {
		return nil, configErr("aea", "standard parallels cannot be equal and on opposite sides of the equator")
	}
	p := &aea{
		a:     e.A,
		e:     e.E,
		es:    e.Es,
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
	}

	sin1, cos1 := math.Sin(lat1), math.Cos(lat1)
	ms1 := msfnz(p.e, sin1, cos1)
	qs1 := qsfnz(p.e, sin1)

	sin2, cos2 := math.Sin(lat2), math.Cos(lat2)
	ms2 := msfnz(p.e, sin2, cos2)
	qs2 := qsfnz(p.e, sin2)

	qs0 := qsfnz(p.e, math.Sin(lat0))

	if math.Abs(lat1-lat2) > epsln {
		p.ns0 = (ms1*ms1 - ms2*ms2) / (qs2 - qs1)
	} else {
		p.ns0 = sin1
	}
	p.c = ms1*ms1 + p.ns0*qs1
	p.rh = p.a * math.Sqrt(p.c-p.ns0*qs0) / p.ns0
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *aea) Forward(lon, lat float64) (x, y float64, err error) {
	qs := qsfnz(p.e, math.Sin(lat))
	rh1 := p.a * math.Sqrt(p.c-p.ns0*qs) / p.ns0
	theta := p.ns0 * adjustLon(lon-p.long0)
	x = rh1*math.Sin(theta) + p.x0
	y = p.rh - rh1*math.Cos(theta) + p.y0
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *aea) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y = p.rh - y + p.y0
	rh1, con := math.Hypot(x, y), 1.0
	if p.ns0 < 0 {
		rh1, con = -rh1, -1
	}
	var theta float64
	if rh1 != 0 {
		theta = math.Atan2(con*x, con*y)
	}
	con = rh1 * p.ns0 / p.a
	qs := (p.c - con*con) / p.ns0
	if p.e >= 1e-10 {
		con = 1 - 0.5*(1-p.es)*math.Log((1-p.e)/(1+p.e))/p.e
		if math.Abs(math.Abs(con)-math.Abs(qs)) > 0.0000000001 {
			lat, err = phi1z(p.e, qs)
		} else if qs >= 0 {
			lat = halfPi
		} else {
			lat = -halfPi
		}
	} else {
		lat, err = phi1z(p.e, qs)
	}
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	return adjustLon(theta/p.ns0 + p.long0), lat, nil
}

// phi1z computes the latitude for the authalic q value qs.
func phi1z(eccent, qs float64) (float64, error) {
	const iterations = 25
	phi := asinz(0.5 * qs)
	if eccent < epsln {
		return phi, nil
	}
	eccnts := eccent * eccent
	for i := 1; i <= iterations; i++ {
		sinphi := math.Sin(phi)
		cosphi := math.Cos(phi)
		con := eccent * sinphi
		com := 1 - con*con
		dphi := 0.5 * com * com / cosphi * (qs/(1-eccnts) - sinphi/com + 0.5/eccent*math.Log((1-con)/(1+con)))
		phi += dphi
		if math.Abs(dphi) <= 1e-7 {
			return phi, nil
		}
	}
	return math.NaN(), noConvergence("phi1z", iterations)
}

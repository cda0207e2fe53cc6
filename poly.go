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

// poly is the American Polyconic projection.
type poly struct {
	a, e, es       float64
	long0, x0, y0  float64
	e0, e1, e2, e3 float64
	ml0            float64
}

func newPoly(d *Definition, e Ellipsoid) (Projection, error) {
	p := &poly{
		a:     e.A,
		e:     e.E,
		es:    e.Es,
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
		e0:    e0fn(e.Es),
		e1:    e1fn(e.Es),
		e2:    e2fn(e.Es),
		e3:    e3fn(e.Es),
	}
	p.ml0 = mlfn(p.e0, p.e1, p.e2, p.e3, orDefault(d.Lat0, 0))
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *poly) Forward(lon, lat float64) (x, y float64, err error) {
	con := adjustLon(lon - p.long0)
	if math.Abs(lat) <= 0.0000001 {
		return p.x0 + p.a*con, p.y0 - p.a*p.ml0, nil
	}
	sinphi := math.Sin(lat)
	cosphi := math.Cos(lat)
	ml := mlfn(p.e0, p.e1, p.e2, p.e3, lat)
	ms := msfnz(p.e, sinphi, cosphi)
	el := con * sinphi
	x = p.x0 + p.a*ms*math.Sin(el)/sinphi
	y = p.y0 + p.a*(ml-p.ml0+ms*(1-math.Cos(el))/sinphi)
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *poly) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y -= p.y0
	al := p.ml0 + y/p.a
	if math.Abs(al) <= 0.0000001 {
		return adjustLon(x/p.a + p.long0), 0, nil
	}
	b := al*al + (x/p.a)*(x/p.a)
	lat, c, err := phi4z(p.es, p.e0, p.e1, p.e2, p.e3, al, b)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	return adjustLon(asinz(x*c/p.a)/math.Sin(lat) + p.long0), lat, nil
}

// phi4z solves the polyconic inverse for latitude. It also returns the
// c term needed for the longitude.
func phi4z(es, e0, e1, e2, e3, a, b float64) (phi, c float64, err error) {
	const iterations = 15
	phi = a
	for i := 0; i < iterations; i++ {
		sinphi := math.Sin(phi)
		tanphi := math.Tan(phi)
		c = tanphi * math.Sqrt(1-es*sinphi*sinphi)
		sin2ph := math.Sin(2 * phi)
		ml := e0*phi - e1*sin2ph + e2*math.Sin(4*phi) - e3*math.Sin(6*phi)
		mlp := e0 - 2*e1*math.Cos(2*phi) + 4*e2*math.Cos(4*phi) - 6*e3*math.Cos(6*phi)
		con1 := 2*ml + c*(ml*ml+b) - 2*a*(c*ml+1)
		con2 := es * sin2ph * (ml*ml + b - 2*a*ml) / (2 * c)
		con3 := 2*(a-ml)*(c*mlp-2/sin2ph) - 2*mlp
		dphi := con1 / (con2 + con3)
		phi += dphi
		if math.Abs(dphi) <= 0.0000000001 {
			return phi, c, nil
		}
	}
	return math.NaN(), math.NaN(), noConvergence("phi4z", iterations)
}

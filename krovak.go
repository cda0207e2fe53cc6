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
	krovakS45 = 0.785398163397448 // 45°
	krovakS90 = 2 * krovakS45
	krovakUq  = 1.04216856380474 // latitude of the pseudo standard parallel pole
	krovakS0  = 1.37008346281555 // latitude of the pseudo standard parallel
)

// krovak is the Krovak oblique conformal conic projection. Without czech
// both axes are negated, giving an east-north grid with negative values.
type krovak struct {
	e, long0, x0, y0 float64
	alfa, k, n, ro0  float64
	ad               float64
	czech            bool
}

func newKrovak(d *Definition, e Ellipsoid) (Projection, error) {
	p := &krovak{
		e:     e.E,
		long0: orDefault(d.Long0, 0.7417649320975901-0.308341501185665),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
		czech: d.Czech,
	}
	fi0 := orDefault(d.Lat0, 0.863937979737193)
	k1 := orDefault(d.K0, 0.9999)
	e2 := e.Es
	p.alfa = math.Sqrt(1 + (e2*math.Pow(math.Cos(fi0), 4))/(1-e2))
	u0 := math.Asin(math.Sin(fi0) / p.alfa)
	g := math.Pow((1+p.e*math.Sin(fi0))/(1-p.e*math.Sin(fi0)), p.alfa*p.e/2)
	p.k = math.Tan(u0/2+krovakS45) / math.Pow(math.Tan(fi0/2+krovakS45), p.alfa) * g
	n0 := e.A * math.Sqrt(1-e2) / (1 - e2*math.Pow(math.Sin(fi0), 2))
	p.n = math.Sin(krovakS0)
	p.ro0 = k1 * n0 / math.Tan(krovakS0)
	p.ad = krovakS90 - krovakUq
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *krovak) Forward(lon, lat float64) (x, y float64, err error) {
	deltaLon := adjustLon(lon - p.long0)
	gfi := math.Pow((1+p.e*math.Sin(lat))/(1-p.e*math.Sin(lat)), p.alfa*p.e/2)
	u := 2 * (math.Atan(p.k*math.Pow(math.Tan(lat/2+krovakS45), p.alfa)/gfi) - krovakS45)
	deltav := -deltaLon * p.alfa
	s := math.Asin(math.Cos(p.ad)*math.Sin(u) + math.Sin(p.ad)*math.Cos(u)*math.Cos(deltav))
	d := math.Asin(math.Cos(u) * math.Sin(deltav) / math.Cos(s))
	eps := p.n * d
	ro := p.ro0 * math.Pow(math.Tan(krovakS0/2+krovakS45), p.n) / math.Pow(math.Tan(s/2+krovakS45), p.n)
	y = ro * math.Cos(eps)
	x = ro * math.Sin(eps)
	if !p.czech {
		y, x = -y, -x
	}
	return x + p.x0, y + p.y0, nil
}

// Inverse maps x,y to lat/long.
func (p *krovak) Inverse(x, y float64) (lon, lat float64, err error) {
	const iterations = 15
	x, y = y-p.y0, x-p.x0
	if !p.czech {
		y, x = -y, -x
	}
	ro := math.Hypot(x, y)
	eps := math.Atan2(y, x)
	d := eps / math.Sin(krovakS0)
	s := 2 * (math.Atan(math.Pow(p.ro0/ro, 1/p.n)*math.Tan(krovakS0/2+krovakS45)) - krovakS45)
	u := math.Asin(math.Cos(p.ad)*math.Sin(s) - math.Sin(p.ad)*math.Cos(s)*math.Cos(d))
	deltav := math.Asin(math.Cos(s) * math.Sin(d) / math.Cos(u))
	lon = adjustLon(p.long0 - deltav/p.alfa)

	fi1 := u
	for i := 0; i < iterations; i++ {
		lat = 2 * (math.Atan(math.Pow(p.k, -1/p.alfa)*math.Pow(math.Tan(u/2+krovakS45), 1/p.alfa)*
			math.Pow((1+p.e*math.Sin(fi1))/(1-p.e*math.Sin(fi1)), p.e/2)) - krovakS45)
		if math.Abs(fi1-lat) < 0.0000000001 {
			return lon, lat, nil
		}
		fi1 = lat
	}
	return math.NaN(), math.NaN(), noConvergence("krovak inverse", iterations)
}

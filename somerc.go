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

// somerc is the Swiss Oblique Mercator projection. X is easting and Y
// is northing, unlike the Swiss survey convention.
type somerc struct {
	e, r, alpha, b0, k float64
	long0, x0, y0      float64
}

func newSomerc(d *Definition, e Ellipsoid) (Projection, error) {
	phy0 := orDefault(d.Lat0, 0)
	sinPhy0 := math.Sin(phy0)
	e2 := e.Es
	p := &somerc{
		e:     e.E,
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
	}
	p.r = orDefault(d.K0, 1) * e.A * math.Sqrt(1-e2) / (1 - e2*sinPhy0*sinPhy0)
	p.alpha = math.Sqrt(1 + e2/(1-e2)*math.Pow(math.Cos(phy0), 4))
	p.b0 = math.Asin(sinPhy0 / p.alpha)
	p.k = math.Log(math.Tan(fortPi+p.b0/2)) -
		p.alpha*math.Log(math.Tan(fortPi+phy0/2)) +
		p.alpha*p.e/2*math.Log((1+p.e*sinPhy0)/(1-p.e*sinPhy0))
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *somerc) Forward(lon, lat float64) (x, y float64, err error) {
	sa1 := math.Log(math.Tan(fortPi - lat/2))
	sa2 := p.e / 2 * math.Log((1+p.e*math.Sin(lat))/(1-p.e*math.Sin(lat)))
	s := -p.alpha*(sa1+sa2) + p.k

	// spherical latitude
	b := 2 * (math.Atan(math.Exp(s)) - fortPi)

	// spherical longitude
	i := p.alpha * adjustLon(lon-p.long0)

	// pseudo equatorial rotation
	rotI := math.Atan(math.Sin(i) / (math.Sin(p.b0)*math.Tan(b) + math.Cos(p.b0)*math.Cos(i)))
	rotB := math.Asin(math.Cos(p.b0)*math.Sin(b) - math.Sin(p.b0)*math.Cos(b)*math.Cos(i))

	y = p.r/2*math.Log((1+math.Sin(rotB))/(1-math.Sin(rotB))) + p.y0
	x = p.r*rotI + p.x0
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *somerc) Inverse(x, y float64) (lon, lat float64, err error) {
	const iterations = 20
	rotI := (x - p.x0) / p.r
	rotB := 2 * (math.Atan(math.Exp((y-p.y0)/p.r)) - fortPi)

	b := math.Asin(math.Cos(p.b0)*math.Sin(rotB) + math.Sin(p.b0)*math.Cos(rotB)*math.Cos(rotI))
	i := math.Atan(math.Sin(rotI) / (math.Cos(p.b0)*math.Cos(rotI) - math.Sin(p.b0)*math.Tan(rotB)))
	lon = adjustLon(p.long0 + i/p.alpha)

	phy, prev := b, -1000.0
	for n := 0; math.Abs(phy-prev) > 1e-11; n++ {
		if n >= iterations {
			return math.NaN(), math.NaN(), noConvergence("somerc inverse", iterations)
		}
		s := 1/p.alpha*(math.Log(math.Tan(fortPi+b/2))-p.k) +
			p.e*math.Log(math.Tan(fortPi+math.Asin(p.e*math.Sin(phy))/2))
		prev = phy
		phy = 2*math.Atan(math.Exp(s)) - halfPi
	}
	return lon, phy, nil
}

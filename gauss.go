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

// gauss is the conformal mapping of the ellipsoid onto the Gaussian
// sphere. As a standalone projection its output is the spherical
// longitude and latitude in radians.
type gauss struct {
	e, long0     float64
	rc, c, phic0 float64
	ratexp, k    float64
}

func newGauss(d *Definition, e Ellipsoid) (Projection, error) {
	return initGauss(d, e), nil
}

func initGauss(d *Definition, e Ellipsoid) *gauss {
	lat0 := orDefault(d.Lat0, 0)
	p := &gauss{e: e.E, long0: orDefault(d.Long0, 0)}
	sphi := math.Sin(lat0)
	cphi := math.Cos(lat0)
	cphi *= cphi
	p.rc = math.Sqrt(1-e.Es) / (1 - e.Es*sphi*sphi)
	p.c = math.Sqrt(1 + e.Es*cphi*cphi/(1-e.Es))
	p.phic0 = math.Asin(sphi / p.c)
	p.ratexp = 0.5 * p.c * p.e
	p.k = math.Tan(0.5*p.phic0+fortPi) /
		(math.Pow(math.Tan(0.5*lat0+fortPi), p.c) * srat(p.e*sphi, p.ratexp))
	return p
}

// toSphere maps a longitude relative to the central meridian and a
// geodetic latitude onto the sphere.
func (p *gauss) toSphere(lon, lat float64) (float64, float64) {
	lat = 2*math.Atan(p.k*math.Pow(math.Tan(0.5*lat+fortPi), p.c)*srat(p.e*math.Sin(lat), p.ratexp)) - halfPi
	return p.c * lon, lat
}

func (p *gauss) fromSphere(lon, lat float64) (float64, float64, error) {
	const tol = 1e-14
	lon /= p.c
	num := math.Pow(math.Tan(0.5*lat+fortPi)/p.k, 1/p.c)
	prev := lat
	for i := maxIter; i > 0; i-- {
		lat = 2*math.Atan(num*srat(p.e*math.Sin(prev), -0.5*p.e)) - halfPi
		if math.Abs(lat-prev) < tol {
			return lon, lat, nil
		}
		prev = lat
	}
	return math.NaN(), math.NaN(), noConvergence("gauss inverse", maxIter)
}

// Forward maps lat,long to spherical lat,long.
func (p *gauss) Forward(lon, lat float64) (x, y float64, err error) {
	x, y = p.toSphere(adjustLon(lon-p.long0), lat)
	return x, y, nil
}

// Inverse maps spherical lat,long back to the ellipsoid.
func (p *gauss) Inverse(x, y float64) (lon, lat float64, err error) {
	if lon, lat, err = p.fromSphere(x, y); err != nil {
		return lon, lat, err
	}
	return adjustLon(lon + p.long0), lat, nil
}

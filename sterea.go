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

// sterea is the Oblique Stereographic Alternative: a double projection
// through the Gaussian sphere.
type sterea struct {
	*gauss
	a, k0, long0, x0, y0 float64
	sinc0, cosc0, r2     float64
}

func newSterea(d *Definition, e Ellipsoid) (Projection, error) {
	g := initGauss(d, e)
	if g.rc == 0 || math.IsNaN(g.rc) {
		return nil, configErr("sterea", "degenerate gaussian sphere radius")
	}
	return &sterea{
		gauss: g,
		a:     e.A,
		k0:    orDefault(d.K0, 1),
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
		sinc0: math.Sin(g.phic0),
		cosc0: math.Cos(g.phic0),
		r2:    2 * g.rc,
	}, nil
}

// Forward maps lat,long to x,y.
func (p *sterea) Forward(lon, lat float64) (x, y float64, err error) {
	lon, lat = p.toSphere(adjustLon(lon-p.long0), lat)
	sinc := math.Sin(lat)
	cosc := math.Cos(lat)
	cosl := math.Cos(lon)
	den := 1 + p.sinc0*sinc + p.cosc0*cosc*cosl
	if math.Abs(den) < epsln {
		return math.NaN(), math.NaN(), infinite("sterea forward")
	}
	k := p.k0 * p.r2 / den
	x = k * cosc * math.Sin(lon)
	y = k * (p.cosc0*sinc - p.sinc0*cosc*cosl)
	return p.a*x + p.x0, p.a*y + p.y0, nil
}

// Inverse maps x,y to lat/long.
func (p *sterea) Inverse(x, y float64) (lon, lat float64, err error) {
	x = (x - p.x0) / p.a / p.k0
	y = (y - p.y0) / p.a / p.k0
	if rho := math.Hypot(x, y); rho != 0 {
		c := 2 * math.Atan2(rho, p.r2)
		sinc := math.Sin(c)
		cosc := math.Cos(c)
		lat = math.Asin(cosc*p.sinc0 + y*sinc*p.cosc0/rho)
		lon = math.Atan2(x*sinc, rho*p.cosc0*cosc-y*p.sinc0*sinc)
	} else {
		lat = p.phic0
	}
	if lon, lat, err = p.fromSphere(lon, lat); err != nil {
		return math.NaN(), math.NaN(), err
	}
	return adjustLon(lon + p.long0), lat, nil
}

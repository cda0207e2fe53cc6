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

// stere is the Stereographic projection in polar, equatorial and oblique
// aspects.
type stere struct {
	a, e, k0            float64
	lat0, long0, x0, y0 float64
	mode                aspect
	sphere              bool
	akm1                float64
	sinX1, cosX1        float64
	sinph0, cosph0      float64
}

func ssfn(phit, sinphi, eccen float64) float64 {
	sinphi *= eccen
	return math.Tan(0.5*(halfPi+phit)) * math.Pow((1-sinphi)/(1+sinphi), 0.5*eccen)
}

func newStere(d *Definition, e Ellipsoid) (Projection, error) {
	p := &stere{
		a:      e.A,
		e:      e.E,
		k0:     orDefault(d.K0, 1),
		lat0:   orDefault(d.Lat0, 0),
		long0:  orDefault(d.Long0, 0),
		x0:     orDefault(d.X0, 0),
		y0:     orDefault(d.Y0, 0),
		sphere: e.Sphere,
	}
	p.mode = aspectOf(p.lat0)
	phits := math.Abs(orDefault(d.LatTS, halfPi))

	if !p.sphere {
		switch p.mode {
		case northPolar, southPolar:
			if math.Abs(phits-halfPi) < epsln {
				p.akm1 = 2 * p.k0 / math.Sqrt(math.Pow(1+p.e, 1+p.e)*math.Pow(1-p.e, 1-p.e))
			} else {
				t := math.Sin(phits)
				p.akm1 = math.Cos(phits) / tsfnz(p.e, phits, t)
				t *= p.e
				p.akm1 /= math.Sqrt(1 - t*t)
			}
		case equatorial, oblique:
			t := math.Sin(p.lat0)
			x := 2*math.Atan(ssfn(p.lat0, t, p.e)) - halfPi
			t *= p.e
			p.akm1 = 2 * p.k0 * math.Cos(p.lat0) / math.Sqrt(1-t*t)
			p.sinX1 = math.Sin(x)
			p.cosX1 = math.Cos(x)
		}
		return p, nil
	}

	switch p.mode {
	case oblique, equatorial:
		p.sinph0 = math.Sin(p.lat0)
		p.cosph0 = math.Cos(p.lat0)
		p.akm1 = 2 * p.k0
	case southPolar, northPolar:
		if math.Abs(phits-halfPi) >= epsln {
			p.akm1 = math.Cos(phits) / math.Tan(fortPi-0.5*phits)
		} else {
			p.akm1 = 2 * p.k0
		}
	}
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *stere) Forward(lon, lat float64) (x, y float64, err error) {
	lam := adjustLon(lon - p.long0)
	sinlam := math.Sin(lam)
	coslam := math.Cos(lam)
	sinphi := math.Sin(lat)

	if p.sphere {
		cosphi := math.Cos(lat)
		switch p.mode {
		case equatorial, oblique:
			y = 1 + p.sinph0*sinphi + p.cosph0*cosphi*coslam
			if y <= epsln {
				return math.NaN(), math.NaN(), infinite("stere forward")
			}
			y = p.akm1 / y
			x = y * cosphi * sinlam
			y *= p.cosph0*sinphi - p.sinph0*cosphi*coslam
		case northPolar, southPolar:
			if p.mode == northPolar {
				coslam = -coslam
				lat = -lat
			}
			if math.Abs(lat-halfPi) < 1e-8 {
				return math.NaN(), math.NaN(), infinite("stere forward")
			}
			y = p.akm1 * math.Tan(fortPi+0.5*lat)
			x = sinlam * y
			y *= coslam
		}
		return x*p.a + p.x0, y*p.a + p.y0, nil
	}

	switch p.mode {
	case equatorial, oblique:
		chi := 2*math.Atan(ssfn(lat, sinphi, p.e)) - halfPi
		sinX := math.Sin(chi)
		cosX := math.Cos(chi)
		den := p.cosX1 * (1 + p.sinX1*sinX + p.cosX1*cosX*coslam)
		if math.Abs(den) < epsln {
			return math.NaN(), math.NaN(), infinite("stere forward")
		}
		a := p.akm1 / den
		y = a * (p.cosX1*sinX - p.sinX1*cosX*coslam)
		x = a * cosX
	case southPolar, northPolar:
		if p.mode == southPolar {
			lat = -lat
			coslam = -coslam
			sinphi = -sinphi
		}
		if math.Abs(lat+halfPi) < 1e-8 {
			return math.NaN(), math.NaN(), infinite("stere forward")
		}
		x = p.akm1 * tsfnz(p.e, lat, sinphi)
		y = -x * coslam
	}
	x *= sinlam
	return x*p.a + p.x0, y*p.a + p.y0, nil
}

// Inverse maps x,y to lat/long.
func (p *stere) Inverse(x, y float64) (lon, lat float64, err error) {
	x = (x - p.x0) / p.a
	y = (y - p.y0) / p.a

	if p.sphere {
		rh := math.Hypot(x, y)
		c := 2 * math.Atan(rh/p.akm1)
		sinc := math.Sin(c)
		cosc := math.Cos(c)
		switch p.mode {
		case equatorial, oblique:
			if math.Abs(rh) <= epsln {
				lat = p.lat0
			} else {
				lat = math.Asin(cosc*p.sinph0 + y*sinc*p.cosph0/rh)
			}
			c = cosc - p.sinph0*math.Sin(lat)
			if c != 0 || x != 0 {
				lon = math.Atan2(x*sinc*p.cosph0, c*rh)
			}
		case northPolar, southPolar:
			if p.mode == northPolar {
				y = -y
			}
			if math.Abs(rh) <= epsln {
				lat = p.lat0
			} else if p.mode == southPolar {
				lat = math.Asin(-cosc)
			} else {
				lat = math.Asin(cosc)
			}
			if x != 0 || y != 0 {
				lon = math.Atan2(x, y)
			}
		}
		return adjustLon(lon + p.long0), lat, nil
	}

	const iterations = 8
	var tp, phiL, halfPiSign, halfe float64
	rho := math.Hypot(x, y)
	switch p.mode {
	case oblique, equatorial:
		tp = 2 * math.Atan2(rho*p.cosX1, p.akm1)
		cosphi := math.Cos(tp)
		sinphi := math.Sin(tp)
		if rho == 0 {
			phiL = math.Asin(cosphi * p.sinX1)
		} else {
			phiL = math.Asin(cosphi*p.sinX1 + y*sinphi*p.cosX1/rho)
		}
		tp = math.Tan(0.5 * (halfPi + phiL))
		x *= sinphi
		y = rho*p.cosX1*cosphi - y*p.sinX1*sinphi
		halfPiSign = halfPi
		halfe = 0.5 * p.e
	case northPolar, southPolar:
		if p.mode == northPolar {
			y = -y
		}
		tp = -rho / p.akm1
		phiL = halfPi - 2*math.Atan(tp)
		halfPiSign = -halfPi
		halfe = -0.5 * p.e
	}
	for i := 0; i < iterations; i++ {
		sinphi := p.e * math.Sin(phiL)
		lat = 2*math.Atan(tp*math.Pow((1+sinphi)/(1-sinphi), halfe)) - halfPiSign
		if math.Abs(phiL-lat) < 1e-10 {
			if p.mode == southPolar {
				lat = -lat
			}
			if x != 0 || y != 0 {
				lon = math.Atan2(x, y)
			}
			return adjustLon(lon + p.long0), lat, nil
		}
		phiL = lat
	}
	return math.NaN(), math.NaN(), noConvergence("stere inverse", iterations)
}

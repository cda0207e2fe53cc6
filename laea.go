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

// aspect is the orientation of an azimuthal projection.
type aspect int

const (
	southPolar aspect = iota + 1
	northPolar
	equatorial
	oblique
)

// aspectOf classifies the projection center latitude.
func aspectOf(lat0 float64) aspect {
	t := math.Abs(lat0)
	switch {
	case math.Abs(t-halfPi) < epsln:
		if lat0 < 0 {
			return southPolar
		}
		return northPolar
	case t < epsln:
		return equatorial
	default:
		return oblique
	}
}

// laea is the Lambert Azimuthal Equal Area projection.
type laea struct {
	a, e, es             float64
	lat0, long0, x0, y0  float64
	mode                 aspect
	sphere               bool
	sinph0, cosph0       float64
	qp, rq, dd, xmf, ymf float64
	sinb1, cosb1         float64
	apa                  [3]float64
}

func newLAEA(d *Definition, e Ellipsoid) (Projection, error) {
	p := &laea{
		a:      e.A,
		e:      e.E,
		es:     e.Es,
		lat0:   orDefault(d.Lat0, 0),
		long0:  orDefault(d.Long0, 0),
		x0:     orDefault(d.X0, 0),
		y0:     orDefault(d.Y0, 0),
		sphere: e.Sphere,
	}
	p.mode = aspectOf(p.lat0)
	if p.sphere {
		if p.mode == oblique {
			p.sinph0 = math.Sin(p.lat0)
			p.cosph0 = math.Cos(p.lat0)
		}
		return p, nil
	}
	p.qp = qsfnz(p.e, 1)
	p.apa = authset(p.es)
	switch p.mode {
	case northPolar, southPolar:
		p.dd = 1
	case equatorial:
		p.rq = math.Sqrt(0.5 * p.qp)
		p.dd = 1 / p.rq
		p.xmf = 1
		p.ymf = 0.5 * p.qp
	case oblique:
		p.rq = math.Sqrt(0.5 * p.qp)
		sinphi := math.Sin(p.lat0)
		p.sinb1 = qsfnz(p.e, sinphi) / p.qp
		p.cosb1 = math.Sqrt(1 - p.sinb1*p.sinb1)
		p.dd = math.Cos(p.lat0) / (math.Sqrt(1-p.es*sinphi*sinphi) * p.rq * p.cosb1)
		p.xmf = p.rq * p.dd
		p.ymf = p.rq / p.dd
	}
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *laea) Forward(lon, lat float64) (x, y float64, err error) {
	lam := adjustLon(lon - p.long0)
	sinphi := math.Sin(lat)
	cosphi := math.Cos(lat)
	coslam := math.Cos(lam)
	sinlam := math.Sin(lam)

	if p.sphere {
		switch p.mode {
		case oblique, equatorial:
			if p.mode == equatorial {
				y = 1 + cosphi*coslam
			} else {
				y = 1 + p.sinph0*sinphi + p.cosph0*cosphi*coslam
			}
			if y <= epsln {
				return math.NaN(), math.NaN(), infinite("laea forward")
			}
			y = math.Sqrt(2 / y)
			x = y * cosphi * sinlam
			if p.mode == equatorial {
				y *= sinphi
			} else {
				y *= p.cosph0*sinphi - p.sinph0*cosphi*coslam
			}
		case northPolar, southPolar:
			if p.mode == northPolar {
				coslam = -coslam
			}
			if math.Abs(lat+p.lat0) < epsln {
				return math.NaN(), math.NaN(), infinite("laea forward")
			}
			y = fortPi - lat*0.5
			if p.mode == southPolar {
				y = 2 * math.Cos(y)
			} else {
				y = 2 * math.Sin(y)
			}
			x = y * sinlam
			y *= coslam
		}
		return p.a*x + p.x0, p.a*y + p.y0, nil
	}

	var sinb, cosb, b float64
	q := qsfnz(p.e, sinphi)
	if p.mode == oblique || p.mode == equatorial {
		sinb = q / p.qp
		cosb = math.Sqrt(1 - sinb*sinb)
	}
	switch p.mode {
	case oblique:
		b = 1 + p.sinb1*sinb + p.cosb1*cosb*coslam
	case equatorial:
		b = 1 + cosb*coslam
	case northPolar:
		b = halfPi + lat
		q = p.qp - q
	case southPolar:
		b = lat - halfPi
		q = p.qp + q
	}
	if math.Abs(b) < epsln {
		return math.NaN(), math.NaN(), infinite("laea forward")
	}
	switch p.mode {
	case oblique:
		b = math.Sqrt(2 / b)
		y = p.ymf * b * (p.cosb1*sinb - p.sinb1*cosb*coslam)
		x = p.xmf * b * cosb * sinlam
	case equatorial:
		b = math.Sqrt(2 / (1 + cosb*coslam))
		y = b * sinb * p.ymf
		x = p.xmf * b * cosb * sinlam
	case northPolar, southPolar:
		if q >= 0 {
			b = math.Sqrt(q)
			x = b * sinlam
			if p.mode == southPolar {
				y = coslam * b
			} else {
				y = -coslam * b
			}
		}
	}
	return p.a*x + p.x0, p.a*y + p.y0, nil
}

// Inverse maps x,y to lat/long.
func (p *laea) Inverse(x, y float64) (lon, lat float64, err error) {
	x = (x - p.x0) / p.a
	y = (y - p.y0) / p.a
	var lam, phi float64

	if p.sphere {
		rh := math.Hypot(x, y)
		phi = rh * 0.5
		if phi > 1 {
			return math.NaN(), math.NaN(), outOfRange("laea inverse", "radius %g outside the projected disk", rh)
		}
		phi = 2 * math.Asin(phi)
		var sinz, cosz float64
		if p.mode == oblique || p.mode == equatorial {
			sinz = math.Sin(phi)
			cosz = math.Cos(phi)
		}
		switch p.mode {
		case equatorial:
			if math.Abs(rh) <= epsln {
				phi = 0
			} else {
				phi = math.Asin(y * sinz / rh)
			}
			x *= sinz
			y = cosz * rh
		case oblique:
			if math.Abs(rh) <= epsln {
				phi = p.lat0
			} else {
				phi = math.Asin(cosz*p.sinph0 + y*sinz*p.cosph0/rh)
			}
			x *= sinz * p.cosph0
			y = (cosz - math.Sin(phi)*p.sinph0) * rh
		case northPolar:
			y = -y
			phi = halfPi - phi
		case southPolar:
			phi -= halfPi
		}
		if y == 0 && (p.mode == equatorial || p.mode == oblique) {
			lam = 0
		} else {
			lam = math.Atan2(x, y)
		}
		return adjustLon(p.long0 + lam), phi, nil
	}

	var ab float64
	switch p.mode {
	case equatorial, oblique:
		x /= p.dd
		y *= p.dd
		rho := math.Hypot(x, y)
		if rho < epsln {
			return p.long0, p.lat0, nil
		}
		sCe := 2 * math.Asin(0.5*rho/p.rq)
		cCe := math.Cos(sCe)
		sCe = math.Sin(sCe)
		x *= sCe
		if p.mode == oblique {
			ab = cCe*p.sinb1 + y*sCe*p.cosb1/rho
			y = rho*p.cosb1*cCe - y*p.sinb1*sCe
		} else {
			ab = y * sCe / rho
			y = rho * cCe
		}
	case northPolar, southPolar:
		if p.mode == northPolar {
			y = -y
		}
		q := x*x + y*y
		if q == 0 {
			return p.long0, p.lat0, nil
		}
		ab = 1 - q/p.qp
		if p.mode == southPolar {
			ab = -ab
		}
	}
	lam = math.Atan2(x, y)
	phi = authlat(asinz(ab), p.apa)
	return adjustLon(p.long0 + lam), phi, nil
}

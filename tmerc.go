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

// tmerc is the Transverse Mercator projection using the gctpc series.
type tmerc struct {
	a, es, ep2, k0      float64
	lat0, long0, x0, y0 float64
	e0, e1, e2, e3, ml0 float64
	sphere              bool
}

func newTMerc(d *Definition, e Ellipsoid) (Projection, error) {
	return initTMerc(d, e), nil
}

func initTMerc(d *Definition, e Ellipsoid) *tmerc {
	p := &tmerc{
		a:      e.A,
		es:     e.Es,
		ep2:    e.Ep2,
		k0:     orDefault(d.K0, 1),
		lat0:   orDefault(d.Lat0, 0),
		long0:  orDefault(d.Long0, 0),
		x0:     orDefault(d.X0, 0),
		y0:     orDefault(d.Y0, 0),
		sphere: e.Sphere,
	}
	p.e0 = e0fn(p.es)
	p.e1 = e1fn(p.es)
	p.e2 = e2fn(p.es)
	p.e3 = e3fn(p.es)
	p.ml0 = p.a * mlfn(p.e0, p.e1, p.e2, p.e3, p.lat0)
	return p
}

// Forward maps long/lat in radians to x/y.
func (p *tmerc) Forward(lon, lat float64) (x, y float64, err error) {
	deltaLon := adjustLon(lon - p.long0)
	sinPhi := math.Sin(lat)
	cosPhi := math.Cos(lat)

	if p.sphere {
		b := cosPhi * math.Sin(deltaLon)
		if math.Abs(math.Abs(b)-1) < 0.0000000001 {
			return math.NaN(), math.NaN(), infinite("tmerc forward")
		}
		x = 0.5*p.a*p.k0*math.Log((1+b)/(1-b)) + p.x0
		con := math.Acos(cosPhi * math.Cos(deltaLon) / math.Sqrt(1-b*b))
		if lat < 0 {
			con = -con
		}
		y = p.a*p.k0*(con-p.lat0) + p.y0
		return x, y, nil
	}

	al := cosPhi * deltaLon
	als := al * al
	c := p.ep2 * cosPhi * cosPhi
	tq := math.Tan(lat)
	t := tq * tq
	con := 1 - p.es*sinPhi*sinPhi
	n := p.a / math.Sqrt(con)
	ml := p.a * mlfn(p.e0, p.e1, p.e2, p.e3, lat)

	x = p.k0*n*al*(1+als/6*(1-t+c+als/20*(5-18*t+t*t+72*c-58*p.ep2))) + p.x0
	y = p.k0*(ml-p.ml0+n*tq*(als*(0.5+als/24*(5-t+9*c+4*c*c+als/30*(61-58*t+t*t+600*c-330*p.ep2))))) + p.y0
	return x, y, nil
}

// Inverse maps x/y to long/lat in radians.
func (p *tmerc) Inverse(x, y float64) (lon, lat float64, err error) {
	const iterations = 6
	x -= p.x0
	y -= p.y0

	if p.sphere {
		f := math.Exp(x / (p.a * p.k0))
		g := 0.5 * (f - 1/f)
		temp := p.lat0 + y/(p.a*p.k0)
		h := math.Cos(temp)
		con := math.Sqrt((1 - h*h) / (1 + g*g))
		lat = asinz(con)
		if temp < 0 {
			lat = -lat
		}
		if g == 0 && h == 0 {
			lon = p.long0
		} else {
			lon = adjustLon(math.Atan2(g, h) + p.long0)
		}
		return lon, lat, nil
	}

	con := (p.ml0 + y/p.k0) / p.a
	phi := con
	for i := 0; ; i++ {
		deltaPhi := (con+p.e1*math.Sin(2*phi)-p.e2*math.Sin(4*phi)+p.e3*math.Sin(6*phi))/p.e0 - phi
		phi += deltaPhi
		if math.Abs(deltaPhi) <= epsln {
			break
		}
		if i >= iterations {
			return math.NaN(), math.NaN(), noConvergence("tmerc inverse", iterations)
		}
	}
	if math.Abs(phi) >= halfPi {
		return p.long0, halfPi * Sign(y), nil
	}
	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	tanPhi := math.Tan(phi)
	c := p.ep2 * cosPhi * cosPhi
	cs := c * c
	t := tanPhi * tanPhi
	ts := t * t
	con = 1 - p.es*sinPhi*sinPhi
	n := p.a / math.Sqrt(con)
	r := n * (1 - p.es) / con
	dd := x / (n * p.k0)
	ds := dd * dd
	lat = phi - (n*tanPhi*ds/r)*(0.5-ds/24*(5+3*t+10*c-4*cs-9*p.ep2-ds/30*(61+90*t+298*c+45*ts-252*p.ep2-3*cs)))
	lon = adjustLon(p.long0 + dd*(1-ds/6*(1+2*t+c-ds/20*(5-2*c+28*t-3*cs+8*p.ep2+24*ts)))/cosPhi)
	return lon, lat, nil
}

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

// omerc is the Hotine Oblique Mercator projection. The center line is
// given either by an azimuth through the center point (alpha, lonc) or
// by two points (lat_1, lon_1, lat_2, lon_2).
type omerc struct {
	e, x0, y0    float64
	bl, al, el   float64
	longc, u     float64
	singam       float64
	cosgam       float64
	sinaz, cosaz float64
	noRot        bool
}

func newOmerc(d *Definition, e Ellipsoid) (Projection, error) {
	lat0 := orDefault(d.Lat0, 0)
	k0 := orDefault(d.K0, 1)
	if math.Abs(math.Abs(lat0)-halfPi) <= epsln {
		return nil, configErr("omerc", "center latitude at a pole")
	}
	p := &omerc{
		e:     e.E,
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
		noRot: d.NoRot,
	}
	es := e.Es
	sinp := math.Sin(lat0)
	cosp := math.Cos(lat0)
	con := 1 - es*sinp*sinp
	com := math.Sqrt(1 - es)
	p.bl = math.Sqrt(1 + es*math.Pow(cosp, 4)/(1-es))
	p.al = e.A * p.bl * k0 * com / con

	var dd, f float64
	if math.Abs(lat0) < epsln {
		dd, f, p.el = 1, 1, 1
	} else {
		ts := tsfnz(p.e, lat0, sinp)
		dd = p.bl * com / (cosp * math.Sqrt(con))
		f = dd
		if dd*dd-1 > 0 {
			if lat0 >= 0 {
				f = dd + math.Sqrt(dd*dd-1)
			} else {
				f = dd - math.Sqrt(dd*dd-1)
			}
		}
		p.el = f * math.Pow(ts, p.bl)
	}

	var alpha, gama float64
	if isSet(d.Lat1) && isSet(d.Lat2) && isSet(d.Long1) && isSet(d.Long2) {
		lat1, lat2 := d.Lat1, d.Lat2
		lon1, lon2 := d.Long1, d.Long2
		if math.Abs(lat1-lat2) <= epsln {
			return nil, configErr("omerc", "center line points share a latitude")
		}
		if math.Abs(lat1) <= epsln || math.Abs(math.Abs(lat1)-halfPi) <= epsln {
			return nil, configErr("omerc", "first center line point on the equator or a pole")
		}
		h := math.Pow(tsfnz(p.e, lat1, math.Sin(lat1)), p.bl)
		l := math.Pow(tsfnz(p.e, lat2, math.Sin(lat2)), p.bl)
		f = p.el / h
		g := 0.5 * (f - 1/f)
		j := (p.el*p.el - l*h) / (p.el*p.el + l*h)
		pp := (l - h) / (l + h)
		dlon := lon1 - lon2
		if dlon < -math.Pi {
			lon2 -= twoPi
		}
		if dlon > math.Pi {
			lon2 += twoPi
		}
		dlon = lon1 - lon2
		p.longc = 0.5*(lon1+lon2) - math.Atan(j*math.Tan(0.5*p.bl*dlon)/pp)/p.bl
		dlon = adjustLon(lon1 - p.longc)
		gama = math.Atan(math.Sin(p.bl*dlon) / g)
		alpha = asinz(dd * math.Sin(gama))
	} else {
		if !isSet(d.Alpha) {
			return nil, configErr("omerc", "alpha or two center line points required")
		}
		alpha = d.Alpha
		g := 0.5 * (f - 1/f)
		gama = asinz(math.Sin(alpha) / dd)
		p.longc = orDefault(d.LongC, orDefault(d.Long0, 0)) - asinz(g*math.Tan(gama))/p.bl
	}

	p.singam = math.Sin(gama)
	p.cosgam = math.Cos(gama)
	p.sinaz = math.Sin(alpha)
	p.cosaz = math.Cos(alpha)
	p.u = p.al / p.bl * math.Atan(math.Sqrt(math.Max(dd*dd-1, 0))/p.cosaz)
	if lat0 < 0 {
		p.u = -p.u
	}
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *omerc) Forward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - p.longc)
	vl := math.Sin(p.bl * dlon)
	var ul, us float64
	if math.Abs(math.Abs(lat)-halfPi) > epsln {
		ts1 := tsfnz(p.e, lat, math.Sin(lat))
		q := p.el / math.Pow(ts1, p.bl)
		s := 0.5 * (q - 1/q)
		t := 0.5 * (q + 1/q)
		ul = (s*p.singam - vl*p.cosgam) / t
		con := math.Cos(p.bl * dlon)
		if math.Abs(con) < 0.0000001 {
			us = p.al * dlon
		} else {
			us = p.al * math.Atan2(s*p.cosgam+vl*p.singam, con) / p.bl
		}
	} else {
		ul = p.singam
		if lat < 0 {
			ul = -ul
		}
		us = p.al * lat / p.bl
	}
	if math.Abs(math.Abs(ul)-1) <= epsln {
		return math.NaN(), math.NaN(), infinite("omerc forward")
	}
	vs := 0.5 * p.al * math.Log((1-ul)/(1+ul)) / p.bl
	if p.noRot {
		return p.x0 + us, p.y0 + vs, nil
	}
	us -= p.u
	x = p.x0 + vs*p.cosaz + us*p.sinaz
	y = p.y0 + us*p.cosaz - vs*p.sinaz
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *omerc) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y -= p.y0
	var us, vs float64
	if p.noRot {
		us, vs = x, y
	} else {
		vs = x*p.cosaz - y*p.sinaz
		us = y*p.cosaz + x*p.sinaz + p.u
	}
	q := math.Exp(-p.bl * vs / p.al)
	s := 0.5 * (q - 1/q)
	t := 0.5 * (q + 1/q)
	vl := math.Sin(p.bl * us / p.al)
	ul := (vl*p.cosgam + s*p.singam) / t
	if math.Abs(math.Abs(ul)-1) <= epsln {
		return p.longc, Sign(ul) * halfPi, nil
	}
	ts1 := math.Pow(p.el/math.Sqrt((1+ul)/(1-ul)), 1/p.bl)
	if lat, err = phi2z(p.e, ts1); err != nil {
		return math.NaN(), math.NaN(), err
	}
	theta := p.longc - math.Atan2(s*p.cosgam-vl*p.singam, math.Cos(p.bl*us/p.al))/p.bl
	return adjustLon(theta), lat, nil
}

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

// vandg is the Van der Grinten projection on the sphere of radius a.
type vandg struct {
	r, long0, x0, y0 float64
}

func newVandg(d *Definition, e Ellipsoid) (Projection, error) {
	return &vandg{
		r:     e.A,
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
	}, nil
}

// Forward maps lat,long to x,y.
func (p *vandg) Forward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - p.long0)
	if math.Abs(lat) <= epsln {
		return p.x0 + p.r*dlon, p.y0, nil
	}
	theta := asinz(2 * math.Abs(lat/math.Pi))
	if math.Abs(dlon) <= epsln || math.Abs(math.Abs(lat)-halfPi) <= epsln {
		y = math.Pi * p.r * math.Tan(0.5*theta)
		if lat < 0 {
			y = -y
		}
		return p.x0, p.y0 + y, nil
	}
	al := 0.5 * math.Abs(math.Pi/dlon-dlon/math.Pi)
	asq := al * al
	sinth := math.Sin(theta)
	costh := math.Cos(theta)
	g := costh / (sinth + costh - 1)
	gsq := g * g
	m := g * (2/sinth - 1)
	msq := m * m
	con := math.Pi * p.r * (al*(g-msq) + math.Sqrt(asq*(g-msq)*(g-msq)-(msq+asq)*(gsq-msq))) / (msq + asq)
	if dlon < 0 {
		con = -con
	}
	x = p.x0 + con
	con = math.Abs(con / (math.Pi * p.r))
	y = math.Pi * p.r * math.Sqrt(1-con*con-2*al*con)
	if lat < 0 {
		y = -y
	}
	return x, p.y0 + y, nil
}

// Inverse maps x,y to lat/long.
func (p *vandg) Inverse(x, y float64) (lon, lat float64, err error) {
	con := math.Pi * p.r
	xx := (x - p.x0) / con
	yy := (y - p.y0) / con
	if xx == 0 && yy == 0 {
		return p.long0, 0, nil
	}
	xys := xx*xx + yy*yy
	if xys > 1+epsln {
		return math.NaN(), math.NaN(), outOfRange("vandg inverse", "point outside the bounding circle")
	}
	c1 := -math.Abs(yy) * (1 + xys)
	c2 := c1 - 2*yy*yy + xx*xx
	c3 := -2*c1 + 1 + 2*yy*yy + xys*xys
	d := yy*yy/c3 + (2*c2*c2*c2/c3/c3/c3-9*c1*c2/c3/c3)/27
	a1 := (c1 - c2*c2/3/c3) / c3
	m1 := 2 * math.Sqrt(-a1/3)
	con = ((3 * d) / a1) / m1
	if math.Abs(con) > 1 {
		con = Sign(con)
	}
	th1 := math.Acos(con) / 3
	lat = (-m1*math.Cos(th1+math.Pi/3) - c2/3/c3) * math.Pi
	if yy < 0 {
		lat = -lat
	}
	if math.Abs(xx) < epsln {
		return p.long0, lat, nil
	}
	lon = p.long0 + math.Pi*(xys-1+math.Sqrt(1+2*(xx*xx-yy*yy)+xys*xys))/2/xx
	return adjustLon(lon), lat, nil
}

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
	mollX = 2 * math.Sqrt2 / math.Pi
	mollY = math.Sqrt2
)

// moll is the Mollweide projection on the sphere of radius a.
type moll struct {
	a, long0, x0, y0 float64
}

func newMoll(d *Definition, e Ellipsoid) (Projection, error) {
	return &moll{
		a:     e.A,
		long0: orDefault(d.Long0, 0),
		x0:    orDefault(d.X0, 0),
		y0:    orDefault(d.Y0, 0),
	}, nil
}

// Forward maps lat,long to x,y.
func (p *moll) Forward(lon, lat float64) (x, y float64, err error) {
	const iterations = 50
	deltaLon := adjustLon(lon - p.long0)
	var theta float64
	if halfPi-math.Abs(lat) < epsln {
		// Newton stalls on the triple root at the poles.
		theta = Sign(lat) * math.Pi
		deltaLon = 0
	} else {
		con := math.Pi * math.Sin(lat)
		theta = lat
		for i := 0; ; i++ {
			deltaTheta := -(theta + math.Sin(theta) - con) / (1 + math.Cos(theta))
			theta += deltaTheta
			if math.Abs(deltaTheta) < epsln {
				break
			}
			if i >= iterations {
				return math.NaN(), math.NaN(), noConvergence("moll forward", iterations)
			}
		}
	}
	theta /= 2
	x = mollX*p.a*deltaLon*math.Cos(theta) + p.x0
	y = mollY*p.a*math.Sin(theta) + p.y0
	return x, y, nil
}

// Inverse maps x,y to lat/long.
func (p *moll) Inverse(x, y float64) (lon, lat float64, err error) {
	x -= p.x0
	y -= p.y0
	arg := y / (mollY * p.a)
	if math.Abs(arg) > 0.999999999999 {
		arg = Sign(arg) * 0.999999999999
	}
	theta := math.Asin(arg)
	lon = adjustLon(p.long0 + x/(mollX*p.a*math.Cos(theta)))
	arg = (2*theta + math.Sin(2*theta)) / math.Pi
	return lon, asinz(arg), nil
}

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

// New Zealand Map Grid series coefficients.
var (
	nzmgA = [...]float64{0.6399175073, -0.1358797613, 0.063294409, -0.02526853, 0.0117879,
		-0.0055161, 0.0026906, -0.001333, 0.00067, -0.00034}
	nzmgB = [...]complex128{complex(0.7557853228, 0), complex(0.249204646, 0.003371507),
		complex(-0.001541739, 0.041058560), complex(-0.10162907, 0.01727609),
		complex(-0.26623489, -0.36249218), complex(-0.6870983, -1.1651967)}
	nzmgC = [...]complex128{complex(1.3231270439, 0), complex(-0.577245789, -0.007809598),
		complex(0.508307513, -0.112208952), complex(-0.15094762, 0.18200602),
		complex(1.01418179, 1.64497696), complex(1.9660549, 2.5127645)}
	nzmgD = [...]float64{1.5627014243, 0.5185406398, -0.03333098, -0.1052906, -0.0368594,
		0.007317, 0.01220, 0.00394, -0.0013}
)

// nzmg is the New Zealand Map Grid. Latitude offsets are expressed in
// units of 1e5 arc seconds in the series.
type nzmg struct {
	a                   float64
	lat0, long0, x0, y0 float64
	iterations          int
}

func newNZMG(d *Definition, e Ellipsoid) (Projection, error) {
	p := &nzmg{
		a:          e.A,
		lat0:       orDefault(d.Lat0, 0),
		long0:      orDefault(d.Long0, 0),
		x0:         orDefault(d.X0, 0),
		y0:         orDefault(d.Y0, 0),
		iterations: d.NZMGIterations,
	}
	if p.iterations < 0 {
		return nil, configErr("nzmg", "negative iteration count %d", p.iterations)
	}
	return p, nil
}

// Forward maps lat,long to x,y.
func (p *nzmg) Forward(lon, lat float64) (x, y float64, err error) {
	dPhi := (lat - p.lat0) / secToRad * 1e-5
	dLambda := adjustLon(lon - p.long0)

	var dPsi float64
	dPhiN := 1.0
	for _, a := range nzmgA {
		dPhiN *= dPhi
		dPsi += a * dPhiN
	}

	theta := complex(dPsi, dLambda)
	var z complex128
	thetaN := complex(1, 0)
	for _, b := range nzmgB {
		thetaN *= theta
		z += b * thetaN
	}
	return imag(z)*p.a + p.x0, real(z)*p.a + p.y0, nil
}

// Inverse maps x,y to lat/long.
func (p *nzmg) Inverse(x, y float64) (lon, lat float64, err error) {
	z := complex((y-p.y0)/p.a, (x-p.x0)/p.a)

	var theta complex128
	zN := complex(1, 0)
	for _, c := range nzmgC {
		zN *= z
		theta += c * zN
	}

	// Newton-Raphson refinement of the series inverse.
	for i := 0; i < p.iterations; i++ {
		num := z
		den := nzmgB[0]
		thetaN := complex(1, 0)
		for n := 2; n <= len(nzmgB); n++ {
			thetaN *= theta
			num += complex(float64(n-1), 0) * nzmgB[n-1] * thetaN * theta
			den += complex(float64(n), 0) * nzmgB[n-1] * thetaN
		}
		theta = num / den
	}

	dPsi := real(theta)
	dLambda := imag(theta)
	var dPhi float64
	dPsiN := 1.0
	for _, d := range nzmgD {
		dPsiN *= dPsi
		dPhi += d * dPsiN
	}
	lat = p.lat0 + dPhi*secToRad*1e5
	return adjustLon(p.long0 + dLambda), lat, nil
}

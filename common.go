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
	halfPi = math.Pi / 2
	fortPi = math.Pi / 4
	twoPi  = math.Pi * 2

	// Deg2Rad converts degrees to radians.
	Deg2Rad = 0.01745329251994329577
	// Rad2Deg converts radians to degrees.
	Rad2Deg = 57.29577951308232088

	secToRad = 4.84813681109535993589914102357e-6 // pi/180/3600

	epsln   = 1.0e-10
	maxIter = 20

	// pj_set_ell.c
	sixth = 0.1666666666666666667  // 1/6
	ra4   = 0.04722222222222222222 // 17/360
	ra6   = 0.02215608465608465608 // 67/3024
)

// meridional distance series, pj_mlfn.c
const (
	c00 = 1.0
	c02 = 0.25
	c04 = 0.046875
	c06 = 0.01953125
	c08 = 0.01068115234375
	c22 = 0.75
	c44 = 0.46875
	c46 = 0.01302083333333333333
	c48 = 0.00712076822916666666
	c66 = 0.36458333333333333333
	c68 = 0.00569661458333333333
	c88 = 0.3076171875
)

// Sign returns -1 for negative x and 1 otherwise.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// msfnz computes the radius of a parallel of latitude divided by the
// semimajor axis.
func msfnz(eccent, sinphi, cosphi float64) float64 {
	con := eccent * sinphi
	return cosphi / math.Sqrt(1-con*con)
}

// tsfnz computes the conformal latitude "t" value used by the Lambert
// Conformal Conic and polar Stereographic projections.
func tsfnz(eccent, phi, sinphi float64) float64 {
	con := eccent * sinphi
	com := 0.5 * eccent
	con = math.Pow((1-con)/(1+con), com)
	return math.Tan(0.5*(halfPi-phi)) / con
}

// phi2z is the inverse of tsfnz.
func phi2z(eccent, ts float64) (float64, error) {
	const iterations = 15
	eccnth := 0.5 * eccent
	phi := halfPi - 2*math.Atan(ts)
	for i := 0; i < iterations; i++ {
		con := eccent * math.Sin(phi)
		dphi := halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= 1e-10 {
			return phi, nil
		}
	}
	return math.NaN(), noConvergence("phi2z", iterations)
}

// qsfnz computes the authalic latitude helper q.
func qsfnz(eccent, sinphi float64) float64 {
	if eccent > 1.0e-7 {
		con := eccent * sinphi
		return (1 - eccent*eccent) * (sinphi/(1-con*con) - (0.5/eccent)*math.Log((1-con)/(1+con)))
	}
	return 2 * sinphi
}

// iqsfnz is the inverse of qsfnz.
func iqsfnz(eccent, q float64) (float64, error) {
	const iterations = 30
	temp := 1 - (1-eccent*eccent)/(2*eccent)*math.Log((1-eccent)/(1+eccent))
	if math.Abs(math.Abs(q)-temp) < 1.0e-6 {
		return Sign(q) * halfPi, nil
	}
	phi := math.Asin(0.5 * q)
	for i := 0; i < iterations; i++ {
		sinphi := math.Sin(phi)
		cosphi := math.Cos(phi)
		con := eccent * sinphi
		dphi := math.Pow(1-con*con, 2) / (2 * cosphi) *
			(q/(1-eccent*eccent) - sinphi/(1-con*con) + 0.5/eccent*math.Log((1-con)/(1+con)))
		phi += dphi
		if math.Abs(dphi) <= 1.0e-10 {
			return phi, nil
		}
	}
	return math.NaN(), noConvergence("iqsfnz", iterations)
}

// asinz is math.Asin with the argument clamped to [-1, 1] to absorb
// roundoff.
func asinz(x float64) float64 {
	if math.Abs(x) > 1 {
		if x > 1 {
			x = 1
		} else {
			x = -1
		}
	}
	return math.Asin(x)
}

// gctpc cproj.c series for transverse mercator projections.

func e0fn(x float64) float64 {
	return 1 - 0.25*x*(1+x/16*(3+1.25*x))
}

func e1fn(x float64) float64 {
	return 0.375 * x * (1 + 0.25*x*(1+0.46875*x))
}

func e2fn(x float64) float64 {
	return 0.05859375 * x * x * (1 + 0.75*x)
}

func e3fn(x float64) float64 {
	return x * x * x * (35.0 / 3072.0)
}

// mlfn is the meridional arc length for the e0..e3 series.
func mlfn(e0, e1, e2, e3, phi float64) float64 {
	return e0*phi - e1*math.Sin(2*phi) + e2*math.Sin(4*phi) - e3*math.Sin(6*phi)
}

func srat(esinp, exp float64) float64 {
	return math.Pow((1-esinp)/(1+esinp), exp)
}

// AdjustLon wraps a longitude in radians into (-pi, pi].
func AdjustLon(x float64) float64 {
	if math.Abs(x) > math.Pi {
		x -= Sign(x) * twoPi * math.Floor((math.Abs(x)+math.Pi)/twoPi)
	}
	if x <= -math.Pi {
		return math.Pi
	}
	return x
}

func adjustLon(x float64) float64 { return AdjustLon(x) }

// adjustLat wraps a latitude in radians into [-pi/2, pi/2].
func adjustLat(x float64) float64 {
	if math.Abs(x) <= halfPi {
		return x
	}
	return x - Sign(x)*math.Pi
}

// latiso returns the isometric latitude.
func latiso(eccent, phi, sinphi float64) float64 {
	if math.Abs(phi) > halfPi {
		return math.NaN()
	}
	if phi == halfPi {
		return math.Inf(1)
	}
	if phi == -halfPi {
		return math.Inf(-1)
	}
	con := eccent * sinphi
	return math.Log(math.Tan((halfPi+phi)/2)) + eccent*math.Log((1-con)/(1+con))/2
}

func fL(x, l float64) float64 {
	return 2*math.Atan(x*math.Exp(l)) - halfPi
}

// invlatiso is the inverse of latiso.
func invlatiso(eccent, ts float64) (float64, error) {
	const iterations = 100
	phi := fL(1, ts)
	for i := 0; i < iterations; i++ {
		prev := phi
		con := eccent * math.Sin(prev)
		phi = fL(math.Exp(eccent*math.Log((1+con)/(1-con))/2), ts)
		if math.Abs(phi-prev) <= 1.0e-12 {
			return phi, nil
		}
	}
	return math.NaN(), noConvergence("invlatiso", iterations)
}

// gN is the radius of curvature in the prime vertical ("grande normale").
func gN(a, e, sinphi float64) float64 {
	temp := e * sinphi
	return a / math.Sqrt(1-temp*temp)
}

// pjEnfn returns the coefficients of the 8th degree meridional distance
// series.
func pjEnfn(es float64) [5]float64 {
	var en [5]float64
	en[0] = c00 - es*(c02+es*(c04+es*(c06+es*c08)))
	en[1] = es * (c22 - es*(c04+es*(c06+es*c08)))
	t := es * es
	en[2] = t * (c44 - es*(c46+es*c48))
	t *= es
	en[3] = t * (c66 - es*c68)
	en[4] = t * es * c88
	return en
}

// pjMlfn is the meridional distance for latitude phi.
func pjMlfn(phi, sphi, cphi float64, en [5]float64) float64 {
	cphi *= sphi
	sphi *= sphi
	return en[0]*phi - cphi*(en[1]+sphi*(en[2]+sphi*(en[3]+sphi*en[4])))
}

// pjInvMlfn finds the latitude for meridional distance arg.
func pjInvMlfn(arg, es float64, en [5]float64) (float64, error) {
	k := 1 / (1 - es)
	phi := arg
	for i := maxIter; i > 0; i-- { // rarely goes over 2 iterations
		s := math.Sin(phi)
		t := 1 - es*s*s
		t = (pjMlfn(phi, s, math.Cos(phi), en) - arg) * (t * math.Sqrt(t)) * k
		phi -= t
		if math.Abs(t) < epsln {
			return phi, nil
		}
	}
	return math.NaN(), noConvergence("pjInvMlfn", maxIter)
}

// authalic latitude series coefficients
const (
	p00 = 0.33333333333333333333
	p01 = 0.17222222222222222222
	p02 = 0.10257936507936507936
	p10 = 0.06388888888888888888
	p11 = 0.06640211640211640211
	p20 = 0.01641501294219154443
)

// authset returns the coefficients used by authlat.
func authset(es float64) [3]float64 {
	var apa [3]float64
	apa[0] = es * p00
	t := es * es
	apa[0] += t * p01
	apa[1] = t * p10
	t *= es
	apa[0] += t * p02
	apa[1] += t * p11
	apa[2] = t * p20
	return apa
}

// authlat converts an authalic latitude back to a geodetic latitude.
func authlat(beta float64, apa [3]float64) float64 {
	t := beta + beta
	return beta + apa[0]*math.Sin(t) + apa[1]*math.Sin(t+t) + apa[2]*math.Sin(t+t+t)
}

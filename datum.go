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

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// DatumType classifies how a datum is related to WGS84.
type DatumType int

// Datum types.
const (
	DatumUnknown   DatumType = iota
	Datum3Param              // translation only
	Datum7Param              // Bursa-Wolf similarity transform
	DatumGridShift           // grid shift files; not supported
	DatumWGS84               // WGS84 or equivalent
	DatumNone                // no datum transformation
)

func (t DatumType) String() string {
	switch t {
	case Datum3Param:
		return "3-parameter"
	case Datum7Param:
		return "7-parameter"
	case DatumGridShift:
		return "grid shift"
	case DatumWGS84:
		return "WGS84"
	case DatumNone:
		return "none"
	default:
		return "unknown"
	}
}

const (
	adc     = 1.0026000           // Toms region 1 constant
	cos67p5 = 0.38268343236508977 // cosine of 67.5 degrees

	// tolerance for es so that GRS80 and WGS84 are considered identical.
	esTolerance = 0.000000000050
)

// Datum is a geodetic reference frame along with the parameters needed to
// shift coordinates to and from WGS84.
type Datum struct {
	Type DatumType
	// Params holds dx, dy, dz in meters and, for 7-parameter datums,
	// rx, ry, rz in radians and the scale as a multiplier.
	Params   []float64
	A, B     float64
	Es, Ep2  float64
	NADGrids string
}

// NewDatum classifies a datum. code is the datum code of the definition
// ("none" disables datum shifts), params are the towgs84 parameters
// with rotations in arc seconds and scale in parts per million, and
// nadgrids names grid shift files.
func NewDatum(code string, params []float64, nadgrids string, e Ellipsoid) *Datum {
	d := &Datum{
		Type: DatumWGS84, // default setting
		A:    e.A,
		B:    e.B,
		Es:   e.Es,
		Ep2:  e.Ep2,
	}
	if code == "none" {
		d.Type = DatumNone
	}
	if len(params) >= 3 {
		d.Params = append([]float64(nil), params...)
		if d.Params[0] != 0 || d.Params[1] != 0 || d.Params[2] != 0 {
			d.Type = Datum3Param
		}
		if len(d.Params) >= 7 {
			if d.Params[3] != 0 || d.Params[4] != 0 || d.Params[5] != 0 || d.Params[6] != 0 {
				d.Type = Datum7Param
				d.Params[3] *= secToRad
				d.Params[4] *= secToRad
				d.Params[5] *= secToRad
				d.Params[6] = d.Params[6]/1000000.0 + 1.0
			}
		}
	}
	if nadgrids != "" {
		d.Type = DatumGridShift
		d.NADGrids = nadgrids
	}
	return d
}

// Equal reports whether d and o describe the same datum. Datums on GRS80
// and WGS84 with identical parameters are considered equal. Comparing a
// grid shift datum returns an UnsupportedError.
func (d *Datum) Equal(o *Datum) (bool, error) {
	if d.Type == DatumGridShift || o.Type == DatumGridShift {
		return false, &UnsupportedError{Feature: "grid shift datum comparison"}
	}
	if d.Type != o.Type {
		return false, nil
	}
	if d.A != o.A || !scalar.EqualWithinAbs(d.Es, o.Es, esTolerance) {
		return false, nil
	}
	switch d.Type {
	case Datum3Param:
		return floats.Equal(d.Params[:3], o.Params[:3]), nil
	case Datum7Param:
		return floats.Equal(d.Params[:7], o.Params[:7]), nil
	}
	return true, nil
}

// GeodeticToGeocentric converts geodetic coordinates (longitude and
// latitude in radians, height in meters) to geocentric coordinates in
// meters.
func (d *Datum) GeodeticToGeocentric(lon, lat, height float64) (x, y, z float64, err error) {
	// Don't blow up if the latitude is just a little out of range; it may
	// be a rounding issue.
	if lat < -halfPi && lat > -1.001*halfPi {
		lat = -halfPi
	} else if lat > halfPi && lat < 1.001*halfPi {
		lat = halfPi
	} else if lat < -halfPi || lat > halfPi || math.IsNaN(lat) {
		return math.NaN(), math.NaN(), math.NaN(),
			outOfRange("geodetic to geocentric", "latitude %g", lat)
	}
	if lon > math.Pi {
		lon -= twoPi
	}
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	rn := d.A / math.Sqrt(1-d.Es*sinLat*sinLat) // earth radius at location
	x = (rn + height) * cosLat * math.Cos(lon)
	y = (rn + height) * cosLat * math.Sin(lon)
	z = (rn*(1-d.Es) + height) * sinLat
	return x, y, z, nil
}

// GeocentricToGeodetic converts geocentric coordinates to geodetic
// longitude, latitude and height using the iterative method developed by
// the Institut für Erdmessung, University of Hannover (1988).
func (d *Datum) GeocentricToGeodetic(x, y, z float64) (lon, lat, height float64) {
	const (
		genau   = 1e-12 // accuracy of sin(latitude)
		genau2  = genau * genau
		maxiter = 30
	)
	p := math.Sqrt(x*x + y*y)        // distance from the minor axis
	rr := math.Sqrt(x*x + y*y + z*z) // distance from the center
	if p/d.A < genau {
		lon = 0
		// At the center of the earth the height becomes the semi-minor
		// axis and the latitude pi/2.
		if rr/d.A < genau {
			return lon, halfPi, -d.B
		}
	} else {
		lon = math.Atan2(y, x)
	}

	ct := z / rr // sin of geocentric latitude
	st := p / rr // cos of geocentric latitude
	rx := 1 / math.Sqrt(1-d.Es*(2-d.Es)*st*st)
	cphi0 := st * (1 - d.Es) * rx
	sphi0 := ct * rx
	var cphi, sphi float64
	for iter := 1; ; iter++ {
		rn := d.A / math.Sqrt(1-d.Es*sphi0*sphi0)
		height = p*cphi0 + z*sphi0 - rn*(1-d.Es*sphi0*sphi0)
		rk := d.Es * rn / (rn + height)
		rx = 1 / math.Sqrt(1-rk*(2-rk)*st*st)
		cphi = st * (1 - rk) * rx
		sphi = ct * rx
		sdphi := sphi*cphi0 - cphi*sphi0
		cphi0 = cphi
		sphi0 = sphi
		if sdphi*sdphi <= genau2 || iter >= maxiter {
			break
		}
	}
	lat = math.Atan(sphi / math.Abs(cphi))
	return lon, lat, height
}

// GeocentricToGeodeticNonIter converts geocentric coordinates to geodetic
// coordinates using the closed form from R. Toms, "An Improved Algorithm
// for Geocentric to Geodetic Coordinate Conversion" (1996).
func (d *Datum) GeocentricToGeodeticNonIter(x, y, z float64) (lon, lat, height float64) {
	atPole := false
	if x != 0 {
		lon = math.Atan2(y, x)
	} else {
		if y > 0 {
			lon = halfPi
		} else if y < 0 {
			lon = -halfPi
		} else {
			atPole = true
			lon = 0
			if z > 0 {
				lat = halfPi
			} else if z < 0 {
				lat = -halfPi
			} else { // center of earth
				return lon, halfPi, -d.B
			}
		}
	}
	w2 := x*x + y*y
	w := math.Sqrt(w2)
	t0 := z * adc
	s0 := math.Sqrt(t0*t0 + w2)
	sinB0 := t0 / s0
	cosB0 := w / s0
	sin3B0 := sinB0 * sinB0 * sinB0
	t1 := z + d.B*d.Ep2*sin3B0
	sum := w - d.A*d.Es*cosB0*cosB0*cosB0
	s1 := math.Sqrt(t1*t1 + sum*sum)
	sinP1 := t1 / s1
	cosP1 := sum / s1
	rn := d.A / math.Sqrt(1-d.Es*sinP1*sinP1)
	switch {
	case cosP1 >= cos67p5:
		height = w/cosP1 - rn
	case cosP1 <= -cos67p5:
		height = w/-cosP1 - rn
	default:
		height = z/sinP1 + rn*(d.Es-1)
	}
	if !atPole {
		lat = math.Atan(sinP1 / cosP1)
	}
	return lon, lat, height
}

// ToWGS84 shifts geocentric coordinates from d to WGS84.
func (d *Datum) ToWGS84(x, y, z float64) (float64, float64, float64, error) {
	switch d.Type {
	case Datum3Param:
		return x + d.Params[0], y + d.Params[1], z + d.Params[2], nil
	case Datum7Param:
		dx, dy, dz := d.Params[0], d.Params[1], d.Params[2]
		rx, ry, rz := d.Params[3], d.Params[4], d.Params[5]
		m := d.Params[6]
		xOut := m*(x-rz*y+ry*z) + dx
		yOut := m*(rz*x+y-rx*z) + dy
		zOut := m*(-ry*x+rx*y+z) + dz
		return xOut, yOut, zOut, nil
	case DatumGridShift:
		return math.NaN(), math.NaN(), math.NaN(), &UnsupportedError{Feature: "grid shift datum transformation"}
	}
	return x, y, z, nil
}

// FromWGS84 shifts geocentric coordinates from WGS84 to d.
func (d *Datum) FromWGS84(x, y, z float64) (float64, float64, float64, error) {
	switch d.Type {
	case Datum3Param:
		return x - d.Params[0], y - d.Params[1], z - d.Params[2], nil
	case Datum7Param:
		dx, dy, dz := d.Params[0], d.Params[1], d.Params[2]
		rx, ry, rz := d.Params[3], d.Params[4], d.Params[5]
		m := d.Params[6]
		xTmp := (x - dx) / m
		yTmp := (y - dy) / m
		zTmp := (z - dz) / m
		xOut := xTmp + rz*yTmp - ry*zTmp
		yOut := -rz*xTmp + yTmp + rx*zTmp
		zOut := ry*xTmp - rx*yTmp + zTmp
		return xOut, yOut, zOut, nil
	case DatumGridShift:
		return math.NaN(), math.NaN(), math.NaN(), &UnsupportedError{Feature: "grid shift datum transformation"}
	}
	return x, y, z, nil
}

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
	"reflect"
)

// Point is a coordinate. X and Y are longitude and latitude when the point
// is geodetic, or easting and northing when it is projected. Z is an
// optional height.
type Point struct {
	X, Y, Z float64
}

// Definition holds the resolved parameters of a spatial reference. It is
// produced by a parser (see package projdef) and consumed read-only by
// Registry.NewSR. Angles are in radians. Float fields that have not been
// set are NaN.
type Definition struct {
	Name      string // projection name, e.g. "lcc"
	Title     string
	SRSCode   string
	DatumCode string
	DatumName string
	Ellps     string

	A, B, Rf float64
	RA       bool // substitute the sphere of equal area

	Lat0, Lat1, Lat2, LatTS    float64
	Long0, Long1, Long2, LongC float64
	Alpha                      float64
	X0, Y0, K0                 float64

	Zone     float64
	UTMSouth bool

	DatumParams []float64
	NADGrids    string

	ToMeter       float64
	Units         string
	FromGreenwich float64
	Axis          string

	Czech          bool // krovak axis convention
	NoRot          bool // omerc without rectification
	NZMGIterations int  // inverse refinement steps for nzmg
}

// NewDefinition initializes a Definition and sets fields to default values.
func NewDefinition() *Definition {
	d := new(Definition)
	// Initialize floats to NaN.
	v := reflect.ValueOf(d).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.Float64 {
			f.SetFloat(math.NaN())
		}
	}
	d.ToMeter = 1
	d.NZMGIterations = 1
	return d
}

// Clone returns a deep copy of d.
func (d *Definition) Clone() *Definition {
	c := *d
	if d.DatumParams != nil {
		c.DatumParams = append([]float64(nil), d.DatumParams...)
	}
	return &c
}

// isSet reports whether an optional float parameter was provided.
func isSet(v float64) bool { return !math.IsNaN(v) }

// orDefault returns v, or def if v is unset.
func orDefault(v, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	return v
}

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
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestEllipsoid(t *testing.T) {
	r := NewRegistry()

	t.Run("WGS84", func(t *testing.T) {
		d := NewDefinition()
		d.Ellps = "WGS84"
		e := r.Ellipsoid(d)
		if e.A != 6378137 {
			t.Errorf("a = %g", e.A)
		}
		if !scalar.EqualWithinAbs(e.B, 6356752.314245179, 1e-6) {
			t.Errorf("b = %.9f", e.B)
		}
		if !scalar.EqualWithinAbs(e.Es, 0.0066943799901413165, 1e-15) {
			t.Errorf("es = %.19f", e.Es)
		}
		if !scalar.EqualWithinAbs(e.E, 0.0818191908426215, 1e-15) {
			t.Errorf("e = %.16f", e.E)
		}
		if !scalar.EqualWithinAbs(e.Ep2, 0.006739496742276434, 1e-15) {
			t.Errorf("ep2 = %.18f", e.Ep2)
		}
		if e.Sphere {
			t.Error("WGS84 is not a sphere")
		}
	})

	t.Run("unknown falls back to WGS84", func(t *testing.T) {
		d := NewDefinition()
		d.Ellps = "no such ellipsoid"
		e := r.Ellipsoid(d)
		if e.A != 6378137 || e.Name != "WGS 84" {
			t.Errorf("have %+v", e)
		}
	})

	t.Run("explicit axes", func(t *testing.T) {
		d := NewDefinition()
		d.Ellps = "intl"
		d.A = 6378206.4
		d.B = 6356583.8
		e := r.Ellipsoid(d)
		if e.A != 6378206.4 || e.B != 6356583.8 {
			t.Errorf("explicit axes must override the name: %+v", e)
		}
	})

	t.Run("sphere", func(t *testing.T) {
		d := NewDefinition()
		d.A = 6370997
		e := r.Ellipsoid(d)
		if !e.Sphere || e.Es != 0 || e.B != e.A {
			t.Errorf("have %+v", e)
		}
	})

	t.Run("R_A", func(t *testing.T) {
		d := NewDefinition()
		d.Ellps = "GRS80"
		d.RA = true
		e := r.Ellipsoid(d)
		// radius of the sphere with the surface area of GRS80
		if !scalar.EqualWithinAbs(e.A, 6371007.181, 0.01) {
			t.Errorf("a = %.4f", e.A)
		}
		if !e.Sphere || e.Es != 0 || e.E != 0 {
			t.Errorf("have %+v", e)
		}
	})

	t.Run("inverse flattening", func(t *testing.T) {
		d := NewDefinition()
		d.A = 6378388
		d.Rf = 297
		e := r.Ellipsoid(d)
		if !scalar.EqualWithinAbs(e.B, 6356911.946127946, 1e-6) {
			t.Errorf("b = %.9f", e.B)
		}
	})
}

func TestAddEllipsoid(t *testing.T) {
	r := NewRegistry()
	r.AddEllipsoid("mars", EllipsoidDef{A: 3396190, B: 3376200, Name: "Mars"})
	d := NewDefinition()
	d.Ellps = "mars"
	if e := r.Ellipsoid(d); e.A != 3396190 || e.B != 3376200 {
		t.Errorf("have %+v", e)
	}
}

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


package proj_test

import (
	"testing"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestTransformerGeom(t *testing.T) {
	ct, err := mustSR(t, "EPSG:4326").NewTransform(mustSR(t, "EPSG:3857"))
	if err != nil {
		t.Fatal(err)
	}

	poly := geom.Polygon{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 45}, {X: 0, Y: 0}}}
	g, err := ct.Geom(poly)
	if err != nil {
		t.Fatal(err)
	}
	want := geom.Point{X: 1113194.9079327357, Y: 5621521.486192066}
	if have := g.(geom.Polygon)[0][2]; !scalar.EqualWithinAbs(have.X, want.X, 1e-6) || !scalar.EqualWithinAbs(have.Y, want.Y, 1e-6) {
		t.Errorf("have %v, want %v", have, want)
	}
	if poly[0][2] != (geom.Point{X: 10, Y: 45}) {
		t.Error("input geometry was modified")
	}

	t.Run("point", func(t *testing.T) {
		g, err := ct.Geom(geom.Point{X: 10, Y: 45})
		if err != nil {
			t.Fatal(err)
		}
		if have := g.(geom.Point); !scalar.EqualWithinAbs(have.X, want.X, 1e-6) || !scalar.EqualWithinAbs(have.Y, want.Y, 1e-6) {
			t.Errorf("have %v, want %v", have, want)
		}
	})
	t.Run("error", func(t *testing.T) {
		if _, err := ct.Geom(geom.Point{X: 0, Y: 90}); err == nil {
			t.Error("expected an error at the pole")
		}
	})
	t.Run("nil", func(t *testing.T) {
		if g, err := ct.Geom(nil); g != nil || err != nil {
			t.Errorf("have %v, %v", g, err)
		}
	})
}

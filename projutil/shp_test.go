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

package projutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwerner1/proj"
	"github.com/jonas-p/go-shp"
	"gonum.org/v1/gonum/floats/scalar"
)

func writeTestShapefile(t *testing.T, path string) {
	t.Helper()
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := w.SetFields([]shp.Field{shp.StringField("NAME", 20), shp.FloatField("AREA", 12, 2)}); err != nil {
		t.Fatal(err)
	}
	polys := [][]shp.Point{
		{{X: 2, Y: 48}, {X: 3, Y: 48}, {X: 3, Y: 49}, {X: 2, Y: 49}, {X: 2, Y: 48}},
		{{X: 4, Y: 45}, {X: 5, Y: 45}, {X: 4.5, Y: 46}, {X: 4, Y: 45}},
	}
	for i, p := range polys {
		poly := shp.Polygon(*shp.NewPolyLine([][]shp.Point{p}))
		row := int(w.Write(&poly))
		if err := w.WriteAttribute(row, 0, []string{"paris", "lyon"}[i]); err != nil {
			t.Fatal(err)
		}
		if err := w.WriteAttribute(row, 1, float64(i)+0.5); err != nil {
			t.Fatal(err)
		}
	}
}

func TestShpCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "projutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	in := filepath.Join(dir, "in.shp")
	out := filepath.Join(dir, "out.shp")
	writeTestShapefile(t, in)

	if _, err := run(t, "shp", "--config=", "--from=EPSG:4326", "--to=EPSG:2154", in, out); err != nil {
		t.Fatal(err)
	}

	src, err := newSR("EPSG:4326")
	if err != nil {
		t.Fatal(err)
	}
	dst, err := newSR("EPSG:2154")
	if err != nil {
		t.Fatal(err)
	}

	rin, err := shp.Open(in)
	if err != nil {
		t.Fatal(err)
	}
	defer rin.Close()
	rout, err := shp.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer rout.Close()

	n := 0
	for rin.Next() {
		if !rout.Next() {
			t.Fatalf("output has %d shapes", n)
		}
		row, sin := rin.Shape()
		_, sout := rout.Shape()
		pin := sin.(*shp.Polygon).Points
		pout := sout.(*shp.Polygon).Points
		if len(pin) != len(pout) {
			t.Fatalf("shape %d: have %d points, want %d", row, len(pout), len(pin))
		}
		for i, p := range pin {
			want, err := proj.Transform(src, dst, proj.Point{X: p.X, Y: p.Y})
			if err != nil {
				t.Fatal(err)
			}
			if !scalar.EqualWithinAbs(pout[i].X, want.X, 1e-6) || !scalar.EqualWithinAbs(pout[i].Y, want.Y, 1e-6) {
				t.Errorf("shape %d point %d: have %v, want %v", row, i, pout[i], want)
			}
		}
		for f := range rin.Fields() {
			if have, want := rout.ReadAttribute(row, f), rin.ReadAttribute(row, f); have != want {
				t.Errorf("shape %d field %d: have %q, want %q", row, f, have, want)
			}
		}
		n++
	}
	if n != 2 {
		t.Errorf("have %d shapes, want 2", n)
	}
}

func TestShpCmdErrors(t *testing.T) {
	if _, err := run(t, "shp", "--config=", "--from=EPSG:4326", "--to=EPSG:2154", "testdata/none.shp", "out.shp"); err == nil {
		t.Error("expected an error for a missing input file")
	}
	if err := transformShape(&shp.Point{X: 0, Y: 90}, func(x, y float64) (float64, float64, error) {
		return 0, 0, proj.ErrOutOfRange
	}); err == nil {
		t.Error("expected the transform error to be returned")
	}
}

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

	"github.com/cwerner1/proj"
	"github.com/cwerner1/proj/projdef"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats/scalar"
)

var (
	testDefs     = projdef.NewDefs()
	testRegistry = proj.NewRegistry()
)

func mustSR(t *testing.T, code string) *proj.SR {
	t.Helper()
	def, err := testDefs.Lookup(code)
	if err != nil {
		t.Fatal(err)
	}
	sr, err := testRegistry.NewSR(def)
	if err != nil {
		t.Fatal(err)
	}
	return sr
}

func checkPoint(t *testing.T, have proj.Point, x, y, tol float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(have.X, x, tol) || !scalar.EqualWithinAbs(have.Y, y, tol) {
		t.Errorf("have (%.10f, %.10f), want (%.10f, %.10f)", have.X, have.Y, x, y)
	}
}

// TestTransformChain passes one point through a sequence of French and
// Belgian spatial references, each step starting from the previous result.
func TestTransformChain(t *testing.T) {
	const deg, m = 1e-7, 0.01
	steps := []struct {
		src, dst string
		x, y     float64
		tol      float64
	}{
		{"EPSG:2154", "EPSG:4326", 2.3557811127971, 48.831938054369, 1e-9},
		{"EPSG:4326", "EPSG:31370", 2266.955994725, -51381.924173856, 1e-3},
		{"EPSG:31370", "EPSG:4326", 2.3557811127971, 48.831938054369, 1e-9},
		{"EPSG:4326", "EPSG:27563", 601419.93647681, 726554.08663424, m},
		{"EPSG:27563", "EPSG:4326", 2.3557810993491, 48.831938051718, deg},
		{"EPSG:4326", "EPSG:27571", 601415.06988072, 1125718.0309796, m},
		{"EPSG:27571", "EPSG:2154", 652709.40001126, 6859290.9458141, m},
	}
	p := proj.Point{X: 652709.401, Y: 6859290.946}
	for _, s := range steps {
		var err error
		p, err = proj.Transform(mustSR(t, s.src), mustSR(t, s.dst), p)
		if err != nil {
			t.Fatalf("%s -> %s: %v", s.src, s.dst, err)
		}
		t.Run(s.src+"->"+s.dst, func(t *testing.T) {
			checkPoint(t, p, s.x, s.y, s.tol)
		})
	}
}

func TestTransformKnown(t *testing.T) {
	wgs84 := mustSR(t, "EPSG:4326")
	p, err := proj.Transform(wgs84, mustSR(t, "EPSG:3857"), proj.Point{X: 10, Y: 45})
	if err != nil {
		t.Fatal(err)
	}
	checkPoint(t, p, 1113194.9079327357, 5621521.486192066, 1e-6)

	// Belgian Lambert 72 with the Reseau National Belge 1972 datum shift.
	p, err = proj.Transform(wgs84, mustSR(t, "+proj=lcc +lat_1=51.16666723333333 +lat_2=49.8333339 +lat_0=90 +lon_0=4.367486666666666 +x_0=150000.013 +y_0=5400088.438 +ellps=intl +datum=rnb72 +units=m"),
		proj.Point{X: 2.3557811127971, Y: 48.831938054369})
	if err != nil {
		t.Fatal(err)
	}
	checkPoint(t, p, 2354.4969810662, -51359.251012595, 1e-3)

	p, err = proj.Transform(wgs84, mustSR(t, "urn:ogc:def:crs:EPSG::32632"), proj.Point{X: 10, Y: 50})
	if err != nil {
		t.Fatal(err)
	}
	checkPoint(t, p, 571666.4475041276, 5539109.815175673, 0.01)
}

// Every built-in projected reference should return to its starting
// point after a trip from and back to WGS84.
func TestTransformRoundTrip(t *testing.T) {
	points := map[string][2]float64{
		"EPSG:3857":   {10, 45},
		"EPSG:900913": {-120, -30},
		"GOOGLE":      {150, 60},
		"EPSG:4269":   {-100, 40},
		"EPSG:2154":   {2.35, 48.83},
		"EPSG:27571":  {2.35, 49.5},
		"EPSG:27572":  {2.35, 46.8},
		"EPSG:27563":  {3, 44},
		"EPSG:31370":  {4.5, 50.8},
		"EPSG:27700":  {-1, 52},
		"EPSG:21781":  {7.44, 46.95},
		"EPSG:2056":   {8.5, 47.3},
		"EPSG:32632":  {10, 50},
		"EPSG:3035":   {10, 52},
		"EPSG:2193":   {174.8, -41.3},
		"EPSG:27200":  {174.8, -41.3},
		"EPSG:3031":   {0, -80},
		"EPSG:28992":  {5.4, 52.1},
	}
	wgs84 := mustSR(t, "EPSG:4326")
	for code, ll := range points {
		t.Run(code, func(t *testing.T) {
			dst := mustSR(t, code)
			p, err := proj.Transform(wgs84, dst, proj.Point{X: ll[0], Y: ll[1]})
			if err != nil {
				t.Fatal(err)
			}
			p, err = proj.Transform(dst, wgs84, p)
			if err != nil {
				t.Fatal(err)
			}
			checkPoint(t, p, ll[0], ll[1], 1e-7)
		})
	}
}

func TestTransformAxis(t *testing.T) {
	def, err := projdef.Parse("+proj=longlat +datum=WGS84 +axis=neu")
	if err != nil {
		t.Fatal(err)
	}
	latlon, err := testRegistry.NewSR(def)
	if err != nil {
		t.Fatal(err)
	}
	wgs84 := mustSR(t, "EPSG:4326")
	p, err := proj.Transform(latlon, wgs84, proj.Point{X: 45, Y: 10})
	if err != nil {
		t.Fatal(err)
	}
	checkPoint(t, p, 10, 45, 1e-12)

	p, err = proj.Transform(wgs84, latlon, proj.Point{X: 10, Y: 45})
	if err != nil {
		t.Fatal(err)
	}
	checkPoint(t, p, 45, 10, 1e-12)

	// West-south oriented projected coordinates.
	def, err = projdef.Parse("+proj=merc +datum=WGS84 +axis=wsu")
	if err != nil {
		t.Fatal(err)
	}
	ws, err := testRegistry.NewSR(def)
	if err != nil {
		t.Fatal(err)
	}
	p, err = proj.Transform(wgs84, ws, proj.Point{X: 10, Y: 45})
	if err != nil {
		t.Fatal(err)
	}
	checkPoint(t, p, -1113194.9079327357, -5591295.9185533915, 1e-6)
}

func TestTransformUnits(t *testing.T) {
	wgs84 := mustSR(t, "EPSG:4326")
	for _, test := range []struct {
		def   string
		scale float64
	}{
		{"+proj=merc +datum=WGS84 +units=km", 1000},
		{"+proj=merc +datum=WGS84 +to_meter=0.3048", 0.3048},
	} {
		t.Run(test.def, func(t *testing.T) {
			def, err := projdef.Parse(test.def)
			if err != nil {
				t.Fatal(err)
			}
			sr, err := testRegistry.NewSR(def)
			if err != nil {
				t.Fatal(err)
			}
			p, err := proj.Transform(wgs84, sr, proj.Point{X: 10, Y: 45})
			if err != nil {
				t.Fatal(err)
			}
			checkPoint(t, p, 1113194.9079327357/test.scale, 5591295.9185533915/test.scale, 1e-6)
			p, err = proj.Transform(sr, wgs84, p)
			if err != nil {
				t.Fatal(err)
			}
			checkPoint(t, p, 10, 45, 1e-10)
		})
	}
}

func TestTransformPrimeMeridian(t *testing.T) {
	def, err := projdef.Parse("+proj=longlat +datum=WGS84 +pm=paris")
	if err != nil {
		t.Fatal(err)
	}
	paris, err := testRegistry.NewSR(def)
	if err != nil {
		t.Fatal(err)
	}
	p, err := proj.Transform(paris, mustSR(t, "EPSG:4326"), proj.Point{X: 0, Y: 48})
	if err != nil {
		t.Fatal(err)
	}
	checkPoint(t, p, 2.337229166667, 48, 1e-10)
}

func TestTransformErrors(t *testing.T) {
	wgs84 := mustSR(t, "EPSG:4326")

	p, err := proj.Transform(wgs84, mustSR(t, "EPSG:3857"), proj.Point{X: 0, Y: 90, Z: 5})
	if err == nil {
		t.Fatal("expected an error at the pole")
	}
	if p != (proj.Point{}) {
		t.Errorf("failed transforms should return the zero point, have %+v", p)
	}

	def, err := projdef.Parse("+proj=longlat +datum=nad27")
	if err != nil {
		t.Fatal(err)
	}
	nad27, err := testRegistry.NewSR(def)
	if err != nil {
		t.Fatal(err)
	}
	_, err = proj.Transform(nad27, wgs84, proj.Point{X: -100, Y: 40})
	if _, ok := errors.Cause(err).(*proj.UnsupportedError); !ok {
		t.Errorf("grid shift: have %v (%T)", err, errors.Cause(err))
	}

	if _, err = proj.Transform(nil, wgs84, proj.Point{}); err == nil {
		t.Error("expected an error for a nil spatial reference")
	}
}

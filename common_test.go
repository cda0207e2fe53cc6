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
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSign(t *testing.T) {
	if Sign(-111.2) != -1 {
		t.Errorf("Sign(-111.2) = %g", Sign(-111.2))
	}
	if Sign(200) != 1 {
		t.Errorf("Sign(200) = %g", Sign(200))
	}
	if Sign(0) != 1 {
		t.Errorf("Sign(0) = %g", Sign(0))
	}
}

func TestMsfnz(t *testing.T) {
	const want = 0.40025945221481
	if have := msfnz(0.12, 0.30, 0.40); !scalar.EqualWithinAbs(have, want, 1e-13) {
		t.Errorf("have %.14f, want %.14f", have, want)
	}
}

func TestTsfnz(t *testing.T) {
	const want = 0.74167840619598
	if have := tsfnz(0.12, 0.30, 0.40); !scalar.EqualWithinAbs(have, want, 1e-13) {
		t.Errorf("have %.14f, want %.14f", have, want)
	}
}

func TestAdjustLon(t *testing.T) {
	for _, x := range []float64{0, 1, -1, math.Pi, -math.Pi, 3.2, -3.2, 7, -7, 100, -100,
		3 * math.Pi, -3 * math.Pi, 1e6, twoPi + 0.5} {
		have := AdjustLon(x)
		if have <= -math.Pi || have > math.Pi {
			t.Errorf("AdjustLon(%g) = %g outside (-pi, pi]", x, have)
		}
		if again := AdjustLon(have); again != have {
			t.Errorf("AdjustLon not idempotent for %g: %g then %g", x, have, again)
		}
		// same direction on the circle
		if !scalar.EqualWithinAbs(math.Sin(have), math.Sin(x), 1e-9) ||
			!scalar.EqualWithinAbs(math.Cos(have), math.Cos(x), 1e-9) {
			t.Errorf("AdjustLon(%g) = %g is not an equivalent angle", x, have)
		}
	}
	if AdjustLon(1) != 1 {
		t.Error("values inside the range must not change")
	}
}

func TestAdjustLat(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.5, 0.5},
		{halfPi, halfPi},
		{-halfPi, -halfPi},
		{2, 2 - math.Pi},
		{-2, -2 + math.Pi},
	}
	for _, test := range tests {
		if have := adjustLat(test.in); !scalar.EqualWithinAbs(have, test.want, 1e-15) {
			t.Errorf("adjustLat(%g) = %g, want %g", test.in, have, test.want)
		}
	}
}

func TestInverseHelpers(t *testing.T) {
	const e = 0.0818191908426215 // WGS84
	es := e * e
	for _, lat := range []float64{-1.5, -0.8, -0.1, 0, 0.3, 0.9, 1.4} {
		sin := math.Sin(lat)
		t.Run("phi2z", func(t *testing.T) {
			have, err := phi2z(e, tsfnz(e, lat, sin))
			if err != nil {
				t.Fatal(err)
			}
			if !scalar.EqualWithinAbs(have, lat, 1e-10) {
				t.Errorf("lat %g: have %g", lat, have)
			}
		})
		t.Run("iqsfnz", func(t *testing.T) {
			have, err := iqsfnz(e, qsfnz(e, sin))
			if err != nil {
				t.Fatal(err)
			}
			if !scalar.EqualWithinAbs(have, lat, 1e-10) {
				t.Errorf("lat %g: have %g", lat, have)
			}
		})
		t.Run("invlatiso", func(t *testing.T) {
			have, err := invlatiso(e, latiso(e, lat, sin))
			if err != nil {
				t.Fatal(err)
			}
			if !scalar.EqualWithinAbs(have, lat, 1e-10) {
				t.Errorf("lat %g: have %g", lat, have)
			}
		})
		t.Run("pjInvMlfn", func(t *testing.T) {
			en := pjEnfn(es)
			have, err := pjInvMlfn(pjMlfn(lat, sin, math.Cos(lat), en), es, en)
			if err != nil {
				t.Fatal(err)
			}
			if !scalar.EqualWithinAbs(have, lat, 1e-10) {
				t.Errorf("lat %g: have %g", lat, have)
			}
		})
	}
}

func TestMlfnSeries(t *testing.T) {
	// The gctpc and PROJ meridional distance series agree to well under a
	// millimeter on the WGS84 ellipsoid.
	const a = 6378137.0
	const es = 0.00669437999014
	en := pjEnfn(es)
	e0, e1, e2, e3 := e0fn(es), e1fn(es), e2fn(es), e3fn(es)
	for _, lat := range []float64{0.1, 0.7, 1.2} {
		gctpc := a * mlfn(e0, e1, e2, e3, lat)
		proj := a * pjMlfn(lat, math.Sin(lat), math.Cos(lat), en)
		if math.Abs(gctpc-proj) > 1e-3 {
			t.Errorf("lat %g: gctpc %f, proj %f", lat, gctpc, proj)
		}
	}
	if e3fn(1) == 0 {
		t.Error("e3fn must not truncate to zero")
	}
}

func TestConvergenceErrors(t *testing.T) {
	_, err := phi2z(0.08, math.NaN())
	ce, ok := err.(*ConvergenceError)
	if !ok {
		t.Fatalf("have %T, want *ConvergenceError", err)
	}
	if ce.Algorithm != "phi2z" || ce.Iterations != 15 {
		t.Errorf("have %+v", ce)
	}

	// At e=0.62 phi2z settles on step 15; at e=0.663 it needs a 16th.
	if _, err := phi2z(0.62, 0.5); err != nil {
		t.Errorf("e=0.62: %v", err)
	}
	if _, err := phi2z(0.663, 0.5); err == nil {
		t.Error("e=0.663: expected the iteration limit to be reached")
	}
}

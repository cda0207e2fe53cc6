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
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats/scalar"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	Root.SetArgs(args)
	err := Root.Execute()
	return buf.String(), err
}

func checkText(t *testing.T, out string, want []float64, tol float64) {
	t.Helper()
	fields := strings.Fields(out)
	if len(fields) != len(want) {
		t.Fatalf("have %q, want %d values", out, len(want))
	}
	for i, f := range fields {
		v, err := cast.ToFloat64E(f)
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinAbs(v, want[i], tol) {
			t.Errorf("value %d: have %g, want %g", i, v, want[i])
		}
	}
}

// The configuration file test runs first because command line flags
// stay set between executions.
func TestConfigFile(t *testing.T) {
	out, err := run(t, "transform", "--config=testdata/config.toml", "--from=EPSG:4326", "--to=EPSG:5514", "15", "50")
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]float64
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("%v: %q", err, out)
	}
	if _, ok := m["x"]; !ok {
		t.Errorf("missing x in %q", out)
	}
	if _, err := run(t, "list", "--config=testdata/missing.toml"); err == nil {
		t.Error("expected an error for a missing configuration file")
	}
}

func TestTransformCmd(t *testing.T) {
	out, err := run(t, "transform", "--config=", "--format=text", "--from=EPSG:4326", "--to=EPSG:3857", "10", "45")
	if err != nil {
		t.Fatal(err)
	}
	checkText(t, out, []float64{1113194.9079327357, 5621521.486192066}, 1e-6)

	out, err = run(t, "transform", "--config=", "--format=text", "--from=EPSG:2154", "--to=EPSG:4326", "652709.401", "6859290.946", "0")
	if err != nil {
		t.Fatal(err)
	}
	checkText(t, out, []float64{2.3557811127971, 48.831938054369, 0}, 1e-7)

	out, err = run(t, "transform", "--config=", "--format=text", "--from=+proj=longlat +datum=WGS84", "--to=+proj=utm +zone=32 +datum=WGS84", "10", "50")
	if err != nil {
		t.Fatal(err)
	}
	checkText(t, out, []float64{571666.4475041276, 5539109.815175673}, 0.01)
}

func TestForwardInverseCmd(t *testing.T) {
	out, err := run(t, "forward", "--config=", "--format=text", "--proj=EPSG:3857", "10", "45")
	if err != nil {
		t.Fatal(err)
	}
	checkText(t, out, []float64{1113194.9079327357, 5621521.486192066}, 1e-6)

	out, err = run(t, "inverse", "--config=", "--format=json", "--proj=EPSG:3857", "1113194.9079327357", "5621521.486192066")
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]float64
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(m["lon"], 10, 1e-9) || !scalar.EqualWithinAbs(m["lat"], 45, 1e-9) {
		t.Errorf("have %v", m)
	}
}

func TestCmdErrors(t *testing.T) {
	for _, args := range [][]string{
		{"transform", "--config=", "--format=text", "--from=EPSG:1", "--to=EPSG:4326", "1", "2"},
		{"transform", "--config=", "--format=text", "--from=EPSG:4326", "--to=EPSG:4326", "a", "2"},
		{"transform", "--config=", "--format=text", "--from=EPSG:4326", "--to=EPSG:4326", "1"},
		{"forward", "--config=", "--format=xml", "--proj=EPSG:3857", "1", "2"},
		{"forward", "--config=", "--format=text", "--proj=EPSG:3857", "0", "90"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestListVersion(t *testing.T) {
	out, err := run(t, "list", "--config=", "--defs=../projdef/testdata/defs.yml")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"lcc", "tmerc", "EPSG:2154", "EPSG:2263"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output is missing %s", want)
		}
	}
	out, err = run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "proj v"+Version+"\n" {
		t.Errorf("have %q", out)
	}
}

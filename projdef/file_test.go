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

package projdef

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		d := NewDefs()
		if err := d.LoadFile("testdata/defs.toml"); err != nil {
			t.Fatal(err)
		}
		def, err := d.Lookup("EPSG:5514")
		if err != nil {
			t.Fatal(err)
		}
		if def.Name != "krovak" {
			t.Errorf("have %s", def.Name)
		}
		if _, err := d.Lookup("EPSG:26915"); err != nil {
			t.Error(err)
		}
	})
	t.Run("yaml", func(t *testing.T) {
		d := NewDefs()
		if err := d.LoadFile("testdata/defs.yml"); err != nil {
			t.Fatal(err)
		}
		def, err := d.Lookup("EPSG:2263")
		if err != nil {
			t.Fatal(err)
		}
		if def.ToMeter != 1200.0/3937.0 {
			t.Errorf("to_meter: have %g", def.ToMeter)
		}
		def, err = d.Lookup("ESRI:102100")
		if err != nil {
			t.Fatal(err)
		}
		if def.Name != "Mercator_Auxiliary_Sphere" || def.SRSCode != "ESRI:102100" || def.A != def.B {
			t.Errorf("WKT entry: %+v", def)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		d := NewDefs()
		if err := d.LoadFile("testdata/bad.toml"); err == nil {
			t.Fatal("expected an error")
		}
		if _, ok := d.String("EPSG:1"); ok {
			t.Error("valid entries of an invalid file should not be added")
		}
	})
	t.Run("extension", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "projdef")
		if err != nil {
			t.Fatal(err)
		}
		defer os.RemoveAll(dir)
		f := filepath.Join(dir, "defs.json")
		if err := ioutil.WriteFile(f, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := NewDefs().LoadFile(f); err == nil {
			t.Error("expected an error for an unsupported extension")
		}
	})
	t.Run("missing", func(t *testing.T) {
		if err := NewDefs().LoadFile("testdata/none.toml"); err == nil {
			t.Error("expected an error")
		}
	})
}

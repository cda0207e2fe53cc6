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
	"sort"
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"EPSG:4326", "EPSG:4326"},
		{" epsg:2154 ", "EPSG:2154"},
		{"urn:ogc:def:crs:EPSG::4326", "EPSG:4326"},
		{"urn:x-ogc:def:crs:EPSG:6.6:27700", "EPSG:27700"},
		{"http://www.opengis.net/gml/srs/epsg.xml#31370", "EPSG:31370"},
		{"http://registre.ign.fr/ign/IGNF/crs/IGNF/RIG.xml#lamb93", "IGNF:LAMB93"},
		{"google", "GOOGLE"},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			if have := normalize(test.in); have != test.want {
				t.Errorf("have %q, want %q", have, test.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	d := NewDefs()
	for _, code := range []string{"EPSG:2154", "urn:ogc:def:crs:EPSG::2154", "epsg:2154"} {
		def, err := d.Lookup(code)
		if err != nil {
			t.Fatal(err)
		}
		if def.Name != "lcc" || def.SRSCode != "EPSG:2154" {
			t.Errorf("%s: have %s %s", code, def.Name, def.SRSCode)
		}
	}
	def, err := d.Lookup("+proj=utm +zone=31")
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "utm" || def.SRSCode != "" {
		t.Errorf("literal: %+v", def)
	}
	if _, err := d.Lookup("EPSG:1"); err == nil {
		t.Error("expected an error for an unknown code")
	}
}

func TestAdd(t *testing.T) {
	d := NewDefs()
	if err := d.Add("EPSG:2000", "+proj=merc +nope"); err == nil {
		t.Error("invalid definition should not be added")
	}
	if _, ok := d.String("EPSG:2000"); ok {
		t.Error("invalid definition was stored")
	}
	if err := d.Add("epsg:3395", "+proj=merc +datum=WGS84"); err != nil {
		t.Fatal(err)
	}
	def, err := d.Lookup("EPSG:3395")
	if err != nil {
		t.Fatal(err)
	}
	if def.DatumCode != "WGS84" {
		t.Errorf("datum: have %q", def.DatumCode)
	}
	if !sort.StringsAreSorted(d.Names()) {
		t.Error("names are not sorted")
	}

	// Tables are independent.
	if _, ok := NewDefs().String("EPSG:3395"); ok {
		t.Error("definition leaked into a new table")
	}
}

func TestDefsConcurrent(t *testing.T) {
	d := NewDefs()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				if err := d.Add("USER:1", "+proj=longlat"); err != nil {
					t.Error(err)
				}
				return
			}
			if _, err := d.Lookup("EPSG:4326"); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
}

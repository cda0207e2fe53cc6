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
	"math"
	"testing"

	"github.com/cwerner1/proj"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	lambert93WKT = `PROJCS["RGF93 / Lambert-93",
		GEOGCS["RGF93",
			DATUM["Reseau_Geodesique_Francais_1993",
				SPHEROID["GRS 1980",6378137,298.257222101,AUTHORITY["EPSG","7019"]],
				TOWGS84[0,0,0,0,0,0,0],
				AUTHORITY["EPSG","6171"]],
			PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],
			UNIT["degree",0.0174532925199433,AUTHORITY["EPSG","9122"]],
			AUTHORITY["EPSG","4171"]],
		PROJECTION["Lambert_Conformal_Conic_2SP"],
		PARAMETER["standard_parallel_1",49],
		PARAMETER["standard_parallel_2",44],
		PARAMETER["latitude_of_origin",46.5],
		PARAMETER["central_meridian",3],
		PARAMETER["false_easting",700000],
		PARAMETER["false_northing",6600000],
		UNIT["metre",1,AUTHORITY["EPSG","9001"]],
		AXIS["X",EAST],
		AXIS["Y",NORTH],
		AUTHORITY["EPSG","2154"]]`

	longIslandWKT = `PROJCS["NAD83 / New York Long Island (ftUS)",GEOGCS["NAD83",DATUM["North_American_Datum_1983",SPHEROID["GRS 1980",6378137,298.257222101],TOWGS84[0,0,0,0,0,0,0]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]],PROJECTION["Lambert_Conformal_Conic_2SP"],PARAMETER["standard_parallel_1",41.03333333333333],PARAMETER["standard_parallel_2",40.66666666666666],PARAMETER["latitude_of_origin",40.16666666666666],PARAMETER["central_meridian",-74],PARAMETER["false_easting",984250.0000000002],PARAMETER["false_northing",0],UNIT["US survey foot",0.3048006096012192],AXIS["X",EAST],AXIS["Y",NORTH],AUTHORITY["EPSG","2263"]]`

	webMercatorESRI = `PROJCS["WGS_1984_Web_Mercator_Auxiliary_Sphere",GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]],PROJECTION["Mercator_Auxiliary_Sphere"],PARAMETER["False_Easting",0.0],PARAMETER["False_Northing",0.0],PARAMETER["Central_Meridian",0.0],PARAMETER["Standard_Parallel_1",0.0],PARAMETER["Auxiliary_Sphere_Type",0.0],UNIT["Meter",1.0]]`

	ntfParisWKT = `GEOGCS["NTF (Paris)",DATUM["Nouvelle_Triangulation_Francaise_Paris",SPHEROID["Clarke 1880 (IGN)",6378249.2,293.4660212936269],TOWGS84[-168,-60,320,0,0,0,0]],PRIMEM["Paris",2.5969213],UNIT["grad",0.01570796326794897],AXIS["Lat",NORTH],AXIS["Long",EAST],AUTHORITY["EPSG","4807"]]`
)

// The WKT and PROJ.4 forms of Lambert-93 project identically.
func TestParseWKT(t *testing.T) {
	d, err := ParseWKT(lambert93WKT)
	if err != nil {
		t.Fatal(err)
	}
	if d.Title != "RGF93 / Lambert-93" || d.SRSCode != "EPSG:2154" || d.DatumName != "Reseau_Geodesique_Francais_1993" {
		t.Errorf("names: %+v", d)
	}
	if d.Axis != "enu" || d.Units != "m" || d.ToMeter != 1 || len(d.DatumParams) != 7 {
		t.Errorf("units and axes: %+v", d)
	}

	r := proj.NewRegistry()
	fromWKT, err := r.NewSR(d)
	if err != nil {
		t.Fatal(err)
	}
	ref, err := NewDefs().Lookup("EPSG:2154")
	if err != nil {
		t.Fatal(err)
	}
	fromProj4, err := r.NewSR(ref)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]float64{{2.35, 48.85}, {-4.5, 48.4}, {7.75, 43.7}} {
		lon, lat := p[0]*proj.Deg2Rad, p[1]*proj.Deg2Rad
		xw, yw, err := fromWKT.Forward(lon, lat)
		if err != nil {
			t.Fatal(err)
		}
		xp, yp, err := fromProj4.Forward(lon, lat)
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinAbs(xw, xp, 1e-6) || !scalar.EqualWithinAbs(yw, yp, 1e-6) {
			t.Errorf("%v: WKT (%f, %f), PROJ.4 (%f, %f)", p, xw, yw, xp, yp)
		}
	}
}

func TestParseWKTUnits(t *testing.T) {
	d, err := ParseWKT(longIslandWKT)
	if err != nil {
		t.Fatal(err)
	}
	if d.Name != "Lambert_Conformal_Conic_2SP" || d.DatumCode != "nad83" || d.Units != "us-ft" {
		t.Errorf("names: %+v", d)
	}
	if !scalar.EqualWithinAbs(d.X0, 300000, 1e-6) || d.ToMeter != 0.3048006096012192 {
		t.Errorf("false easting %g m, to_meter %g", d.X0, d.ToMeter)
	}
	if !scalar.EqualWithinAbs(d.Long0, -74*proj.Deg2Rad, 1e-12) {
		t.Errorf("central meridian: have %g", d.Long0)
	}
}

func TestParseWKTMercator(t *testing.T) {
	d, err := ParseWKT(webMercatorESRI)
	if err != nil {
		t.Fatal(err)
	}
	if d.DatumCode != "WGS84" || d.A != 6378137 || d.B != d.A || d.LatTS != 0 || !math.IsNaN(d.Lat1) {
		t.Errorf("definition: %+v", d)
	}
	sr, err := proj.NewRegistry().NewSR(d)
	if err != nil {
		t.Fatal(err)
	}
	x, y, err := sr.Forward(10*proj.Deg2Rad, 45*proj.Deg2Rad)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(x, 1113194.9079327357, 1e-6) || !scalar.EqualWithinAbs(y, 5621521.486192066, 1e-6) {
		t.Errorf("have (%f, %f)", x, y)
	}

	t.Run("proj4 extension", func(t *testing.T) {
		d, err := ParseWKT(`PROJCS["WGS 84 / Pseudo-Mercator",GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]],PROJECTION["Mercator_1SP"],PARAMETER["central_meridian",0],PARAMETER["scale_factor",1],PARAMETER["false_easting",0],PARAMETER["false_northing",0],UNIT["metre",1],AXIS["X",EAST],AXIS["Y",NORTH],EXTENSION["PROJ4","+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +wktext +no_defs"],AUTHORITY["EPSG","3857"]]`)
		if err != nil {
			t.Fatal(err)
		}
		if d.Name != "merc" || d.B != 6378137 || d.NADGrids != "@null" || d.SRSCode != "EPSG:3857" || d.Title != "WGS 84 / Pseudo-Mercator" {
			t.Errorf("have %+v", d)
		}
	})
}

func TestParseWKTGeographic(t *testing.T) {
	d, err := ParseWKT(ntfParisWKT)
	if err != nil {
		t.Fatal(err)
	}
	if d.Name != "longlat" || d.Title != "NTF (Paris)" || d.SRSCode != "EPSG:4807" || d.Axis != "neu" {
		t.Errorf("names: %+v", d)
	}
	if !scalar.EqualWithinAbs(d.FromGreenwich, primeMeridians["paris"]*proj.Deg2Rad, 1e-9) {
		t.Errorf("prime meridian: have %g", d.FromGreenwich/proj.Deg2Rad)
	}
	if d.A != 6378249.2 || len(d.DatumParams) != 7 || d.DatumParams[0] != -168 {
		t.Errorf("datum: %+v", d)
	}
	if _, err := proj.NewRegistry().NewSR(d); err != nil {
		t.Fatal(err)
	}

	t.Run("local", func(t *testing.T) {
		d, err := ParseWKT(`LOCAL_CS["Site grid",LOCAL_DATUM["Site",0],UNIT["metre",1]]`)
		if err != nil {
			t.Fatal(err)
		}
		if d.Name != "identity" || d.Title != "Site grid" {
			t.Errorf("have %+v", d)
		}
	})
	t.Run("parentheses", func(t *testing.T) {
		d, err := ParseWKT(`GEOGCS("WGS 84",DATUM("WGS_1984",SPHEROID("WGS 84",6378137,298.257223563)),PRIMEM("Greenwich",0),UNIT("degree",0.0174532925199433))`)
		if err != nil {
			t.Fatal(err)
		}
		if d.Name != "longlat" || d.DatumCode != "WGS84" {
			t.Errorf("have %+v", d)
		}
	})
}

func TestParseWKTErrors(t *testing.T) {
	for _, wkt := range []string{
		"",
		`PROJCS["x"`,
		`PROJCS["x",PROJECTION["Mercator_1SP"]] extra`,
		`PROJCS["x",PROJECTION["Mercator_1SP"],PARAMETER["bogus",1]]`,
		`PROJCS["x",PROJECTION["Mercator_1SP"],PARAMETER["false_easting",abc]]`,
		`PROJCS["x",PARAMETER["false_easting",1]]`,
		`PROJCS["x",PROJECTION["Mercator_1SP"],AXIS["X",SIDEWAYS]]`,
		`PROJCS["x",PROJECTION["Mercator_1SP"],UNIT["metre"]]`,
		`GEOCCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563]]]`,
		`GEOGCS["x",DATUM["y",SPHEROID["z",6378137]]]`,
		`GEOGCS["unterminated]`,
	} {
		if _, err := ParseWKT(wkt); err == nil {
			t.Errorf("%q: expected an error", wkt)
		}
	}
}

func TestLookupWKT(t *testing.T) {
	d := NewDefs()
	def, err := d.Lookup(lambert93WKT)
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "Lambert_Conformal_Conic_2SP" {
		t.Errorf("have %s", def.Name)
	}
	if err := d.Add("USER:1", ntfParisWKT); err != nil {
		t.Fatal(err)
	}
	def, err = d.Lookup("user:1")
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "longlat" || def.SRSCode != "USER:1" {
		t.Errorf("stored WKT: %+v", def)
	}
	if err := d.Add("USER:2", `PROJCS["x",PARAMETER["bogus",1]]`); err == nil {
		t.Error("invalid WKT should not be added")
	}
}

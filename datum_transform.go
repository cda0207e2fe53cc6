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

import "github.com/pkg/errors"

// DatumDef describes a named datum.
type DatumDef struct {
	ToWGS84  []float64
	Ellipse  string
	Name     string
	NADGrids string
}

var datumDefs = map[string]DatumDef{
	"WGS84":         {ToWGS84: []float64{0, 0, 0}, Ellipse: "WGS84", Name: "WGS84"},
	"ch1903":        {ToWGS84: []float64{674.374, 15.056, 405.346}, Ellipse: "bessel", Name: "swiss"},
	"ggrs87":        {ToWGS84: []float64{-199.87, 74.79, 246.62}, Ellipse: "GRS80", Name: "Greek_Geodetic_Reference_System_1987"},
	"nad83":         {ToWGS84: []float64{0, 0, 0}, Ellipse: "GRS80", Name: "North_American_Datum_1983"},
	"nad27":         {NADGrids: "@conus,@alaska,@ntv2_0.gsb,@ntv1_can.dat", Ellipse: "clrk66", Name: "North_American_Datum_1927"},
	"potsdam":       {ToWGS84: []float64{606.0, 23.0, 413.0}, Ellipse: "bessel", Name: "Potsdam Rauenberg 1950 DHDN"},
	"carthage":      {ToWGS84: []float64{-263.0, 6.0, 431.0}, Ellipse: "clrk80", Name: "Carthage 1934 Tunisia"},
	"hermannskogel": {ToWGS84: []float64{653.0, -212.0, 449.0}, Ellipse: "bessel", Name: "Hermannskogel"},
	"ire65":         {ToWGS84: []float64{482.530, -130.596, 564.557, -1.042, -0.214, -0.631, 8.15}, Ellipse: "mod_airy", Name: "Ireland 1965"},
	"rassadiran":    {ToWGS84: []float64{-133.63, -157.5, -158.62}, Ellipse: "intl", Name: "Rassadiran"},
	"nzgd49":        {ToWGS84: []float64{59.47, -5.04, 187.44, 0.47, -0.1, 1.024, -4.5993}, Ellipse: "intl", Name: "New Zealand Geodetic Datum 1949"},
	"osgb36":        {ToWGS84: []float64{446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894}, Ellipse: "airy", Name: "Airy 1830"},
	"s_jtsk":        {ToWGS84: []float64{589, 76, 480}, Ellipse: "bessel", Name: "S-JTSK (Ferro)"},
	"beduaram":      {ToWGS84: []float64{-106, -87, 188}, Ellipse: "clrk80", Name: "Beduaram"},
	"gunung_segara": {ToWGS84: []float64{-403, 684, 41}, Ellipse: "bessel", Name: "Gunung Segara Jakarta"},
	"rnb72":         {ToWGS84: []float64{106.869, -52.2978, 103.724, -0.33657, 0.456955, -1.84218, 1}, Ellipse: "intl", Name: "Reseau National Belge 1972"},
}

func usesParams(t DatumType) bool {
	return t == Datum3Param || t == Datum7Param
}

// datumTransform converts geodetic coordinates (radians) from the source
// datum to the destination datum, passing through WGS84 geocentric
// coordinates when required.
func datumTransform(src, dst *Datum, x, y, z float64) (float64, float64, float64, error) {
	// Short cut if the datums are identical.
	equal, err := src.Equal(dst)
	if err != nil {
		return 0, 0, 0, err
	}
	if equal {
		return x, y, z, nil
	}

	// Explicitly skip the datum transform by setting 'datum=none' for
	// either the source or the destination.
	if src.Type == DatumNone || dst.Type == DatumNone {
		return x, y, z, nil
	}

	// Do we need to go through geocentric coordinates?
	if src.Es == dst.Es && src.A == dst.A && !usesParams(src.Type) && !usesParams(dst.Type) {
		return x, y, z, nil
	}
	x, y, z, err = src.GeodeticToGeocentric(x, y, z)
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "source datum")
	}
	if usesParams(src.Type) {
		if x, y, z, err = src.ToWGS84(x, y, z); err != nil {
			return 0, 0, 0, err
		}
	}
	if usesParams(dst.Type) {
		if x, y, z, err = dst.FromWGS84(x, y, z); err != nil {
			return 0, 0, 0, err
		}
	}
	x, y, z = dst.GeocentricToGeodetic(x, y, z)
	return x, y, z, nil
}

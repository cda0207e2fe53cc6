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

// Package projdef parses PROJ.4 definition strings and OGC WKT coordinate
// systems into proj.Definitions and keeps a table of named spatial
// references.
package projdef

import (
	"strings"

	"github.com/cwerner1/proj"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// primeMeridians holds the longitudes in degrees east of Greenwich of the
// named prime meridians accepted by +pm.
var primeMeridians = map[string]float64{
	"greenwich": 0.0,
	"lisbon":    -9.131906111111,
	"paris":     2.337229166667,
	"bogota":    -74.080916666667,
	"madrid":    -3.687938888889,
	"rome":      12.452333333333,
	"bern":      7.439583333333,
	"jakarta":   106.807719444444,
	"ferro":     -17.666666666667,
	"brussels":  4.367975,
	"stockholm": 18.058277777778,
	"athens":    23.7163375,
	"oslo":      10.722916666667,
}

// unitsToMeter holds the conversion factors of the linear units accepted
// by +units when +to_meter is not given.
var unitsToMeter = map[string]float64{
	"m":      1,
	"km":     1000,
	"dm":     0.1,
	"cm":     0.01,
	"mm":     0.001,
	"ft":     0.3048,
	"us-ft":  1200.0 / 3937.0,
	"yd":     0.9144,
	"us-yd":  0.914401828803658,
	"mi":     1609.344,
	"us-mi":  1609.347218694437,
	"fath":   1.8288,
	"kmi":    1852,
	"link":   0.201168,
	"ch":     20.1168,
	"in":     0.0254,
	"ind-ft": 0.30479841,
}

// splitParams breaks a PROJ.4 string into its parameters without the
// leading "+". A parameter starts at a whitespace-separated field that
// begins with "+"; following fields that do not are part of its value,
// so titles such as "CH1903+ / LV95" stay whole.
func splitParams(def string) []string {
	var params []string
	for _, f := range strings.Fields(def) {
		if strings.HasPrefix(f, "+") || len(params) == 0 {
			params = append(params, strings.TrimPrefix(f, "+"))
			continue
		}
		params[len(params)-1] += " " + f
	}
	out := params[:0]
	for _, p := range params {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Parse reads a PROJ.4 string such as
// "+proj=lcc +lat_1=49 +lat_2=44 +lat_0=46.5 +lon_0=3 +ellps=GRS80"
// into a Definition. Angles are converted from degrees to radians.
// Parameters that are not recognized cause an error.
func Parse(def string) (*proj.Definition, error) {
	d := proj.NewDefinition()
	toMeterSet := false
	for _, param := range splitParams(def) {
		var key, val string
		if i := strings.Index(param, "="); i >= 0 {
			key, val = strings.ToLower(strings.TrimSpace(param[:i])), strings.TrimSpace(param[i+1:])
		} else {
			key = strings.ToLower(param)
		}

		var err error
		switch key {
		case "title":
			d.Title = val
		case "proj":
			d.Name = val
		case "datum":
			d.DatumCode = val
		case "ellps":
			d.Ellps = val
		case "nadgrids":
			d.NADGrids = val
		case "units":
			d.Units = val
		case "axis":
			d.Axis = val
		case "a":
			d.A, err = number(key, val)
		case "b":
			d.B, err = number(key, val)
		case "rf":
			d.Rf, err = number(key, val)
		case "r":
			d.A, err = number(key, val)
			d.B = d.A
		case "r_a":
			d.RA = true
		case "lat_0":
			d.Lat0, err = angle(key, val)
		case "lat_1":
			d.Lat1, err = angle(key, val)
		case "lat_2":
			d.Lat2, err = angle(key, val)
		case "lat_ts":
			d.LatTS, err = angle(key, val)
		case "lon_0":
			d.Long0, err = angle(key, val)
		case "lon_1":
			d.Long1, err = angle(key, val)
		case "lon_2":
			d.Long2, err = angle(key, val)
		case "lonc":
			d.LongC, err = angle(key, val)
		case "alpha":
			d.Alpha, err = angle(key, val)
		case "x_0":
			d.X0, err = number(key, val)
		case "y_0":
			d.Y0, err = number(key, val)
		case "k_0", "k":
			d.K0, err = number(key, val)
		case "zone":
			d.Zone, err = number(key, val)
		case "south":
			d.UTMSouth = true
		case "towgs84":
			d.DatumParams, err = numbers(key, val)
		case "to_meter":
			d.ToMeter, err = number(key, val)
			toMeterSet = true
		case "from_greenwich":
			d.FromGreenwich, err = angle(key, val)
		case "pm":
			if v, ok := primeMeridians[strings.ToLower(val)]; ok {
				d.FromGreenwich = v * proj.Deg2Rad
			} else {
				d.FromGreenwich, err = angle(key, val)
			}
		case "czech":
			d.Czech = true
		case "no_rot":
			d.NoRot = true
		case "no_defs", "wktext", "type", "no_uoff":
		default:
			return nil, errors.Errorf("projdef: unrecognized parameter %q", key)
		}
		if err != nil {
			return nil, err
		}
	}
	if d.Name == "" {
		return nil, errors.Errorf("projdef: missing +proj in %q", def)
	}
	if !toMeterSet {
		if v, ok := unitsToMeter[d.Units]; ok {
			d.ToMeter = v
		}
	}
	return d, nil
}

func number(key, val string) (float64, error) {
	v, err := cast.ToFloat64E(val)
	if err != nil {
		return 0, errors.Wrapf(err, "projdef: parsing +%s", key)
	}
	return v, nil
}

func angle(key, val string) (float64, error) {
	v, err := number(key, val)
	return v * proj.Deg2Rad, err
}

func numbers(key, val string) ([]float64, error) {
	parts := strings.Split(val, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := number(key, strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

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
	"strings"
	"sync"

	"github.com/cwerner1/proj"
	"github.com/pkg/errors"
)

// builtin holds the definitions every Defs starts out with.
var builtin = map[string]string{
	"EPSG:4326":   "+title=WGS 84 (long/lat) +proj=longlat +ellps=WGS84 +datum=WGS84 +units=degrees",
	"EPSG:4269":   "+title=NAD83 (long/lat) +proj=longlat +a=6378137.0 +b=6356752.31414036 +ellps=GRS80 +datum=NAD83 +units=degrees",
	"WGS84":       "+title=long/lat:WGS84 +proj=longlat +ellps=WGS84 +datum=WGS84 +units=degrees",
	"EPSG:3857":   "+title=WGS 84 / Pseudo-Mercator +proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +wktext +no_defs",
	"EPSG:900913": "+title=Google Mercator +proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +wktext +no_defs",
	"GOOGLE":      "+title=Google Mercator +proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +wktext +no_defs",
	"EPSG:2154":   "+title=RGF93 / Lambert-93 +proj=lcc +lat_1=49 +lat_2=44 +lat_0=46.5 +lon_0=3 +x_0=700000 +y_0=6600000 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
	"EPSG:27571":  "+title=NTF (Paris) / Lambert zone I +proj=lcc +lat_1=49.50000000000001 +lat_0=49.50000000000001 +lon_0=0 +k_0=0.999877341 +x_0=600000 +y_0=1200000 +a=6378249.2 +b=6356515 +towgs84=-168,-60,320,0,0,0,0 +pm=paris +units=m +no_defs",
	"EPSG:27572":  "+title=NTF (Paris) / Lambert zone II +proj=lcc +lat_1=46.8 +lat_0=46.8 +lon_0=0 +k_0=0.99987742 +x_0=600000 +y_0=2200000 +a=6378249.2 +b=6356515 +towgs84=-168,-60,320,0,0,0,0 +pm=paris +units=m +no_defs",
	"EPSG:27563":  "+title=NTF (Paris) / Lambert Sud France +proj=lcc +lat_1=44.10000000000001 +lat_0=44.10000000000001 +lon_0=0 +k_0=0.999877499 +x_0=600000 +y_0=200000 +a=6378249.2 +b=6356515 +towgs84=-168,-60,320,0,0,0,0 +pm=paris +units=m +no_defs",
	"EPSG:31370":  "+title=Belge 1972 / Belgian Lambert 72 +proj=lcc +lat_1=51.16666723333333 +lat_2=49.8333339 +lat_0=90 +lon_0=4.367486666666666 +x_0=150000.013 +y_0=5400088.438 +ellps=intl +units=m +no_defs",
	"EPSG:27700":  "+title=OSGB 1936 / British National Grid +proj=tmerc +lat_0=49 +lon_0=-2 +k=0.9996012717 +x_0=400000 +y_0=-100000 +ellps=airy +datum=OSGB36 +units=m +no_defs",
	"EPSG:21781":  "+title=CH1903 / LV03 +proj=somerc +lat_0=46.95240555555556 +lon_0=7.439583333333333 +k_0=1 +x_0=600000 +y_0=200000 +ellps=bessel +towgs84=674.374,15.056,405.346,0,0,0,0 +units=m +no_defs",
	"EPSG:2056":   "+title=CH1903+ / LV95 +proj=somerc +lat_0=46.95240555555556 +lon_0=7.439583333333333 +k_0=1 +x_0=2600000 +y_0=1200000 +ellps=bessel +towgs84=674.374,15.056,405.346,0,0,0,0 +units=m +no_defs",
	"EPSG:32632":  "+title=WGS 84 / UTM zone 32N +proj=utm +zone=32 +datum=WGS84 +units=m +no_defs",
	"EPSG:3035":   "+title=ETRS89 / LAEA Europe +proj=laea +lat_0=52 +lon_0=10 +x_0=4321000 +y_0=3210000 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
	"EPSG:2193":   "+title=NZGD2000 / New Zealand Transverse Mercator 2000 +proj=tmerc +lat_0=0 +lon_0=173 +k=0.9996 +x_0=1600000 +y_0=10000000 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
	"EPSG:27200":  "+title=NZGD49 / New Zealand Map Grid +proj=nzmg +lat_0=-41 +lon_0=173 +x_0=2510000 +y_0=6023150 +ellps=intl +datum=nzgd49 +units=m +no_defs",
	"EPSG:3031":   "+title=WGS 84 / Antarctic Polar Stereographic +proj=stere +lat_0=-90 +lat_ts=-71 +lon_0=0 +k=1 +x_0=0 +y_0=0 +ellps=WGS84 +datum=WGS84 +units=m +no_defs",
	"EPSG:28992":  "+title=Amersfoort / RD New +proj=sterea +lat_0=52.15616055555555 +lon_0=5.38763888888889 +k=0.9999079 +x_0=155000 +y_0=463000 +ellps=bessel +towgs84=565.417,50.3319,465.552,-0.398957,0.343988,-1.8774,4.0725 +units=m +no_defs",
}

// Defs is a table of named PROJ.4 definitions. It is safe for concurrent
// use.
type Defs struct {
	mu   sync.RWMutex
	defs map[string]string
}

// NewDefs returns a table holding the built-in definitions.
func NewDefs() *Defs {
	d := &Defs{defs: make(map[string]string, len(builtin))}
	for k, v := range builtin {
		d.defs[k] = v
	}
	return d
}

// Add stores def under name, replacing any existing definition. The
// definition is checked before it is stored.
func (d *Defs) Add(name, def string) error {
	if _, err := parseDef(def); err != nil {
		return errors.Wrapf(err, "projdef: adding %s", name)
	}
	d.mu.Lock()
	d.defs[normalize(name)] = def
	d.mu.Unlock()
	return nil
}

// Names returns the stored codes in sorted order.
func (d *Defs) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.defs))
	for k := range d.defs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// String returns the PROJ.4 or WKT string stored for code.
func (d *Defs) String(code string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.defs[normalize(code)]
	return s, ok
}

// Lookup returns the definition for code. code may be a stored name such
// as "EPSG:2154", an OGC URN, an EPSG or IGNF URL, a PROJ.4 string
// starting with "+", or a WKT coordinate system.
func (d *Defs) Lookup(code string) (*proj.Definition, error) {
	code = strings.TrimSpace(code)
	if strings.HasPrefix(code, "+") {
		return Parse(code)
	}
	if isWKT(code) {
		return ParseWKT(code)
	}
	name := normalize(code)
	s, ok := d.String(name)
	if !ok {
		return nil, errors.Errorf("projdef: unknown spatial reference %q", code)
	}
	def, err := parseDef(s)
	if err != nil {
		return nil, errors.Wrapf(err, "projdef: %s", name)
	}
	def.SRSCode = name
	return def, nil
}

// normalize converts the accepted forms of a spatial reference code into
// the upper case "AUTHORITY:CODE" form used as a key.
func normalize(code string) string {
	code = strings.TrimSpace(code)
	lower := strings.ToLower(code)
	switch {
	case strings.HasPrefix(lower, "urn:"):
		// urn:ogc:def:crs:EPSG::4326 or urn:x-ogc:def:crs:EPSG:6.6:4326
		parts := strings.Split(code, ":")
		if len(parts) >= 6 {
			code = parts[4] + ":" + parts[len(parts)-1]
		}
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		if i := strings.LastIndex(code, "#"); i >= 0 {
			authority := "EPSG"
			if strings.Contains(lower, "rig.xml") {
				authority = "IGNF"
			}
			code = authority + ":" + code[i+1:]
		}
	}
	return strings.ToUpper(code)
}

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
	"strings"

	"github.com/cwerner1/proj"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// wktNode is one KEYWORD[...] section of a WKT string.
type wktNode struct {
	keyword  string
	values   []string // quoted strings and numbers, quotes removed
	children []*wktNode
}

// name returns the first value of n, which WKT uses for the object name.
func (n *wktNode) name() string {
	if len(n.values) == 0 {
		return ""
	}
	return n.values[0]
}

func (n *wktNode) number(i int) (float64, error) {
	if i >= len(n.values) {
		return math.NaN(), errors.Errorf("projdef: WKT %s[%q] is missing value %d", n.keyword, n.name(), i)
	}
	v, err := cast.ToFloat64E(n.values[i])
	if err != nil {
		return math.NaN(), errors.Wrapf(err, "projdef: WKT %s[%q] value %d", n.keyword, n.name(), i)
	}
	return v, nil
}

// wktScanner reads WKT sections. Both [] and () delimiters are accepted.
type wktScanner struct {
	s   string
	pos int
}

func (sc *wktScanner) skipSpace() {
	for sc.pos < len(sc.s) && strings.IndexByte(" \t\r\n", sc.s[sc.pos]) >= 0 {
		sc.pos++
	}
}

// token reads a keyword or bare value.
func (sc *wktScanner) token() string {
	start := sc.pos
	for sc.pos < len(sc.s) && strings.IndexByte(",[]() \t\r\n\"", sc.s[sc.pos]) < 0 {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

// quoted reads a double quoted string. A doubled quote stands for one
// quote character.
func (sc *wktScanner) quoted() (string, error) {
	sc.pos++
	var b strings.Builder
	for sc.pos < len(sc.s) {
		c := sc.s[sc.pos]
		sc.pos++
		if c != '"' {
			b.WriteByte(c)
			continue
		}
		if sc.pos < len(sc.s) && sc.s[sc.pos] == '"' {
			b.WriteByte('"')
			sc.pos++
			continue
		}
		return b.String(), nil
	}
	return "", errors.New("projdef: unterminated WKT string")
}

func (sc *wktScanner) node() (*wktNode, error) {
	sc.skipSpace()
	n := &wktNode{keyword: strings.ToUpper(sc.token())}
	sc.skipSpace()
	if n.keyword == "" || sc.pos >= len(sc.s) || (sc.s[sc.pos] != '[' && sc.s[sc.pos] != '(') {
		return nil, errors.Errorf("projdef: malformed WKT at offset %d", sc.pos)
	}
	closer := byte(']')
	if sc.s[sc.pos] == '(' {
		closer = ')'
	}
	sc.pos++
	for {
		sc.skipSpace()
		if sc.pos >= len(sc.s) {
			return nil, errors.Errorf("projdef: WKT section %s is not closed", n.keyword)
		}
		switch c := sc.s[sc.pos]; {
		case c == closer && len(n.values)+len(n.children) == 0:
			sc.pos++
			return n, nil
		case c == '"':
			v, err := sc.quoted()
			if err != nil {
				return nil, err
			}
			n.values = append(n.values, v)
		default:
			start := sc.pos
			tok := sc.token()
			sc.skipSpace()
			if sc.pos < len(sc.s) && (sc.s[sc.pos] == '[' || sc.s[sc.pos] == '(') {
				sc.pos = start
				child, err := sc.node()
				if err != nil {
					return nil, err
				}
				n.children = append(n.children, child)
			} else if tok == "" {
				return nil, errors.Errorf("projdef: malformed WKT at offset %d", sc.pos)
			} else {
				n.values = append(n.values, tok)
			}
		}
		sc.skipSpace()
		if sc.pos >= len(sc.s) {
			return nil, errors.Errorf("projdef: WKT section %s is not closed", n.keyword)
		}
		switch sc.s[sc.pos] {
		case ',':
			sc.pos++
		case closer:
			sc.pos++
			return n, nil
		default:
			return nil, errors.Errorf("projdef: unexpected %q in WKT section %s", sc.s[sc.pos], n.keyword)
		}
	}
}

// isWKT reports whether def looks like a WKT coordinate system rather
// than a PROJ.4 string.
func isWKT(def string) bool {
	def = strings.ToUpper(strings.TrimSpace(def))
	for _, k := range []string{"PROJCS", "GEOGCS", "LOCAL_CS", "GEOCCS"} {
		if strings.HasPrefix(def, k) {
			rest := strings.TrimSpace(def[len(k):])
			return strings.HasPrefix(rest, "[") || strings.HasPrefix(rest, "(")
		}
	}
	return false
}

// parseDef parses a PROJ.4 or WKT definition.
func parseDef(def string) (*proj.Definition, error) {
	if isWKT(def) {
		return ParseWKT(def)
	}
	return Parse(def)
}

// wktProjections maps WKT projection names that the registry does not
// know under that spelling.
var wktProjections = map[string]string{
	"lambert_conformal_conic_1sp":            "lcc",
	"mercator_2sp":                           "merc",
	"polar_stereographic_variant_a":          "stere",
	"lambert_azimuthal_equal_area_spherical": "laea",
	"transverse_mercator_south_orientated":   "tmerc",
	"krovak_north_orientated":                "krovak",
}

// wktDatums maps normalized WKT datum names to datum codes.
var wktDatums = map[string]string{
	"wgs_1984":                             "WGS84",
	"wgs84":                                "WGS84",
	"wgs_84":                               "WGS84",
	"world_geodetic_system_1984":           "WGS84",
	"north_american_datum_1983":            "nad83",
	"north_american_datum_1927":            "nad27",
	"new_zealand_geodetic_datum_1949":      "nzgd49",
	"new_zealand_1949":                     "nzgd49",
	"osgb_1936":                            "osgb36",
	"ch1903":                               "ch1903",
	"deutsches_hauptdreiecksnetz":          "potsdam",
	"potsdam":                              "potsdam",
	"carthage":                             "carthage",
	"militar_geographische_institut":       "hermannskogel",
	"hermannskogel":                        "hermannskogel",
	"greek_geodetic_reference_system_1987": "ggrs87",
	"ggrs87":                               "ggrs87",
	"s_jtsk":                               "s_jtsk",
	"reseau_national_belge_1972":           "rnb72",
}

// wktDatumCode returns the datum code for a WKT datum or GEOGCS name.
func wktDatumCode(name string) (string, bool) {
	code := strings.ToLower(strings.TrimSpace(name))
	code = strings.NewReplacer(" ", "_", "-", "_").Replace(code)
	code = strings.TrimPrefix(code, "d_")
	code = strings.TrimPrefix(code, "gcs_")
	code = strings.TrimSuffix(code, "_ferro")
	code = strings.TrimSuffix(code, "_jakarta")
	switch {
	case strings.Contains(code, "belge"):
		return "rnb72", true
	case strings.Contains(code, "jednotne"):
		return "s_jtsk", true
	}
	c, ok := wktDatums[code]
	return c, ok
}

// wktEllipsoid shortens common WKT spheroid names to ellipsoid codes.
func wktEllipsoid(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "international"):
		return "intl"
	case strings.HasPrefix(lower, "grs") && strings.Contains(lower, "80"):
		return "GRS80"
	case strings.HasPrefix(lower, "wgs") && strings.Contains(lower, "84"):
		return "WGS84"
	case strings.HasPrefix(lower, "bessel"):
		return "bessel"
	case strings.HasPrefix(lower, "airy"):
		return "airy"
	}
	return strings.Replace(strings.Replace(name, "_19", "", -1), "Clarke_18", "clrk", -1)
}

var wktAxes = map[string]byte{
	"EAST":  'e',
	"WEST":  'w',
	"NORTH": 'n',
	"SOUTH": 's',
	"UP":    'u',
	"DOWN":  'd',
}

// wktParser collects a Definition while walking the section tree.
type wktParser struct {
	d       *proj.Definition
	angular float64 // radians per angular unit of the GEOGCS
	primem  float64 // prime meridian in angular units
	axis    []byte
	proj4   string
}

// ParseWKT reads an OGC Well-Known Text coordinate system (PROJCS,
// GEOGCS or LOCAL_CS) into a Definition. A PROJ4 EXTENSION, when
// present, takes precedence over the WKT parameters.
func ParseWKT(wkt string) (*proj.Definition, error) {
	sc := &wktScanner{s: wkt}
	root, err := sc.node()
	if err != nil {
		return nil, err
	}
	sc.skipSpace()
	if sc.pos != len(sc.s) {
		return nil, errors.Errorf("projdef: trailing text after WKT: %q", sc.s[sc.pos:])
	}

	p := &wktParser{d: proj.NewDefinition(), angular: proj.Deg2Rad}
	switch root.keyword {
	case "PROJCS":
		err = p.projcs(root)
	case "GEOGCS":
		p.d.Name = "longlat"
		err = p.geogcs(root, true)
	case "LOCAL_CS":
		p.d.Name = "identity"
		p.d.Title = root.name()
		p.d.DatumCode = "none"
	default:
		err = errors.Errorf("projdef: unsupported WKT coordinate system %s", root.keyword)
	}
	if err != nil {
		return nil, err
	}

	d := p.d
	if p.proj4 != "" {
		if d, err = Parse(p.proj4); err != nil {
			return nil, errors.Wrap(err, "projdef: WKT PROJ4 extension")
		}
		d.Title, d.SRSCode = p.d.Title, p.d.SRSCode
		return d, nil
	}
	switch len(p.axis) {
	case 0:
	case 2:
		d.Axis = string(p.axis) + "u"
	case 3:
		d.Axis = string(p.axis)
	default:
		return nil, errors.Errorf("projdef: WKT has %d axes", len(p.axis))
	}
	return d, nil
}

func (p *wktParser) projcs(n *wktNode) error {
	d := p.d
	d.Title = n.name()
	for _, c := range n.children {
		if c.keyword == "GEOGCS" {
			if err := p.geogcs(c, false); err != nil {
				return err
			}
		}
	}
	var projection string
	for _, c := range n.children {
		var err error
		switch c.keyword {
		case "GEOGCS":
		case "PROJECTION":
			projection = c.name()
			d.Name = projection
			if alias, ok := wktProjections[strings.ToLower(projection)]; ok {
				d.Name = alias
			}
		case "PARAMETER":
			err = p.parameter(c)
		case "UNIT":
			d.Units = wktUnit(c.name())
			d.ToMeter, err = c.number(1)
		case "AXIS":
			err = p.addAxis(c)
		case "AUTHORITY":
			d.SRSCode = authority(c)
		case "EXTENSION":
			if strings.EqualFold(c.name(), "PROJ4") && len(c.values) > 1 {
				p.proj4 = c.values[1]
			}
		default:
			err = errors.Errorf("projdef: unknown WKT section %s in PROJCS", c.keyword)
		}
		if err != nil {
			return err
		}
	}
	if projection == "" && p.proj4 == "" {
		return errors.Errorf("projdef: WKT PROJCS[%q] has no PROJECTION", d.Title)
	}

	// False easting and northing are given in the linear unit.
	d.X0 *= d.ToMeter
	d.Y0 *= d.ToMeter

	switch strings.ToLower(projection) {
	case "mercator_2sp", "mercator":
		if !math.IsNaN(d.Lat1) {
			d.LatTS, d.Lat1 = d.Lat1, math.NaN()
		}
	case "mercator_auxiliary_sphere":
		d.B, d.Rf = d.A, math.NaN()
		if !math.IsNaN(d.Lat1) {
			d.LatTS, d.Lat1 = d.Lat1, math.NaN()
		}
	}
	return nil
}

func (p *wktParser) geogcs(n *wktNode, top bool) error {
	d := p.d
	if code, ok := wktDatumCode(n.name()); ok {
		d.DatumCode = code
	}
	if top {
		d.Title = n.name()
	}
	for _, c := range n.children {
		if c.keyword == "UNIT" {
			v, err := c.number(1)
			if err != nil {
				return err
			}
			p.angular = v
		}
	}
	primem := false
	for _, c := range n.children {
		var err error
		switch c.keyword {
		case "DATUM":
			err = p.datum(c)
		case "PRIMEM":
			p.primem, err = c.number(1)
			primem = true
		case "UNIT":
		case "AXIS":
			if top {
				err = p.addAxis(c)
			}
		case "AUTHORITY":
			if top {
				d.SRSCode = authority(c)
			}
		default:
			err = errors.Errorf("projdef: unknown WKT section %s in GEOGCS", c.keyword)
		}
		if err != nil {
			return err
		}
	}
	if primem {
		d.FromGreenwich = p.primem * p.angular
	}
	return nil
}

func (p *wktParser) datum(n *wktNode) error {
	d := p.d
	d.DatumName = n.name()
	if code, ok := wktDatumCode(n.name()); ok {
		d.DatumCode = code
	}
	for _, c := range n.children {
		var err error
		switch c.keyword {
		case "SPHEROID", "ELLIPSOID":
			d.Ellps = wktEllipsoid(c.name())
			if d.A, err = c.number(1); err != nil {
				return err
			}
			if d.Rf, err = c.number(2); err != nil {
				return err
			}
			if d.Rf == 0 {
				d.B = d.A
			}
		case "TOWGS84":
			d.DatumParams = make([]float64, len(c.values))
			for i := range c.values {
				if d.DatumParams[i], err = c.number(i); err != nil {
					return err
				}
			}
		case "AUTHORITY":
		default:
			err = errors.Errorf("projdef: unknown WKT section %s in DATUM", c.keyword)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *wktParser) parameter(n *wktNode) error {
	d := p.d
	v, err := n.number(1)
	if err != nil {
		return err
	}
	a := v * p.angular
	switch strings.ToLower(n.name()) {
	case "standard_parallel_1":
		d.Lat1 = a
	case "standard_parallel_2":
		d.Lat2 = a
	case "latitude_of_origin", "latitude_of_center", "central_parallel":
		d.Lat0 = a
	case "central_meridian":
		d.Long0 = a
	case "longitude_of_center":
		d.Long0, d.LongC = a, a
	case "azimuth":
		d.Alpha = a
	case "scale_factor":
		d.K0 = v
	case "false_easting":
		d.X0 = v
	case "false_northing":
		d.Y0 = v
	case "auxiliary_sphere_type", "rectified_grid_angle", "pseudo_standard_parallel_1":
	default:
		return errors.Errorf("projdef: unknown WKT parameter %q", n.name())
	}
	return nil
}

func (p *wktParser) addAxis(n *wktNode) error {
	if len(n.values) < 2 {
		return errors.Errorf("projdef: WKT AXIS[%q] has no direction", n.name())
	}
	dir, ok := wktAxes[strings.ToUpper(n.values[1])]
	if !ok {
		return errors.Errorf("projdef: unsupported WKT axis direction %q", n.values[1])
	}
	p.axis = append(p.axis, dir)
	return nil
}

func authority(n *wktNode) string {
	if len(n.values) < 2 {
		return n.name()
	}
	return strings.ToUpper(n.values[0]) + ":" + n.values[1]
}

// wktUnit converts a WKT linear unit name to a +units code.
func wktUnit(name string) string {
	switch strings.ToLower(strings.Replace(name, "_", " ", -1)) {
	case "metre", "meter":
		return "m"
	case "us survey foot", "foot us":
		return "us-ft"
	case "foot", "international foot":
		return "ft"
	case "kilometre", "kilometer":
		return "km"
	}
	return name
}

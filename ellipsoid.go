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

	"github.com/sirupsen/logrus"
)

// EllipsoidDef describes a reference ellipsoid by its semi-major axis and
// either its semi-minor axis or its inverse flattening.
type EllipsoidDef struct {
	A, B, Rf float64
	Name     string
}

// Ellipsoid holds the derived constants of a reference ellipsoid.
type Ellipsoid struct {
	Name string
	A, B float64
	Rf   float64
	Es   float64 // eccentricity squared
	E    float64 // eccentricity
	Ep2  float64 // second eccentricity squared
	// Sphere is true when the semi-major and semi-minor axes are equal.
	Sphere bool
}

// Ellipsoid derives the ellipsoid constants for def. Axes are taken from
// def.A and def.B or def.Rf when given, otherwise from the named
// ellipsoid def.Ellps. Unknown or missing names fall back to WGS84.
func (r *Registry) Ellipsoid(def *Definition) Ellipsoid {
	var e Ellipsoid
	a, b, rf := def.A, def.B, def.Rf
	if math.IsNaN(a) {
		ed, ok := r.ellipsoids[def.Ellps]
		if !ok {
			if def.Ellps != "" {
				r.Log.WithField("ellps", def.Ellps).Warn("unknown ellipsoid, using WGS84")
			}
			ed = r.ellipsoids["WGS84"]
		}
		a = ed.A
		if ed.B != 0 {
			b = ed.B
		}
		if ed.Rf != 0 {
			rf = ed.Rf
		}
		e.Name = ed.Name
	}
	if !math.IsNaN(rf) && math.IsNaN(b) {
		b = (1 - 1/rf) * a
	}
	if rf == 0 || math.IsNaN(b) || math.Abs(a-b) < epsln {
		e.Sphere = true
		b = a
	}
	e.A, e.B, e.Rf = a, b, rf
	a2 := a * a
	b2 := b * b
	e.Es = (a2 - b2) / a2
	e.E = math.Sqrt(e.Es)
	e.Ep2 = (a2 - b2) / b2
	if def.RA {
		e.A *= 1 - e.Es*(sixth+e.Es*(ra4+e.Es*ra6))
		e.B = e.A
		e.Es, e.E, e.Ep2 = 0, 0, 0
		e.Sphere = true
	}
	r.Log.WithFields(logrus.Fields{
		"a":      e.A,
		"es":     e.Es,
		"sphere": e.Sphere,
	}).Debug("derived ellipsoid")
	return e
}

var ellipsoidDefs = map[string]EllipsoidDef{
	"MERIT":     {A: 6378137.0, Rf: 298.257, Name: "MERIT 1983"},
	"SGS85":     {A: 6378136.0, Rf: 298.257, Name: "Soviet Geodetic System 85"},
	"GRS80":     {A: 6378137.0, Rf: 298.257222101, Name: "GRS 1980(IUGG, 1980)"},
	"IAU76":     {A: 6378140.0, Rf: 298.257, Name: "IAU 1976"},
	"airy":      {A: 6377563.396, B: 6356256.910, Name: "Airy 1830"},
	"APL4":      {A: 6378137, Rf: 298.25, Name: "Appl. Physics. 1965"},
	"NWL9D":     {A: 6378145.0, Rf: 298.25, Name: "Naval Weapons Lab., 1965"},
	"mod_airy":  {A: 6377340.189, B: 6356034.446, Name: "Modified Airy"},
	"andrae":    {A: 6377104.43, Rf: 300.0, Name: "Andrae 1876 (Den., Iclnd.)"},
	"aust_SA":   {A: 6378160.0, Rf: 298.25, Name: "Australian Natl & S. Amer. 1969"},
	"GRS67":     {A: 6378160.0, Rf: 298.2471674270, Name: "GRS 67(IUGG 1967)"},
	"bessel":    {A: 6377397.155, Rf: 299.1528128, Name: "Bessel 1841"},
	"bess_nam":  {A: 6377483.865, Rf: 299.1528128, Name: "Bessel 1841 (Namibia)"},
	"clrk66":    {A: 6378206.4, B: 6356583.8, Name: "Clarke 1866"},
	"clrk80":    {A: 6378249.145, Rf: 293.4663, Name: "Clarke 1880 mod."},
	"clrk80ign": {A: 6378249.2, B: 6356515.0, Name: "Clarke 1880 (IGN)"},
	"clrk58":    {A: 6378293.645208759, Rf: 294.2606763692654, Name: "Clarke 1858"},
	"CPM":       {A: 6375738.7, Rf: 334.29, Name: "Comm. des Poids et Mesures 1799"},
	"delmbr":    {A: 6376428.0, Rf: 311.5, Name: "Delambre 1810 (Belgium)"},
	"engelis":   {A: 6378136.05, Rf: 298.2566, Name: "Engelis 1985"},
	"evrst30":   {A: 6377276.345, Rf: 300.8017, Name: "Everest 1830"},
	"evrst48":   {A: 6377304.063, Rf: 300.8017, Name: "Everest 1948"},
	"evrst56":   {A: 6377301.243, Rf: 300.8017, Name: "Everest 1956"},
	"evrst69":   {A: 6377295.664, Rf: 300.8017, Name: "Everest 1969"},
	"evrstSS":   {A: 6377298.556, Rf: 300.8017, Name: "Everest (Sabah & Sarawak)"},
	"fschr60":   {A: 6378166.0, Rf: 298.3, Name: "Fischer (Mercury Datum) 1960"},
	"fschr60m":  {A: 6378155.0, Rf: 298.3, Name: "Fischer 1960"},
	"fschr68":   {A: 6378150.0, Rf: 298.3, Name: "Fischer 1968"},
	"helmert":   {A: 6378200.0, Rf: 298.3, Name: "Helmert 1906"},
	"hough":     {A: 6378270.0, Rf: 297.0, Name: "Hough"},
	"intl":      {A: 6378388.0, Rf: 297.0, Name: "International 1909 (Hayford)"},
	"kaula":     {A: 6378163.0, Rf: 298.24, Name: "Kaula 1961"},
	"lerch":     {A: 6378139.0, Rf: 298.257, Name: "Lerch 1979"},
	"mprts":     {A: 6397300.0, Rf: 191.0, Name: "Maupertius 1738"},
	"new_intl":  {A: 6378157.5, B: 6356772.2, Name: "New International 1967"},
	"plessis":   {A: 6376523.0, B: 6355863.0, Name: "Plessis 1817 (France)"},
	"krass":     {A: 6378245.0, Rf: 298.3, Name: "Krassovsky, 1942"},
	"SEasia":    {A: 6378155.0, B: 6356773.3205, Name: "Southeast Asia"},
	"walbeck":   {A: 6376896.0, B: 6355834.8467, Name: "Walbeck"},
	"WGS60":     {A: 6378165.0, Rf: 298.3, Name: "WGS 60"},
	"WGS66":     {A: 6378145.0, Rf: 298.25, Name: "WGS 66"},
	"WGS72":     {A: 6378135.0, Rf: 298.26, Name: "WGS 72"},
	"WGS84":     {A: 6378137.0, Rf: 298.257223563, Name: "WGS 84"},
	"sphere":    {A: 6370997.0, B: 6370997.0, Name: "Normal Sphere (r=6370997)"},
}

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
	"io/ioutil"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Projection converts between geodetic coordinates and projected
// coordinates. Longitudes and latitudes are in radians; projected
// coordinates are in meters.
type Projection interface {
	Forward(lon, lat float64) (x, y float64, err error)
	Inverse(x, y float64) (lon, lat float64, err error)
}

// A Constructor initializes a projection from a definition and its
// ellipsoid. It returns a ConfigError for degenerate configurations.
type Constructor func(d *Definition, e Ellipsoid) (Projection, error)

// Registry holds the projections, ellipsoids and datums known to the
// engine. Create one with NewRegistry at startup and share it; it must not
// be modified once it is in concurrent use.
type Registry struct {
	// Log receives warnings about fallbacks and debug information about
	// initialization. It discards everything by default.
	Log logrus.FieldLogger

	projections map[string]Constructor
	ellipsoids  map[string]EllipsoidDef
	datums      map[string]DatumDef
}

// NewRegistry returns a registry holding the built-in projections,
// ellipsoids and datums.
func NewRegistry() *Registry {
	quiet := logrus.New()
	quiet.Out = ioutil.Discard
	r := &Registry{
		Log:         quiet,
		projections: make(map[string]Constructor),
		ellipsoids:  make(map[string]EllipsoidDef, len(ellipsoidDefs)),
		datums:      make(map[string]DatumDef, len(datumDefs)),
	}
	for k, v := range ellipsoidDefs {
		r.ellipsoids[k] = v
	}
	for k, v := range datumDefs {
		r.datums[k] = v
	}

	r.Register(newLongLat, geographicNames...)
	r.Register(newMerc, "merc", "Mercator", "Popular Visualisation Pseudo Mercator",
		"Mercator_1SP", "Mercator_Auxiliary_Sphere")
	r.Register(newTMerc, "tmerc", "Transverse_Mercator", "Transverse Mercator")
	r.Register(newUTM, "utm", "Universal Transverse Mercator System")
	r.Register(newLCC, "lcc", "Lambert_Conformal_Conic", "Lambert_Conformal_Conic_2SP",
		"Lambert Tangential Conformal Conic Projection")
	r.Register(newAEA, "aea", "Albers_Conic_Equal_Area", "Albers")
	r.Register(newLAEA, "laea", "Lambert_Azimuthal_Equal_Area")
	r.Register(newStere, "stere", "Stereographic", "Polar_Stereographic")
	r.Register(newSterea, "sterea", "Oblique_Stereographic", "Double_Stereographic")
	r.Register(newGauss, "gauss")
	r.Register(newGnom, "gnom", "Gnomonic")
	r.Register(newOrtho, "ortho", "Orthographic")
	r.Register(newEqdc, "eqdc", "Equidistant_Conic")
	r.Register(newEqc, "eqc", "Equirectangular", "Equidistant_Cylindrical", "Plate_Carree")
	r.Register(newAeqd, "aeqd", "Azimuthal_Equidistant")
	r.Register(newSinu, "sinu", "Sinusoidal")
	r.Register(newMoll, "moll", "Mollweide")
	r.Register(newMill, "mill", "Miller_Cylindrical")
	r.Register(newCass, "cass", "Cassini", "Cassini_Soldner")
	r.Register(newSomerc, "somerc", "Swiss_Oblique_Mercator", "Hotine_Oblique_Mercator_Azimuth_Center")
	r.Register(newGstmerc, "gstmerc", "Gauss_Schreiber_Transverse_Mercator")
	r.Register(newNZMG, "nzmg", "New_Zealand_Map_Grid")
	r.Register(newVandg, "vandg", "VanDerGrinten", "Van_der_Grinten_I")
	r.Register(newPoly, "poly", "Polyconic")
	r.Register(newOmerc, "omerc", "Hotine_Oblique_Mercator", "Oblique_Mercator")
	r.Register(newCea, "cea", "Cylindrical_Equal_Area")
	r.Register(newEqui, "equi")
	r.Register(newKrovak, "krovak", "Krovak")
	return r
}

var geographicNames = []string{"longlat", "latlong", "lonlat", "latlon", "identity"}

// Register adds a projection constructor under one or more names. Names
// are case insensitive.
func (r *Registry) Register(c Constructor, names ...string) {
	for _, n := range names {
		r.projections[strings.ToLower(n)] = c
	}
}

// Projections returns the sorted names of the registered projections.
func (r *Registry) Projections() []string {
	names := make([]string, 0, len(r.projections))
	for n := range r.projections {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AddEllipsoid adds or replaces a named ellipsoid.
func (r *Registry) AddEllipsoid(name string, e EllipsoidDef) { r.ellipsoids[name] = e }

// AddDatum adds or replaces a named datum.
func (r *Registry) AddDatum(name string, d DatumDef) { r.datums[name] = d }

// SR is an initialized spatial reference. Its fields are computed once
// by Registry.NewSR and never modified afterwards, so an SR may be shared
// by concurrent callers.
type SR struct {
	def        *Definition
	ellipsoid  Ellipsoid
	datum      *Datum
	proj       Projection
	geographic bool
}

// Definition returns a copy of the resolved definition.
func (sr *SR) Definition() *Definition { return sr.def.Clone() }

// Ellipsoid returns the ellipsoid constants.
func (sr *SR) Ellipsoid() Ellipsoid { return sr.ellipsoid }

// Datum returns the datum of the spatial reference.
func (sr *SR) Datum() *Datum { return sr.datum }

// Geographic reports whether coordinates are longitude and latitude.
func (sr *SR) Geographic() bool { return sr.geographic }

// Forward projects a longitude and latitude in radians to meters.
func (sr *SR) Forward(lon, lat float64) (x, y float64, err error) {
	return sr.proj.Forward(lon, lat)
}

// Inverse converts projected meters to longitude and latitude in radians.
func (sr *SR) Inverse(x, y float64) (lon, lat float64, err error) {
	return sr.proj.Inverse(x, y)
}

// NewSR initializes a spatial reference from def. def is not modified.
func (r *Registry) NewSR(def *Definition) (*SR, error) {
	if def == nil {
		return nil, configErr("spatial reference", "definition is nil")
	}
	d := def.Clone()
	name := strings.ToLower(d.Name)
	ctor, ok := r.projections[name]
	if !ok {
		return nil, configErr(d.Name, "unknown projection")
	}
	r.resolveDatum(d)
	if d.NADGrids == "@null" {
		d.DatumCode = "none"
		d.NADGrids = ""
	}
	if d.Axis == "" {
		d.Axis = enu
	}
	if err := checkAxis(d.Axis); err != nil {
		return nil, err
	}
	if math.IsNaN(d.ToMeter) || d.ToMeter == 0 {
		d.ToMeter = 1
	}

	e := r.Ellipsoid(d)
	sr := &SR{
		def:       d,
		ellipsoid: e,
		datum:     NewDatum(d.DatumCode, d.DatumParams, d.NADGrids, e),
	}
	for _, g := range geographicNames {
		if name == g {
			sr.geographic = true
		}
	}
	var err error
	if sr.proj, err = ctor(d, e); err != nil {
		return nil, err
	}
	r.Log.WithFields(logrus.Fields{
		"proj":  name,
		"datum": sr.datum.Type,
	}).Debug("initialized spatial reference")
	return sr, nil
}

// resolveDatum fills in the ellipsoid and shift parameters of a named
// datum when the definition does not give them explicitly.
func (r *Registry) resolveDatum(d *Definition) {
	if d.DatumCode == "" || d.DatumCode == "none" {
		return
	}
	dd, ok := r.datums[d.DatumCode]
	if !ok {
		dd, ok = r.datums[strings.ToLower(d.DatumCode)]
	}
	if !ok {
		r.Log.WithField("datum", d.DatumCode).Warn("unknown datum")
		return
	}
	if d.DatumParams == nil && dd.ToWGS84 != nil {
		d.DatumParams = append([]float64(nil), dd.ToWGS84...)
	}
	if d.NADGrids == "" {
		d.NADGrids = dd.NADGrids
	}
	if d.Ellps == "" && math.IsNaN(d.A) {
		d.Ellps = dd.Ellipse
	}
	if d.DatumName == "" {
		if dd.Name != "" {
			d.DatumName = dd.Name
		} else {
			d.DatumName = d.DatumCode
		}
	}
}

type longLat struct{}

func newLongLat(*Definition, Ellipsoid) (Projection, error) { return longLat{}, nil }

func (longLat) Forward(lon, lat float64) (float64, float64, error) { return lon, lat, nil }
func (longLat) Inverse(x, y float64) (float64, float64, error)     { return x, y, nil }

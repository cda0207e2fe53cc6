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


// Package proj converts coordinates between map projections and geodetic
// datums.
//
// A Registry holds the known projections, ellipsoids and datums. A
// resolved Definition (see package projdef for PROJ.4 and WKT parsers)
// is turned into an initialized spatial reference with Registry.NewSR,
// and points are moved between two spatial references with Transform:
//
//	reg := proj.NewRegistry()
//	src, _ := reg.NewSR(lambert93)
//	dst, _ := reg.NewSR(wgs84)
//	p, err := proj.Transform(src, dst, proj.Point{X: 651000, Y: 6861000})
//
// Geographic coordinates are given in degrees; projected coordinates are
// in the units of the spatial reference. Datum shifts go through
// geocentric WGS84 coordinates using 3- or 7-parameter Helmert
// transformations. Grid-shift datums are recognized but not applied.
//
// A Transformer from SR.NewTransform can also reproject whole geometries
// from paulmach/orb (Transformer.Orb) or ctessum/geom (Transformer.Geom).
package proj

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

package projutil

import (
	"fmt"

	"github.com/cwerner1/proj"
	"github.com/jonas-p/go-shp"
	"github.com/pkg/errors"
)

// reprojectShapefile writes the shapes and attributes of the shapefile at
// in to out, with every vertex converted by t. Z and M values are copied
// unchanged. It returns the number of shapes written.
func reprojectShapefile(in, out string, t proj.Transformer) (int, error) {
	r, err := shp.Open(in)
	if err != nil {
		return 0, errors.Wrapf(err, "proj: opening %s", in)
	}
	defer r.Close()

	w, err := shp.Create(out, r.GeometryType)
	if err != nil {
		return 0, errors.Wrapf(err, "proj: creating %s", out)
	}
	defer w.Close()

	fields := r.Fields()
	if err = w.SetFields(fields); err != nil {
		return 0, errors.Wrapf(err, "proj: creating %s", out)
	}

	n := 0
	for r.Next() {
		row, s := r.Shape()
		if err = transformShape(s, t); err != nil {
			return n, errors.Wrapf(err, "proj: shape %d", row)
		}
		i := int(w.Write(s))
		for f := range fields {
			if err = w.WriteAttribute(i, f, r.ReadAttribute(row, f)); err != nil {
				return n, errors.Wrapf(err, "proj: shape %d", row)
			}
		}
		n++
	}
	return n, errors.Wrapf(r.Err(), "proj: reading %s", in)
}

// transformShape converts the vertices of s in place.
func transformShape(s shp.Shape, t proj.Transformer) error {
	var err error
	switch v := s.(type) {
	case *shp.Null:
	case *shp.Point:
		v.X, v.Y, err = t(v.X, v.Y)
	case *shp.PointZ:
		v.X, v.Y, err = t(v.X, v.Y)
	case *shp.PointM:
		v.X, v.Y, err = t(v.X, v.Y)
	case *shp.PolyLine:
		err = transformPoints(v.Points, &v.Box, t)
	case *shp.Polygon:
		err = transformPoints(v.Points, &v.Box, t)
	case *shp.MultiPoint:
		err = transformPoints(v.Points, &v.Box, t)
	case *shp.PolyLineZ:
		err = transformPoints(v.Points, &v.Box, t)
	case *shp.PolygonZ:
		err = transformPoints(v.Points, &v.Box, t)
	case *shp.MultiPointZ:
		err = transformPoints(v.Points, &v.Box, t)
	case *shp.PolyLineM:
		err = transformPoints(v.Points, &v.Box, t)
	case *shp.PolygonM:
		err = transformPoints(v.Points, &v.Box, t)
	case *shp.MultiPointM:
		err = transformPoints(v.Points, &v.Box, t)
	case *shp.MultiPatch:
		err = transformPoints(v.Points, &v.Box, t)
	default:
		return &proj.UnsupportedError{Feature: fmt.Sprintf("shapefile geometry %T", s)}
	}
	return err
}

// transformPoints converts pts in place and recomputes their bounding box.
func transformPoints(pts []shp.Point, box *shp.Box, t proj.Transformer) error {
	for i, p := range pts {
		x, y, err := t(p.X, p.Y)
		if err != nil {
			return err
		}
		pts[i] = shp.Point{X: x, Y: y}
	}
	*box = shp.BBoxFromPoints(pts)
	return nil
}

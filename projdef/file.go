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
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// LoadFile adds the definitions in the TOML or YAML file at path to d.
// The file maps codes to PROJ.4 or WKT strings, for example:
//
//	"EPSG:5514" = "+proj=krovak +ellps=bessel +towgs84=589,76,480"
//
// The format is chosen by the file extension. Nothing is added if any
// definition in the file is invalid.
func (d *Defs) LoadFile(path string) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "projdef: loading definitions")
	}
	m := make(map[string]string)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err = toml.Decode(string(b), &m); err != nil {
			return errors.Wrapf(err, "projdef: decoding %s", path)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(b, &m); err != nil {
			return errors.Wrapf(err, "projdef: decoding %s", path)
		}
	default:
		return errors.Errorf("projdef: unsupported definition file type %q", ext)
	}

	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if _, err := parseDef(m[k]); err != nil {
			return errors.Wrapf(err, "projdef: %s: %s", path, k)
		}
	}
	d.mu.Lock()
	for _, k := range names {
		d.defs[normalize(k)] = m[k]
	}
	d.mu.Unlock()
	return nil
}

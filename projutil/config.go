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
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cwerner1/proj"
	"github.com/cwerner1/proj/projdef"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Log receives the diagnostic output of the commands.
var Log = logrus.New()

// defs holds the spatial reference definitions available to the commands.
var defs = projdef.NewDefs()

func init() {
	Log.Out = os.Stderr
	Log.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	}
}

// setConfig finds and reads in the configuration file, if there is one,
// and then sets up logging and the definition table.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return errors.Wrap(err, "proj: problem reading configuration file")
		}
	}
	if Cfg.GetBool("verbose") {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}

	defs = projdef.NewDefs()
	for _, f := range Cfg.GetStringSlice("defs") {
		if f = strings.Trim(strings.TrimSpace(f), "[]"); f == "" {
			continue
		}
		if err := defs.LoadFile(os.ExpandEnv(f)); err != nil {
			return err
		}
		Log.WithField("file", f).Debug("loaded definitions")
	}
	return nil
}

func newRegistry() *proj.Registry {
	r := proj.NewRegistry()
	r.Log = Log
	return r
}

// newSR looks up code in the definition table and initializes it.
func newSR(code string) (*proj.SR, error) {
	def, err := defs.Lookup(os.ExpandEnv(code))
	if err != nil {
		return nil, err
	}
	return newRegistry().NewSR(def)
}

func parseCoords(args []string) ([]float64, error) {
	c := make([]float64, len(args))
	for i, a := range args {
		v, err := cast.ToFloat64E(a)
		if err != nil {
			return nil, errors.Wrapf(err, "proj: invalid coordinate %q", a)
		}
		c[i] = v
	}
	return c, nil
}

// writeResult writes the named values to w in the configured format.
func writeResult(w io.Writer, names []string, vals ...float64) error {
	switch format := Cfg.GetString("format"); format {
	case "text":
		s := make([]string, len(names))
		for i := range names {
			s[i] = strconv.FormatFloat(vals[i], 'f', -1, 64)
		}
		_, err := io.WriteString(w, strings.Join(s, " ")+"\n")
		return err
	case "json":
		m := make(map[string]float64, len(names))
		for i, n := range names {
			m[n] = vals[i]
		}
		return json.NewEncoder(w).Encode(m)
	default:
		return errors.Errorf("proj: unknown output format %q", format)
	}
}

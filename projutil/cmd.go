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

// Package projutil holds the command line interface to the proj and
// projdef packages.
package projutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwerner1/proj"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is the version of the command line tool.
const Version = "1.0.0"

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to proj.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "defs",
			usage: `
              defs specifies TOML or YAML files holding additional
              spatial reference definitions, mapping codes such as
              "EPSG:5514" to PROJ.4 strings.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "format",
			usage: `
              format specifies how results are written: "text" or "json".`,
			shorthand:  "f",
			defaultVal: "text",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose turns on debug logging.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "from",
			usage: `
              from specifies the spatial reference of the input coordinates.
              It can be a known code such as "EPSG:2154", an OGC URN, or a
              PROJ.4 string.`,
			defaultVal: "EPSG:4326",
			flagsets:   []*pflag.FlagSet{transformCmd.Flags(), shpCmd.Flags()},
		},
		{
			name: "to",
			usage: `
              to specifies the spatial reference of the output coordinates.`,
			defaultVal: "EPSG:4326",
			flagsets:   []*pflag.FlagSet{transformCmd.Flags(), shpCmd.Flags()},
		},
		{
			name: "proj",
			usage: `
              proj specifies the spatial reference whose projection is
              applied, without any datum shift or unit conversion.`,
			shorthand:  "p",
			defaultVal: "EPSG:3857",
			flagsets:   []*pflag.FlagSet{forwardCmd.Flags(), inverseCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("PROJ")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(transformCmd)
	Root.AddCommand(forwardCmd)
	Root.AddCommand(inverseCmd)
	Root.AddCommand(listCmd)
	Root.AddCommand(shpCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "proj",
	Short: "Convert coordinates between map projections and datums.",
	Long: `proj converts coordinates between spatial references. Use the
subcommands specified below to access the functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'PROJ_var' where 'var' is the
name of the variable to be set. Variables can also be placed in a .env file
in the working directory.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of proj.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "proj v%s\n", Version)
	},
	DisableAutoGenTag: true,
}

var transformCmd = &cobra.Command{
	Use:   "transform X Y [Z]",
	Short: "Transform a point between spatial references.",
	Long: `transform converts a point from the --from spatial reference to the
--to spatial reference, shifting datums as required. Geographic coordinates
are longitude and latitude in degrees.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseCoords(args)
		if err != nil {
			return err
		}
		src, err := newSR(Cfg.GetString("from"))
		if err != nil {
			return err
		}
		dst, err := newSR(Cfg.GetString("to"))
		if err != nil {
			return err
		}
		p := proj.Point{X: c[0], Y: c[1]}
		if len(c) == 3 {
			p.Z = c[2]
		}
		Log.WithField("point", p).Debug("transforming")
		p, err = proj.Transform(src, dst, p)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), []string{"x", "y", "z"}[:len(c)], p.X, p.Y, p.Z)
	},
	DisableAutoGenTag: true,
}

var shpCmd = &cobra.Command{
	Use:   "shp IN.shp OUT.shp",
	Short: "Transform a shapefile between spatial references.",
	Long: `shp writes a copy of the shapefile IN.shp, with its attribute table,
to OUT.shp after converting every vertex from the --from spatial reference to
the --to spatial reference.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := newSR(Cfg.GetString("from"))
		if err != nil {
			return err
		}
		dst, err := newSR(Cfg.GetString("to"))
		if err != nil {
			return err
		}
		ct, err := src.NewTransform(dst)
		if err != nil {
			return err
		}
		n, err := reprojectShapefile(os.ExpandEnv(args[0]), os.ExpandEnv(args[1]), ct)
		if err != nil {
			return err
		}
		Log.WithFields(logrus.Fields{
			"file":   args[1],
			"shapes": n,
		}).Info("wrote shapefile")
		return nil
	},
	DisableAutoGenTag: true,
}

var forwardCmd = &cobra.Command{
	Use:   "forward LON LAT",
	Short: "Project a longitude and latitude.",
	Long: `forward applies the projection of the --proj spatial reference to a
longitude and latitude in degrees, returning meters.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseCoords(args)
		if err != nil {
			return err
		}
		sr, err := newSR(Cfg.GetString("proj"))
		if err != nil {
			return err
		}
		x, y, err := sr.Forward(c[0]*proj.Deg2Rad, c[1]*proj.Deg2Rad)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), []string{"x", "y"}, x, y)
	},
	DisableAutoGenTag: true,
}

var inverseCmd = &cobra.Command{
	Use:   "inverse X Y",
	Short: "Unproject a point.",
	Long: `inverse applies the inverse projection of the --proj spatial reference to
projected coordinates in meters, returning longitude and latitude in degrees.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseCoords(args)
		if err != nil {
			return err
		}
		sr, err := newSR(Cfg.GetString("proj"))
		if err != nil {
			return err
		}
		lon, lat, err := sr.Inverse(c[0], c[1])
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), []string{"lon", "lat"}, lon*proj.Rad2Deg, lat*proj.Rad2Deg)
	},
	DisableAutoGenTag: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known projections and spatial references.",
	Long: `list prints the names of the supported projections followed by the codes
of the known spatial references, including those added with --defs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Projections:\n  %s\n", strings.Join(newRegistry().Projections(), "\n  "))
		fmt.Fprintf(w, "Spatial references:\n  %s\n", strings.Join(defs.Names(), "\n  "))
		return nil
	},
	DisableAutoGenTag: true,
}

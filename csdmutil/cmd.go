/*
Copyright © 2019 the InMAP authors.
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

// Package csdmutil contains the command-line interface for
// inspecting and converting CSDM dimensions.
package csdmutil

import (
	"context"
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/csdm"
	"github.com/spatialmodel/csdm/internal/hash"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is the version of this program.
const Version = "1.0.0"

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to csdm.
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
			name: "loglevel",
			usage: `
              loglevel specifies the lowest level of log messages to print:
              debug, info, warning or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "index",
			usage: `
              index specifies which dimension in the input file to use,
              starting at zero. The default, -1, selects all dimensions.`,
			shorthand:  "n",
			defaultVal: -1,
			flagsets:   []*pflag.FlagSet{showCmd.Flags(), coordsCmd.Flags(), convertCmd.Flags(), fingerprintCmd.Flags()},
		},
		{
			name: "absolute",
			usage: `
              absolute specifies whether to print the absolute coordinates,
              which include the origin offset, instead of the coordinates.`,
			shorthand:  "a",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{coordsCmd.Flags()},
		},
		{
			name: "unit",
			usage: `
              unit specifies the unit to convert the quantitative dimensions to,
              for example "km" or "GHz". Labeled dimensions are not converted.`,
			shorthand:  "u",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the file to write the converted dimensions to.
              Files ending in ".toml" are written as TOML, other files as JSON.
              If it is empty, JSON is written to standard output. It may
              also be a blob such as gs://bucket/file.json or
              s3://bucket/file.toml.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("CSDM")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
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
	Root.AddCommand(showCmd)
	Root.AddCommand(coordsCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(fingerprintCmd)
	Root.AddCommand(equalCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("csdm: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("loglevel"))
	if err != nil {
		return fmt.Errorf("csdm: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "csdm",
	Short: "Inspect and convert CSDM dimensions.",
	Long: `csdm reads the dimensions of Core Scientific Dataset Model (CSDM) files
and prints, converts and compares them. Input files may be JSON or TOML and
may hold either a single dimension object or a CSDM document with a
"csdm.dimensions" list.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'CSDM_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this program and the CSDM format version it writes.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "csdm v%s (CSDM format v%s)\n", Version, csdm.Version)
	},
	DisableAutoGenTag: true,
}

// readSelected reads the dimensions in file and selects the one
// specified by the index configuration variable.
func readSelected(file string) ([]*csdm.Dimension, error) {
	dims, err := ReadDimensions(file)
	if err != nil {
		return nil, err
	}
	index, err := cast.ToIntE(Cfg.Get("index"))
	if err != nil {
		return nil, fmt.Errorf("csdm: invalid index: %v", err)
	}
	return selectDimensions(dims, index)
}

var showCmd = &cobra.Command{
	Use:   "show file",
	Short: "Print dimensions in canonical form.",
	Long: `show reads the dimensions in the given file and prints them as a
CSDM document in canonical JSON form, omitting fields with default values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dims, err := readSelected(args[0])
		if err != nil {
			return err
		}
		s, err := csdm.NewDocument(dims...).DataStructure()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
	DisableAutoGenTag: true,
}

var coordsCmd = &cobra.Command{
	Use:   "coords file",
	Short: "Print the coordinates along dimensions.",
	Long: `coords prints the axis label of each dimension in the given file
followed by its coordinates, one per line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dims, err := readSelected(args[0])
		if err != nil {
			return err
		}
		absolute := cast.ToBool(Cfg.Get("absolute"))
		w := cmd.OutOrStdout()
		for _, d := range dims {
			var c csdm.Coordinates = d.Coordinates()
			if absolute {
				if c, err = d.AbsoluteCoordinates(); err != nil {
					return err
				}
			}
			fmt.Fprintln(w, d.AxisLabel())
			for _, s := range c.Strings() {
				fmt.Fprintln(w, s)
			}
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert file",
	Short: "Convert dimensions to a different unit.",
	Long: `convert reads the dimensions in the given file, converts the quantitative
ones to the unit given by --unit, and writes them to the file given by
--output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unit := Cfg.GetString("unit")
		if unit == "" {
			return fmt.Errorf("csdm: the unit configuration variable must be set")
		}
		dims, err := readSelected(args[0])
		if err != nil {
			return err
		}
		for i, d := range dims {
			if !d.IsQuantitative() {
				logrus.WithField("index", i).Debug("skipping labeled dimension")
				continue
			}
			if err := d.To(unit); err != nil {
				return fmt.Errorf("csdm: converting dimension %d: %v", i, err)
			}
		}
		output := os.ExpandEnv(Cfg.GetString("output"))
		if output == "" {
			return writeDimensions(cmd.OutOrStdout(), formatJSON, dims)
		}
		f, err := createOutput(context.Background(), output)
		if err != nil {
			return fmt.Errorf("csdm: creating output file: %v", err)
		}
		if err := writeDimensions(f, formatOf(output), dims); err != nil {
			f.Close()
			return err
		}
		logrus.WithFields(logrus.Fields{"file": output, "dimensions": len(dims)}).Info("wrote converted dimensions")
		return f.Close()
	},
	DisableAutoGenTag: true,
}

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint file",
	Short: "Print a content fingerprint of each dimension.",
	Long: `fingerprint prints a hash of each dimension in the given file.
Quantitative dimensions are converted to SI units before hashing, so
dimensions that differ only in their units usually share a fingerprint.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dims, err := readSelected(args[0])
		if err != nil {
			return err
		}
		for i, d := range dims {
			h, err := hash.Dimension(d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", i, d.Type(), h)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var equalCmd = &cobra.Command{
	Use:   "equal file1 file2",
	Short: "Check whether two files hold equal dimensions.",
	Long: `equal prints "true" if the two given files hold the same number of
dimensions and each dimension is equal to the one at the same position in the
other file, regardless of the units they are expressed in. Otherwise it prints
"false".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := ReadDimensions(args[0])
		if err != nil {
			return err
		}
		b, err := ReadDimensions(args[1])
		if err != nil {
			return err
		}
		eq := len(a) == len(b)
		for i := 0; eq && i < len(a); i++ {
			if !a[i].Equal(b[i]) {
				logrus.WithField("index", i).Debug("dimensions differ")
				eq = false
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), eq)
		return nil
	},
	DisableAutoGenTag: true,
}

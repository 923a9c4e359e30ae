/*
Copyright © 2024 the ImpactoSocial authors.
This file is part of ImpactoSocial.

ImpactoSocial is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

ImpactoSocial is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with ImpactoSocial.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package impactoutil holds the command-line interface and configuration
// for the area-of-interest analysis.
package impactoutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	impacto "github.com/JSCEG/ImpactoSocial-1-sub001"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Cfg = viper.New()
	Cfg.SetEnvPrefix("IMPACTO")
	Cfg.AutomaticEnv()

	// Options are the configuration options available to the analysis.
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
			name: "verbose",
			usage: `
              verbose enables debug-level log output.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "area",
			usage: `
              area specifies the location of the GeoJSON file holding the
              area of interest. KML input must be converted to GeoJSON
              beforehand; this program does not parse KML. Can include
              environment variables.`,
			shorthand:  "a",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "corpus",
			usage: `
              corpus specifies the location of the TOML manifest listing
              the reference corpus layers to test the area against. Can
              include environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "mode",
			usage: `
              mode selects the analysis mode. 'core' expands the area by
              the buffer radius before clipping; 'direct' and 'indirect'
              clip against the exact area.`,
			shorthand:  "m",
			defaultVal: "core",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "buffer_radius",
			usage: `
              buffer_radius is the buffer distance in meters applied to
              the area of interest when mode is 'core'.`,
			defaultVal: impacto.DefaultBufferRadius,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the desired location of the spreadsheet
              report. Can include environment variables.`,
			shorthand:  "o",
			defaultVal: "impacto_report.xlsx",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "geojson_output",
			usage: `
              geojson_output optionally specifies a location to write the
              matched features as a GeoJSON FeatureCollection, annotated
              with provenance and assigned colors, for the presentation
              layer. Empty means no GeoJSON output.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "prefilter",
			usage: `
              prefilter enables a bounding-box spatial index that rejects
              far-away corpus features before the exact intersection test.
              It does not change the result, only the scan cost.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "batch_floor",
			usage: `
              batch_floor overrides the minimum intersection batch size.
              Smaller batches yield and report progress more often.`,
			defaultVal: impacto.DefaultBatchFloor,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

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
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
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
	Root.AddCommand(runCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("impacto: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "impacto",
	Short: "Area-of-interest analysis against reference feature corpora.",
	Long: `impacto determines which features of a reference corpus (for example the
national locality inventory) fall inside a user-supplied area of interest,
deduplicates matches across polygon- and point-geometry sources, assigns a
stable color per entity and writes a spreadsheet report.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'IMPACTO_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of impacto.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("impacto v%s\n", impacto.Version)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an area-of-interest analysis.",
	Long: `run loads the area of interest and the corpus layers named by the
manifest, finds every corpus feature intersecting the (possibly buffered)
area, and writes the report.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd)
	},
}

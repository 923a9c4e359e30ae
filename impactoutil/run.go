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

package impactoutil

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	impacto "github.com/JSCEG/ImpactoSocial-1-sub001"
	"github.com/JSCEG/ImpactoSocial-1-sub001/internal/corpus"
	"github.com/JSCEG/ImpactoSocial-1-sub001/internal/report"
)

func runAnalysis(cmd *cobra.Command) error {
	log := newLogger(Cfg.GetBool("verbose"))

	mode, err := impacto.ParseMode(Cfg.GetString("mode"))
	if err != nil {
		return err
	}
	areaPath := Cfg.GetString("area")
	if areaPath == "" {
		return fmt.Errorf("no area of interest specified; use --area")
	}
	manifestPath := Cfg.GetString("corpus")
	if manifestPath == "" {
		return fmt.Errorf("no corpus manifest specified; use --corpus")
	}

	areaFeatures, err := corpus.LoadGeoJSON(os.ExpandEnv(areaPath), "", impacto.Untagged)
	if err != nil {
		return fmt.Errorf("loading area of interest: %w", err)
	}
	manifest, err := corpus.LoadManifest(os.ExpandEnv(manifestPath))
	if err != nil {
		return err
	}
	polygons, points, err := manifest.LoadAll()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"layers":   len(manifest.Layers),
		"polygons": len(polygons),
		"points":   len(points),
	}).Info("corpus loaded")

	session := &impacto.AnalysisSession{
		Mode:         mode,
		BufferRadius: Cfg.GetFloat64("buffer_radius"),
		BatchFloor:   Cfg.GetInt("batch_floor"),
		Prefilter:    Cfg.GetBool("prefilter"),
		Scheduler:    impacto.GoschedScheduler{},
		Log:          log,
	}
	progress := func(pct int, msg string) {
		cmd.Printf("%3d%%  %s\n", pct, msg)
	}
	result, err := session.Run(context.Background(), areaFeatures, polygons, points, progress)
	if err != nil {
		return err
	}

	output := os.ExpandEnv(Cfg.GetString("output"))
	if err := report.Write(output, result); err != nil {
		return err
	}
	log.WithField("path", output).Info("report written")

	if gjPath := os.ExpandEnv(Cfg.GetString("geojson_output")); gjPath != "" {
		b, err := corpus.EncodeGeoJSON(result.Matched, result.ColorOf)
		if err != nil {
			return fmt.Errorf("encoding result GeoJSON: %w", err)
		}
		if err := os.WriteFile(gjPath, b, 0644); err != nil {
			return fmt.Errorf("writing result GeoJSON: %w", err)
		}
		log.WithField("path", gjPath).Info("GeoJSON written")
	}
	return nil
}

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

package impacto

import (
	"context"
	"fmt"
	"io"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
)

// AnalysisSession owns the configuration of one or more analysis runs.
// The caller creates it, passes it where it is needed and discards it;
// there is no process-wide state. One run executes at a time,
// synchronously with respect to its caller.
type AnalysisSession struct {
	// Mode selects the clip preparation behavior.
	Mode AnalysisMode

	// BufferRadius is the ModeCore buffer distance [meters].
	// DefaultBufferRadius is used when zero.
	BufferRadius float64

	// BatchFloor overrides the engine's minimum batch size when positive.
	BatchFloor int

	// Prefilter enables the engine's bounding-box rejection index.
	Prefilter bool

	// Scheduler is the cooperative yield point used between batches.
	Scheduler Scheduler

	// Log receives stage transitions. Nil discards them.
	Log logrus.FieldLogger
}

// ClipResult is the outcome of one completed analysis run. A new run
// supersedes it entirely; results are never merged across runs.
type ClipResult struct {
	// Area is the adapted, unbuffered area of interest, retained for
	// display by the presentation layer.
	Area *AreaOfInterest

	// Clip is the effective clip geometry the corpus was tested against.
	Clip geom.Polygonal

	// Mode is the analysis mode the run used.
	Mode AnalysisMode

	// Matched lists every matched feature in discovery order:
	// polygon-sourced matches first, then point-sourced.
	Matched []*Feature

	// PolygonSourced and PointSourced split Matched by provenance.
	PolygonSourced []*Feature
	PointSourced   []*Feature

	// ColorOf assigns each matched entity key its display color.
	ColorOf map[string]Color

	// Index supports go-to operations by entity key.
	Index *NavigationIndex
}

// Run executes one full analysis: adapt the area features, prepare the
// clip geometry, scan the polygon corpus, classify against the point
// corpus, assign colors and build the navigation index.
//
// Any stage error aborts the run and discards partial results; the caller
// decides whether to retry with adjusted input. On success the progress
// sink has been driven to 100%.
func (s *AnalysisSession) Run(ctx context.Context, areaFeatures, polygonCorpus,
	pointCorpus []*Feature, progress ProgressFunc) (*ClipResult, error) {

	log := s.logger()

	area, err := AdaptArea(areaFeatures)
	if err != nil {
		return nil, err
	}
	if area.HasOverlaps {
		log.WithField("pairs", len(area.OverlapPairs)).
			Info("area of interest polygons overlap")
	}

	clip, err := Prepare(area, s.Mode, s.BufferRadius)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"mode":     s.Mode.String(),
		"polygons": len(polygonCorpus),
		"points":   len(pointCorpus),
	}).Info("starting intersection scan")

	engine := &IntersectionEngine{
		Scheduler:  s.Scheduler,
		BatchFloor: s.BatchFloor,
		Prefilter:  s.Prefilter,
	}
	polygonMatches, err := engine.Intersect(ctx, polygonCorpus, clip, progress.span(0, 60))
	if err != nil {
		return nil, err
	}
	classified, err := engine.Classify(ctx, polygonMatches, pointCorpus, clip, progress.span(60, 95))
	if err != nil {
		return nil, err
	}

	matched := make([]*Feature, 0, len(classified.PolygonSourced)+len(classified.PointSourced))
	matched = append(matched, classified.PolygonSourced...)
	matched = append(matched, classified.PointSourced...)

	result := &ClipResult{
		Area:           area,
		Clip:           clip,
		Mode:           s.Mode,
		Matched:        matched,
		PolygonSourced: classified.PolygonSourced,
		PointSourced:   classified.PointSourced,
		ColorOf:        AssignColors(matched),
		Index:          BuildIndex(matched),
	}
	if progress != nil {
		progress(100, fmt.Sprintf("%d features matched", len(matched)))
	}
	log.WithFields(logrus.Fields{
		"matched":        len(matched),
		"polygonSourced": len(result.PolygonSourced),
		"pointSourced":   len(result.PointSourced),
	}).Info("analysis finished")
	return result, nil
}

func (s *AnalysisSession) logger() logrus.FieldLogger {
	if s.Log != nil {
		return s.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SnapshotLayer is one logical layer of an export snapshot.
type SnapshotLayer struct {
	Origin   SourceTag
	Features []*Feature
}

// Snapshot exposes the full matched set per logical layer as a read-only
// view for an external report generator. No formatting happens here.
func (r *ClipResult) Snapshot() []SnapshotLayer {
	return []SnapshotLayer{
		{Origin: PolygonSource, Features: r.PolygonSourced},
		{Origin: PointSource, Features: r.PointSourced},
	}
}

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

	"github.com/ctessum/geom"
)

// ClassifiedResult separates matched features by provenance. A business
// key never appears in both lists.
type ClassifiedResult struct {
	PolygonSourced []*Feature
	PointSourced   []*Feature
}

// Classify merges the already-computed polygon-corpus matches with the
// matches from a co-referential point corpus. Point features whose key
// already matched from the polygon corpus are dropped (the polygon-sourced
// record wins): the test is set membership on the key, never geometry.
// Features without a key are never deduplicated against each other; when
// no stable key exists, duplication across corpora is accepted.
//
// Both output lists carry provenance tags. The point-corpus scan uses the
// engine's batching, yielding and progress reporting.
func (e *IntersectionEngine) Classify(ctx context.Context, polygonMatches []*Feature,
	pointCorpus []*Feature, clip geom.Polygonal, progress ProgressFunc) (*ClassifiedResult, error) {

	seen := make(map[string]struct{}, len(polygonMatches))
	for _, f := range polygonMatches {
		f.Origin = PolygonSource
		if f.HasKey() {
			seen[f.Key] = struct{}{}
		}
	}

	// The key-membership exclusion runs before the geometry predicate;
	// that skips predicate work for features already represented without
	// changing the output set.
	candidates := make([]*Feature, 0, len(pointCorpus))
	for _, f := range pointCorpus {
		if f == nil {
			continue
		}
		if f.HasKey() {
			if _, dup := seen[f.Key]; dup {
				continue
			}
		}
		candidates = append(candidates, f)
	}

	pointMatches, err := e.Intersect(ctx, candidates, clip, progress)
	if err != nil {
		return nil, err
	}
	for _, f := range pointMatches {
		f.Origin = PointSource
	}
	return &ClassifiedResult{
		PolygonSourced: polygonMatches,
		PointSourced:   pointMatches,
	}, nil
}

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

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// DefaultBatchFloor is the minimum intersection batch size. The batch size
// for a corpus of n features is max(floor, n/200): proportional batches
// keep the number of yields roughly constant, the floor keeps small
// corpora from yielding after every handful of features.
const DefaultBatchFloor = 500

// IntersectionEngine streams a reference corpus against a clip geometry in
// bounded batches. It runs single-threaded; between batches it yields
// cooperatively through its Scheduler and reports progress. The zero value
// is ready to use.
type IntersectionEngine struct {
	// Scheduler is called between batches. Nil means NopScheduler.
	Scheduler Scheduler

	// BatchFloor overrides DefaultBatchFloor when positive.
	BatchFloor int

	// Prefilter enables an r-tree bounding-box rejection pass before the
	// exact predicate. It changes neither the matched set nor its order,
	// only how much work the exact predicate does.
	Prefilter bool
}

func (e *IntersectionEngine) batchSize(n int) int {
	floor := e.BatchFloor
	if floor <= 0 {
		floor = DefaultBatchFloor
	}
	if s := n / 200; s > floor {
		return s
	}
	return floor
}

// Intersect returns the corpus features whose geometry intersects clip, in
// corpus order. Matched entries are the original feature references, not
// copies; no feature is mutated and properties pass through verbatim.
//
// After each batch the engine yields to its scheduler and reports
// progress; ctx is checked at every batch boundary and a cancellation
// aborts the scan with ctx.Err(). An empty corpus reports 100% once and
// returns an empty result.
func (e *IntersectionEngine) Intersect(ctx context.Context, corpus []*Feature,
	clip geom.Polygonal, progress ProgressFunc) ([]*Feature, error) {

	if clip == nil {
		return nil, fmt.Errorf("intersect: nil clip geometry")
	}
	if progress == nil {
		progress = func(int, string) {}
	}
	n := len(corpus)
	if n == 0 {
		progress(100, "0 features tested")
		return nil, nil
	}

	clipBounds := clip.Bounds()
	var candidates map[int]struct{}
	if e.Prefilter {
		candidates = prefilterCandidates(corpus, clipBounds)
	}
	sched := e.Scheduler
	if sched == nil {
		sched = NopScheduler{}
	}

	var matched []*Feature
	batch := e.batchSize(n)
	for start := 0; start < n; start += batch {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + batch
		if end > n {
			end = n
		}
		for i := start; i < end; i++ {
			f := corpus[i]
			if f == nil || f.Geom == nil {
				continue
			}
			if candidates != nil {
				if _, ok := candidates[i]; !ok {
					continue
				}
			}
			if Intersects(f.Geom, clip, clipBounds) {
				matched = append(matched, f)
			}
		}
		progress(end*100/n, fmt.Sprintf("tested %d of %d features, %d matched", end, n, len(matched)))
		if end < n {
			if err := sched.Yield(ctx); err != nil {
				return nil, err
			}
		}
	}
	return matched, nil
}

// corpusEntry places one corpus feature in the r-tree.
type corpusEntry struct {
	geom.Geom
	i int
}

// prefilterCandidates indexes the corpus bounding boxes and returns the
// set of indices whose box overlaps the clip box.
func prefilterCandidates(corpus []*Feature, clipBounds *geom.Bounds) map[int]struct{} {
	tree := rtree.NewTree(25, 50)
	for i, f := range corpus {
		if f == nil || f.Geom == nil {
			continue
		}
		tree.Insert(&corpusEntry{Geom: f.Geom, i: i})
	}
	hits := tree.SearchIntersect(clipBounds)
	candidates := make(map[int]struct{}, len(hits))
	for _, h := range hits {
		candidates[h.(*corpusEntry).i] = struct{}{}
	}
	return candidates
}

// Intersects reports whether g intersects the clip geometry. Touching
// counts as intersecting: a point on the clip edge, or polygons sharing
// only boundary, both match. clipBounds may be nil.
func Intersects(g geom.Geom, clip geom.Polygonal, clipBounds *geom.Bounds) bool {
	if g == nil || clip == nil {
		return false
	}
	if clipBounds == nil {
		clipBounds = clip.Bounds()
	}
	if !clipBounds.Overlaps(g.Bounds()) {
		return false
	}
	switch gt := g.(type) {
	case geom.Point:
		return gt.Within(clip) != geom.Outside
	case geom.MultiPoint:
		for _, p := range gt {
			if p.Within(clip) != geom.Outside {
				return true
			}
		}
		return false
	case geom.Polygon:
		return polygonIntersects(gt, clip)
	case geom.MultiPolygon:
		// Any constituent polygon intersecting is a match.
		for _, p := range gt {
			if clipBounds.Overlaps(p.Bounds()) && polygonIntersects(p, clip) {
				return true
			}
		}
		return false
	}
	return false
}

// polygonIntersects tests polygon-polygon intersection: a vertex of either
// polygon inside (or on the edge of) the other, or a nonzero-area boolean
// intersection for edge crossings with no contained vertex.
func polygonIntersects(p geom.Polygon, clip geom.Polygonal) bool {
	for _, ring := range p {
		for _, v := range ring {
			if v.Within(clip) != geom.Outside {
				return true
			}
		}
	}
	for _, cp := range clip.Polygons() {
		for _, ring := range cp {
			for _, v := range ring {
				if v.Within(p) != geom.Outside {
					return true
				}
			}
		}
	}
	return clip.Intersection(p).Area() > 0
}

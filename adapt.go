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
	"github.com/ctessum/geom"
)

// AreaOfInterest is the canonical user-supplied area: one Polygon or
// MultiPolygon in geographic coordinates. It is created once per analysis
// run and never mutated; buffered variants are derived copies.
type AreaOfInterest struct {
	// Geom is geom.Polygon when the input held a single ring group and
	// geom.MultiPolygon otherwise.
	Geom geom.Polygonal

	// HasOverlaps flags pairwise overlap between the input polygons. It is
	// diagnostic only, consumed by the presentation layer; overlap never
	// fails adaptation.
	HasOverlaps bool

	// OverlapPairs lists the indices (into the adapted ring groups) of each
	// overlapping pair.
	OverlapPairs [][2]int
}

// AdaptArea normalizes heterogeneous area-of-interest input into one
// canonical Polygon/MultiPolygon. All polygon ring groups from every
// Polygon or MultiPolygon feature are collected into one combined set;
// other geometry types are ignored. The parts are merged structurally,
// not unioned: overlapping parts are kept as separate parts.
//
// A ring with fewer than four closed positions is degenerate and discards
// its polygon's contribution. Adaptation fails only when no polygon
// feature exists (ErrNoPolygon) or no valid polygon remains
// (ErrAllPolygonsInvalid).
func AdaptArea(features []*Feature) (*AreaOfInterest, error) {
	var groups []geom.Polygon
	sawPolygon := false
	for _, f := range features {
		if f == nil || f.Geom == nil {
			continue
		}
		switch g := f.Geom.(type) {
		case geom.Polygon:
			sawPolygon = true
			if v := validPolygon(g); v != nil {
				groups = append(groups, v)
			}
		case geom.MultiPolygon:
			sawPolygon = true
			for _, p := range g {
				if v := validPolygon(p); v != nil {
					groups = append(groups, v)
				}
			}
		}
	}
	if !sawPolygon {
		return nil, ErrNoPolygon
	}
	if len(groups) == 0 {
		return nil, ErrAllPolygonsInvalid
	}

	area := new(AreaOfInterest)
	if len(groups) == 1 {
		area.Geom = groups[0]
	} else {
		area.Geom = geom.MultiPolygon(groups)
	}
	area.OverlapPairs = overlappingPairs(groups)
	area.HasOverlaps = len(area.OverlapPairs) > 0
	return area, nil
}

// validPolygon returns p without its degenerate rings, or nil if no valid
// ring remains.
func validPolygon(p geom.Polygon) geom.Polygon {
	var out geom.Polygon
	for _, ring := range p {
		if ringPositions(ring) >= 3 {
			out = append(out, ring)
		} else {
			// One bad ring discards the whole polygon's contribution.
			return nil
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ringPositions counts the distinct positions of a ring, ignoring an
// explicit closing point. A closed GeoJSON ring needs at least four
// positions, which is three once the duplicate closure is dropped.
func ringPositions(ring []geom.Point) int {
	n := len(ring)
	if n > 1 && ring[0].Equals(ring[n-1]) {
		n--
	}
	return n
}

// overlappingPairs runs the pairwise overlap diagnostic across the adapted
// ring groups.
func overlappingPairs(groups []geom.Polygon) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			if !groups[i].Bounds().Overlaps(groups[j].Bounds()) {
				continue
			}
			if polygonIntersects(groups[i], groups[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

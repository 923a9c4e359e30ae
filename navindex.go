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

import "github.com/ctessum/geom"

// NavRef is a lightweight pointer used to jump the view to a matched
// feature: a bounding region for area geometries or a single coordinate
// for point geometries. It references its Feature, it does not own it.
type NavRef struct {
	// Bounds is set for area-extent geometries (and multi-point spreads).
	Bounds *geom.Bounds

	// Point is set for single-coordinate geometries.
	Point *geom.Point

	// Feature is the matched feature this reference points back to.
	Feature *Feature
}

// NavigationIndex maps feature keys to their navigation references. It is
// read-only once built. A key can carry several references when the same
// entity appears in multiple features.
type NavigationIndex struct {
	refs map[string][]NavRef
	keys []string // insertion order, for deterministic iteration
}

// BuildIndex builds the navigation index for the given features. Features
// without a key or without a navigable geometry are skipped.
func BuildIndex(features []*Feature) *NavigationIndex {
	idx := &NavigationIndex{refs: make(map[string][]NavRef)}
	for _, f := range features {
		if f == nil || !f.HasKey() || f.Geom == nil {
			continue
		}
		var ref NavRef
		switch g := f.Geom.(type) {
		case geom.Point:
			p := g
			ref = NavRef{Point: &p, Feature: f}
		case geom.MultiPoint:
			if len(g) == 0 {
				continue
			}
			if len(g) == 1 {
				p := g[0]
				ref = NavRef{Point: &p, Feature: f}
			} else {
				ref = NavRef{Bounds: g.Bounds(), Feature: f}
			}
		case geom.Polygon, geom.MultiPolygon:
			ref = NavRef{Bounds: f.Geom.Bounds(), Feature: f}
		default:
			continue
		}
		if _, ok := idx.refs[f.Key]; !ok {
			idx.keys = append(idx.keys, f.Key)
		}
		idx.refs[f.Key] = append(idx.refs[f.Key], ref)
	}
	return idx
}

// Lookup returns all navigation references for a key. Whether to highlight
// one representative or all of them is the presentation layer's decision.
func (idx *NavigationIndex) Lookup(key string) ([]NavRef, bool) {
	refs, ok := idx.refs[key]
	return refs, ok
}

// Keys returns the indexed keys in first-seen order.
func (idx *NavigationIndex) Keys() []string {
	out := make([]string, len(idx.keys))
	copy(out, idx.keys)
	return out
}

// Len returns the number of distinct indexed keys.
func (idx *NavigationIndex) Len() int {
	return len(idx.refs)
}

// NavRefsBounds unions the extents of a set of references into one
// camera-fit region. Returns nil for an empty set.
func NavRefsBounds(refs []NavRef) *geom.Bounds {
	if len(refs) == 0 {
		return nil
	}
	b := geom.NewBounds()
	for _, r := range refs {
		switch {
		case r.Bounds != nil:
			b.Extend(r.Bounds)
		case r.Point != nil:
			b.Extend(geom.NewBoundsPoint(*r.Point))
		}
	}
	if b.Empty() {
		return nil
	}
	return b
}

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
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SourceTag marks the provenance of a matched feature: whether it came
// from an area-geometry corpus or a point-geometry corpus.
type SourceTag int

const (
	// Untagged means the feature has not been classified yet.
	Untagged SourceTag = iota

	// PolygonSource marks features from an area-geometry corpus.
	PolygonSource

	// PointSource marks features from a point-geometry corpus.
	PointSource
)

func (t SourceTag) String() string {
	switch t {
	case PolygonSource:
		return "polygon"
	case PointSource:
		return "point"
	default:
		return "untagged"
	}
}

// Props is an ordered string-keyed property bag. Property order from the
// input file survives through to export and popups, which pass arbitrary
// fields through verbatim.
type Props = orderedmap.OrderedMap[string, interface{}]

// NewProps returns an empty property bag.
func NewProps() *Props {
	return orderedmap.New[string, interface{}]()
}

// Feature is one record of a corpus: a geometry in geographic
// (longitude, latitude) coordinates plus its pass-through properties.
type Feature struct {
	// Key is the corpus-specific business key identifying the underlying
	// entity across sources (for example a geostatistical code). Features
	// with an empty Key still appear in results but are excluded from
	// deduplication and navigation.
	Key string

	// Geom is the feature geometry: Point, MultiPoint, Polygon or
	// MultiPolygon. It is never modified by the engine.
	Geom geom.Geom

	// Properties holds the feature attributes in input order.
	Properties *Props

	// Origin records which corpus kind the feature matched from.
	Origin SourceTag
}

// HasKey reports whether the feature carries a business key.
func (f *Feature) HasKey() bool {
	return f.Key != ""
}

// Prop returns the named property value, or nil if it is absent.
func (f *Feature) Prop(name string) interface{} {
	if f.Properties == nil {
		return nil
	}
	v, _ := f.Properties.Get(name)
	return v
}

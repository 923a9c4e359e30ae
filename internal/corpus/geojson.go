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

package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cast"

	impacto "github.com/JSCEG/ImpactoSocial-1-sub001"
)

// featureJSON decodes one GeoJSON feature while keeping the property
// order from the file. The geometry is held raw and decoded separately so
// that the ordered property bag does its own unmarshalling.
type featureJSON struct {
	Type       string          `json:"type"`
	ID         interface{}     `json:"id,omitempty"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties *impacto.Props  `json:"properties"`
}

type featureCollectionJSON struct {
	Type     string        `json:"type"`
	Features []featureJSON `json:"features"`
}

// DecodeGeoJSON decodes a GeoJSON FeatureCollection. keyField names the
// property holding the business key (empty means no key extraction);
// origin tags every decoded feature. Features with a null geometry are
// skipped.
func DecodeGeoJSON(data []byte, keyField string, origin impacto.SourceTag) ([]*impacto.Feature, error) {
	var fc featureCollectionJSON
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decoding feature collection: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected a FeatureCollection, got %q", fc.Type)
	}
	features := make([]*impacto.Feature, 0, len(fc.Features))
	for i, fj := range fc.Features {
		if len(fj.Geometry) == 0 || string(fj.Geometry) == "null" {
			continue
		}
		og, err := geojson.UnmarshalGeometry(fj.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: decoding geometry: %w", i, err)
		}
		g, err := fromOrb(og.Geometry())
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		props := fj.Properties
		if props == nil {
			props = impacto.NewProps()
		}
		f := &impacto.Feature{
			Geom:       g,
			Properties: props,
			Origin:     origin,
		}
		if keyField != "" {
			if v, ok := props.Get(keyField); ok {
				f.Key = cast.ToString(v)
			}
		}
		features = append(features, f)
	}
	return features, nil
}

// LoadGeoJSON reads and decodes a GeoJSON FeatureCollection file.
func LoadGeoJSON(path, keyField string, origin impacto.SourceTag) ([]*impacto.Feature, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeGeoJSON(b, keyField, origin)
}

// EncodeGeoJSON serializes features back to a GeoJSON FeatureCollection,
// preserving property order. colorOf, when non-nil, adds an "_color"
// property carrying each feature's assigned display color.
func EncodeGeoJSON(features []*impacto.Feature, colorOf map[string]impacto.Color) ([]byte, error) {
	type outFeature struct {
		Type       string            `json:"type"`
		Geometry   *geojson.Geometry `json:"geometry"`
		Properties json.RawMessage   `json:"properties"`
	}
	out := struct {
		Type     string       `json:"type"`
		Features []outFeature `json:"features"`
	}{Type: "FeatureCollection"}

	for i, f := range features {
		og, err := toOrb(f.Geom)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		// Annotations go on a copy; the matched features themselves stay
		// untouched.
		props := impacto.NewProps()
		if f.Properties != nil {
			for pair := f.Properties.Oldest(); pair != nil; pair = pair.Next() {
				props.Set(pair.Key, pair.Value)
			}
		}
		if colorOf != nil && f.HasKey() {
			if c, ok := colorOf[f.Key]; ok {
				props.Set("_color", string(c))
			}
		}
		props.Set("_origin", f.Origin.String())
		pb, err := json.Marshal(props)
		if err != nil {
			return nil, fmt.Errorf("feature %d: encoding properties: %w", i, err)
		}
		out.Features = append(out.Features, outFeature{
			Type:       "Feature",
			Geometry:   geojson.NewGeometry(og),
			Properties: pb,
		})
	}
	return json.Marshal(out)
}

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
	"reflect"
	"testing"

	"github.com/ctessum/geom"

	impacto "github.com/JSCEG/ImpactoSocial-1-sub001"
)

const localityJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-99.1, 19.4]},
      "properties": {"CVEGEO": "0900100010125", "NOM_LOC": "San Mateo", "AMBITO": "Rural", "POB_TOTAL": 321}
    },
    {
      "type": "Feature",
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[4,0],[4,4],[0,4],[0,0]]]},
      "properties": {"CVEGEO": "0900100010126", "NOM_LOC": "El Llano"}
    },
    {
      "type": "Feature",
      "geometry": null,
      "properties": {"CVEGEO": "skipped"}
    }
  ]
}`

func TestDecodeGeoJSON(t *testing.T) {
	features, err := DecodeGeoJSON([]byte(localityJSON), "CVEGEO", impacto.PointSource)
	if err != nil {
		t.Fatal(err)
	}
	if len(features) != 2 {
		t.Fatalf("have %d features, want 2 (null geometry skipped)", len(features))
	}

	f := features[0]
	if f.Key != "0900100010125" {
		t.Errorf("have key %q, want CVEGEO value", f.Key)
	}
	if f.Origin != impacto.PointSource {
		t.Errorf("have origin %v, want PointSource", f.Origin)
	}
	if want := (geom.Point{X: -99.1, Y: 19.4}); f.Geom != want {
		t.Errorf("have %v, want %v", f.Geom, want)
	}

	// Property order from the file must survive.
	var order []string
	for pair := f.Properties.Oldest(); pair != nil; pair = pair.Next() {
		order = append(order, pair.Key)
	}
	want := []string{"CVEGEO", "NOM_LOC", "AMBITO", "POB_TOTAL"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("have property order %v, want %v", order, want)
	}

	// Polygon rings lose their explicit closing point.
	p, ok := features[1].Geom.(geom.Polygon)
	if !ok {
		t.Fatalf("have %T, want geom.Polygon", features[1].Geom)
	}
	if len(p[0]) != 4 {
		t.Errorf("have %d ring positions, want 4 (closing point dropped)", len(p[0]))
	}
}

func TestDecodeGeoJSON_Errors(t *testing.T) {
	if _, err := DecodeGeoJSON([]byte(`{"type": "Feature"}`), "", impacto.Untagged); err == nil {
		t.Error("non-collection input should fail")
	}
	bad := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":{}}]}`
	if _, err := DecodeGeoJSON([]byte(bad), "", impacto.Untagged); err == nil {
		t.Error("untestable geometry type should fail at load time")
	}
}

func TestEncodeGeoJSON_RoundTrip(t *testing.T) {
	features, err := DecodeGeoJSON([]byte(localityJSON), "CVEGEO", impacto.PointSource)
	if err != nil {
		t.Fatal(err)
	}
	colors := map[string]impacto.Color{"0900100010125": "#e6194b"}
	b, err := EncodeGeoJSON(features, colors)
	if err != nil {
		t.Fatal(err)
	}

	again, err := DecodeGeoJSON(b, "CVEGEO", impacto.PointSource)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(features) {
		t.Fatalf("have %d features after round trip, want %d", len(again), len(features))
	}
	if again[0].Geom != features[0].Geom {
		t.Errorf("have %v, want %v", again[0].Geom, features[0].Geom)
	}
	if v := again[0].Prop("_color"); v != "#e6194b" {
		t.Errorf("have _color %v, want #e6194b", v)
	}
	if v := again[0].Prop("_origin"); v != "point" {
		t.Errorf("have _origin %v, want point", v)
	}
	// The source features themselves stay unannotated.
	if v := features[0].Prop("_color"); v != nil {
		t.Error("encoding must not mutate the input features")
	}

	// Encoded output is valid JSON with closed rings.
	var raw struct {
		Features []struct {
			Geometry struct {
				Type        string          `json:"type"`
				Coordinates json.RawMessage `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}
	if raw.Features[1].Geometry.Type != "Polygon" {
		t.Errorf("have %s, want Polygon", raw.Features[1].Geometry.Type)
	}
}

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
	"errors"
	"testing"

	"github.com/ctessum/geom"
)

// One point at the area centroid matches and takes the first palette
// color.
func TestSession_SingleMatch(t *testing.T) {
	session := &AnalysisSession{Mode: ModeDirect}
	areaFeatures := []*Feature{{Geom: square(0, 0, 10)}}
	corpus := []*Feature{{Key: "A1", Geom: geom.Point{X: 5, Y: 5}}}

	result, err := session.Run(context.Background(), areaFeatures, corpus, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Matched) != 1 || result.Matched[0].Key != "A1" {
		t.Fatalf("have %v, want [A1]", result.Matched)
	}
	if result.ColorOf["A1"] != Palette[0] {
		t.Errorf("have %s, want %s", result.ColorOf["A1"], Palette[0])
	}
}

// Zero intersections is a distinguished success outcome, not an error;
// progress still reaches 100%.
func TestSession_EmptyResult(t *testing.T) {
	session := &AnalysisSession{Mode: ModeDirect}
	areaFeatures := []*Feature{{Geom: square(0, 0, 10)}}
	corpus := []*Feature{
		{Key: "FAR", Geom: geom.Point{X: 100, Y: 100}},
	}

	final := -1
	result, err := session.Run(context.Background(), areaFeatures, corpus, nil,
		func(pct int, msg string) { final = pct })
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Matched) != 0 {
		t.Errorf("have %d matches, want 0", len(result.Matched))
	}
	if final != 100 {
		t.Errorf("final progress %d, want 100", final)
	}
}

// Every color and index entry corresponds to a matched feature, and the
// polygon-sourced record wins cross-source deduplication.
func TestSession_Invariants(t *testing.T) {
	session := &AnalysisSession{Mode: ModeDirect}
	areaFeatures := []*Feature{{Geom: square(0, 0, 10)}}
	polygonCorpus := []*Feature{
		{Key: "X", Geom: square(1, 1, 2)},
		{Key: "W", Geom: square(50, 50, 2)},
	}
	pointCorpus := []*Feature{
		{Key: "X", Geom: geom.Point{X: 5, Y: 5}},
		{Key: "Y", Geom: geom.Point{X: 6, Y: 6}},
	}
	result, err := session.Run(context.Background(), areaFeatures, polygonCorpus, pointCorpus, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.PolygonSourced) != 1 || result.PolygonSourced[0].Key != "X" {
		t.Fatalf("have polygonSourced %v, want [X]", result.PolygonSourced)
	}
	if len(result.PointSourced) != 1 || result.PointSourced[0].Key != "Y" {
		t.Fatalf("have pointSourced %v, want [Y]", result.PointSourced)
	}

	matchedKeys := make(map[string]bool)
	for _, f := range result.Matched {
		matchedKeys[f.Key] = true
	}
	for _, key := range result.Index.Keys() {
		if !matchedKeys[key] {
			t.Errorf("index key %s has no matched feature", key)
		}
	}
	for _, f := range result.Matched {
		if f.HasKey() {
			if _, ok := result.ColorOf[f.Key]; !ok {
				t.Errorf("matched key %s has no color", f.Key)
			}
			if _, ok := result.Index.Lookup(f.Key); !ok {
				t.Errorf("matched key %s is not indexed", f.Key)
			}
		}
	}
}

// In core mode the 500 m buffer pulls in features just outside the exact
// area; direct mode does not.
func TestSession_CoreBuffer(t *testing.T) {
	// Roughly 500 m square with a point about 260 m east of its edge.
	areaFeatures := []*Feature{{Geom: geom.Polygon{{
		{X: -99.000, Y: 19.000},
		{X: -98.995, Y: 19.000},
		{X: -98.995, Y: 19.005},
		{X: -99.000, Y: 19.005},
	}}}}
	corpus := []*Feature{{Key: "NEAR", Geom: geom.Point{X: -98.9925, Y: 19.0025}}}

	direct := &AnalysisSession{Mode: ModeDirect}
	result, err := direct.Run(context.Background(), areaFeatures, corpus, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Matched) != 0 {
		t.Fatal("point outside the exact area should not match in direct mode")
	}

	core := &AnalysisSession{Mode: ModeCore}
	result, err = core.Run(context.Background(), areaFeatures, corpus, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Matched) != 1 {
		t.Error("point within the 500 m buffer should match in core mode")
	}
}

// Stage errors abort the run with no partial results.
func TestSession_StageErrors(t *testing.T) {
	session := &AnalysisSession{Mode: ModeDirect}

	_, err := session.Run(context.Background(),
		[]*Feature{{Geom: geom.Point{X: 0, Y: 0}}}, nil, nil, nil)
	if !errors.Is(err, ErrNoPolygon) {
		t.Errorf("have %v, want ErrNoPolygon", err)
	}

	core := &AnalysisSession{Mode: ModeCore}
	_, err = core.Run(context.Background(),
		[]*Feature{{Geom: geom.Polygon{{
			{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1e-12, Y: 0},
		}}}}, nil, nil, nil)
	var be *BufferError
	if !errors.As(err, &be) {
		t.Errorf("have %v, want *BufferError", err)
	}
}

// A new run supersedes the previous result instead of merging into it.
func TestSession_RunsSupersede(t *testing.T) {
	session := &AnalysisSession{Mode: ModeDirect}
	areaFeatures := []*Feature{{Geom: square(0, 0, 10)}}

	first, err := session.Run(context.Background(), areaFeatures,
		[]*Feature{{Key: "A", Geom: geom.Point{X: 1, Y: 1}}}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := session.Run(context.Background(), areaFeatures,
		[]*Feature{{Key: "B", Geom: geom.Point{X: 2, Y: 2}}}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Matched) != 1 || first.Matched[0].Key != "A" {
		t.Error("first result changed after the second run")
	}
	if len(second.Matched) != 1 || second.Matched[0].Key != "B" {
		t.Errorf("have %v, want [B]", second.Matched)
	}
}

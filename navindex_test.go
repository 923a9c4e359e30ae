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
	"reflect"
	"testing"

	"github.com/ctessum/geom"
)

func TestBuildIndex(t *testing.T) {
	poly := &Feature{Key: "A", Geom: square(0, 0, 10)}
	pt := &Feature{Key: "B", Geom: geom.Point{X: 3, Y: 4}}
	keyless := &Feature{Geom: geom.Point{X: 1, Y: 1}}
	idx := BuildIndex([]*Feature{poly, pt, keyless})

	if idx.Len() != 2 {
		t.Fatalf("have %d keys, want 2", idx.Len())
	}

	refs, ok := idx.Lookup("A")
	if !ok || len(refs) != 1 {
		t.Fatalf("lookup A: have %v, %v", refs, ok)
	}
	if refs[0].Bounds == nil || refs[0].Point != nil {
		t.Error("area geometry should index a bounding region")
	}
	want := square(0, 0, 10).Bounds()
	if !reflect.DeepEqual(refs[0].Bounds, want) {
		t.Errorf("have %v, want %v", refs[0].Bounds, want)
	}
	if refs[0].Feature != poly {
		t.Error("NavRef should reference the original feature")
	}

	refs, ok = idx.Lookup("B")
	if !ok || len(refs) != 1 {
		t.Fatalf("lookup B: have %v, %v", refs, ok)
	}
	if refs[0].Point == nil || refs[0].Bounds != nil {
		t.Error("point geometry should index a coordinate")
	}
	if *refs[0].Point != (geom.Point{X: 3, Y: 4}) {
		t.Errorf("have %v, want (3,4)", *refs[0].Point)
	}

	if _, ok := idx.Lookup("missing"); ok {
		t.Error("lookup of an unknown key should report absence")
	}
}

// The same key on several features yields several references; the caller
// decides single- vs multi-highlight behavior.
func TestBuildIndex_MultiValued(t *testing.T) {
	features := []*Feature{
		{Key: "L1", Geom: geom.Point{X: 0, Y: 0}},
		{Key: "L1", Geom: geom.Point{X: 10, Y: 10}},
		{Key: "L1", Geom: geom.Point{X: 5, Y: 20}},
	}
	idx := BuildIndex(features)
	refs, ok := idx.Lookup("L1")
	if !ok || len(refs) != 3 {
		t.Fatalf("have %d refs, want 3", len(refs))
	}

	b := NavRefsBounds(refs)
	if b == nil {
		t.Fatal("expected a camera-fit region")
	}
	want := &geom.Bounds{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 10, Y: 20}}
	if !reflect.DeepEqual(b, want) {
		t.Errorf("have %v, want %v", b, want)
	}
}

func TestBuildIndex_MultiPoint(t *testing.T) {
	one := &Feature{Key: "S", Geom: geom.MultiPoint{{X: 2, Y: 2}}}
	many := &Feature{Key: "M", Geom: geom.MultiPoint{{X: 0, Y: 0}, {X: 4, Y: 4}}}
	idx := BuildIndex([]*Feature{one, many})

	refs, _ := idx.Lookup("S")
	if refs[0].Point == nil {
		t.Error("single-point MultiPoint should index a coordinate")
	}
	refs, _ = idx.Lookup("M")
	if refs[0].Bounds == nil {
		t.Error("multi-point spread should index a bounding region")
	}
}

func TestNavRefsBounds_Empty(t *testing.T) {
	if b := NavRefsBounds(nil); b != nil {
		t.Errorf("have %v, want nil", b)
	}
}

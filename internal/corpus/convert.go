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
	"fmt"

	"github.com/ctessum/geom"
	"github.com/paulmach/orb"
)

// fromOrb converts a decoded GeoJSON geometry to the engine's geometry
// types. Ring closing points are dropped: engine rings are implicitly
// closed. Geometry types the engine cannot test raise an error so that
// bad corpora fail at load time, not mid-scan.
func fromOrb(g orb.Geometry) (geom.Geom, error) {
	switch gt := g.(type) {
	case orb.Point:
		return geom.Point{X: gt[0], Y: gt[1]}, nil
	case orb.MultiPoint:
		out := make(geom.MultiPoint, len(gt))
		for i, p := range gt {
			out[i] = geom.Point{X: p[0], Y: p[1]}
		}
		return out, nil
	case orb.Polygon:
		return polygonFromOrb(gt), nil
	case orb.MultiPolygon:
		out := make(geom.MultiPolygon, len(gt))
		for i, p := range gt {
			out[i] = polygonFromOrb(p)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", g.GeoJSONType())
	}
}

func polygonFromOrb(p orb.Polygon) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, ring := range p {
		n := len(ring)
		if n > 1 && ring[0] == ring[n-1] {
			n--
		}
		r := make([]geom.Point, n)
		for j := 0; j < n; j++ {
			r[j] = geom.Point{X: ring[j][0], Y: ring[j][1]}
		}
		out[i] = r
	}
	return out
}

// toOrb converts an engine geometry back to GeoJSON form, restoring ring
// closing points.
func toOrb(g geom.Geom) (orb.Geometry, error) {
	switch gt := g.(type) {
	case geom.Point:
		return orb.Point{gt.X, gt.Y}, nil
	case geom.MultiPoint:
		out := make(orb.MultiPoint, len(gt))
		for i, p := range gt {
			out[i] = orb.Point{p.X, p.Y}
		}
		return out, nil
	case geom.Polygon:
		return polygonToOrb(gt), nil
	case geom.MultiPolygon:
		out := make(orb.MultiPolygon, len(gt))
		for i, p := range gt {
			out[i] = polygonToOrb(p)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %T", g)
	}
}

func polygonToOrb(p geom.Polygon) orb.Polygon {
	out := make(orb.Polygon, len(p))
	for i, ring := range p {
		r := make(orb.Ring, 0, len(ring)+1)
		for _, pt := range ring {
			r = append(r, orb.Point{pt.X, pt.Y})
		}
		if len(r) > 0 && r[0] != r[len(r)-1] {
			r = append(r, r[0])
		}
		out[i] = r
	}
	return out
}

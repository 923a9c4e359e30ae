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
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// bufferArcSegments is the number of segments used to approximate the
// quarter-circle arcs of a buffer. More segments cost more union work.
const bufferArcSegments = 16

const longlatProj = "+proj=longlat +datum=WGS84 +no_defs"

// BufferGeographic expands a polygonal geometry in geographic coordinates
// by radius meters. The geometry is projected to a transverse Mercator
// frame centered on its centroid, expanded there, and projected back, so
// the buffer distance is metrically correct for areas of regional extent.
//
// The input is not modified. A zero radius returns the input unchanged.
func BufferGeographic(p geom.Polygonal, radius float64) (geom.Polygonal, error) {
	if radius == 0 {
		return p, nil
	}
	if radius < 0 {
		return nil, fmt.Errorf("negative buffer radius %g", radius)
	}
	c := p.Centroid()
	if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsInf(c.X, 0) || math.IsInf(c.Y, 0) {
		return nil, fmt.Errorf("degenerate geometry: centroid is undefined")
	}

	longlat, err := proj.Parse(longlatProj)
	if err != nil {
		return nil, err
	}
	local, err := proj.Parse(fmt.Sprintf(
		"+proj=tmerc +lat_0=%g +lon_0=%g +k=1 +x_0=0 +y_0=0 +datum=WGS84 +units=m +no_defs",
		c.Y, c.X))
	if err != nil {
		return nil, err
	}
	fwd, err := longlat.NewTransform(local)
	if err != nil {
		return nil, err
	}
	inv, err := local.NewTransform(longlat)
	if err != nil {
		return nil, err
	}

	gg, err := p.Transform(fwd)
	if err != nil {
		return nil, err
	}
	planar, ok := gg.(geom.Polygonal)
	if !ok {
		return nil, fmt.Errorf("projection returned non-polygonal geometry %T", gg)
	}
	buffered, err := bufferPlanar(planar, radius)
	if err != nil {
		return nil, err
	}
	back, err := buffered.Transform(inv)
	if err != nil {
		return nil, err
	}
	out, ok := back.(geom.Polygonal)
	if !ok {
		return nil, fmt.Errorf("projection returned non-polygonal geometry %T", back)
	}
	return out, nil
}

// bufferPlanar performs a Minkowski-style expansion in planar meters: the
// source polygon is unioned with a rectangle along every ring segment and
// a circle at every ring vertex. For a positive radius this grows outer
// boundaries and shrinks holes, which is the standard buffer behavior.
func bufferPlanar(p geom.Polygonal, radius float64) (geom.Polygonal, error) {
	polys := p.Polygons()
	var out geom.Polygonal
	any := false
	for _, poly := range polys {
		expanded, err := bufferPolygon(poly, radius)
		if err != nil {
			return nil, err
		}
		if expanded == nil {
			continue
		}
		any = true
		if out == nil {
			out = expanded
		} else {
			out = out.Union(expanded)
		}
	}
	if !any {
		return nil, fmt.Errorf("degenerate geometry: no bufferable ring")
	}
	return out, nil
}

func bufferPolygon(poly geom.Polygon, radius float64) (geom.Polygonal, error) {
	base := validPolygon(poly)
	if base == nil {
		return nil, fmt.Errorf("degenerate geometry: ring with fewer than 3 positions")
	}
	var out geom.Polygonal = base
	for _, ring := range base {
		n := len(ring)
		for i := 0; i < n; i++ {
			a := ring[i]
			b := ring[(i+1)%n]
			if q := segmentQuad(a, b, radius); q != nil {
				out = out.Union(q)
			}
			out = out.Union(vertexDisk(a, radius))
		}
	}
	return out, nil
}

// segmentQuad returns the rectangle of half-width radius centered on the
// segment a-b, or nil for a zero-length segment.
func segmentQuad(a, b geom.Point, radius float64) geom.Polygon {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	// unit normal
	nx := -dy / length * radius
	ny := dx / length * radius
	return geom.Polygon{{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}}
}

// vertexDisk returns a regular polygon approximating the circle of the
// given radius around center.
func vertexDisk(center geom.Point, radius float64) geom.Polygon {
	segments := 4 * bufferArcSegments
	ring := make([]geom.Point, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		ring[i] = geom.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return geom.Polygon{ring}
}

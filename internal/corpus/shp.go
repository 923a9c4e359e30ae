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

	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/proj"

	impacto "github.com/JSCEG/ImpactoSocial-1-sub001"
)

const longlatProj = "+proj=longlat +datum=WGS84 +no_defs"

// LoadShapefile reads a shapefile layer into engine features. All
// attribute fields pass through as properties in attribute-table order.
// When the shapefile carries a projection file, geometries are transformed
// to geographic coordinates; without one they are assumed geographic
// already.
func LoadShapefile(path, keyField string, origin impacto.SourceTag) ([]*impacto.Feature, error) {
	d, err := shp.NewDecoder(path)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	var trans proj.Transformer
	if sr, srErr := d.SR(); srErr == nil {
		longlat, err := proj.Parse(longlatProj)
		if err != nil {
			return nil, err
		}
		if !sr.Equal(longlat, 10) {
			trans, err = sr.NewTransform(longlat)
			if err != nil {
				return nil, err
			}
		}
	}

	fieldNames := make([]string, len(d.Fields()))
	for i, f := range d.Fields() {
		fieldNames[i] = f.String()
	}

	var features []*impacto.Feature
	for {
		g, fields, more := d.DecodeRowFields(fieldNames...)
		if !more {
			break
		}
		if trans != nil {
			g, err = g.Transform(trans)
			if err != nil {
				return nil, fmt.Errorf("reprojecting shapefile row %d: %w", len(features), err)
			}
		}
		props := impacto.NewProps()
		for _, name := range fieldNames {
			props.Set(name, fields[name])
		}
		f := &impacto.Feature{
			Geom:       g,
			Properties: props,
			Origin:     origin,
		}
		if keyField != "" {
			f.Key = fields[keyField]
		}
		features = append(features, f)
	}
	if err := d.Error(); err != nil {
		return nil, err
	}
	return features, nil
}

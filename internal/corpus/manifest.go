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

// Package corpus loads reference feature corpora and area-of-interest
// collections for the clipping engine. The engine itself never touches
// the filesystem; loader failures surface as corpus-unavailable errors
// before any intersection work begins.
package corpus

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	impacto "github.com/JSCEG/ImpactoSocial-1-sub001"
)

// LayerSpec describes one corpus layer in the manifest.
type LayerSpec struct {
	// Name labels the layer in logs, reports and errors.
	Name string `toml:"name"`

	// Path is the layer file location. Can include environment variables.
	Path string `toml:"path"`

	// Format is "geojson" or "shapefile".
	Format string `toml:"format"`

	// Kind is "polygon" for area-geometry layers or "point" for
	// point-geometry layers; it decides the provenance tag and which side
	// of the deduplication the layer feeds.
	Kind string `toml:"kind"`

	// Key names the property or attribute field holding the business key
	// (for example "CVEGEO"). Empty means the layer has no stable key.
	Key string `toml:"key"`
}

// Manifest lists the reference corpus layers for an analysis.
type Manifest struct {
	Layers []LayerSpec `toml:"layers"`
}

// LoadManifest reads and validates a TOML corpus manifest.
func LoadManifest(path string) (*Manifest, error) {
	m := new(Manifest)
	if _, err := toml.DecodeFile(os.ExpandEnv(path), m); err != nil {
		return nil, fmt.Errorf("reading corpus manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the manifest for unusable layer specifications.
func (m *Manifest) Validate() error {
	if len(m.Layers) == 0 {
		return fmt.Errorf("corpus manifest lists no layers")
	}
	for i, l := range m.Layers {
		if l.Name == "" {
			return fmt.Errorf("layer %d: missing name", i)
		}
		if l.Path == "" {
			return fmt.Errorf("layer %s: missing path", l.Name)
		}
		switch l.Format {
		case "geojson", "shapefile":
		default:
			return fmt.Errorf("layer %s: unknown format %q (want geojson or shapefile)", l.Name, l.Format)
		}
		switch l.Kind {
		case "polygon", "point":
		default:
			return fmt.Errorf("layer %s: unknown kind %q (want polygon or point)", l.Name, l.Kind)
		}
	}
	return nil
}

// Origin returns the provenance tag implied by the layer kind.
func (l *LayerSpec) Origin() impacto.SourceTag {
	if l.Kind == "point" {
		return impacto.PointSource
	}
	return impacto.PolygonSource
}

// Load reads the layer's features. Failures are wrapped as
// *impacto.CorpusUnavailableError so the run is refused before any
// intersection work starts.
func (l *LayerSpec) Load() ([]*impacto.Feature, error) {
	path := os.ExpandEnv(l.Path)
	var (
		features []*impacto.Feature
		err      error
	)
	switch l.Format {
	case "shapefile":
		features, err = LoadShapefile(path, l.Key, l.Origin())
	default:
		features, err = LoadGeoJSON(path, l.Key, l.Origin())
	}
	if err != nil {
		return nil, &impacto.CorpusUnavailableError{Name: l.Name, Err: err}
	}
	return features, nil
}

// LoadAll loads every manifest layer, split into the polygon-kind and
// point-kind corpora in manifest order.
func (m *Manifest) LoadAll() (polygons, points []*impacto.Feature, err error) {
	for i := range m.Layers {
		l := &m.Layers[i]
		features, err := l.Load()
		if err != nil {
			return nil, nil, err
		}
		if l.Kind == "point" {
			points = append(points, features...)
		} else {
			polygons = append(polygons, features...)
		}
	}
	return polygons, points, nil
}

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

// Package report writes analysis snapshots to spreadsheet workbooks. It
// consumes only the engine's read-only snapshot; the engine does no
// formatting of its own.
package report

import (
	"fmt"

	"github.com/tealeg/xlsx"

	impacto "github.com/JSCEG/ImpactoSocial-1-sub001"
)

// Write saves the matched-feature snapshot to an xlsx workbook at path:
// one sheet per logical layer, every pass-through property as a column
// (union of keys, first-seen order), plus the business key, provenance
// and assigned color.
func Write(path string, result *impacto.ClipResult) error {
	file := xlsx.NewFile()
	for _, layer := range result.Snapshot() {
		sheet, err := file.AddSheet(sheetName(layer.Origin))
		if err != nil {
			return fmt.Errorf("adding report sheet: %w", err)
		}
		writeLayer(sheet, layer, result.ColorOf)
	}
	if err := file.Save(path); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

func sheetName(origin impacto.SourceTag) string {
	switch origin {
	case impacto.PolygonSource:
		return "polygon matches"
	case impacto.PointSource:
		return "point matches"
	default:
		return "matches"
	}
}

func writeLayer(sheet *xlsx.Sheet, layer impacto.SnapshotLayer, colorOf map[string]impacto.Color) {
	columns := propertyColumns(layer.Features)

	header := sheet.AddRow()
	header.AddCell().SetString("key")
	header.AddCell().SetString("origin")
	header.AddCell().SetString("color")
	for _, c := range columns {
		header.AddCell().SetString(c)
	}

	for _, f := range layer.Features {
		row := sheet.AddRow()
		row.AddCell().SetString(f.Key)
		row.AddCell().SetString(f.Origin.String())
		if c, ok := colorOf[f.Key]; ok && f.HasKey() {
			row.AddCell().SetString(string(c))
		} else {
			row.AddCell().SetString("")
		}
		for _, name := range columns {
			v := f.Prop(name)
			if v == nil {
				row.AddCell().SetString("")
				continue
			}
			row.AddCell().SetValue(v)
		}
	}
}

// propertyColumns returns the union of property names across features in
// first-seen order.
func propertyColumns(features []*impacto.Feature) []string {
	var columns []string
	seen := make(map[string]struct{})
	for _, f := range features {
		if f.Properties == nil {
			continue
		}
		for pair := f.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if _, ok := seen[pair.Key]; !ok {
				seen[pair.Key] = struct{}{}
				columns = append(columns, pair.Key)
			}
		}
	}
	return columns
}

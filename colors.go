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

import "strconv"

// Color is a hex RGB value as used by web map styling.
type Color string

// Palette is the fixed assignment palette. Order is significant: colors
// are handed out by first-seen order of the feature keys and wrap around
// when the palette is exhausted.
var Palette = []Color{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8",
	"#f58231", "#911eb4", "#46f0f0", "#f032e6",
	"#bcf60c", "#fabebe", "#008080", "#e6beff",
	"#9a6324", "#fffac8", "#800000", "#aaffc3",
	"#808000", "#ffd8b1", "#000075", "#808080",
}

// AssignColors deterministically assigns one palette color per unique
// feature key, in first-seen order. A feature without a key consumes one
// palette slot under its ordinal position as the key; that guarantees
// total coverage, but those slots are only stable across runs with
// identical input order. Pure function of the input order.
func AssignColors(features []*Feature) map[string]Color {
	colors := make(map[string]Color, len(features))
	count := 0
	for i, f := range features {
		key := f.Key
		if key == "" {
			key = strconv.Itoa(i)
		}
		if _, ok := colors[key]; ok {
			continue
		}
		colors[key] = Palette[count%len(Palette)]
		count++
	}
	return colors
}

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

/*
Package impacto determines which features from a large reference corpus
(for example, the national locality inventory) fall inside a user-supplied
area of interest, and prepares the matches for presentation: the area can
be expanded by a metric buffer, matches from polygon- and point-geometry
corpora are deduplicated by their shared business key, each matched entity
is assigned a stable color, and a navigation index is built for camera-fit
and highlight operations.

The engine is plain data in, plain data out: it performs no rendering, no
KML parsing, and no network access. Corpus loading lives in
internal/corpus and presentation is left to the consumer of ClipResult.
*/
package impacto

// Version gives the version number of this program.
const Version = "1.0.0"

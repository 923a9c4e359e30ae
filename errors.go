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
	"errors"
	"fmt"
)

// Area adaptation errors. Either one aborts the run; an empty match set is
// not an error (it is a distinguished success outcome).
var (
	// ErrNoPolygon means the area-of-interest input contained no feature
	// with a Polygon or MultiPolygon geometry.
	ErrNoPolygon = errors.New("area of interest contains no polygon feature")

	// ErrAllPolygonsInvalid means every candidate polygon was discarded
	// because all of its rings were degenerate.
	ErrAllPolygonsInvalid = errors.New("all area of interest polygons are invalid")
)

// BufferError reports a failed buffer construction. It is fatal for runs
// whose analysis mode requires buffering; the run is not retried.
type BufferError struct {
	Radius float64 // meters
	Err    error
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("buffering area of interest by %g m: %v", e.Radius, e.Err)
}

func (e *BufferError) Unwrap() error { return e.Err }

// CorpusUnavailableError means a reference corpus could not be supplied by
// its loader. It is a fatal precondition: the run is not attempted.
type CorpusUnavailableError struct {
	Name string // corpus or layer name
	Err  error
}

func (e *CorpusUnavailableError) Error() string {
	return fmt.Sprintf("corpus %s unavailable: %v", e.Name, e.Err)
}

func (e *CorpusUnavailableError) Unwrap() error { return e.Err }

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

	"github.com/ctessum/geom"
)

// AnalysisMode selects how the area of interest is turned into the
// effective clip geometry.
type AnalysisMode int

const (
	// ModeCore expands the area by a metric buffer before clipping.
	ModeCore AnalysisMode = iota

	// ModeDirect clips against the exact area geometry.
	ModeDirect

	// ModeIndirect also clips against the exact area geometry; the
	// distinction from ModeDirect is interpreted downstream by the
	// presentation layer.
	ModeIndirect
)

func (m AnalysisMode) String() string {
	switch m {
	case ModeCore:
		return "core"
	case ModeDirect:
		return "direct"
	case ModeIndirect:
		return "indirect"
	default:
		return fmt.Sprintf("AnalysisMode(%d)", int(m))
	}
}

// ParseMode converts a configuration string to an AnalysisMode.
func ParseMode(s string) (AnalysisMode, error) {
	switch s {
	case "core":
		return ModeCore, nil
	case "direct":
		return ModeDirect, nil
	case "indirect":
		return ModeIndirect, nil
	default:
		return 0, fmt.Errorf("unknown analysis mode %q (want core, direct or indirect)", s)
	}
}

// DefaultBufferRadius is the buffer distance applied in ModeCore [meters].
const DefaultBufferRadius = 500.

// Prepare derives the effective clip geometry for one analysis run. In
// ModeCore the area is expanded by radius meters; in the other modes the
// area geometry is used unchanged. The result is immutable and reused for
// the remainder of the run.
//
// A failed buffer construction (degenerate input geometry) returns a
// *BufferError; the run must be aborted, not retried.
func Prepare(area *AreaOfInterest, mode AnalysisMode, radius float64) (geom.Polygonal, error) {
	if mode != ModeCore {
		return area.Geom, nil
	}
	if radius == 0 {
		radius = DefaultBufferRadius
	}
	clip, err := BufferGeographic(area.Geom, radius)
	if err != nil {
		return nil, &BufferError{Radius: radius, Err: err}
	}
	return clip, nil
}

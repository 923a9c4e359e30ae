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

// Command impacto is the command-line interface for the area-of-interest
// analysis.
package main

import (
	"fmt"
	"os"

	"github.com/JSCEG/ImpactoSocial-1-sub001/impactoutil"
)

func main() {
	if err := impactoutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

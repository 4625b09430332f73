// This file is part of Gopher9640.
//
// Gopher9640 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher9640 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher9640.  If not, see <https://www.gnu.org/licenses/>.

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas of the
// physical address space for the decode table. Useful for reference.
//
// The summary is built page by page. All decode boundaries fall on a page
// boundary.
func Summary(tbl Table) string {
	var area, current Area
	var p, sp uint32

	s := strings.Builder{}

	// look up area of first page in memory
	_, current = tbl.MapAddress(0)

	// for every page in the physical address space...
	for p = 1; p < NumPages; p++ {
		// ...get the area name of that page.
		_, area = tbl.MapAddress(p * PageSize)

		// if the area has changed print out the summary line...
		if area != current {
			s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sp*PageSize, p*PageSize-1, current.String()))

			// ...update current area and start page of the area
			current = area
			sp = p
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sp*PageSize, p*PageSize-1, current.String()))

	return s.String()
}

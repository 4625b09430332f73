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

// Package pagemap implements the page select registers of the board. There is
// one register for each of the eight 8K pages of the logical address space.
// Each register holds the number of the physical page that the logical page
// is mapped to.
//
// The registers are written verbatim. Any of the 256 physical pages is a legal
// value even if nothing responds to it.
package pagemap

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
)

// PageMap is the set of page select registers.
type PageMap struct {
	pages [memorymap.LogicalPages]uint8
}

// NewPageMap is the preferred method of initialisation for the PageMap type.
func NewPageMap() *PageMap {
	return &PageMap{}
}

// Snapshot creates a copy of the PageMap in its current state.
func (pm *PageMap) Snapshot() *PageMap {
	n := *pm
	return &n
}

// Reset maps every logical page to physical page zero.
func (pm *PageMap) Reset() {
	clear(pm.pages[:])
}

func (pm *PageMap) String() string {
	s := strings.Builder{}
	for i, p := range pm.pages {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%d:%02x", i, p))
	}
	return s.String()
}

// Read returns the physical page for the logical page. The page argument is
// masked to the range 0 to 7.
func (pm *PageMap) Read(page int) uint8 {
	return pm.pages[page&0x07]
}

// Write sets the physical page for the logical page. The page argument is
// masked to the range 0 to 7.
func (pm *PageMap) Write(page int, v uint8) {
	pm.pages[page&0x07] = v
}

// Physical translates a logical address to a physical address.
func (pm *PageMap) Physical(logical uint16) uint32 {
	return uint32(pm.pages[(logical>>13)&0x07])<<13 | uint32(logical&0x1fff)
}

// Pages returns a copy of the page select registers.
func (pm *PageMap) Pages() [memorymap.LogicalPages]uint8 {
	return pm.pages
}

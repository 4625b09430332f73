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

// Package onboard implements the memories fitted to the board: the DRAM, the
// SRAM and the boot ROM.
//
// The memories know nothing about the physical address space. The offsets
// passed to them have been normalised by the memorymap package.
package onboard

import (
	"fmt"

	"github.com/jetsetilly/gopher9640/random"
)

// RAM is a read/write memory area. Both the DRAM and the SRAM are of this type.
type RAM struct {
	label string
	Data  []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(label string, size int) *RAM {
	return &RAM{
		label: label,
		Data:  make([]uint8, size),
	}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.Data = make([]uint8, len(ram.Data))
	copy(n.Data, ram.Data)
	return &n
}

func (ram *RAM) String() string {
	return fmt.Sprintf("%s (%dK)", ram.label, len(ram.Data)/1024)
}

// Label returns the name of the memory area.
func (ram *RAM) Label() string {
	return ram.label
}

// Clear the contents of RAM. If rnd is not nil the contents are randomised.
func (ram *RAM) Clear(rnd *random.Random) {
	if rnd != nil {
		rnd.Fill(ram.Data)
		return
	}
	clear(ram.Data)
}

// Read returns the byte at the offset. Offset must be normalised.
func (ram *RAM) Read(offset uint32) uint8 {
	return ram.Data[offset]
}

// Write stores the byte at the offset. Offset must be normalised.
func (ram *RAM) Write(offset uint32, data uint8) {
	ram.Data[offset] = data
}

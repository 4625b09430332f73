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

package onboard

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher9640/curated"
	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
)

// BadBootROM is the curated error pattern returned when the boot ROM image is
// not the correct size.
const BadBootROM = "boot ROM: image must be %d bytes (not %d)"

// BootROM is the boot ROM fitted to the board. Writes to the boot ROM are
// ignored by the memory system.
type BootROM struct {
	Data []uint8

	// sha1 hash of the image
	Hash string
}

// NewBootROM is the preferred method of initialisation for the BootROM type.
// The image must be exactly memorymap.BootROMSize bytes long.
func NewBootROM(image []uint8) (*BootROM, error) {
	if len(image) != memorymap.BootROMSize {
		return nil, curated.Errorf(BadBootROM, memorymap.BootROMSize, len(image))
	}

	rom := &BootROM{
		Data: make([]uint8, memorymap.BootROMSize),
		Hash: fmt.Sprintf("%x", sha1.Sum(image)),
	}
	copy(rom.Data, image)

	return rom, nil
}

func (rom *BootROM) String() string {
	return fmt.Sprintf("boot ROM (%s)", rom.Hash)
}

// Read returns the byte at the offset. Offset must be normalised.
func (rom *BootROM) Read(offset uint32) uint8 {
	return rom.Data[offset]
}

// Patch changes a byte of the boot ROM image. Only useful for debugging; the
// hash is not updated.
func (rom *BootROM) Patch(offset uint32, data uint8) {
	rom.Data[offset] = data
}

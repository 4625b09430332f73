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

import "github.com/jetsetilly/gopher9640/curated"

// Area represents the different areas of the physical address space
type Area int

func (a Area) String() string {
	switch a {
	case DRAM:
		return "DRAM"
	case Unused:
		return "Unused"
	case BootROM:
		return "BootROM"
	case SRAM:
		return "SRAM"
	case Unmapped:
		return "Unmapped"
	case External:
		return "External"
	}

	return "undefined"
}

// The different areas of the physical address space. Unused is the on-board
// expansion region that has nothing fitted. Unmapped is the part of the SRAM
// region that lies outside of the fitted SRAM chips.
const (
	Undefined Area = iota
	DRAM
	Unused
	BootROM
	SRAM
	Unmapped
	External
)

// Sizes of the physical address space and of the on-board memories.
const (
	// PhysicalMask keeps the 21 bits of a physical address
	PhysicalMask = uint32(0x1fffff)

	// PageSize is the size of a single page. The physical address space is
	// 256 pages and the logical address space is 8 pages
	PageSize     = uint32(0x2000)
	NumPages     = 256
	LogicalPages = 8

	// DRAMSize is the size of the on-board DRAM. DRAM is decoded in the first
	// 512K of the physical address space
	DRAMSize = 0x80000

	// BootROMSize is the size of the boot ROM image. the image is mirrored
	// across the 128K region starting at BootROMOrigin
	BootROMSize   = 0x4000
	BootROMOrigin = uint32(0x1e0000)
)

// masks used by the decode tables
const (
	maskRegion   = uint32(0x180000)
	maskBootROM  = uint32(0x1e0000)
	maskDRAM     = uint32(DRAMSize - 1)
	maskROMImage = uint32(BootROMSize - 1)

	// external bus addresses are truncated to 19 bits on a standard board. a
	// genmod board forwards all 21 bits
	maskExternal19 = uint32(0x07ffff)
	maskExternal21 = PhysicalMask
)

// Table is the physical address decode table. The zero value is the standard
// (unmodified) board decode with no SRAM fitted.
type Table struct {
	// board has the hardware modification. the genmod decode sends almost
	// everything to the external bus
	HwModified bool

	// genmod only. on-board DRAM is decoded in the first 512K
	AltMemorySource bool

	// fitted SRAM. standard board only
	SRAM SRAMConfig
}

// MapAddress translates a physical address to the area that responds to it
// and the offset/address within that area. For the External area the
// address is the address to be forwarded to the external bus.
//
// The function has no side effects. Note that the order of the filters is
// important.
func (tbl Table) MapAddress(phys uint32) (uint32, Area) {
	phys &= PhysicalMask

	if tbl.HwModified {
		if tbl.AltMemorySource && phys&maskRegion == 0x000000 {
			return phys & maskDRAM, DRAM
		}
		if phys&maskBootROM == maskBootROM {
			return phys & maskROMImage, BootROM
		}
		return ExternalAddress(phys, true), External
	}

	switch {
	case phys&maskRegion == 0x000000:
		return phys & maskDRAM, DRAM
	case phys&maskRegion == 0x080000:
		return phys & maskDRAM, Unused
	case phys&maskBootROM == maskBootROM:
		return phys & maskROMImage, BootROM
	case phys&maskRegion == 0x180000:
		if tbl.SRAM.Mask != 0 && phys&tbl.SRAM.Mask == tbl.SRAM.Value {
			return phys &^ tbl.SRAM.Mask & PhysicalMask, SRAM
		}
		return phys, Unmapped
	}

	return ExternalAddress(phys, false), External
}

// IsArea returns true if the physical address is in the specified area.
func (tbl Table) IsArea(phys uint32, area Area) bool {
	_, a := tbl.MapAddress(phys)
	return area == a
}

// ExternalAddress truncates a physical address to the number of address
// lines that reach the external bus. On a standard board only 19 bits are
// forwarded, meaning that addresses that differ only in the top two bits will
// alias.
func ExternalAddress(phys uint32, hwModified bool) uint32 {
	if hwModified {
		return phys & maskExternal21
	}
	return phys & maskExternal19
}

// SRAMConfig describes the fitted SRAM. A physical address in the SRAM region
// reaches the SRAM chips only if (address & Mask) == Value.
type SRAMConfig struct {
	Label string
	Mask  uint32
	Value uint32
	Size  int
}

// DefaultSRAM is the label of the SRAM preset used by an unconfigured board.
const DefaultSRAM = "64K"

// SRAMPresets lists the supported SRAM configurations.
var SRAMPresets = []SRAMConfig{
	{Label: "32K", Mask: 0x1f8000, Value: 0x1d0000, Size: 0x8000},
	{Label: "64K", Mask: 0x1f0000, Value: 0x1d0000, Size: 0x10000},
	{Label: "384K", Mask: 0x180000, Value: 0x180000, Size: 0x60000},
}

// UnknownSRAM is the curated error pattern returned by SRAMPreset() when the
// label doesn't name a preset.
const UnknownSRAM = "memorymap: unknown SRAM preset (%s)"

// SRAMPreset returns the SRAM configuration with the specified label.
func SRAMPreset(label string) (SRAMConfig, error) {
	for _, c := range SRAMPresets {
		if c.Label == label {
			return c, nil
		}
	}
	return SRAMConfig{}, curated.Errorf(UnknownSRAM, label)
}

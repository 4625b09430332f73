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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/hardware/memory/waitstates"
)

// Access describes how a CPU access is resolved by the memory system.
type Access struct {
	Logical uint16
	Read    bool

	// the fixed window that responds to the access. if Window is NoWindow
	// then the access has been translated to the physical address space
	Window memorymap.Window

	// offset within the fixed window. see memorymap.MapLogical()
	WindowOffset uint16

	// the physical address and the area that responds to it. for the speech
	// window Physical is the address on the external bus
	Physical uint32
	Area     memorymap.Area

	// offset within the area. for the External area this is the address on
	// the external bus
	AreaOffset uint32

	// write to the legacy cartridge window that does not reach memory
	Blocked bool

	// write to the legacy cartridge window that selects the cartridge
	// sub-page
	SubPageSelect bool

	// number of wait cycles
	Wait uint32
}

func (acc Access) String() string {
	dir := "write"
	if acc.Read {
		dir = "read"
	}

	if acc.Window != memorymap.NoWindow {
		if acc.Window == memorymap.Speech {
			return fmt.Sprintf("%04x %s: %s window -> %06x [%d]", acc.Logical, dir, acc.Window, acc.Physical, acc.Wait)
		}
		return fmt.Sprintf("%04x %s: %s window (%d) [%d]", acc.Logical, dir, acc.Window, acc.WindowOffset, acc.Wait)
	}

	s := fmt.Sprintf("%04x %s: %06x %s %06x [%d]", acc.Logical, dir, acc.Physical, acc.Area, acc.AreaOffset, acc.Wait)
	if acc.SubPageSelect {
		s = fmt.Sprintf("%s (cartridge page select)", s)
	} else if acc.Blocked {
		s = fmt.Sprintf("%s (write protected)", s)
	}
	return s
}

// isCartridge returns true if the logical address is in the legacy cartridge
// window.
func isCartridge(addr uint16) bool {
	return addr >= memorymap.OriginCartridge && addr <= memorymap.MemtopCartridge
}

// Decode resolves a CPU access without performing it. There are no side
// effects.
//
// Fixed windows are checked first. If no fixed window responds then the
// logical address is translated to a physical address. In direct mode the
// translation is always to the boot ROM region. Otherwise the page map is used
// except for the legacy cartridge window, which has paging rules of its own.
func (mem *Memory) Decode(addr uint16, read bool) Access {
	flags := mem.Modes.Flags()

	acc := Access{
		Logical: addr,
		Read:    read,
	}

	acc.WindowOffset, acc.Window = memorymap.MapLogical(addr, mem.Modes.Layout(), read)
	if acc.Window != memorymap.NoWindow {
		if acc.Window == memorymap.Speech {
			acc.Physical = memorymap.SpeechAddress(addr, flags.HwModified)
			acc.Area = memorymap.External
			acc.AreaOffset = acc.Physical
		}
		acc.Wait = waitstates.Fixed(flags, acc.Window)
		return acc
	}

	cartridge := !flags.Native && !flags.Direct && isCartridge(addr)

	switch {
	case flags.Direct:
		acc.Physical = memorymap.BootROMOrigin | uint32(addr)
	case cartridge && !flags.CartridgePaged:
		page := mem.PageMap.Read(memorymap.CartridgePage) &^ 0x01
		if flags.CartridgeSecondPage {
			page |= 0x01
		}
		acc.Physical = uint32(page)<<13 | uint32(addr&0x1fff)
	default:
		acc.Physical = mem.PageMap.Physical(addr)
	}

	acc.AreaOffset, acc.Area = mem.Modes.Table().MapAddress(acc.Physical)

	if cartridge && !read {
		lower := addr < 0x7000
		if flags.CartridgePaged {
			if lower {
				acc.Blocked = !flags.Cartridge6Writable
			} else {
				acc.Blocked = !flags.Cartridge7Writable
			}
		} else {
			if lower {
				acc.SubPageSelect = true
				acc.Blocked = true
			} else {
				acc.Blocked = !flags.Cartridge7Writable
			}
		}
	}

	acc.Wait = waitstates.Physical(flags, acc.Area, read)

	return acc
}

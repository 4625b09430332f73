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
	"github.com/jetsetilly/gopher9640/curated"
	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/logger"
)

func (mem *Memory) readPhysical(acc Access) uint8 {
	switch acc.Area {
	case memorymap.DRAM:
		return mem.DRAM.Read(acc.AreaOffset)
	case memorymap.SRAM:
		return mem.SRAM.Read(acc.AreaOffset)
	case memorymap.BootROM:
		return mem.BootROM.Read(acc.AreaOffset)
	case memorymap.External:
		if mem.periph.External != nil {
			if v, ok := mem.periph.External.ReadZ(acc.AreaOffset); ok {
				return v
			}
		}
	case memorymap.Unused, memorymap.Unmapped:
		logger.Logf(mem.env, "memory", "read of %s address (%06x)", acc.Area, acc.Physical)
	}

	return 0
}

func (mem *Memory) writePhysical(acc Access, data uint8) {
	switch acc.Area {
	case memorymap.DRAM:
		mem.DRAM.Write(acc.AreaOffset, data)
	case memorymap.SRAM:
		mem.SRAM.Write(acc.AreaOffset, data)
	case memorymap.External:
		if mem.periph.External != nil {
			mem.periph.External.Write(acc.AreaOffset, data)
		}
	case memorymap.BootROM:
		logger.Logf(mem.env, "memory", "write to boot ROM ignored (%06x)", acc.Physical)
	case memorymap.Unused, memorymap.Unmapped:
		logger.Logf(mem.env, "memory", "write to %s address (%06x)", acc.Area, acc.Physical)
	}
}

// UnbackedAddress is the curated error pattern returned by Peek() and Poke()
// when the physical address has no on-board memory behind it.
const UnbackedAddress = "memory: no on-board memory at %06x (%s)"

// Peek implements the bus.DebugBus interface. The address is a physical
// address and is decoded with the current decode table.
func (mem *Memory) Peek(address uint32) (uint8, error) {
	offset, area := mem.Modes.Table().MapAddress(address)
	switch area {
	case memorymap.DRAM:
		return mem.DRAM.Read(offset), nil
	case memorymap.SRAM:
		return mem.SRAM.Read(offset), nil
	case memorymap.BootROM:
		return mem.BootROM.Read(offset), nil
	}
	return 0, curated.Errorf(UnbackedAddress, address&memorymap.PhysicalMask, area)
}

// Poke implements the bus.DebugBus interface. The address is a physical
// address and is decoded with the current decode table. Unlike a CPU write,
// a poke can change the contents of the boot ROM.
func (mem *Memory) Poke(address uint32, value uint8) error {
	offset, area := mem.Modes.Table().MapAddress(address)
	switch area {
	case memorymap.DRAM:
		mem.DRAM.Write(offset, value)
		return nil
	case memorymap.SRAM:
		mem.SRAM.Write(offset, value)
		return nil
	case memorymap.BootROM:
		mem.BootROM.Patch(offset, value)
		return nil
	}
	return curated.Errorf(UnbackedAddress, address&memorymap.PhysicalMask, area)
}

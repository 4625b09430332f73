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
	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/logger"
)

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) (uint8, uint32) {
	acc := mem.Decode(address, true)
	mem.LastAccess = acc
	mem.cycles += 1 + uint64(acc.Wait)

	if acc.Window != memorymap.NoWindow {
		return mem.readFixed(acc), acc.Wait
	}
	return mem.readPhysical(acc), acc.Wait
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) uint32 {
	acc := mem.Decode(address, false)
	mem.LastAccess = acc
	mem.cycles += 1 + uint64(acc.Wait)

	if acc.Window != memorymap.NoWindow {
		mem.writeFixed(acc, data)
		return acc.Wait
	}

	if acc.SubPageSelect {
		mem.Modes.SetCartridgeSecondPage((acc.Logical>>1)&0x01 == 0x01)
		return acc.Wait
	}

	// blocked writes still cost the wait cycles of the area
	if acc.Blocked {
		logger.Logf(mem.env, "memory", "cartridge write protected (%04x)", acc.Logical)
		return acc.Wait
	}

	mem.writePhysical(acc, data)
	return acc.Wait
}

func (mem *Memory) readFixed(acc Access) uint8 {
	switch acc.Window {
	case memorymap.Video:
		if mem.periph.Video != nil {
			return mem.periph.Video.VideoRead(int(acc.WindowOffset))
		}
	case memorymap.PageMap:
		return mem.PageMap.Read(int(acc.WindowOffset))
	case memorymap.Keyboard:
		return mem.CRU.Latch()
	case memorymap.Clock:
		if mem.periph.Clock != nil {
			return mem.periph.Clock.ClockRead(int(acc.WindowOffset))
		}
	case memorymap.Sound:
		logger.Log(mem.env, "memory", "read of write-only sound register")
	case memorymap.Speech:
		if mem.periph.External != nil {
			if v, ok := mem.periph.External.ReadZ(acc.Physical); ok {
				return v
			}
		}
	case memorymap.GROM:
		if acc.WindowOffset == 1 {
			return mem.GROM.ReadAddress()
		}
		return mem.GROM.ReadData()
	}

	return 0
}

func (mem *Memory) writeFixed(acc Access, data uint8) {
	switch acc.Window {
	case memorymap.Video:
		if mem.periph.Video != nil {
			mem.periph.Video.VideoWrite(int(acc.WindowOffset), data)
		}
	case memorymap.PageMap:
		mem.PageMap.Write(int(acc.WindowOffset), data)
	case memorymap.Keyboard:
		logger.Log(mem.env, "memory", "write to read-only keyboard latch")
	case memorymap.Clock:
		if mem.periph.Clock != nil {
			mem.periph.Clock.ClockWrite(int(acc.WindowOffset), data)
		}
	case memorymap.Sound:
		if mem.periph.Sound != nil {
			mem.periph.Sound.SoundWrite(data)
		}
	case memorymap.Speech:
		if mem.periph.External != nil {
			mem.periph.External.Write(acc.Physical, data)
		}
	case memorymap.GROM:
		if acc.WindowOffset == 1 {
			mem.GROM.WriteAddress(data)
		} else {
			mem.GROM.WriteData(data)
		}
	}
}

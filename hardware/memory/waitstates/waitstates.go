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

// Package waitstates calculates the number of wait cycles added to a memory
// access. The cost depends on the area or fixed window that responds to the
// access and on the mode flags.
//
// On a standard board:
//
//	DRAM      1 (reads are 0 when ZeroWait is set)
//	Unused    1
//	BootROM   0
//	SRAM      0
//	Unmapped  0
//	External  1
//	windows   1
//
// On a genmod board the boot ROM costs nothing and everything else costs 1,
// or nothing when Turbo is set. On both boards an access to the video window
// costs an additional 14 cycles when VideoWait is set.
package waitstates

import (
	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/hardware/memory/modes"
)

// VideoWait is the number of additional cycles for a video access when the
// VideoWait flag is set.
const VideoWait = 14

// Physical returns the number of wait cycles for an access that has been
// resolved to an area of the physical address space.
func Physical(flags modes.Flags, area memorymap.Area, read bool) uint32 {
	if flags.HwModified {
		if area == memorymap.BootROM || flags.Turbo {
			return 0
		}
		return 1
	}

	switch area {
	case memorymap.DRAM:
		if read && flags.ZeroWait {
			return 0
		}
		return 1
	case memorymap.Unused, memorymap.External:
		return 1
	}

	// BootROM, SRAM, Unmapped
	return 0
}

// Fixed returns the number of wait cycles for an access to a fixed window.
func Fixed(flags modes.Flags, window memorymap.Window) uint32 {
	var n uint32 = 1
	if flags.HwModified && flags.Turbo {
		n = 0
	}
	if window == memorymap.Video && flags.VideoWait {
		n += VideoWait
	}
	return n
}

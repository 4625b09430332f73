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

// Package memory implements the memory system of the board. The memory system
// sits between the CPU and everything the CPU can address.
//
//	                          DEBUGGER
//
//	                             |
//	                         debug bus
//	                             |
//
//	    CPU ---- cpu bus ---- MEMORY ---- external bus ---- EXPANSION BOX
//	       \                  |  |  \
//	        \                 |  |   \---- video / sound / clock chips
//	         ---- control bus-   |
//	                             |---- DRAM / SRAM / boot ROM
//
// Every CPU access is resolved in the same order:
//
//	1. the fixed windows of the active layout (native or legacy)
//	2. translation of the logical address to a physical address
//	3. the physical decode table (standard or genmod)
//
// Fixed windows are wired directly to the CPU bus and are never affected by
// the page map. Translation uses the page map except in direct mode, where
// every logical address is translated to the boot ROM region, and in the
// legacy cartridge window when it is not paged.
//
// Every access returns the number of wait cycles it costs. The Decode()
// function resolves an access without performing it, which is useful for
// debugging.
//
// The control bus (the CRU) is implemented by the cru package. The mode flags
// that it sets are held by the modes package. Accesses to the control bus
// outside of the on-board window are forwarded to the expansion box.
//
// Accesses never fail. Anything unusual is logged.
package memory

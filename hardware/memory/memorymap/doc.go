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

// Package memorymap describes the decode of the logical and physical address
// spaces.
//
// The logical address space is the 64K seen by the CPU. It is divided into
// eight pages of 8K. Before paging, an address is checked against the fixed
// windows of the active Layout with MapLogical(). Fixed windows are wired
// directly to the CPU bus and so are unaffected by the page map.
//
// The physical address space is 21 bits (256 pages of 8K). A Table decides
// which Area responds to a physical address. There are two decode tables, one
// for the standard board and one for the modified (genmod) board. The
// Summary() function gives an overview of a table:
//
//	000000 -> 07ffff	DRAM
//	080000 -> 0fffff	Unused
//	100000 -> 17ffff	External
//	180000 -> 1cffff	Unmapped
//	1d0000 -> 1dffff	SRAM
//	1e0000 -> 1fffff	BootROM
//
// Note that external bus addresses are truncated to 19 bits on a standard
// board. Expansion cards that decode only 16 bits of address will therefore
// appear at more than one physical address. This is how the hardware behaves
// and no attempt is made to hide it.
package memorymap

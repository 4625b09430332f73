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

// Package hardware is the base package for the board emulation. The
// subpackages are organised to mirror the physical board.
//
// The memory package is the core. It decodes every 16 bit logical address
// into a 24 bit physical address or a fixed window, adds wait states and
// dispatches the access to on-board storage or to one of the peripherals.
// The CRU bits that select the decode mode also live under the memory
// package.
//
// The peripherals package contains the devices that sit behind the fixed
// windows: the keyboard queue, the register files for the video, sound,
// clock and speech chips, and the expansion box with its cards.
//
// The preferences package holds the user preferences for the board, such as
// the presence of the Genmod modification and the amount of static RAM.
package hardware

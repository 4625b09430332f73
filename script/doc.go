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

// Package script drives the memory system with Lua scripts. It takes the
// place of a CPU: the script reads and writes logical addresses, sets control
// bits and inspects the physical address space.
//
// The following functions are available to scripts:
//
//	read(addr)             returns value and wait cycles
//	write(addr, value)     returns wait cycles
//	cru(addr)              returns the control bit
//	cru(addr, bit)         sets the control bit
//	peek(phys)             returns the value at the physical address
//	poke(phys, value)      changes the value at the physical address
//	decode(addr, read)     returns a description of the access
//	key(scancode)          adds a scancode to the keyboard queue
//	reset()                resets the board
//	coldstart()            resets the board and clears memory
//	state()                returns a description of the board
//	addr(name)             returns the address of the named register
//	crubit(name)           returns the address of the named control bit
//	print(...)             writes to the script's output
//
// Register names are those of the current layout. Errors raised by peek(),
// poke(), key(), addr() and crubit() stop the script.
package script

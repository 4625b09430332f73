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

// Package grom simulates the graphics ROM port of the legacy layout. The data
// is held in a 64K area of DRAM and is read through a 16 bit address counter.
//
// The address counter is loaded by two writes to the address port, high byte
// first and low byte second. The low byte completes the address and so the
// counter is incremented after the low byte is written. The first write after
// a data read is always taken as the high byte. Reading the address port
// returns the high byte and then the low byte of the counter.
//
// Reading the data port returns the byte at the counter and then increments
// the counter. Unlike the real chips, the counter wraps at 64K and not at the
// size of a single chip. Writes to the data port are discarded.
package grom

import (
	"fmt"

	"github.com/jetsetilly/gopher9640/logger"
)

// BackingOrigin is the physical address of the DRAM area that holds the
// graphics ROM data.
const BackingOrigin = uint32(0x070000)

// BackingSize is the size of the DRAM area that holds the graphics ROM data.
const BackingSize = 0x10000

// GROM is the state of the simulated graphics ROM port.
type GROM struct {
	perm logger.Permission

	// backing is a slice of DRAM
	backing []uint8

	counter uint16

	// the next address port access is to the low byte
	readLSB  bool
	writeLSB bool
}

// NewGROM is the preferred method of initialisation for the GROM type. The
// backing slice must be BackingSize bytes long.
func NewGROM(perm logger.Permission, backing []uint8) *GROM {
	return &GROM{
		perm:    perm,
		backing: backing[:BackingSize:BackingSize],
	}
}

// Snapshot creates a copy of the GROM state. The backing slice is shared.
func (g *GROM) Snapshot() *GROM {
	n := *g
	return &n
}

// Plumb a new backing slice into the GROM. Used after the DRAM has been
// replaced.
func (g *GROM) Plumb(backing []uint8) {
	g.backing = backing[:BackingSize:BackingSize]
}

func (g *GROM) String() string {
	return fmt.Sprintf("address=%04x readLSB=%v writeLSB=%v", g.counter, g.readLSB, g.writeLSB)
}

// Reset clears the address counter and the half flags.
func (g *GROM) Reset() {
	g.counter = 0
	g.readLSB = false
	g.writeLSB = false
}

// Address returns the current value of the address counter.
func (g *GROM) Address() uint16 {
	return g.counter
}

// ReadAddress returns the next half of the address counter.
func (g *GROM) ReadAddress() uint8 {
	var v uint8
	if g.readLSB {
		v = uint8(g.counter)
	} else {
		v = uint8(g.counter >> 8)
	}
	g.readLSB = !g.readLSB
	return v
}

// WriteAddress loads the next half of the address counter.
func (g *GROM) WriteAddress(v uint8) {
	if g.writeLSB {
		g.counter = (g.counter & 0xff00) | uint16(v)
		g.counter++
	} else {
		g.counter = (g.counter & 0x00ff) | uint16(v)<<8
	}
	g.writeLSB = !g.writeLSB
}

// ReadData returns the byte at the address counter and increments the
// counter.
func (g *GROM) ReadData() uint8 {
	v := g.backing[g.counter]
	g.counter++
	g.readLSB = false
	g.writeLSB = false
	return v
}

// WriteData is not supported by the hardware. The write is logged and
// discarded.
func (g *GROM) WriteData(v uint8) {
	logger.Logf(g.perm, "grom", "data write discarded (%02x at %04x)", v, g.counter)
}

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

// Package bus defines the interfaces between the board and the rest of the
// system. For an explanation see the memory package documentation.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Every access returns the number of wait cycles it costs.
//
// Accesses never fail. Addresses that nothing responds to read as zero and
// writes to them are ignored.
type CPUBus interface {
	Read(address uint16) (uint8, uint32)
	Write(address uint16, data uint8) uint32
}

// ControlBus defines the single bit control register bus (the CRU) as seen by
// the CPU.
type ControlBus interface {
	CRURead(address uint16) bool
	CRUWrite(address uint16, bit bool)
}

// DebugBus defines the meta-operations for the physical address space. Think
// of these functions as "debugging" functions, that is operations outside of
// the normal operation of the machine. There are no side effects and no wait
// states.
type DebugBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, value uint8) error
}

// ExternalBus is the peripheral expansion bus. The Z suffix indicates that the
// bus may not be driven, in which case the second return value is false.
type ExternalBus interface {
	ReadZ(address uint32) (uint8, bool)
	Write(address uint32, data uint8)
	ControlReadZ(address uint16) (bool, bool)
	ControlWrite(address uint16, bit bool)
}

// VideoChip is the on-board video controller. It has two ports.
type VideoChip interface {
	VideoRead(port int) uint8
	VideoWrite(port int, data uint8)
}

// SoundChip is the on-board sound chip. It is write only.
type SoundChip interface {
	SoundWrite(data uint8)
}

// ClockChip is the on-board real-time clock. It has sixteen registers.
type ClockChip interface {
	ClockRead(register int) uint8
	ClockWrite(register int, data uint8)
}

// SpeechChip is the speech synthesiser. It is not on the board but is found
// on an expansion card.
type SpeechChip interface {
	SpeechRead() uint8
	SpeechWrite(data uint8)
}

// KeyboardQueue is the queue of scancodes waiting to be transferred to the
// keyboard latch.
type KeyboardQueue interface {
	Front() (uint8, bool)
	Pop()
}

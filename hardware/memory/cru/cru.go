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

// Package cru implements the on-board control register bank. The bank is a
// window of sixteen single bit registers on the control bus. Addresses outside
// of the window are forwarded to the control bus of the expansion box.
//
// Most bits set one of the mode flags of the board. The keyboard bits are
// different. The keyboard clock and keep buffer bits are edge sensitive. A
// rising edge on either bit attempts to transfer the front of the keyboard
// queue into the keyboard latch. A falling edge on the keep buffer bit
// removes the latched byte from the queue and empties the latch.
package cru

import (
	"fmt"

	"github.com/jetsetilly/gopher9640/hardware/memory/bus"
	"github.com/jetsetilly/gopher9640/hardware/memory/modes"
	"github.com/jetsetilly/gopher9640/logger"
)

// Base address and mask of the on-board control register window.
const (
	Base = uint16(0x1ee0)
	Mask = uint16(0xffe0)
)

// Bit numbers of the on-board control registers.
const (
	BitTurbo      = 2
	BitAltMemory  = 3
	BitKbdReset   = 4
	BitPAL        = 5
	BitCapsLock   = 6
	BitKbdClock   = 7
	BitKeepBuffer = 8
	BitNative     = 9
	BitDirect     = 10
	BitCartPaged  = 11
	BitCart6Write = 12
	BitCart7Write = 13
	BitVideoWait  = 14
	BitZeroWait   = 15
)

// Address returns the control bus address of an on-board bit.
func Address(bit int) uint16 {
	return Base | uint16(bit&0x0f)<<1
}

// Bank is the on-board control register bank.
type Bank struct {
	perm logger.Permission

	ctl   *modes.Controller
	queue bus.KeyboardQueue
	ext   bus.ExternalBus

	// unused bits are stored so that they read back what was written
	unused [2]bool

	// keyboard lines
	kbdReset   bool
	kbdClock   bool
	keepBuffer bool

	// keyboard latch
	latch          uint8
	latchAvailable bool
}

// NewBank is the preferred method of initialisation for the Bank type. The
// queue and ext arguments can be nil.
func NewBank(perm logger.Permission, ctl *modes.Controller, queue bus.KeyboardQueue, ext bus.ExternalBus) *Bank {
	return &Bank{
		perm:  perm,
		ctl:   ctl,
		queue: queue,
		ext:   ext,
	}
}

// Snapshot creates a copy of the Bank in its current state. The copy refers
// to the same controller, queue and external bus.
func (b *Bank) Snapshot() *Bank {
	n := *b
	return &n
}

// Plumb changes the controller the bank operates on.
func (b *Bank) Plumb(ctl *modes.Controller) {
	b.ctl = ctl
}

func (b *Bank) String() string {
	return fmt.Sprintf("kbdreset=%v clock=%v keep=%v latch=%02x available=%v",
		b.kbdReset, b.kbdClock, b.keepBuffer, b.latch, b.latchAvailable)
}

// Reset the keyboard lines and empty the latch. The mode flags are reset by
// the controller.
func (b *Bank) Reset() {
	b.unused = [2]bool{}
	b.kbdReset = false
	b.kbdClock = false
	b.keepBuffer = false
	b.latch = 0
	b.latchAvailable = false
}

// IsOnBoard returns true if the address is in the on-board window.
func IsOnBoard(addr uint16) bool {
	return addr&Mask == Base
}

// Write sets a control bit. Addresses outside of the on-board window are
// forwarded to the external control bus.
func (b *Bank) Write(addr uint16, bit bool) {
	if !IsOnBoard(addr) {
		if b.ext != nil {
			b.ext.ControlWrite(addr, bit)
		}
		return
	}

	switch n := int(addr>>1) & 0x0f; n {
	case 0, 1:
		b.unused[n] = bit
		logger.Logf(b.perm, "cru", "write to unused bit %d", n)
	case BitTurbo:
		b.ctl.SetTurbo(bit)
	case BitAltMemory:
		b.ctl.SetHwAltMemorySource(bit)
	case BitKbdReset:
		b.kbdReset = bit
	case BitPAL:
		b.ctl.SetPALVideo(bit)
	case BitCapsLock:
		b.ctl.SetCapsLock(bit)
	case BitKbdClock:
		rising := bit && !b.kbdClock
		b.kbdClock = bit
		if rising {
			b.transfer()
		}
	case BitKeepBuffer:
		rising := bit && !b.keepBuffer
		falling := !bit && b.keepBuffer
		b.keepBuffer = bit
		if rising {
			b.transfer()
		} else if falling {
			if b.latchAvailable && b.queue != nil {
				b.queue.Pop()
			}
			b.latchAvailable = false
		}
	case BitNative:
		// active low
		b.ctl.SetNativeMode(!bit)
	case BitDirect:
		b.ctl.SetDirectMode(bit)
	case BitCartPaged:
		b.ctl.SetCartridgePaged(bit)
	case BitCart6Write:
		b.ctl.SetCartridgeWritable(0, bit)
	case BitCart7Write:
		b.ctl.SetCartridgeWritable(1, bit)
	case BitVideoWait:
		b.ctl.SetVideoWait(bit)
	case BitZeroWait:
		b.ctl.SetZeroWait(bit)
	}
}

// Read returns the value of a control bit. Addresses outside of the on-board
// window are forwarded to the external control bus. An undriven external bit
// reads as false.
func (b *Bank) Read(addr uint16) bool {
	if !IsOnBoard(addr) {
		if b.ext != nil {
			if v, ok := b.ext.ControlReadZ(addr); ok {
				return v
			}
		}
		return false
	}

	f := b.ctl.Flags()

	switch n := int(addr>>1) & 0x0f; n {
	case 0, 1:
		return b.unused[n]
	case BitTurbo:
		return f.Turbo
	case BitAltMemory:
		return f.AltMemorySource
	case BitKbdReset:
		return b.kbdReset
	case BitPAL:
		return f.PALVideo
	case BitCapsLock:
		return f.CapsLock
	case BitKbdClock:
		return b.kbdClock
	case BitKeepBuffer:
		return b.keepBuffer
	case BitNative:
		return !f.Native
	case BitDirect:
		return f.Direct
	case BitCartPaged:
		return f.CartridgePaged
	case BitCart6Write:
		return f.Cartridge6Writable
	case BitCart7Write:
		return f.Cartridge7Writable
	case BitVideoWait:
		return f.VideoWait
	case BitZeroWait:
		return f.ZeroWait
	}

	return false
}

// Poll retries the transfer of the front of the keyboard queue into the latch.
// It should be called by the host whenever the keyboard queue has been
// filled.
func (b *Bank) Poll() {
	b.transfer()
}

func (b *Bank) transfer() {
	if b.kbdReset || !b.kbdClock || !b.keepBuffer || b.queue == nil {
		return
	}
	if v, ok := b.queue.Front(); ok {
		b.latch = v
		b.latchAvailable = true
	}
}

// Latch returns the latched keyboard byte. The value is zero if the latch is
// empty.
func (b *Bank) Latch() uint8 {
	if b.latchAvailable {
		return b.latch
	}
	return 0
}

// LatchAvailable returns true if the latch holds a byte.
func (b *Bank) LatchAvailable() bool {
	return b.latchAvailable
}

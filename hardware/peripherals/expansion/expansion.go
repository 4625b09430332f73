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

// Package expansion implements a reference peripheral expansion box. The box
// holds a number of cards and presents them to the board as a single
// bus.ExternalBus.
//
// Every card sees every access. There is no arbitration beyond the order in
// which cards were added to the box: the first card to drive a read supplies
// the data. This is how the real expansion bus behaves when cards overlap.
//
// Cards decode as many address lines as they want. A card that decodes only
// the lower sixteen bits will respond at several physical addresses. The
// SpeechCard is an example of this.
package expansion

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher9640/curated"
	"github.com/jetsetilly/gopher9640/hardware/memory/bus"
)

// Card is implemented by everything that can be plugged into the box.
type Card interface {
	Label() string

	// CRUBase returns the base address of the card's control bits. The box
	// routes control bus accesses to the card whose base matches the address
	// masked with CRUMask. A card with no control bits returns NoCRU.
	CRUBase() uint16

	ReadZ(address uint32) (uint8, bool)
	Write(address uint32, data uint8)

	// bit is the bit number relative to CRUBase
	ControlReadZ(bit int) (bool, bool)
	ControlWrite(bit int, v bool)
}

// NoCRU is returned by Card.CRUBase() when the card has no control bits.
const NoCRU = uint16(0xffff)

// CRUMask selects the card from a control bus address. Each card has a
// block of 128 bits.
const CRUMask = uint16(0xff00)

// DuplicateCRU is the curated error pattern returned by AddCard() when the
// card's control base is already in use.
const DuplicateCRU = "expansion: %s uses the same CRU base as %s (%04x)"

// Box implements the bus.ExternalBus interface.
type Box struct {
	cards []Card
}

// NewBox is the preferred method of initialisation for the Box type.
func NewBox() *Box {
	return &Box{}
}

func (b *Box) String() string {
	s := strings.Builder{}
	s.WriteString("expansion:")
	if len(b.cards) == 0 {
		s.WriteString(" empty")
	}
	for _, c := range b.cards {
		s.WriteString(" ")
		s.WriteString(c.Label())
	}
	return s.String()
}

// AddCard plugs a card into the next free slot.
func (b *Box) AddCard(c Card) error {
	if c.CRUBase() != NoCRU {
		for _, o := range b.cards {
			if o.CRUBase() == c.CRUBase() {
				return curated.Errorf(DuplicateCRU, c.Label(), o.Label(), c.CRUBase())
			}
		}
	}
	b.cards = append(b.cards, c)
	return nil
}

// Cards returns the cards in slot order.
func (b *Box) Cards() []Card {
	return b.cards
}

// ReadZ implements the bus.ExternalBus interface.
func (b *Box) ReadZ(address uint32) (uint8, bool) {
	for _, c := range b.cards {
		if v, ok := c.ReadZ(address); ok {
			return v, true
		}
	}
	return 0, false
}

// Write implements the bus.ExternalBus interface.
func (b *Box) Write(address uint32, data uint8) {
	for _, c := range b.cards {
		c.Write(address, data)
	}
}

func (b *Box) control(address uint16) (Card, int) {
	for _, c := range b.cards {
		if c.CRUBase() != NoCRU && address&CRUMask == c.CRUBase() {
			return c, int(address-c.CRUBase()) >> 1
		}
	}
	return nil, 0
}

// ControlReadZ implements the bus.ExternalBus interface.
func (b *Box) ControlReadZ(address uint16) (bool, bool) {
	if c, bit := b.control(address); c != nil {
		return c.ControlReadZ(bit)
	}
	return false, false
}

// ControlWrite implements the bus.ExternalBus interface.
func (b *Box) ControlWrite(address uint16, v bool) {
	if c, bit := b.control(address); c != nil {
		c.ControlWrite(bit, v)
	}
}

// make sure Box satisfies the interface
var _ bus.ExternalBus = (*Box)(nil)

// MemoryCard is a memory expansion card that decodes all 21 address bits.
// The card responds only when bit 0 of its control block is set.
type MemoryCard struct {
	base    uint16
	Enabled bool
	Data    []uint8
}

// MemoryCardSize is the size of the MemoryCard's memory.
const MemoryCardSize = 0x200000

// DefaultMemoryCRU is the usual control base of the memory card.
const DefaultMemoryCRU = uint16(0x1400)

// NewMemoryCard is the preferred method of initialisation for the MemoryCard
// type.
func NewMemoryCard(cruBase uint16) *MemoryCard {
	return &MemoryCard{
		base: cruBase & CRUMask,
		Data: make([]uint8, MemoryCardSize),
	}
}

// Label implements the Card interface.
func (m *MemoryCard) Label() string {
	return fmt.Sprintf("memory(%dK)", MemoryCardSize/1024)
}

// CRUBase implements the Card interface.
func (m *MemoryCard) CRUBase() uint16 {
	return m.base
}

// ReadZ implements the Card interface.
func (m *MemoryCard) ReadZ(address uint32) (uint8, bool) {
	if !m.Enabled {
		return 0, false
	}
	return m.Data[address&(MemoryCardSize-1)], true
}

// Write implements the Card interface.
func (m *MemoryCard) Write(address uint32, data uint8) {
	if !m.Enabled {
		return
	}
	m.Data[address&(MemoryCardSize-1)] = data
}

// ControlReadZ implements the Card interface.
func (m *MemoryCard) ControlReadZ(bit int) (bool, bool) {
	if bit != 0 {
		return false, false
	}
	return m.Enabled, true
}

// ControlWrite implements the Card interface.
func (m *MemoryCard) ControlWrite(bit int, v bool) {
	if bit == 0 {
		m.Enabled = v
	}
}

// SpeechCard connects a speech chip to the bus. It decodes only the lower
// sixteen address bits so it responds wherever those bits match, regardless
// of the upper address lines.
type SpeechCard struct {
	chip bus.SpeechChip
}

// speech card address decode
const (
	speechMask  = uint32(0xfc00)
	speechRead  = uint32(0x9000)
	speechWrite = uint32(0x9400)
)

// NewSpeechCard is the preferred method of initialisation for the SpeechCard
// type.
func NewSpeechCard(chip bus.SpeechChip) *SpeechCard {
	return &SpeechCard{chip: chip}
}

// Label implements the Card interface.
func (s *SpeechCard) Label() string {
	return "speech"
}

// CRUBase implements the Card interface.
func (s *SpeechCard) CRUBase() uint16 {
	return NoCRU
}

// ReadZ implements the Card interface.
func (s *SpeechCard) ReadZ(address uint32) (uint8, bool) {
	if address&speechMask != speechRead {
		return 0, false
	}
	return s.chip.SpeechRead(), true
}

// Write implements the Card interface.
func (s *SpeechCard) Write(address uint32, data uint8) {
	if address&speechMask != speechWrite {
		return
	}
	s.chip.SpeechWrite(data)
}

// ControlReadZ implements the Card interface.
func (s *SpeechCard) ControlReadZ(_ int) (bool, bool) {
	return false, false
}

// ControlWrite implements the Card interface.
func (s *SpeechCard) ControlWrite(_ int, _ bool) {
}

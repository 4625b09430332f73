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

// Package regfile contains simple register file implementations of the chips
// found on and around the board: video, sound, clock and speech. None of them
// emulate the real chip. They hold the values written to them and return
// those values when read, which is sufficient for exercising the memory
// decoder and for scripting.
package regfile

import (
	"fmt"
)

// Video is a two port register file. It implements the bus.VideoChip
// interface.
type Video struct {
	Ports [2]uint8

	// count of accesses per port
	Reads  [2]int
	Writes [2]int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Snapshot creates a copy of the Video in its current state.
func (v *Video) Snapshot() *Video {
	n := *v
	return &n
}

func (v *Video) String() string {
	return fmt.Sprintf("video: port0=%02x port1=%02x", v.Ports[0], v.Ports[1])
}

// VideoRead implements the bus.VideoChip interface.
func (v *Video) VideoRead(port int) uint8 {
	port &= 1
	v.Reads[port]++
	return v.Ports[port]
}

// VideoWrite implements the bus.VideoChip interface.
func (v *Video) VideoWrite(port int, data uint8) {
	port &= 1
	v.Writes[port]++
	v.Ports[port] = data
}

// Sound records the bytes written to it. It implements the bus.SoundChip
// interface.
type Sound struct {
	Last   uint8
	Writes int
}

// NewSound is the preferred method of initialisation for the Sound type.
func NewSound() *Sound {
	return &Sound{}
}

// Snapshot creates a copy of the Sound in its current state.
func (s *Sound) Snapshot() *Sound {
	n := *s
	return &n
}

func (s *Sound) String() string {
	return fmt.Sprintf("sound: last=%02x writes=%d", s.Last, s.Writes)
}

// SoundWrite implements the bus.SoundChip interface.
func (s *Sound) SoundWrite(data uint8) {
	s.Last = data
	s.Writes++
}

// NumClockRegisters is the number of registers in the clock chip.
const NumClockRegisters = 16

// Clock is a sixteen register file. It implements the bus.ClockChip interface.
type Clock struct {
	Registers [NumClockRegisters]uint8
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock() *Clock {
	return &Clock{}
}

// Snapshot creates a copy of the Clock in its current state.
func (c *Clock) Snapshot() *Clock {
	n := *c
	return &n
}

func (c *Clock) String() string {
	return fmt.Sprintf("clock: % 02x", c.Registers[:])
}

// ClockRead implements the bus.ClockChip interface.
func (c *Clock) ClockRead(register int) uint8 {
	return c.Registers[register%NumClockRegisters]
}

// ClockWrite implements the bus.ClockChip interface.
func (c *Clock) ClockWrite(register int, data uint8) {
	c.Registers[register%NumClockRegisters] = data
}

// Speech records the last byte written and returns it when read. It
// implements the bus.SpeechChip interface.
type Speech struct {
	Last   uint8
	Reads  int
	Writes int
}

// NewSpeech is the preferred method of initialisation for the Speech type.
func NewSpeech() *Speech {
	return &Speech{}
}

// Snapshot creates a copy of the Speech in its current state.
func (s *Speech) Snapshot() *Speech {
	n := *s
	return &n
}

func (s *Speech) String() string {
	return fmt.Sprintf("speech: last=%02x", s.Last)
}

// SpeechRead implements the bus.SpeechChip interface.
func (s *Speech) SpeechRead() uint8 {
	s.Reads++
	return s.Last
}

// SpeechWrite implements the bus.SpeechChip interface.
func (s *Speech) SpeechWrite(data uint8) {
	s.Writes++
	s.Last = data
}

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

package regfile_test

import (
	"testing"

	"github.com/jetsetilly/gopher9640/hardware/memory/bus"
	"github.com/jetsetilly/gopher9640/hardware/peripherals/regfile"
	"github.com/jetsetilly/gopher9640/test"
)

var (
	_ bus.VideoChip  = (*regfile.Video)(nil)
	_ bus.SoundChip  = (*regfile.Sound)(nil)
	_ bus.ClockChip  = (*regfile.Clock)(nil)
	_ bus.SpeechChip = (*regfile.Speech)(nil)
)

func TestVideo(t *testing.T) {
	v := regfile.NewVideo()
	v.VideoWrite(0, 0x12)
	v.VideoWrite(1, 0x34)
	test.ExpectEquality(t, v.VideoRead(0), uint8(0x12))
	test.ExpectEquality(t, v.VideoRead(1), uint8(0x34))
	test.ExpectEquality(t, v.Writes[0], 1)
	test.ExpectEquality(t, v.Reads[1], 1)
	test.ExpectEquality(t, v.String(), "video: port0=12 port1=34")

	s := v.Snapshot()
	v.VideoWrite(0, 0xff)
	test.ExpectEquality(t, s.Ports[0], uint8(0x12))
}

func TestSound(t *testing.T) {
	s := regfile.NewSound()
	s.SoundWrite(0x9f)
	s.SoundWrite(0xbf)
	test.ExpectEquality(t, s.Last, uint8(0xbf))
	test.ExpectEquality(t, s.Writes, 2)
}

func TestClock(t *testing.T) {
	c := regfile.NewClock()
	for i := range regfile.NumClockRegisters {
		c.ClockWrite(i, uint8(i*3))
	}
	for i := range regfile.NumClockRegisters {
		test.ExpectEquality(t, c.ClockRead(i), uint8(i*3), i)
	}

	// register number wraps
	test.ExpectEquality(t, c.ClockRead(regfile.NumClockRegisters+1), uint8(3))
}

func TestSpeech(t *testing.T) {
	s := regfile.NewSpeech()
	s.SpeechWrite(0x60)
	test.ExpectEquality(t, s.SpeechRead(), uint8(0x60))
	test.ExpectEquality(t, s.String(), "speech: last=60")
}

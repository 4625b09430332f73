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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/test"
)

func TestNativeWindows(t *testing.T) {
	cases := []struct {
		addr   uint16
		offset uint16
		window memorymap.Window
	}{
		{0xf100, 0, memorymap.Video},
		{0xf102, 1, memorymap.Video},
		{0xf104, 0, memorymap.Video},
		{0xf107, 1, memorymap.Video},
		{0xf110, 0, memorymap.PageMap},
		{0xf117, 7, memorymap.PageMap},
		{0xf118, 0, memorymap.Keyboard},
		{0xf119, 0, memorymap.NoWindow},
		{0xf120, 0, memorymap.Sound},
		{0xf130, 0, memorymap.Clock},
		{0xf13f, 15, memorymap.Clock},
		{0xf140, 0, memorymap.NoWindow},

		// legacy windows are not present in the native layout
		{0x8000, 0, memorymap.NoWindow},
		{0x9800, 0, memorymap.NoWindow},
	}

	for _, c := range cases {
		for _, read := range []bool{true, false} {
			offset, window := memorymap.MapLogical(c.addr, memorymap.Native, read)
			test.ExpectEquality(t, window, c.window, c.addr)
			test.ExpectEquality(t, offset, c.offset, c.addr)
		}
	}
}

func TestLegacyWindows(t *testing.T) {
	cases := []struct {
		addr   uint16
		read   bool
		offset uint16
		window memorymap.Window
	}{
		{0x8800, true, 0, memorymap.Video},
		{0x8802, true, 1, memorymap.Video},
		{0x8800, false, 0, memorymap.Absorbed},
		{0x8c02, false, 1, memorymap.Video},
		{0x8c02, true, 0, memorymap.Absorbed},
		{0x8000, true, 0, memorymap.PageMap},
		{0x8007, false, 7, memorymap.PageMap},
		{0x8008, true, 0, memorymap.Keyboard},
		{0x8010, true, 0, memorymap.Clock},
		{0x801f, false, 15, memorymap.Clock},
		{0x8400, false, 0, memorymap.Sound},
		{0x9000, true, 0x9000, memorymap.Speech},
		{0x97fe, false, 0x97fe, memorymap.Speech},
		{0x9800, true, 0, memorymap.GROM},
		{0x9802, true, 1, memorymap.GROM},
		{0x9c02, false, 1, memorymap.GROM},
		{0xa000, true, 0, memorymap.NoWindow},
		{0xf118, true, 0, memorymap.NoWindow},
	}

	for _, c := range cases {
		offset, window := memorymap.MapLogical(c.addr, memorymap.Legacy, c.read)
		test.ExpectEquality(t, window, c.window, c.addr)
		test.ExpectEquality(t, offset, c.offset, c.addr)
	}
}

func TestSpeechAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.SpeechAddress(0x9000, false), uint32(0x079000))
	test.ExpectEquality(t, memorymap.SpeechAddress(0x9000, true), uint32(0x179000))
}

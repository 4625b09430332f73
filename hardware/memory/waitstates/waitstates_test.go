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

package waitstates_test

import (
	"testing"

	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/hardware/memory/modes"
	"github.com/jetsetilly/gopher9640/hardware/memory/waitstates"
	"github.com/jetsetilly/gopher9640/test"
)

func TestStandard(t *testing.T) {
	var f modes.Flags

	cases := []struct {
		area  memorymap.Area
		read  uint32
		write uint32
	}{
		{memorymap.DRAM, 1, 1},
		{memorymap.Unused, 1, 1},
		{memorymap.BootROM, 0, 0},
		{memorymap.SRAM, 0, 0},
		{memorymap.Unmapped, 0, 0},
		{memorymap.External, 1, 1},
	}

	for _, c := range cases {
		test.ExpectEquality(t, waitstates.Physical(f, c.area, true), c.read, c.area)
		test.ExpectEquality(t, waitstates.Physical(f, c.area, false), c.write, c.area)
	}

	// zero wait affects DRAM reads only
	f.ZeroWait = true
	test.ExpectEquality(t, waitstates.Physical(f, memorymap.DRAM, true), uint32(0))
	test.ExpectEquality(t, waitstates.Physical(f, memorymap.DRAM, false), uint32(1))
	test.ExpectEquality(t, waitstates.Physical(f, memorymap.External, true), uint32(1))

	// turbo has no effect on a standard board
	f.Turbo = true
	test.ExpectEquality(t, waitstates.Physical(f, memorymap.External, true), uint32(1))
	test.ExpectEquality(t, waitstates.Fixed(f, memorymap.Keyboard), uint32(1))
}

func TestGenmod(t *testing.T) {
	f := modes.Flags{HwModified: true}

	test.ExpectEquality(t, waitstates.Physical(f, memorymap.BootROM, true), uint32(0))
	test.ExpectEquality(t, waitstates.Physical(f, memorymap.DRAM, true), uint32(1))
	test.ExpectEquality(t, waitstates.Physical(f, memorymap.External, false), uint32(1))
	test.ExpectEquality(t, waitstates.Fixed(f, memorymap.Sound), uint32(1))

	f.Turbo = true
	test.ExpectEquality(t, waitstates.Physical(f, memorymap.DRAM, true), uint32(0))
	test.ExpectEquality(t, waitstates.Physical(f, memorymap.External, false), uint32(0))
	test.ExpectEquality(t, waitstates.Fixed(f, memorymap.Sound), uint32(0))
}

func TestVideoWait(t *testing.T) {
	f := modes.Flags{VideoWait: true}
	test.ExpectEquality(t, waitstates.Fixed(f, memorymap.Video), uint32(15))
	test.ExpectEquality(t, waitstates.Fixed(f, memorymap.Clock), uint32(1))

	f = modes.Flags{VideoWait: true, HwModified: true, Turbo: true}
	test.ExpectEquality(t, waitstates.Fixed(f, memorymap.Video), uint32(14))
}

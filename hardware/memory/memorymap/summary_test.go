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

func preset(t *testing.T, label string) memorymap.SRAMConfig {
	t.Helper()
	cfg, err := memorymap.SRAMPreset(label)
	test.DemandSuccess(t, err)
	return cfg
}

const standard64K = `000000 -> 07ffff	DRAM
080000 -> 0fffff	Unused
100000 -> 17ffff	External
180000 -> 1cffff	Unmapped
1d0000 -> 1dffff	SRAM
1e0000 -> 1fffff	BootROM
`

const standard32K = `000000 -> 07ffff	DRAM
080000 -> 0fffff	Unused
100000 -> 17ffff	External
180000 -> 1cffff	Unmapped
1d0000 -> 1d7fff	SRAM
1d8000 -> 1dffff	Unmapped
1e0000 -> 1fffff	BootROM
`

const standard384K = `000000 -> 07ffff	DRAM
080000 -> 0fffff	Unused
100000 -> 17ffff	External
180000 -> 1dffff	SRAM
1e0000 -> 1fffff	BootROM
`

const genmod = `000000 -> 1dffff	External
1e0000 -> 1fffff	BootROM
`

const genmodAlt = `000000 -> 07ffff	DRAM
080000 -> 1dffff	External
1e0000 -> 1fffff	BootROM
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(memorymap.Table{SRAM: preset(t, "64K")}), standard64K)
	test.ExpectEquality(t, memorymap.Summary(memorymap.Table{SRAM: preset(t, "32K")}), standard32K)
	test.ExpectEquality(t, memorymap.Summary(memorymap.Table{SRAM: preset(t, "384K")}), standard384K)

	// SRAM configuration has no effect on the genmod decode
	test.ExpectEquality(t, memorymap.Summary(memorymap.Table{HwModified: true, SRAM: preset(t, "384K")}), genmod)
	test.ExpectEquality(t, memorymap.Summary(memorymap.Table{HwModified: true, AltMemorySource: true}), genmodAlt)
}

func TestSRAMPresets(t *testing.T) {
	for _, c := range memorymap.SRAMPresets {
		test.ExpectEquality(t, c.Mask&0x180000, uint32(0x180000), c.Label)
		test.ExpectEquality(t, c.Value&0x180000, uint32(0x180000), c.Label)

		// the number of addresses that reach the SRAM chips must match the
		// size of the preset
		tbl := memorymap.Table{SRAM: c}
		var n int
		for p := uint32(0x180000); p < 0x200000; p++ {
			if tbl.IsArea(p, memorymap.SRAM) {
				n++
			}
		}
		test.ExpectEquality(t, n, c.Size, c.Label)
	}

	_, err := memorymap.SRAMPreset("128K")
	test.ExpectFailure(t, err)
}

// with the 64K preset only addresses in the SRAM region with 0xd in bits 16
// to 19 reach the SRAM chips
func TestSRAMGating(t *testing.T) {
	tbl := memorymap.Table{SRAM: preset(t, "64K")}

	for p := uint32(0x180000); p < 0x1e0000; p += 0x100 {
		offset, area := tbl.MapAddress(p)
		if p&0xf0000 == 0xd0000 {
			test.ExpectEquality(t, area, memorymap.SRAM, p)
			test.ExpectEquality(t, offset, p&0xffff, p)
		} else {
			test.ExpectEquality(t, area, memorymap.Unmapped, p)
		}
	}
}

// the 16K boot ROM image is mirrored across the 128K boot ROM region
func TestBootROMMirror(t *testing.T) {
	for _, tbl := range []memorymap.Table{
		{SRAM: preset(t, "64K")},
		{HwModified: true},
		{HwModified: true, AltMemorySource: true},
	} {
		for k := range uint32(memorymap.BootROMSize) {
			for m := range uint32(8) {
				p := memorymap.BootROMOrigin | m<<14 | k
				offset, area := tbl.MapAddress(p)
				test.DemandEquality(t, area, memorymap.BootROM)
				test.DemandEquality(t, offset, k)
			}
		}
	}
}

func TestStandardDecode(t *testing.T) {
	tbl := memorymap.Table{SRAM: preset(t, "64K")}

	offset, area := tbl.MapAddress(0x012345)
	test.ExpectEquality(t, area, memorymap.DRAM)
	test.ExpectEquality(t, offset, uint32(0x012345))

	_, area = tbl.MapAddress(0x0a0000)
	test.ExpectEquality(t, area, memorymap.Unused)

	offset, area = tbl.MapAddress(0x112345)
	test.ExpectEquality(t, area, memorymap.External)
	test.ExpectEquality(t, offset, uint32(0x012345))

	// bits above 21 are ignored
	offset, area = tbl.MapAddress(0xe12345)
	test.ExpectEquality(t, area, memorymap.DRAM)
	test.ExpectEquality(t, offset, uint32(0x012345))
}

func TestGenmodDecode(t *testing.T) {
	tbl := memorymap.Table{HwModified: true}

	// without the alternative memory source DRAM is not decoded
	offset, area := tbl.MapAddress(0x012345)
	test.ExpectEquality(t, area, memorymap.External)
	test.ExpectEquality(t, offset, uint32(0x012345))

	offset, area = tbl.MapAddress(0x1d2345)
	test.ExpectEquality(t, area, memorymap.External)
	test.ExpectEquality(t, offset, uint32(0x1d2345))

	tbl.AltMemorySource = true
	_, area = tbl.MapAddress(0x012345)
	test.ExpectEquality(t, area, memorymap.DRAM)
	_, area = tbl.MapAddress(0x092345)
	test.ExpectEquality(t, area, memorymap.External)
}

// addresses that differ only in bit 19 alias on the external bus of a
// standard board. they do not alias on a genmod board
func TestExternalTruncation(t *testing.T) {
	for k := uint32(0); k < 0x80000; k += 0x1234 {
		a := 0x100000 | k
		b := 0x180000 | k
		test.ExpectEquality(t, memorymap.ExternalAddress(a, false), memorymap.ExternalAddress(b, false))
		test.ExpectInequality(t, memorymap.ExternalAddress(a, true), memorymap.ExternalAddress(b, true))
	}
}

func TestAreaString(t *testing.T) {
	test.ExpectEquality(t, memorymap.BootROM.String(), "BootROM")
	test.ExpectEquality(t, memorymap.Undefined.String(), "undefined")
}

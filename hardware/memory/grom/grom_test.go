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

package grom_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher9640/hardware/memory/grom"
	"github.com/jetsetilly/gopher9640/logger"
	"github.com/jetsetilly/gopher9640/test"
)

func backing() []uint8 {
	b := make([]uint8, grom.BackingSize)
	for i := range b {
		b[i] = uint8(i ^ (i >> 8))
	}
	return b
}

func TestAddressLoad(t *testing.T) {
	g := grom.NewGROM(logger.Allow, backing())

	g.WriteAddress(0x12)
	test.ExpectEquality(t, g.Address(), uint16(0x1200))
	g.WriteAddress(0x34)

	// counter is incremented after the low byte is written
	test.ExpectEquality(t, g.Address(), uint16(0x1235))

	test.ExpectEquality(t, g.ReadAddress(), uint8(0x12))
	test.ExpectEquality(t, g.ReadAddress(), uint8(0x35))

	// and the read order alternates
	test.ExpectEquality(t, g.ReadAddress(), uint8(0x12))
}

func TestDataRead(t *testing.T) {
	b := backing()
	g := grom.NewGROM(logger.Allow, b)

	g.WriteAddress(0x20)
	g.WriteAddress(0xff)
	test.DemandEquality(t, g.Address(), uint16(0x2100))

	for i := range 16 {
		test.ExpectEquality(t, g.ReadData(), b[0x2100+i])
	}
	test.ExpectEquality(t, g.Address(), uint16(0x2110))
}

// a data read resets the half flags so the next address write is the high
// byte again
func TestDataReadResetsHalfFlags(t *testing.T) {
	g := grom.NewGROM(logger.Allow, backing())

	g.WriteAddress(0x40)
	g.ReadData()
	test.ExpectEquality(t, g.Address(), uint16(0x4001))

	g.WriteAddress(0x50)
	test.ExpectEquality(t, g.Address(), uint16(0x5001))

	g.ReadAddress()
	g.ReadData()
	test.ExpectEquality(t, g.ReadAddress(), uint8(0x50))
}

func TestWrap(t *testing.T) {
	b := backing()
	g := grom.NewGROM(logger.Allow, b)

	g.WriteAddress(0xff)
	g.WriteAddress(0xfe)
	test.ExpectEquality(t, g.ReadData(), b[0xffff])
	test.ExpectEquality(t, g.Address(), uint16(0x0000))
	test.ExpectEquality(t, g.ReadData(), b[0x0000])
}

func TestDataWrite(t *testing.T) {
	b := backing()
	g := grom.NewGROM(logger.Allow, b)

	w := &strings.Builder{}
	logger.SetEcho(w, false)
	defer logger.SetEcho(nil, false)

	g.WriteData(0xaa)
	test.ExpectEquality(t, b[0], uint8(0))
	test.ExpectEquality(t, w.String(), "grom: data write discarded (aa at 0000)\n")
}

func TestReset(t *testing.T) {
	g := grom.NewGROM(logger.Allow, backing())
	g.WriteAddress(0x12)
	s := g.Snapshot()
	g.Reset()
	test.ExpectEquality(t, g.Address(), uint16(0))
	test.ExpectEquality(t, s.String(), "address=1200 readLSB=false writeLSB=true")
}

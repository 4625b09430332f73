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

package addresses

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher9640/hardware/memory/cru"
	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
)

// CanonicalLegacySymbols lists the named addresses of the legacy layout.
// Addresses that are only readable or only writable are noted in the name.
var CanonicalLegacySymbols = map[uint16]string{
	0x8008: "KBD",
	0x8400: "SOUND",
	0x8800: "VDPRD",
	0x8802: "VDPSTA",
	0x8c00: "VDPWD",
	0x8c02: "VDPWA",
	0x9000: "SPCHRD",
	0x9400: "SPCHWT",
	0x9800: "GRMRD",
	0x9802: "GRMRA",
	0x9c00: "GRMWD",
	0x9c02: "GRMWA",
}

// CanonicalNativeSymbols lists the named addresses of the native layout.
var CanonicalNativeSymbols = map[uint16]string{
	0xf100: "VDP0",
	0xf102: "VDP1",
	0xf118: "KBD",
	0xf120: "SOUND",
}

// CanonicalCRUSymbols lists the names of the on-board control bits.
var CanonicalCRUSymbols = map[int]string{
	cru.BitTurbo:      "TURBO",
	cru.BitAltMemory:  "ALTMEM",
	cru.BitKbdReset:   "KBDRST",
	cru.BitPAL:        "PAL",
	cru.BitCapsLock:   "CAPS",
	cru.BitKbdClock:   "KBDCLK",
	cru.BitKeepBuffer: "KEEPBUF",
	cru.BitNative:     "NATIVE",
	cru.BitDirect:     "DIRECT",
	cru.BitCartPaged:  "CARTPG",
	cru.BitCart6Write: "CART6W",
	cru.BitCart7Write: "CART7W",
	cru.BitVideoWait:  "VIDWAIT",
	cru.BitZeroWait:   "ZEROWAIT",
}

// page map and clock registers are numbered so they are added by init()
// rather than listed above
func init() {
	for i := range memorymap.LogicalPages {
		CanonicalLegacySymbols[memorymap.OriginLegacyPageMap+uint16(i)] = fmt.Sprintf("PAGE%d", i)
		CanonicalNativeSymbols[memorymap.OriginNativePageMap+uint16(i)] = fmt.Sprintf("PAGE%d", i)
	}
	for i := range 16 {
		CanonicalLegacySymbols[memorymap.OriginLegacyClock+uint16(i)] = fmt.Sprintf("CLK%X", i)
		CanonicalNativeSymbols[memorymap.OriginNativeClock+uint16(i)] = fmt.Sprintf("CLK%X", i)
	}
}

func symbols(layout memorymap.Layout) map[uint16]string {
	if layout == memorymap.Native {
		return CanonicalNativeSymbols
	}
	return CanonicalLegacySymbols
}

// Symbol returns the canonical name of the address in the layout. The empty
// string is returned if the address has no name.
func Symbol(addr uint16, layout memorymap.Layout) string {
	return symbols(layout)[addr]
}

// Lookup returns the address of the named register in the layout. Names are
// not case sensitive.
func Lookup(name string, layout memorymap.Layout) (uint16, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for a, s := range symbols(layout) {
		if s == name {
			return a, true
		}
	}
	return 0, false
}

// LookupCRU returns the address of the named on-board control bit. Names are
// not case sensitive.
func LookupCRU(name string) (uint16, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for b, s := range CanonicalCRUSymbols {
		if s == name {
			return cru.Address(b), true
		}
	}
	return 0, false
}

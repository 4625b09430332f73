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

package memorymap

// Layout selects the set of fixed windows in the logical address space.
type Layout int

// List of valid Layout values.
const (
	Legacy Layout = iota
	Native
)

func (l Layout) String() string {
	switch l {
	case Legacy:
		return "legacy"
	case Native:
		return "native"
	}
	return "undefined"
}

// Window represents a fixed window in the logical address space. Fixed windows
// take priority over the page map.
type Window int

func (w Window) String() string {
	switch w {
	case NoWindow:
		return "none"
	case Video:
		return "video"
	case PageMap:
		return "page map"
	case Keyboard:
		return "keyboard"
	case Clock:
		return "clock"
	case Sound:
		return "sound"
	case Speech:
		return "speech"
	case GROM:
		return "GROM"
	case Absorbed:
		return "absorbed"
	}
	return "undefined"
}

// List of fixed windows. Absorbed is an access to a fixed window in the
// direction that window doesn't support. For example, a write to the legacy
// video read window. Absorbed accesses read as zero and write nothing.
const (
	NoWindow Window = iota
	Video
	PageMap
	Keyboard
	Clock
	Sound
	Speech
	GROM
	Absorbed
)

// Origin and memtop of the native fixed windows.
const (
	OriginNativeVideo   = uint16(0xf100)
	MemtopNativeVideo   = uint16(0xf107)
	OriginNativePageMap = uint16(0xf110)
	MemtopNativePageMap = uint16(0xf117)
	AddressNativeKeybd  = uint16(0xf118)
	AddressNativeSound  = uint16(0xf120)
	OriginNativeClock   = uint16(0xf130)
	MemtopNativeClock   = uint16(0xf13f)
)

// Origin and memtop of the legacy fixed windows.
const (
	OriginLegacyPageMap    = uint16(0x8000)
	MemtopLegacyPageMap    = uint16(0x8007)
	AddressLegacyKeybd     = uint16(0x8008)
	OriginLegacyClock      = uint16(0x8010)
	MemtopLegacyClock      = uint16(0x801f)
	AddressLegacySound     = uint16(0x8400)
	OriginLegacyVideoRead  = uint16(0x8800)
	MemtopLegacyVideoRead  = uint16(0x8807)
	OriginLegacyVideoWrite = uint16(0x8c00)
	MemtopLegacyVideoWrite = uint16(0x8c07)
	OriginLegacySpeech     = uint16(0x9000)
	MemtopLegacySpeech     = uint16(0x97ff)
	OriginLegacyGROM       = uint16(0x9800)
	MemtopLegacyGROM       = uint16(0x9fff)
)

// the legacy cartridge window. paging rules for this window are handled by
// the memory package
const (
	OriginCartridge = uint16(0x6000)
	MemtopCartridge = uint16(0x7fff)
	CartridgePage   = 3
)

// Speech window prefixes. The speech window is forwarded to the external bus
// with the prefix ORed into the logical address.
const (
	SpeechPrefix19 = uint32(0x070000)
	SpeechPrefix21 = uint32(0x170000)
)

// SpeechAddress returns the external bus address for an access to the legacy
// speech window.
func SpeechAddress(addr uint16, hwModified bool) uint32 {
	if hwModified {
		return SpeechPrefix21 | uint32(addr)
	}
	return SpeechPrefix19 | uint32(addr)
}

// MapLogical checks whether the logical address is inside one of the fixed
// windows of the layout. The offset returned depends on the window:
//
//	Video: port number (0 or 1)
//	PageMap: logical page (0 to 7)
//	Clock: clock register (0 to 15)
//	Speech: the logical address
//	GROM: port number (1 selects the address port)
//
// Windows are checked in priority order and the first match wins.
// If no window matches then NoWindow is returned and the address should be
// translated by the page map.
func MapLogical(addr uint16, layout Layout, read bool) (uint16, Window) {
	if layout == Native {
		return mapNative(addr)
	}
	return mapLegacy(addr, read)
}

func mapNative(addr uint16) (uint16, Window) {
	switch {
	case addr&0xfff8 == OriginNativeVideo:
		return (addr >> 1) & 0x01, Video
	case addr&0xfff8 == OriginNativePageMap:
		return addr & 0x07, PageMap
	case addr == AddressNativeKeybd:
		return 0, Keyboard
	case addr&0xfff0 == OriginNativeClock:
		return addr & 0x0f, Clock
	case addr == AddressNativeSound:
		return 0, Sound
	}
	return 0, NoWindow
}

func mapLegacy(addr uint16, read bool) (uint16, Window) {
	switch {
	case addr&0xfff8 == OriginLegacyVideoRead:
		if !read {
			return 0, Absorbed
		}
		return (addr >> 1) & 0x01, Video
	case addr&0xfff8 == OriginLegacyVideoWrite:
		if read {
			return 0, Absorbed
		}
		return (addr >> 1) & 0x01, Video
	case addr&0xfff8 == OriginLegacyPageMap:
		return addr & 0x07, PageMap
	case addr == AddressLegacyKeybd:
		return 0, Keyboard
	case addr&0xfff0 == OriginLegacyClock:
		return addr & 0x0f, Clock
	case addr == AddressLegacySound:
		return 0, Sound
	case addr&0xf800 == OriginLegacySpeech:
		return addr, Speech
	case addr&0xf800 == OriginLegacyGROM:
		return (addr >> 1) & 0x01, GROM
	}
	return 0, NoWindow
}

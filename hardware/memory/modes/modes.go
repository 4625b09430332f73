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

// Package modes implements the mode controller of the board. The controller
// holds the mode flags, selects the fixed window layout and the physical
// decode table, and requests a system reset when the boot memory source is
// changed.
//
// Most flags are set through the control register bank (see the cru package).
// The HwModified flag is fixed when the controller is created.
package modes

import (
	"strings"

	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/logger"
)

// Flags is the complete set of mode flags.
type Flags struct {
	// native mode selects the native fixed window layout. legacy layout
	// otherwise
	Native bool

	// direct mode maps the entire logical address space onto the boot ROM
	// region. the board powers up in direct mode
	Direct bool

	// the legacy cartridge window. note that CartridgePaged set to false is
	// the mode in which the window is paged by writing to it. when true the
	// window is translated normally by the page map
	CartridgePaged      bool
	CartridgeSecondPage bool
	Cartridge6Writable  bool
	Cartridge7Writable  bool

	// wait state control
	ZeroWait  bool
	VideoWait bool

	PALVideo bool
	CapsLock bool

	// board has the hardware modification
	HwModified bool

	// genmod only
	Turbo           bool
	AltMemorySource bool
}

func (f Flags) String() string {
	s := strings.Builder{}

	flag := func(set bool, label string) {
		if set {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(label)
		}
	}

	flag(f.HwModified, "genmod")
	flag(f.Native, "native")
	flag(!f.Native, "legacy")
	flag(f.Direct, "direct")
	flag(f.CartridgePaged, "cartpaged")
	flag(f.CartridgeSecondPage, "cartpage2")
	flag(f.Cartridge6Writable, "cart6w")
	flag(f.Cartridge7Writable, "cart7w")
	flag(f.ZeroWait, "zerowait")
	flag(f.VideoWait, "videowait")
	flag(f.PALVideo, "pal")
	flag(f.CapsLock, "caps")
	flag(f.Turbo, "turbo")
	flag(f.AltMemorySource, "altmem")

	return s.String()
}

// Config is the fixed configuration of the controller.
type Config struct {
	HwModified bool
	SRAM       memorymap.SRAMConfig

	// the value of the Turbo flag after a reset
	Turbo bool
}

// Controller holds the mode flags of the board.
type Controller struct {
	perm logger.Permission

	flags Flags
	sram  memorymap.SRAMConfig
	turbo bool

	// called whenever the board requests a full system reset
	resetRequest func()
}

// NewController is the preferred method of initialisation for the Controller
// type. The resetRequest argument can be nil.
func NewController(perm logger.Permission, cfg Config, resetRequest func()) *Controller {
	ctl := &Controller{
		perm:         perm,
		sram:         cfg.SRAM,
		turbo:        cfg.Turbo,
		resetRequest: resetRequest,
	}
	ctl.flags.HwModified = cfg.HwModified
	ctl.Reset()
	return ctl
}

// Snapshot creates a copy of the Controller in its current state.
func (ctl *Controller) Snapshot() *Controller {
	n := *ctl
	return &n
}

// Plumb a new reset request function into the Controller. Used after
// Snapshot() so that the copy does not request resets from the original board.
func (ctl *Controller) Plumb(resetRequest func()) {
	ctl.resetRequest = resetRequest
}

func (ctl *Controller) String() string {
	return ctl.flags.String()
}

// Reset restores the power-on value of the flags. HwModified and
// AltMemorySource are not affected.
func (ctl *Controller) Reset() {
	ctl.flags = Flags{
		Direct:          true,
		HwModified:      ctl.flags.HwModified,
		AltMemorySource: ctl.flags.AltMemorySource,
	}
	if ctl.flags.HwModified {
		ctl.flags.Turbo = ctl.turbo
	}
}

// Flags returns a copy of the current flags.
func (ctl *Controller) Flags() Flags {
	return ctl.flags
}

// Layout returns the fixed window layout for the current mode.
func (ctl *Controller) Layout() memorymap.Layout {
	if ctl.flags.Native {
		return memorymap.Native
	}
	return memorymap.Legacy
}

// Table returns the physical decode table for the current mode.
func (ctl *Controller) Table() memorymap.Table {
	return memorymap.Table{
		HwModified:      ctl.flags.HwModified,
		AltMemorySource: ctl.flags.AltMemorySource,
		SRAM:            ctl.sram,
	}
}

// SRAM returns the fitted SRAM configuration.
func (ctl *Controller) SRAM() memorymap.SRAMConfig {
	return ctl.sram
}

// SetNativeMode selects native or legacy mode.
func (ctl *Controller) SetNativeMode(v bool) {
	ctl.flags.Native = v
}

// SetDirectMode sets or clears direct mode.
func (ctl *Controller) SetDirectMode(v bool) {
	ctl.flags.Direct = v
}

// SetHwAltMemorySource selects the boot memory source of a genmod board. Every
// call requests a system reset, even if the value hasn't changed.
func (ctl *Controller) SetHwAltMemorySource(v bool) {
	if !ctl.flags.HwModified {
		logger.Log(ctl.perm, "modes", "alternative memory source ignored on standard board")
		return
	}
	ctl.flags.AltMemorySource = v
	if ctl.resetRequest != nil {
		ctl.resetRequest()
	}
}

// SetTurbo sets the turbo flag of a genmod board.
func (ctl *Controller) SetTurbo(v bool) {
	if !ctl.flags.HwModified {
		logger.Log(ctl.perm, "modes", "turbo ignored on standard board")
		return
	}
	ctl.flags.Turbo = v
}

// SetCartridgePaged sets the paging mode of the legacy cartridge window.
func (ctl *Controller) SetCartridgePaged(v bool) {
	ctl.flags.CartridgePaged = v
}

// SetCartridgeSecondPage selects the sub-page of the legacy cartridge window.
func (ctl *Controller) SetCartridgeSecondPage(v bool) {
	ctl.flags.CartridgeSecondPage = v
}

// SetCartridgeWritable sets the write protection of one half of the legacy
// cartridge window. Half 0 is the 0x6000 half and half 1 is the 0x7000 half.
func (ctl *Controller) SetCartridgeWritable(half int, v bool) {
	switch half {
	case 0:
		ctl.flags.Cartridge6Writable = v
	case 1:
		ctl.flags.Cartridge7Writable = v
	default:
		logger.Logf(ctl.perm, "modes", "no such cartridge half (%d)", half)
	}
}

// SetZeroWait sets the zero wait state flag.
func (ctl *Controller) SetZeroWait(v bool) {
	ctl.flags.ZeroWait = v
}

// SetVideoWait sets the video wait state flag.
func (ctl *Controller) SetVideoWait(v bool) {
	ctl.flags.VideoWait = v
}

// SetPALVideo sets the PAL video flag.
func (ctl *Controller) SetPALVideo(v bool) {
	ctl.flags.PALVideo = v
}

// SetCapsLock sets the caps lock flag.
func (ctl *Controller) SetCapsLock(v bool) {
	ctl.flags.CapsLock = v
}

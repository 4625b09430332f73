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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher9640/curated"
	"github.com/jetsetilly/gopher9640/environment"
	"github.com/jetsetilly/gopher9640/hardware/memory/bus"
	"github.com/jetsetilly/gopher9640/hardware/memory/cru"
	"github.com/jetsetilly/gopher9640/hardware/memory/grom"
	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/hardware/memory/modes"
	"github.com/jetsetilly/gopher9640/hardware/memory/onboard"
	"github.com/jetsetilly/gopher9640/hardware/memory/pagemap"
)

// Peripherals are the collaborators of the memory system. Any of the fields
// can be nil. Reads from a missing peripheral return zero and writes to it are
// ignored.
type Peripherals struct {
	Video    bus.VideoChip
	Sound    bus.SoundChip
	Clock    bus.ClockChip
	External bus.ExternalBus
	Keyboard bus.KeyboardQueue

	// called when the board requests a full system reset. if ResetRequest is
	// nil then the memory system resets itself
	ResetRequest func()
}

// Memory is the memory system of the board. It implements the bus.CPUBus,
// bus.ControlBus and bus.DebugBus interfaces.
type Memory struct {
	env    *environment.Environment
	periph Peripherals

	PageMap *pagemap.PageMap
	Modes   *modes.Controller
	CRU     *cru.Bank
	GROM    *grom.GROM

	DRAM    *onboard.RAM
	SRAM    *onboard.RAM
	BootROM *onboard.BootROM

	// number of accesses plus the number of wait cycles since the last cold
	// start
	cycles uint64

	// the most recent CPU access
	LastAccess Access
}

// NewMemory is the preferred method of initialisation for the Memory type.
//
// The board configuration is taken from the environment's preferences. The
// bootrom argument must be a valid boot ROM image. Without one the board
// cannot start and so an error is returned.
func NewMemory(env *environment.Environment, bootrom []uint8, periph Peripherals) (*Memory, error) {
	rom, err := onboard.NewBootROM(bootrom)
	if err != nil {
		return nil, curated.Errorf("memory: %v", err)
	}

	sram := env.Prefs.SRAMConfig()

	mem := &Memory{
		env:     env,
		periph:  periph,
		PageMap: pagemap.NewPageMap(),
		DRAM:    onboard.NewRAM("DRAM", memorymap.DRAMSize),
		SRAM:    onboard.NewRAM("SRAM", sram.Size),
		BootROM: rom,
	}

	mem.Modes = modes.NewController(env, modes.Config{
		HwModified: env.Prefs.Genmod.Get().(bool),
		SRAM:       sram,
		Turbo:      env.Prefs.Turbo.Get().(bool),
	}, mem.resetRequest)

	mem.CRU = cru.NewBank(env, mem.Modes, periph.Keyboard, periph.External)
	mem.GROM = grom.NewGROM(env, mem.gromBacking())

	// random numbers used by the emulation are sensitive to the cycle count
	env.Random.SetClock(mem)

	mem.ColdStart()

	return mem, nil
}

func (mem *Memory) gromBacking() []uint8 {
	return mem.DRAM.Data[grom.BackingOrigin : grom.BackingOrigin+grom.BackingSize]
}

func (mem *Memory) resetRequest() {
	if mem.periph.ResetRequest != nil {
		mem.periph.ResetRequest()
		return
	}
	mem.Reset()
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("modes: %s\n", mem.Modes))
	s.WriteString(fmt.Sprintf("pages: %s\n", mem.PageMap))
	s.WriteString(fmt.Sprintf("sram: %s\n", mem.Modes.SRAM().Label))
	s.WriteString(fmt.Sprintf("grom: %s\n", mem.GROM))
	s.WriteString(fmt.Sprintf("cru: %s\n", mem.CRU))
	return s.String()
}

// Snapshot creates a copy of the memory system in its current state. The
// peripherals are shared with the original.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.PageMap = mem.PageMap.Snapshot()
	n.Modes = mem.Modes.Snapshot()
	n.Modes.Plumb(n.resetRequest)
	n.DRAM = mem.DRAM.Snapshot()
	n.SRAM = mem.SRAM.Snapshot()
	n.CRU = mem.CRU.Snapshot()
	n.CRU.Plumb(n.Modes)
	n.GROM = mem.GROM.Snapshot()
	n.GROM.Plumb(n.gromBacking())
	return &n
}

// Reset the board. The mode flags return to their power-on values and every
// page is mapped to physical page zero. The contents of DRAM and SRAM are not
// affected.
func (mem *Memory) Reset() {
	mem.Modes.Reset()
	mem.PageMap.Reset()
	mem.CRU.Reset()
	mem.GROM.Reset()
	mem.LastAccess = Access{}
}

// ColdStart resets the board and clears the contents of DRAM and SRAM. If
// the RandomState preference is set the contents are randomised instead.
func (mem *Memory) ColdStart() {
	mem.cycles = 0
	mem.Reset()

	if mem.env.Prefs.RandomState.Get().(bool) {
		mem.DRAM.Clear(mem.env.Random)
		mem.SRAM.Clear(mem.env.Random)
	} else {
		mem.DRAM.Clear(nil)
		mem.SRAM.Clear(nil)
	}
}

// Cycles returns the number of accesses plus the number of wait cycles since
// the last cold start. Implements the random.Clock interface.
func (mem *Memory) Cycles() uint64 {
	return mem.cycles
}

// CRURead implements the bus.ControlBus interface.
func (mem *Memory) CRURead(address uint16) bool {
	return mem.CRU.Read(address)
}

// CRUWrite implements the bus.ControlBus interface.
func (mem *Memory) CRUWrite(address uint16, bit bool) {
	mem.CRU.Write(address, bit)
}

// KeyboardPoll should be called by the host after adding to the keyboard
// queue. It retries the transfer of the front of the queue into the keyboard
// latch.
func (mem *Memory) KeyboardPoll() {
	mem.CRU.Poll()
}

// State is a summary of the memory system that excludes the contents of the
// memories.
type State struct {
	Flags          modes.Flags
	Pages          [memorymap.LogicalPages]uint8
	SRAM           memorymap.SRAMConfig
	GROMAddress    uint16
	Latch          uint8
	LatchAvailable bool
	Cycles         uint64
	LastAccess     Access
}

// State returns the current State of the memory system.
func (mem *Memory) State() State {
	return State{
		Flags:          mem.Modes.Flags(),
		Pages:          mem.PageMap.Pages(),
		SRAM:           mem.Modes.SRAM(),
		GROMAddress:    mem.GROM.Address(),
		Latch:          mem.CRU.Latch(),
		LatchAvailable: mem.CRU.LatchAvailable(),
		Cycles:         mem.cycles,
		LastAccess:     mem.LastAccess,
	}
}

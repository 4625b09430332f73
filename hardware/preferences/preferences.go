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

package preferences

import (
	"github.com/jetsetilly/gopher9640/curated"
	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/prefs"
	"github.com/jetsetilly/gopher9640/resources"
)

// the file name of the preferences file in the resources directory
const prefsFile = "preferences"

// Preferences defines and collates all the preference values used by the
// board emulation.
type Preferences struct {
	dsk *prefs.Disk

	// label of the fitted SRAM preset. one of the labels in
	// memorymap.SRAMPresets
	SRAM prefs.String

	// board has the hardware modification fitted
	Genmod prefs.Bool

	// default value of the turbo flag after a reset. only meaningful for
	// genmod boards
	Turbo prefs.Bool

	// initialise DRAM and SRAM to an unknown state on a cold start
	RandomState prefs.Bool

	// file names of the boot ROM images for standard and genmod boards
	BootROM       prefs.String
	GenmodBootROM prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resources
// directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences except that the
// location of the preferences file is specified explicitly.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// SRAM label must name one of the presets
	p.SRAM.SetHookPre(func(v prefs.Value) error {
		_, err := memorymap.SRAMPreset(v.(string))
		return err
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("board.sram", &p.SRAM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("board.genmod", &p.Genmod)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("board.turbo", &p.Turbo)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("board.randomState", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("board.bootrom", &p.BootROM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("board.genmodBootrom", &p.GenmodBootROM)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.SRAM.Set(memorymap.DefaultSRAM)
	p.Genmod.Set(false)
	p.Turbo.Set(false)
	p.RandomState.Set(false)
	p.BootROM.Set("roms/boot.bin")
	p.GenmodBootROM.Set("roms/genmod.bin")
}

// SRAMConfig returns the SRAM configuration named by the SRAM preference.
func (p *Preferences) SRAMConfig() memorymap.SRAMConfig {
	cfg, err := memorymap.SRAMPreset(p.SRAM.String())
	if err != nil {
		// the pre hook prevents an invalid label being stored
		cfg, _ = memorymap.SRAMPreset(memorymap.DefaultSRAM)
	}
	return cfg
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

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

package script_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher9640/curated"
	"github.com/jetsetilly/gopher9640/environment"
	"github.com/jetsetilly/gopher9640/hardware/memory"
	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gopher9640/hardware/preferences"
	"github.com/jetsetilly/gopher9640/script"
	"github.com/jetsetilly/gopher9640/test"
)

func newScript(t *testing.T) (*script.Script, *memory.Memory, *test.CompareWriter) {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(nil, prefs)
	test.DemandSuccess(t, err)

	queue := keyboard.NewQueue(2)
	mem, err := memory.NewMemory(env, make([]uint8, memorymap.BootROMSize), memory.Peripherals{
		Keyboard: queue,
	})
	test.DemandSuccess(t, err)

	out := &test.CompareWriter{}
	scr := script.NewScript(mem, queue, out)
	t.Cleanup(scr.Close)

	return scr, mem, out
}

// leaves direct mode, selects native mode and writes through a page
const pageScript = `
cru(0x1ef4, false)
cru(0x1ef2, 0)
write(0xf112, 0x12)
print(read(0xf112))
print(write(0x4010, 0x99))
print(peek(0x24010))
`

func TestReadWrite(t *testing.T) {
	scr, mem, out := newScript(t)

	test.DemandSuccess(t, scr.Run(context.Background(), pageScript))
	test.ExpectEquality(t, out.Diff("18\t1\n1\n153\n"), "")
	test.ExpectSuccess(t, mem.Modes.Flags().Native)
	test.ExpectFailure(t, mem.Modes.Flags().Direct)
}

func TestPeekPoke(t *testing.T) {
	scr, mem, out := newScript(t)

	test.DemandSuccess(t, scr.Run(context.Background(), `
poke(0x1e0000, 0xc3)
print(peek(0x1e4000))
print(decode(0x0000))
`))
	test.ExpectEquality(t, out.Diff("195\n0000 read: 1e0000 BootROM 000000 [0]\n"), "")

	v, err := mem.Peek(0x1e0000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xc3))

	// peek of an address with no memory stops the script
	err = scr.Run(context.Background(), `peek(0x100000)`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, script.RunError))
}

func TestArgumentRange(t *testing.T) {
	scr, _, _ := newScript(t)
	test.ExpectFailure(t, scr.Run(context.Background(), `write(0x10000, 0)`))
	test.ExpectFailure(t, scr.Run(context.Background(), `write(0x0000, 0x100)`))
	test.ExpectFailure(t, scr.Run(context.Background(), `cru(0x1ef4, "yes")`))
}

func TestKeyboard(t *testing.T) {
	scr, mem, out := newScript(t)

	test.DemandSuccess(t, scr.Run(context.Background(), `
cru(0x1eee, true)
cru(0x1ef0, true)
key(0x1c)
print(read(0x8008))
`))
	test.ExpectEquality(t, out.String(), "28\t1\n")
	test.ExpectSuccess(t, mem.CRU.LatchAvailable())

	// the queue has a capacity of two
	err := scr.Run(context.Background(), `key(1) key(2)`)
	test.ExpectSuccess(t, curated.Is(err, script.RunError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "queue is full"))
}

func TestResetFromScript(t *testing.T) {
	scr, mem, _ := newScript(t)

	test.DemandSuccess(t, scr.Run(context.Background(), `
cru(0x1ef4, false)
write(0x8000, 0x01)
write(0x0000, 0x42)
reset()
`))
	test.ExpectSuccess(t, mem.Modes.Flags().Direct)
	test.ExpectEquality(t, mem.PageMap.Read(0), uint8(0x00))
	v, _ := mem.Peek(0x2000)
	test.ExpectEquality(t, v, uint8(0x42))

	test.DemandSuccess(t, scr.Run(context.Background(), `coldstart()`))
	v, _ = mem.Peek(0x2000)
	test.ExpectEquality(t, v, uint8(0x00))
}

func TestSymbols(t *testing.T) {
	scr, mem, out := newScript(t)

	test.DemandSuccess(t, scr.Run(context.Background(), `
cru(crubit("direct"), false)
write(addr("grmwa"), 0x12)
write(addr("grmwa"), 0x34)
cru(crubit("native"), false)
print(addr("kbd"))
`))
	test.ExpectEquality(t, mem.GROM.Address(), uint16(0x1235))
	test.ExpectEquality(t, out.String(), "61720\n")

	// GROM is not in the native layout
	test.ExpectFailure(t, scr.Run(context.Background(), `addr("grmwa")`))
	test.ExpectFailure(t, scr.Run(context.Background(), `crubit("nosuchbit")`))
}

func TestCancel(t *testing.T) {
	scr, _, _ := newScript(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectFailure(t, scr.Run(ctx, `while true do read(0) end`))
}

func TestRunFile(t *testing.T) {
	scr, _, out := newScript(t)

	pth := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(pth, []byte(`print("hello", 1)`), 0o600))
	test.DemandSuccess(t, scr.RunFile(context.Background(), pth))
	test.ExpectEquality(t, out.String(), "hello\t1\n")

	test.ExpectFailure(t, scr.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua")))
}

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

package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher9640/curated"
	"github.com/jetsetilly/gopher9640/hardware/memory"
	"github.com/jetsetilly/gopher9640/hardware/memory/addresses"
	"github.com/jetsetilly/gopher9640/hardware/peripherals/keyboard"
	lua "github.com/yuin/gopher-lua"
)

// RunError is the curated error pattern returned by Run() and RunFile() when
// the script fails.
const RunError = "script: %v"

// Script is a Lua interpreter connected to a memory system.
type Script struct {
	mem   *memory.Memory
	queue *keyboard.Queue
	out   io.Writer
	L     *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// The queue argument should be the keyboard queue that the memory system
// was created with. It can be nil, in which case the key() function raises
// an error.
func NewScript(mem *memory.Memory, queue *keyboard.Queue, out io.Writer) *Script {
	scr := &Script{
		mem:   mem,
		queue: queue,
		out:   out,
		L:     lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"read":      scr.read,
		"write":     scr.write,
		"cru":       scr.cru,
		"peek":      scr.peek,
		"poke":      scr.poke,
		"decode":    scr.decode,
		"key":       scr.key,
		"reset":     scr.reset,
		"coldstart": scr.coldstart,
		"state":     scr.state,
		"addr":      scr.addr,
		"crubit":    scr.crubit,
		"print":     scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the interpreter. The Script cannot be used after calling Close().
func (scr *Script) Close() {
	scr.L.Close()
}

// Run the Lua source. The context can be used to stop a long running script.
func (scr *Script) Run(ctx context.Context, src string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()
	if err := scr.L.DoString(src); err != nil {
		return curated.Errorf(RunError, err)
	}
	return nil
}

// RunFile runs the Lua source in the named file.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(RunError, err)
	}
	return nil
}

func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, fmt.Sprintf("logical address out of range (%#x)", v))
	}
	return uint16(v)
}

func checkPhysical(L *lua.LState, n int) uint32 {
	v := L.CheckInt(n)
	if v < 0 {
		L.ArgError(n, fmt.Sprintf("physical address out of range (%#x)", v))
	}
	return uint32(v)
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, fmt.Sprintf("value out of range (%#x)", v))
	}
	return uint8(v)
}

func (scr *Script) read(L *lua.LState) int {
	v, w := scr.mem.Read(checkAddress(L, 1))
	L.Push(lua.LNumber(v))
	L.Push(lua.LNumber(w))
	return 2
}

func (scr *Script) write(L *lua.LState) int {
	w := scr.mem.Write(checkAddress(L, 1), checkByte(L, 2))
	L.Push(lua.LNumber(w))
	return 1
}

func (scr *Script) cru(L *lua.LState) int {
	addr := checkAddress(L, 1)
	if L.GetTop() < 2 {
		L.Push(lua.LBool(scr.mem.CRURead(addr)))
		return 1
	}

	// accept 0 and 1 as well as booleans
	var bit bool
	switch v := L.Get(2).(type) {
	case lua.LBool:
		bit = bool(v)
	case lua.LNumber:
		bit = v != 0
	default:
		L.TypeError(2, lua.LTBool)
	}
	scr.mem.CRUWrite(addr, bit)
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.mem.Peek(checkPhysical(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	if err := scr.mem.Poke(checkPhysical(L, 1), checkByte(L, 2)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) decode(L *lua.LState) int {
	acc := scr.mem.Decode(checkAddress(L, 1), L.OptBool(2, true))
	L.Push(lua.LString(acc.String()))
	return 1
}

func (scr *Script) key(L *lua.LState) int {
	if scr.queue == nil {
		L.RaiseError("no keyboard queue")
	}
	if err := scr.queue.Push(checkByte(L, 1)); err != nil {
		L.RaiseError("%v", err)
	}
	scr.mem.KeyboardPoll()
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.mem.Reset()
	return 0
}

func (scr *Script) coldstart(L *lua.LState) int {
	scr.mem.ColdStart()
	return 0
}

func (scr *Script) state(L *lua.LState) int {
	L.Push(lua.LString(scr.mem.String()))
	return 1
}

func (scr *Script) addr(L *lua.LState) int {
	name := L.CheckString(1)
	a, ok := addresses.Lookup(name, scr.mem.Modes.Layout())
	if !ok {
		L.RaiseError("no register named %s in %s layout", name, scr.mem.Modes.Layout())
	}
	L.Push(lua.LNumber(a))
	return 1
}

func (scr *Script) crubit(L *lua.LState) int {
	name := L.CheckString(1)
	a, ok := addresses.LookupCRU(name)
	if !ok {
		L.RaiseError("no control bit named %s", name)
	}
	L.Push(lua.LNumber(a))
	return 1
}

func (scr *Script) print(L *lua.LState) int {
	if scr.out == nil {
		return 0
	}
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	io.WriteString(scr.out, strings.Join(s, "\t"))
	io.WriteString(scr.out, "\n")
	return 0
}

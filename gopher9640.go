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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher9640/bootrom"
	"github.com/jetsetilly/gopher9640/environment"
	"github.com/jetsetilly/gopher9640/hardware/memory"
	"github.com/jetsetilly/gopher9640/hardware/memory/addresses"
	"github.com/jetsetilly/gopher9640/hardware/memory/cru"
	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/hardware/peripherals/expansion"
	"github.com/jetsetilly/gopher9640/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gopher9640/hardware/peripherals/regfile"
	"github.com/jetsetilly/gopher9640/hardware/preferences"
	"github.com/jetsetilly/gopher9640/logger"
	"github.com/jetsetilly/gopher9640/modalflag"
	"github.com/jetsetilly/gopher9640/prefs"
	"github.com/jetsetilly/gopher9640/script"
	"github.com/jetsetilly/gopher9640/statsview"
	"github.com/jetsetilly/gopher9640/version"
	"golang.org/x/term"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// ctrl-c stops any running script
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("MAP", "SCRIPT", "DUMP")

	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "launch runtime statistics server")
	cmdline := md.AddString("prefs", "", "preferences for this run only (key::value; ...)")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	if *log {
		logger.SetEcho(echoWriter(output), true)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(output, "")
	}

	switch md.Mode() {
	case "MAP":
		err = mapMode(md, output, *cmdline)
	case "SCRIPT":
		err = scriptMode(ctx, md, output, *cmdline)
	case "DUMP":
		err = dumpMode(ctx, md, output, *cmdline)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// the colorizer is only used when the output is a terminal
func echoWriter(output io.Writer) io.Writer {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return logger.NewColorizer(output)
	}
	return output
}

// flags common to every mode that creates a board
type boardFlags struct {
	genmod      *bool
	turbo       *bool
	sram        *string
	randomState *bool
	bootrom     *string
}

func addBoardFlags(md *modalflag.Modes) boardFlags {
	return boardFlags{
		genmod:      md.AddBool("genmod", false, "board has the hardware modification"),
		turbo:       md.AddBool("turbo", false, "turbo after reset (genmod only)"),
		sram:        md.AddString("sram", memorymap.DefaultSRAM, "fitted SRAM: 32K, 64K, 384K"),
		randomState: md.AddBool("random", false, "randomise memory on cold start"),
		bootrom:     md.AddString("bootrom", "", "boot ROM image (overrides preferences)"),
	}
}

// newEnvironment creates the preferences for the board. flags that have been
// set on the command line take priority over the preferences file but are not
// saved to it
func newEnvironment(md *modalflag.Modes, bf boardFlags, cmdline string) (*environment.Environment, error) {
	var s strings.Builder
	s.WriteString(cmdline)

	md.Visit(func(flg string) {
		switch flg {
		case "genmod":
			fmt.Fprintf(&s, "; board.genmod::%v", *bf.genmod)
		case "turbo":
			fmt.Fprintf(&s, "; board.turbo::%v", *bf.turbo)
		case "sram":
			fmt.Fprintf(&s, "; board.sram::%s", *bf.sram)
		case "random":
			fmt.Fprintf(&s, "; board.randomState::%v", *bf.randomState)
		}
	})

	prefs.PushCommandLineStack(s.String())
	p, err := preferences.NewPreferences()
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, err
	}
	if unused != "" {
		logger.Logf(logger.Allow, "gopher9640", "unused preferences: %s", unused)
	}

	return environment.NewEnvironment(nil, p)
}

func loadBootROM(env *environment.Environment, bf boardFlags) ([]uint8, error) {
	ld := bootrom.NewLoader(env.Prefs)
	if *bf.bootrom != "" {
		ld = bootrom.NewLoaderFromFilename(*bf.bootrom, ld.Genmod)
	}
	if err := ld.Load(); err != nil {
		return nil, err
	}
	logger.Logf(env, "bootrom", "loaded %s [%s]", ld, ld.Hash)
	return ld.Data, nil
}

// board is a memory system with the reference peripherals attached
type board struct {
	mem   *memory.Memory
	queue *keyboard.Queue
	box   *expansion.Box
}

func newBoard(env *environment.Environment, image []uint8, memcard bool) (*board, error) {
	b := &board{
		queue: keyboard.NewQueue(0),
		box:   expansion.NewBox(),
	}

	if memcard {
		if err := b.box.AddCard(expansion.NewMemoryCard(expansion.DefaultMemoryCRU)); err != nil {
			return nil, err
		}
	}
	if err := b.box.AddCard(expansion.NewSpeechCard(regfile.NewSpeech())); err != nil {
		return nil, err
	}

	var err error
	b.mem, err = memory.NewMemory(env, image, memory.Peripherals{
		Video:    regfile.NewVideo(),
		Sound:    regfile.NewSound(),
		Clock:    regfile.NewClock(),
		External: b.box,
		Keyboard: b.queue,
	})
	if err != nil {
		return nil, err
	}

	logger.Logf(env, "gopher9640", "%s", b.box)

	return b, nil
}

// numbers on the command line are always hexadecimal. the prefixes 0x and $
// are allowed but not required
func parseNumber(s string, bits int) (uint64, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.TrimPrefix(n, "$")
	n = strings.TrimPrefix(n, "0x")
	v, err := strconv.ParseUint(n, 16, bits)
	if err != nil {
		return 0, fmt.Errorf("not a %d bit hexadecimal number (%s)", bits, s)
	}
	return v, nil
}

func mapMode(md *modalflag.Modes, output io.Writer, cmdline string) error {
	md.NewMode()
	md.AdditionalHelp("arguments are logical addresses or register names to decode. with no\narguments the physical address map is printed")

	bf := addBoardFlags(md)
	native := md.AddBool("native", false, "native mode")
	direct := md.AddBool("direct", false, "direct mode")
	alt := md.AddBool("alt", false, "alternative memory source (genmod only)")
	pages := md.AddString("pages", "", "page map values (comma separated)")
	write := md.AddBool("write", false, "decode as write accesses")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := newEnvironment(md, bf, cmdline)
	if err != nil {
		return err
	}

	// the contents of the boot ROM don't affect the decode
	b, err := newBoard(env, make([]uint8, memorymap.BootROMSize), false)
	if err != nil {
		return err
	}

	// selecting the memory source resets the board so it must happen first
	if *alt {
		b.mem.CRUWrite(cru.Address(cru.BitAltMemory), true)
	}
	b.mem.CRUWrite(cru.Address(cru.BitDirect), *direct)
	b.mem.CRUWrite(cru.Address(cru.BitNative), !*native)

	if *pages != "" {
		for i, s := range strings.Split(*pages, ",") {
			if i >= memorymap.LogicalPages {
				return fmt.Errorf("too many pages")
			}
			v, err := parseNumber(s, 8)
			if err != nil {
				return err
			}
			b.mem.PageMap.Write(i, uint8(v))
		}
	}

	if len(md.RemainingArgs()) == 0 {
		io.WriteString(output, memorymap.Summary(b.mem.Modes.Table()))
		return nil
	}

	layout := b.mem.Modes.Layout()

	for _, a := range md.RemainingArgs() {
		addr, ok := addresses.Lookup(a, layout)
		if !ok {
			v, err := parseNumber(a, 16)
			if err != nil {
				return err
			}
			addr = uint16(v)
		}

		acc := b.mem.Decode(addr, !*write)
		if sym := addresses.Symbol(addr, layout); sym != "" {
			fmt.Fprintf(output, "%s\t%s\n", acc, sym)
		} else {
			fmt.Fprintln(output, acc)
		}
	}

	return nil
}

func scriptMode(ctx context.Context, md *modalflag.Modes, output io.Writer, cmdline string) error {
	md.NewMode()

	bf := addBoardFlags(md)
	memcard := md.AddBool("memcard", true, "fit the memory expansion card")
	state := md.AddBool("state", false, "print board state after the scripts have run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("lua script required for %s mode", md)
	}

	b, err := buildBoard(md, bf, cmdline, *memcard)
	if err != nil {
		return err
	}

	scr := script.NewScript(b.mem, b.queue, output)
	defer scr.Close()

	for _, fn := range md.RemainingArgs() {
		if err := scr.RunFile(ctx, fn); err != nil {
			return err
		}
	}

	if *state {
		io.WriteString(output, b.mem.String())
	}

	return nil
}

func dumpMode(ctx context.Context, md *modalflag.Modes, output io.Writer, cmdline string) error {
	md.NewMode()
	md.AdditionalHelp("the board state is written in graphviz format")

	bf := addBoardFlags(md)
	scriptFile := md.AddString("script", "", "lua script to run before the dump")
	outFile := md.AddString("o", "", "output file (default stdout)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	b, err := buildBoard(md, bf, cmdline, true)
	if err != nil {
		return err
	}

	if *scriptFile != "" {
		scr := script.NewScript(b.mem, b.queue, output)
		defer scr.Close()
		if err := scr.RunFile(ctx, *scriptFile); err != nil {
			return err
		}
	}

	w := output
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	state := b.mem.State()
	memviz.Map(w, &state)

	return nil
}

func buildBoard(md *modalflag.Modes, bf boardFlags, cmdline string, memcard bool) (*board, error) {
	env, err := newEnvironment(md, bf, cmdline)
	if err != nil {
		return nil, err
	}

	image, err := loadBootROM(env, bf)
	if err != nil {
		return nil, err
	}

	return newBoard(env, image, memcard)
}

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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher9640/prefs"
	"github.com/jetsetilly/gopher9640/test"
)

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("board.sram::32K")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "board.sram::32K")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// surrounding space is removed from keys and values
	prefs.PushCommandLineStack("   board.genmod::  true ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "board.genmod::true")

	// unused entries are returned sorted by key
	prefs.PushCommandLineStack("board.turbo::true; board.genmod::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "board.genmod::true; board.turbo::true")

	// entries without a separator are dropped
	prefs.PushCommandLineStack("board.sram=32K")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("board.sram=32K;board.genmod::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "board.genmod::true")
}

func TestCommandLinePref(t *testing.T) {
	prefs.PushCommandLineStack("board.sram::384K; board.genmod::true")

	ok, v := prefs.GetCommandLinePref("board.sram")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("384K"))

	// a value can only be taken once
	ok, _ = prefs.GetCommandLinePref("board.sram")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("board.bootrom")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "board.genmod::true")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("board.sram::32K")

	// only the most recent group is visible
	prefs.PushCommandLineStack("board.genmod::true")
	ok, _ := prefs.GetCommandLinePref("board.sram")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "board.genmod::true")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "board.sram::32K")
}

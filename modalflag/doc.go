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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each of which can have its own flags.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Parse() can
// be called more than once. Each call consumes the flags of one mode and
// then looks at the next argument to see if it names a sub-mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MAP", "SCRIPT", "DUMP")
//	genmod := md.AddBool("genmod", false, "board has the hardware modification")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "SCRIPT":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not a sub-mode. Sub-mode comparisons are case insensitive and Mode()
// always returns the upper case name.
//
// Help is printed to the Output writer when the -help flag is found. The help
// includes the available sub-modes and the mode path. Additional text can be
// added with AdditionalHelp().
package modalflag

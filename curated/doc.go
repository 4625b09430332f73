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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// particular pattern. For example:
//
//	e := curated.Errorf("bootrom: wrong size (%d bytes)", n)
//
//	if curated.Is(e, "bootrom: wrong size (%d bytes)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// Sentinal patterns are stored as exported const strings in the package that
// raises them. For example, the bootrom package exports WrongSize and the
// caller can test for it with curated.Has(err, bootrom.WrongSize).
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separted by the sub-string ': '. For
// example:
//
//	part 1: part 2: part 3
package curated

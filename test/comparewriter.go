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

package test

import (
	"fmt"
	"strings"
)

// CompareWriter implements the io.Writer interface. It captures output so
// that it can be compared with a predefined string.
type CompareWriter struct {
	buffer strings.Builder
}

func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.buffer.Write(p)
}

// Clear empties the buffer.
func (cw *CompareWriter) Clear() {
	cw.buffer.Reset()
}

// Compare buffered output with the expected string.
func (cw *CompareWriter) Compare(s string) bool {
	return s == cw.buffer.String()
}

// Diff returns a description of the first line that differs from the
// expected string. The empty string is returned if there is no difference.
func (cw *CompareWriter) Diff(s string) string {
	got := strings.Split(cw.buffer.String(), "\n")
	exp := strings.Split(s, "\n")
	for i := range max(len(got), len(exp)) {
		var g, e string
		if i < len(got) {
			g = got[i]
		}
		if i < len(exp) {
			e = exp[i]
		}
		if g != e {
			return fmt.Sprintf("line %d: %q does not equal %q", i+1, g, e)
		}
	}
	return ""
}

func (cw *CompareWriter) String() string {
	return cw.buffer.String()
}

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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher9640/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, true)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint32(0x1e0000), 0x1e0000, "physical address")
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectApproximate(t, 1.0, 1.05, 0.1)
}

func TestDemand(t *testing.T) {
	test.DemandEquality(t, len("abc"), 3)
	test.DemandSuccess(t, true)
	test.DemandFailure(t, errors.New("test"))
}

func TestCompareWriter(t *testing.T) {
	cw := &test.CompareWriter{}
	cw.Write([]byte("00 01\n"))
	cw.Write([]byte("02 03\n"))

	test.ExpectSuccess(t, cw.Compare("00 01\n02 03\n"))
	test.ExpectEquality(t, cw.Diff("00 01\n02 03\n"), "")
	test.ExpectEquality(t, cw.Diff("00 01\n02 04\n"), `line 2: "02 03" does not equal "02 04"`)

	cw.Clear()
	test.ExpectSuccess(t, cw.Compare(""))
}

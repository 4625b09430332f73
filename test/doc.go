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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions are fatal to the test. Both accept an optional list of tags
// which are prefixed to any failure message, useful when testing in a loop.
//
// ExpectSuccess() and ExpectFailure() interpret bool and error values. It is
// worth noting how a nil value is handled because it is not obvious: nil is
// always considered a success. This is how errors usually work (nil to
// indicate no error) and so we *need* to interpret nil in this way.
//
// The RingWriter type implements io.Writer and keeps only the most recent
// output. It is useful for capturing log output in tests that produce a lot of
// it.
package test

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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Clock returns the number of cycles that have elapsed in the emulation.
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock argument can be nil, in which case the emulation time is always zero.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// SetClock changes the time source of the generator.
func (rnd *Random) SetClock(clock Clock) {
	rnd.clock = clock
}

func (rnd *Random) rand() *rand.Rand {
	var t uint64
	if rnd.clock != nil {
		t = rnd.clock.Cycles()
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewPCG(t, 0))
	}
	return rand.New(rand.NewPCG(baseSeed+t, 0))
}

// Intn returns a number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().IntN(n)
}

// Fill the slice with random bytes.
func (rnd *Random) Fill(b []uint8) {
	r := rnd.rand()
	for i := range b {
		b[i] = uint8(r.Uint32())
	}
}

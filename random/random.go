// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of emulation time.
type Clock interface {
	Counter() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clk Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	// source for NoRewind(). recreated if ZeroSeed changes
	seq     *rand.Rand
	seqZero bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock can be nil, in which case the emulation time is always zero.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
	}
}

// Plumb a new clock into the random number generator.
func (rnd *Random) Plumb(clk Clock) {
	rnd.clk = clk
}

func (rnd *Random) seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

func (rnd *Random) now() int64 {
	if rnd.clk == nil {
		return 0
	}
	return int64(rnd.clk.Counter())
}

// a source that depends only on the seed, the current emulation clock and n
func (rnd *Random) rewindable(n int) *rand.Rand {
	return rand.New(rand.NewSource(rnd.seed() + rnd.now()*int64(n+1)))
}

// Rewindable returns a number in the range [0,n) that depends only on the
// seed, the current emulation clock and n.
func (rnd *Random) Rewindable(n int) int {
	return rnd.rewindable(n).Intn(n)
}

// RewindableFill fills the slice with bytes that depend only on the seed, the
// current emulation clock and the length of the slice.
func (rnd *Random) RewindableFill(b []uint8) {
	src := rnd.rewindable(len(b))
	for i := range b {
		b[i] = uint8(src.Intn(0x100))
	}
}

// NoRewind returns the next number in the range [0,n) in the sequence.
func (rnd *Random) NoRewind(n int) int {
	if rnd.seq == nil || rnd.seqZero != rnd.ZeroSeed {
		rnd.seq = rand.New(rand.NewSource(rnd.seed()))
		rnd.seqZero = rnd.ZeroSeed
	}
	return rnd.seq.Intn(n)
}

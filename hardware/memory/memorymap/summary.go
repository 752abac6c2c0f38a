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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	s := strings.Builder{}

	_, current := MapAddress(0)
	start := uint32(0)

	// using a 32 bit counter because Memtop is at the very edge of uint16
	for a := uint32(1); a <= uint32(Memtop); a++ {
		_, area := MapAddress(uint16(a))
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, a-1, current))
			current = area
			start = a
		}
	}

	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, Memtop, current))

	return s.String()
}

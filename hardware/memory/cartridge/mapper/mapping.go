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

package mapper

import "fmt"

// Region of cartridge memory.
type Region int

// List of valid Region values.
const (
	// Internal indicates that the access was consumed by a mapper register
	// and that there is no memory to access
	Internal Region = iota
	PRGROM
	PRGRAM
	CHR
)

func (r Region) String() string {
	switch r {
	case Internal:
		return "internal"
	case PRGROM:
		return "PRG ROM"
	case PRGRAM:
		return "PRG RAM"
	case CHR:
		return "CHR"
	}
	return "unknown region"
}

// Mapping is the result of translating a bus address.
type Mapping struct {
	Region Region
	Offset uint32
}

func (m Mapping) String() string {
	if m.Region == Internal {
		return m.Region.String()
	}
	return fmt.Sprintf("%s %#05x", m.Region, m.Offset)
}

// Mirroring describes how the two physical nametables of the PPU are
// arranged in the four logical nametables.
type Mirroring int

// List of valid Mirroring values.
const (
	Hardwired Mirroring = iota
	Horizontal
	Vertical
	OneScreenLo
	OneScreenHi
)

func (m Mirroring) String() string {
	switch m {
	case Hardwired:
		return "hardwired"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case OneScreenLo:
		return "one screen (lo)"
	case OneScreenHi:
		return "one screen (hi)"
	}
	return "unknown mirroring"
}

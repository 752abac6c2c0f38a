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

// Package mapper implements the bank switching schemes found in NES
// cartridges. The supported schemes are a small, closed set and so they are
// all implemented by the single Mapper type, with the behaviour selected by
// the ID field.
//
// A mapper never holds any cartridge data. It translates an address on the
// CPU or PPU bus into a Mapping, which names a Region of the cartridge and
// an offset into that region. The cartridge package uses the Mapping to
// access the actual data.
//
// An access that the mapper does not claim is indicated by the boolean
// return value of the mapping functions. In that case the caller should
// fall back to its own memory.
package mapper

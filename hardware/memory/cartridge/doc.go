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

// Package cartridge is the memory of the cartridge inserted into the NES. A
// Cartridge is created from an Image, which is the already parsed content of
// a ROM file. The package never loads files itself.
//
// All accesses to the cartridge go through the mapper, which translates the
// address on the CPU or PPU bus into an offset in one of the cartridge's
// memory regions. An access that the mapper does not claim is indicated by
// the boolean return value of the access functions and the caller should use
// its own memory for that address.
package cartridge

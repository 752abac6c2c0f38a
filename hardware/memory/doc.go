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

// Package memory implements the CPU bus of the NES. The Bus routes every CPU
// access to the cartridge, the internal RAM or the PPU registers, in that
// order of priority. Addresses claimed by none of them are unmapped. Reading
// an unmapped address returns the value of the UnmappedValue preference and
// writing to one does nothing.
//
// The Bus also drives the clocks of the CPU and the PPU. The PPU is clocked
// on every call to Bus.Clock() and the CPU on every third call.
//
// The Bus does not own the CPU, the PPU or the cartridge. They are plumbed
// into the Bus by the owner of all the components with the Plumb() function.
package memory

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

// Package hardware is the base package for the NES emulation. The NES type
// is the single owner of every emulated component: the CPU, the CPU bus, the
// PPU and the cartridge. Components refer to each other through interfaces
// that are plumbed in by the NES type. None of those references imply
// ownership.
//
// The NES is driven one PPU cycle at a time with the Clock() function, one
// CPU instruction at a time with the Step() function, or continuously with
// the Run() and RunForFrameCount() functions.
package hardware

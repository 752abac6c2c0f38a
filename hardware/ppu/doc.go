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

// Package ppu emulates the timing and the memory interfaces of the NES
// picture processing unit. It does not produce any pixels.
//
// The PPU is clocked three times for every CPU cycle. Each call to Clock()
// advances the PPU by one dot. There are 341 dots on a scanline and 262
// scanlines in an NTSC frame. Scanlines are numbered from -1, the pre-render
// line, to 260. The end of a frame is indicated by the FrameComplete field,
// which must be cleared by the consumer.
//
// The CPU sees the PPU through eight registers, accessed with the CPURead()
// and CPUWrite() functions. The PPU's own memory bus is accessed with the
// PPURead() and PPUWrite() functions. Accesses to the PPU bus are offered to
// the cartridge first. The nametables and the palette are internal to the
// PPU.
//
// The vertical blanking period begins on the second dot of scanline 241. If
// NMI generation is enabled in PPUCTRL then the PPU raises an NMI request,
// which can be collected with the PendingNMI() function.
package ppu

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

// Package clocks defines the constant values that define the speed of the
// clocks in the console. Values are in MHz.
//
// The master clock is divided by 12 for the CPU and by 4 for the PPU, giving
// the fixed ratio of three PPU cycles for every CPU cycle.
package clocks

// Master clock frequency of the NTSC console.
const NTSCMaster = 21.477272

// Dividers applied to the master clock.
const (
	CPUDivider = 12
	PPUDivider = 4
)

// PPUPerCPU is the number of PPU cycles for every CPU cycle.
const PPUPerCPU = CPUDivider / PPUDivider

const (
	NTSC     = NTSCMaster / CPUDivider
	NTSC_PPU = NTSCMaster / PPUDivider
)

// Timing of a single NTSC frame in PPU cycles.
const (
	CyclesPerScanline   = 341
	ScanlinesPerFrame   = 262
	PPUCyclesPerFrame   = CyclesPerScanline * ScanlinesPerFrame
	FramesPerSecondNTSC = NTSC_PPU * 1000000 / PPUCyclesPerFrame
)

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

// Package registers implements the three types of register found in the 6502:
// the 8 bit general purpose registers (A, X, Y and the stack pointer), the 16
// bit program counter and the status register.
//
// The general purpose registers implement the arithmetic and logical
// operations of the CPU but do not touch the status register. Setting the
// status flags is the responsibility of the CPU:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// The 2A03 has no decimal mode. The decimal flag can still be set and cleared
// but it has no effect on addition or subtraction.
package registers

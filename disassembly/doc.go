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

// Package disassembly decodes CPU instructions from memory without affecting
// the state of the emulation. All memory accesses made by the package are
// readOnly accesses.
//
// Decoding is linear. Every entry begins at the address following the last
// byte of the previous entry and no attempt is made to follow the flow of
// the program.
//
// Entries can be written in a columnated form with the Write() function.
package disassembly

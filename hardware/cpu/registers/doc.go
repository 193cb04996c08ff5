// This file is part of pal6502.
//
// pal6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pal6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pal6502.  If not, see <https://www.gnu.org/licenses/>.

// Package registers implements the registers of the CPU.
//
// The 8 bit registers, used for the accumulator and the index registers, are
// implemented as the Register type. It defines the load and add operations
// and the tests required for status updates: is the value zero, is the number
// negative.
//
// The program counter and the stack pointer are 16 bits wide. Note that the
// stack pointer in this machine holds a full address and ascends, it is not
// the page one cursor of a stock 6502.
//
// The status register is implemented as a series of flags. Setting of flags
// is done directly. For instance, in the CPU, we might have this sequence of
// function calls:
//
//	a.Load(10)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
package registers

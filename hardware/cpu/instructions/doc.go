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

// Package instructions defines the table of instructions implemented by the
// CPU. The table is sparse: the machine implements LDA in three addressing
// modes and JSR. Every other opcode decodes to a nil definition, which the
// CPU reports as an unimplemented instruction.
//
// Cycle counts in the definitions are the counts for this machine's memory
// model, one cycle per memory access plus one for any address calculation or
// internal operation. They are not the counts of a stock 6502.
package instructions

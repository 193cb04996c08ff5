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

// Package cpu emulates a 6502-flavoured microprocessor. Like all 8-bit
// processors of the era, the CPU executes instructions according to the
// single byte value read from the address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// An instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument to NewCPU(). The interface
// defines the memory operations required by the CPU.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a cycle budget which the instruction spends from as it
// executes. The Execute() function repeats ExecuteInstruction() until the
// budget is spent.
//
//	mem := memory.NewRAM()
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	// ... write a program into mem, after Reset() ...
//
//	bdg := cpubus.NewBudget(8)
//	err := mc.Execute(&bdg)
//
// The budget is only ever checked between instructions. An instruction that
// is underway always completes, taking the budget negative if it must. The
// overrun can be read from the budget afterwards.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed. See the execution package for more information. Very useful for
// debuggers.
package cpu

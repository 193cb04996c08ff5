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

package hardware

import (
	"github.com/Xaristrike/pal6502/hardware/cpu"
	"github.com/Xaristrike/pal6502/hardware/memory"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
)

// System is the machine as a whole: the CPU and the memory it is wired to.
type System struct {
	CPU *cpu.CPU
	Mem *memory.RAM
}

// NewSystem creates the machine and everything associated with it. It is used
// for all aspects of emulation: debugging sessions and regular runs.
func NewSystem() *System {
	sys := &System{}
	sys.Mem = memory.NewRAM()
	sys.CPU = cpu.NewCPU(sys.Mem)
	return sys
}

// Reset emulates the reset switch on the machine. Registers return to their
// reset values and memory is wiped, so a program must be written into memory
// after Reset() and never before.
func (sys *System) Reset() {
	sys.CPU.Reset()
}

// Step runs a single instruction, spending from the budget.
func (sys *System) Step(bdg *cpubus.Budget) error {
	return sys.CPU.ExecuteInstruction(bdg)
}

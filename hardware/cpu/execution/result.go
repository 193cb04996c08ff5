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

package execution

import (
	"fmt"

	"github.com/Xaristrike/pal6502/hardware/cpu/instructions"
)

// Result records the state of an instruction execution. Used by the CPU to
// indicate the outcome of the most recent instruction and by tools that want
// to echo what the CPU has just done.
type Result struct {
	// the address the opcode was read from
	Address uint16

	// a reference to the instruction definition. nil if the opcode did not
	// decode
	Defn *instructions.Definition

	// the data read as part of the instruction. for an immediate load this is
	// the value itself; for everything else it is an address or part of one
	InstructionData uint16

	// the number of bytes read during execution
	ByteCount int

	// the number of cycles the instruction consumed
	Cycles int

	// whether the instruction has run to completion. the other fields may be
	// undefined unless Final is true
	Final bool
}

// Reset nullifies the fields of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.ByteCount = 0
	r.Cycles = 0
	r.Final = false
}

// String returns a very basic representation of the Result. The operand is
// written in the form suggested by the addressing mode.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x ???", r.Address)
	}

	var operand string

	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		operand = fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Absolute:
		operand = fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		operand = fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("$%02x,X", r.InstructionData)
	}

	return fmt.Sprintf("%#04x %s %s", r.Address, r.Defn.Operator, operand)
}

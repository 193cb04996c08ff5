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

package disassembly

import (
	"github.com/Xaristrike/pal6502/hardware/cpu/execution"
)

// Entry is a disassembled instruction. The Result field is what the CPU
// execution of the instruction is expected to produce. A nil Result.Defn
// means the address was reached by the decoding but the byte there is not a
// recognised opcode. In that case Result.InstructionData is the value of the
// byte itself.
type Entry struct {
	Result execution.Result

	// string representation of the bytes that make up the instruction
	Bytecode string
}

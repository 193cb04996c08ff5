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

package debugger

import (
	"fmt"

	"github.com/Xaristrike/pal6502/debugger/terminal"
	"github.com/Xaristrike/pal6502/hardware/cpu/execution"
)

func (dbg *Debugger) buildPrompt() terminal.Prompt {
	pc := dbg.sys.CPU.PC.Address()

	// decorate the prompt with a disassembly of the instruction the program
	// counter is at. the peeks can't fail for RAM but if they somehow do the
	// bare address is good enough for a prompt.
	content := fmt.Sprintf("%#04x", pc)

	if opcode, err := dbg.sys.Mem.Peek(pc); err == nil {
		if defn := dbg.defns[opcode]; defn != nil {
			res := execution.Result{
				Address:   pc,
				Defn:      defn,
				ByteCount: defn.Bytes,
				Final:     true,
			}

			ok := true
			for i := 1; i < defn.Bytes; i++ {
				b, err := dbg.sys.Mem.Peek(pc + uint16(i))
				if err != nil {
					ok = false
					break
				}
				res.InstructionData |= uint16(b) << (8 * (i - 1))
			}

			if ok {
				content = res.String()
			}
		}
	}

	return terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		Content: content,
	}
}

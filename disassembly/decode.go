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
	"fmt"

	"github.com/Xaristrike/pal6502/hardware/cpu/instructions"
)

func (dsm *Disassembly) decode(mem PeekMemory, origin uint16) error {
	defns := instructions.GetDefinitions()

	// start addresses of strands still to be decoded. subroutine targets are
	// added to the list as they are found
	remaining := []uint16{origin}

	for len(remaining) > 0 {
		address := remaining[0]
		remaining = remaining[1:]

		// decode one strand. an address that has been decoded before means
		// the strand has merged with an earlier one
		for dsm.Entries[address] == nil {
			opcode, err := mem.Peek(address)
			if err != nil {
				return err
			}

			e := &Entry{}
			e.Result.Address = address
			e.Result.Defn = defns[opcode]
			e.Bytecode = fmt.Sprintf("%02x", opcode)

			if e.Result.Defn == nil {
				// not an opcode we know about. record the byte as data and
				// give up on the strand
				e.Result.InstructionData = uint16(opcode)
				e.Result.ByteCount = 1
				dsm.Entries[address] = e
				break // strand loop
			}

			// remaining bytes of the instruction, least significant first
			var operand uint16
			for i := 1; i < e.Result.Defn.Bytes; i++ {
				b, err := mem.Peek(address + uint16(i))
				if err != nil {
					return err
				}
				operand |= uint16(b) << (8 * (i - 1))
				e.Bytecode = fmt.Sprintf("%s %02x", e.Bytecode, b)
			}

			e.Result.InstructionData = operand
			e.Result.ByteCount = e.Result.Defn.Bytes
			e.Result.Cycles = e.Result.Defn.Cycles
			e.Result.Final = true
			dsm.Entries[address] = e

			// the target of a subroutine instruction is the start of a new
			// strand. the current strand carries on after the call in the
			// expectation that the subroutine will return
			if e.Result.Defn.Effect == instructions.Subroutine {
				// a subroutine called from more than one place is still
				// one subroutine
				listed := false
				for _, s := range dsm.Subroutines {
					if s == operand {
						listed = true
						break // range loop
					}
				}
				if !listed {
					dsm.Subroutines = append(dsm.Subroutines, operand)
					remaining = append(remaining, operand)
				}
			}

			address += uint16(e.Result.Defn.Bytes)
		}
	}

	return nil
}

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
	"github.com/Xaristrike/pal6502/hardware/memory"
)

// PeekMemory is the interface to memory required by the disassembly. Peek is
// used rather than Read because the disassembly must never disturb the cycle
// accounting of the machine it is looking at.
type PeekMemory interface {
	Peek(address uint16) (uint8, error)
}

// Disassembly represents the annotated disassembly of a program in memory.
type Disassembly struct {
	// decoded entries indexed by address. a nil entry is an address the
	// decoding never reached
	Entries []*Entry

	// the target address of every subroutine instruction, in the order the
	// decoding found them
	Subroutines []uint16
}

// FromMemory disassembles the program in memory, starting at the origin
// address. Useful for one-shot disassemblies, like the "disasm" mode.
func FromMemory(mem PeekMemory, origin uint16) (*Disassembly, error) {
	dsm := &Disassembly{}
	dsm.Entries = make([]*Entry, int(memory.Memtop)+1)

	err := dsm.decode(mem, origin)
	if err != nil {
		return nil, err
	}

	return dsm, nil
}

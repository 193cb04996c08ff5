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
	"io"
	"strings"

	"github.com/Xaristrike/pal6502/hardware/cpu/instructions"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer. Entries are written in address
// order, grouped into segments of contiguous instructions. A subroutine
// instruction is followed by a blank line because execution leaves the
// segment at that point.
//
// Every line is sent to the io.Writer with a single Write() call, allowing
// the output to be styled or filtered line by line.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	// the address the next entry will be at if it belongs to the same
	// segment as the previous entry
	next := -1

	for i := range dsm.Entries {
		e := dsm.Entries[i]
		if e == nil {
			continue
		}

		if i != next {
			if next != -1 {
				io.WriteString(output, "\n")
			}
			io.WriteString(output, fmt.Sprintf("--- %#04x ---\n", e.Result.Address))
		}

		dsm.WriteLine(output, attr, e)

		if e.Result.Defn != nil && e.Result.Defn.Effect == instructions.Subroutine {
			io.WriteString(output, "\n")
		}

		next = i + e.Result.ByteCount
	}

	return nil
}

// WriteLine writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) {
	s := strings.Builder{}
	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%-9s", e.Bytecode))
	}
	s.WriteString(e.String())
	s.WriteString("\n")
	io.WriteString(output, s.String())
}

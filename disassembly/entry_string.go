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
)

// String returns a very basic representation of an Entry. Provided for
// convenience. Most users of the disassembly package will probably want to
// use the Write() functions.
func (e *Entry) String() string {
	if e.Result.Defn == nil {
		return fmt.Sprintf("%#04x .byte $%02x", e.Result.Address, e.Result.InstructionData)
	}
	return e.Result.String()
}

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

package instructions

import "fmt"

// Operator identifies the operation performed by an instruction, independent
// of addressing mode.
type Operator int

// List of implemented operators.
const (
	Lda Operator = iota
	Jsr
)

func (op Operator) String() string {
	switch op {
	case Lda:
		return "LDA"
	case Jsr:
		return "JSR"
	}
	return "unknown operator"
}

// AddressingMode describes the method of memory addressing used by an
// instruction.
type AddressingMode int

// List of supported addressing modes.
const (
	Immediate AddressingMode = iota
	Absolute
	ZeroPage
	ZeroPageIndexedX // zpg,X
)

func (m AddressingMode) String() string {
	switch m {
	case Immediate:
		return "Immediate"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	}
	return "unknown addressing mode"
}

// Category of an instruction describes its effect.
type Category int

// List of instruction categories.
const (
	Read Category = iota
	Subroutine
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Subroutine:
		return "Subroutine"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

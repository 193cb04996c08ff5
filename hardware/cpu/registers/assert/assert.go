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

// Package assert is a test helper for the CPU register types. The
// StatusRegister comparison in particular allows the expected flags to be
// written as an 8 character string in the same form the register prints
// itself: "Sv-bdiZc" says sign and zero are set and everything else is clear.
package assert

import (
	"reflect"
	"testing"

	"github.com/Xaristrike/pal6502/hardware/cpu/registers"
)

// Assert is used to test equality between one value and another.
func Assert(t *testing.T, r, x interface{}) {
	t.Helper()
	switch r := r.(type) {

	default:
		t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(r))

	case registers.Register:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert Register failed (%#02x  - wanted %#02x)", r.Value(), x)
			}
		}

	case registers.ProgramCounter:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Address()) != x {
				t.Errorf("assert ProgramCounter failed (%#04x  - wanted %#04x)", r.Address(), x)
			}
		}

	case registers.StackPointer:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Address()) != x {
				t.Errorf("assert StackPointer failed (%#04x  - wanted %#04x)", r.Address(), x)
			}
		}

	case registers.StatusRegister:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert StatusRegister failed (%#02x  - wanted %#02x)", r.Value(), x)
			}

		case string:
			if len(x) != 8 {
				t.Errorf("assert StatusRegister failed (status flags must be an integer or a string of 8 chars)")
			}
			if x[0] != 's' && !r.Sign || x[0] != 'S' && r.Sign {
				t.Errorf("assert StatusRegister failed (unexpected sign flag)")
			}
			if x[1] != 'v' && !r.Overflow || x[1] != 'V' && r.Overflow {
				t.Errorf("assert StatusRegister failed (unexpected overflow flag)")
			}
			if x[3] != 'b' && !r.Break || x[3] != 'B' && r.Break {
				t.Errorf("assert StatusRegister failed (unexpected break flag)")
			}
			if x[4] != 'd' && !r.DecimalMode || x[4] != 'D' && r.DecimalMode {
				t.Errorf("assert StatusRegister failed (unexpected decimal mode flag)")
			}
			if x[5] != 'i' && !r.InterruptDisable || x[5] != 'I' && r.InterruptDisable {
				t.Errorf("assert StatusRegister failed (unexpected interrupt disable flag)")
			}
			if x[6] != 'z' && !r.Zero || x[6] != 'Z' && r.Zero {
				t.Errorf("assert StatusRegister failed (unexpected zero flag)")
			}
			if x[7] != 'c' && !r.Carry || x[7] != 'C' && r.Carry {
				t.Errorf("assert StatusRegister failed (unexpected carry flag)")
			}
		}

	case uint16:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r) != x {
				t.Errorf("assert uint16 failed (%#04x  - wanted %#04x)", r, x)
			}
		}

	case string:
		if r != x.(string) {
			t.Errorf("assert string failed (%v  - wanted %v)", r, x.(string))
		}

	case bool:
		if r != x.(bool) {
			t.Errorf("assert bool failed (%v  - wanted %v)", r, x.(bool))
		}

	case int:
		if r != x.(int) {
			t.Errorf("assert int failed (%d  - wanted %d)", r, x.(int))
		}
	}
}

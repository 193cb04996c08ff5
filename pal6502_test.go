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

package main

import (
	"strings"
	"testing"

	"github.com/Xaristrike/pal6502/hardware"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
	"github.com/Xaristrike/pal6502/modalflag"
	"github.com/Xaristrike/pal6502/test"
)

func TestRunMode(t *testing.T) {
	output := &test.CompareWriter{}

	md := &modalflag.Modes{Output: output}
	md.NewArgs([]string{})

	err := run(md)
	test.ExpectedSuccess(t, err)
	test.Equate(t, output.Compare("8 of 8 cycles spent\nPC=0x4244 A=0x84 X=0x00 Y=0x00 SP=0x0101 SR=Sv-bdizc\n"), true)
}

func TestRunMode_overBudget(t *testing.T) {
	output := &test.CompareWriter{}

	md := &modalflag.Modes{Output: output}
	md.NewArgs([]string{"-cycles", "100"})

	// the demonstration program runs out at $4244
	err := run(md)
	test.ExpectedFailure(t, err)
}

func TestDisasmMode(t *testing.T) {
	output := &test.CompareWriter{}

	md := &modalflag.Modes{Output: output}
	md.NewArgs([]string{"-origin", "0x4242"})

	err := disasm(md)
	test.ExpectedSuccess(t, err)
	test.Equate(t, output.Compare("--- 0x4242 ---\n0x4242 LDA #$84\n0x4244 .byte $00\n"), true)
}

func TestDisasmMode_defaultOrigin(t *testing.T) {
	output := &test.CompareWriter{}

	md := &modalflag.Modes{Output: output}
	md.NewArgs([]string{})

	// decoding from the reset vector finds the subroutine strand as well as
	// the entry strand
	err := disasm(md)
	test.ExpectedSuccess(t, err)
	test.Equate(t, output.Compare("--- 0x4242 ---\n0x4242 LDA #$84\n0x4244 .byte $00\n\n--- 0xfffc ---\n0xfffc JSR $4242\n\n0xffff .byte $00\n"), true)
}

func TestDisasmMode_bytecode(t *testing.T) {
	output := &test.CompareWriter{}

	md := &modalflag.Modes{Output: output}
	md.NewArgs([]string{"-bytecode", "-origin", "0x4242"})

	err := disasm(md)
	test.ExpectedSuccess(t, err)
	test.Equate(t, output.Compare("--- 0x4242 ---\na9 84    0x4242 LDA #$84\n00       0x4244 .byte $00\n"), true)
}

func TestDisasmMode_badOrigin(t *testing.T) {
	output := &strings.Builder{}

	md := &modalflag.Modes{Output: output}
	md.NewArgs([]string{"-origin", "0x10000"})

	err := disasm(md)
	test.ExpectedFailure(t, err)
}

func TestTooManyArguments(t *testing.T) {
	output := &strings.Builder{}

	md := &modalflag.Modes{Output: output}
	md.NewArgs([]string{"some.bin"})

	err := run(md)
	test.ExpectedFailure(t, err)
}

func BenchmarkCPU(b *testing.B) {
	sys := hardware.NewSystem()

	for n := 0; n < b.N; n++ {
		sys.Reset()

		if err := attachDemo(sys); err != nil {
			b.Fatal(err)
		}

		bdg := cpubus.NewBudget(8)
		if err := sys.Run(&bdg, nil); err != nil {
			b.Fatal(err)
		}
	}
}

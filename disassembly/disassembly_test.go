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

package disassembly_test

import (
	"testing"

	"github.com/Xaristrike/pal6502/disassembly"
	"github.com/Xaristrike/pal6502/hardware/memory"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
	"github.com/Xaristrike/pal6502/test"
)

func putProgram(t *testing.T, mem *memory.RAM, origin uint16, bytes ...uint8) {
	t.Helper()
	for i, b := range bytes {
		if err := mem.Poke(origin+uint16(i), b); err != nil {
			t.Fatalf("poke failed: %v", err)
		}
	}
}

func TestDisassembly(t *testing.T) {
	mem := memory.NewRAM()

	// subroutine call at the reset address into a short program elsewhere in
	// memory
	putProgram(t, mem, cpubus.Reset, 0x20, 0x42, 0x42)
	putProgram(t, mem, 0x4242, 0xa9, 0x84)

	dsm, err := disassembly.FromMemory(mem, cpubus.Reset)
	if err != nil {
		t.Fatalf("disassembly failed: %v", err)
	}

	// one subroutine target found during decoding
	test.Equate(t, len(dsm.Subroutines), 1)
	test.Equate(t, dsm.Subroutines[0], uint16(0x4242))

	tw := &test.CompareWriter{}
	dsm.Write(tw, disassembly.WriteAttr{})
	test.Equate(t, tw.Compare("--- 0x4242 ---\n0x4242 LDA #$84\n0x4244 .byte $00\n\n--- 0xfffc ---\n0xfffc JSR $4242\n\n0xffff .byte $00\n"), true)

	tw.Clear()
	dsm.Write(tw, disassembly.WriteAttr{ByteCode: true})
	test.Equate(t, tw.Compare("--- 0x4242 ---\na9 84    0x4242 LDA #$84\n00       0x4244 .byte $00\n\n--- 0xfffc ---\n20 42 42 0xfffc JSR $4242\n\n00       0xffff .byte $00\n"), true)
}

func TestDisassembly_addressingModes(t *testing.T) {
	mem := memory.NewRAM()
	putProgram(t, mem, 0x0200, 0xa5, 0x42, 0xb5, 0x42)

	dsm, err := disassembly.FromMemory(mem, 0x0200)
	if err != nil {
		t.Fatalf("disassembly failed: %v", err)
	}

	tw := &test.CompareWriter{}
	dsm.Write(tw, disassembly.WriteAttr{})
	test.Equate(t, tw.Compare("--- 0x0200 ---\n0x0200 LDA $42\n0x0202 LDA $42,X\n0x0204 .byte $00\n"), true)
}

func TestDisassembly_strandMerge(t *testing.T) {
	mem := memory.NewRAM()

	// the subroutine target is the start of the strand that contains the
	// call. the decoding must notice the merge and stop
	putProgram(t, mem, 0x1000, 0xa9, 0x01, 0x20, 0x00, 0x10)

	dsm, err := disassembly.FromMemory(mem, 0x1000)
	if err != nil {
		t.Fatalf("disassembly failed: %v", err)
	}

	test.Equate(t, len(dsm.Subroutines), 1)
	test.Equate(t, dsm.Subroutines[0], uint16(0x1000))

	tw := &test.CompareWriter{}
	dsm.Write(tw, disassembly.WriteAttr{})
	test.Equate(t, tw.Compare("--- 0x1000 ---\n0x1000 LDA #$01\n0x1002 JSR $1000\n\n0x1005 .byte $00\n"), true)
}

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

package cpu_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Xaristrike/pal6502/hardware/cpu"
	"github.com/Xaristrike/pal6502/hardware/cpu/registers/assert"
	"github.com/Xaristrike/pal6502/hardware/memory"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
)

// putInstructions pokes bytes into memory starting at origin. Returns the
// address after the last byte, so calls can be chained.
func putInstructions(mem *memory.RAM, origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Poke(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func assertMem(t *testing.T, mem *memory.RAM, address uint16, value uint8) {
	t.Helper()
	d, _ := mem.Peek(address)
	if d != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %#04x)", d, value, address)
	}
}

// step executes one instruction against an empty budget. instructions always
// run to completion so the budget balance afterwards is the exact cost, which
// IsValid() checks against the definition.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	bdg := cpubus.NewBudget(0)
	err := mc.ExecuteInstruction(&bdg)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

func TestReset(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	assert.Assert(t, mc.PC, 0xfffc)
	assert.Assert(t, mc.SP, 0x0100)
	assert.Assert(t, mc.A, 0)
	assert.Assert(t, mc.X, 0)
	assert.Assert(t, mc.Y, 0)

	// no flag is set on reset. the zero flag in particular stays clear even
	// though the accumulator is zero
	assert.Assert(t, mc.Status, "sv-bdizc")
}

func TestReset_wipesMemory(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	putInstructions(mem, 0xfffc, 0xa9, 0x84)
	assertMem(t, mem, 0xfffc, 0xa9)

	// a second reset wipes the program. bytes must always be written after
	// the reset they are to run under
	mc.Reset()
	assertMem(t, mem, 0xfffc, 0x00)
	assertMem(t, mem, 0xfffd, 0x00)
}

func TestLda_immediate(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA #$84; LDA #$00; LDA #$01
	origin := putInstructions(mem, 0xfffc, 0xa9, 0x84)
	origin = putInstructions(mem, origin, 0xa9, 0x00)
	putInstructions(mem, origin, 0xa9, 0x01)

	step(t, mc) // LDA #$84
	assert.Assert(t, mc.A, 0x84)
	assert.Assert(t, mc.Status, "Sv-bdizc")

	step(t, mc) // LDA #$00
	assert.Assert(t, mc.A, 0x00)
	assert.Assert(t, mc.Status, "sv-bdiZc")

	step(t, mc) // LDA #$01
	assert.Assert(t, mc.A, 0x01)
	assert.Assert(t, mc.Status, "sv-bdizc")
}

func TestLda_immediateSweep(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)

	// the zero and sign flags follow the loaded value for every possible
	// value
	for v := 0; v <= 255; v++ {
		mc.Reset()
		putInstructions(mem, 0xfffc, 0xa9, uint8(v))
		step(t, mc)
		assert.Assert(t, mc.A, v)
		assert.Assert(t, mc.Status.Zero, v == 0)
		assert.Assert(t, mc.Status.Sign, v >= 0x80)
	}
}

func TestLda_zeroPage(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA $10
	putInstructions(mem, 0xfffc, 0xa5, 0x10)
	putInstructions(mem, 0x0010, 0x42)

	step(t, mc)
	assert.Assert(t, mc.A, 0x42)
	assert.Assert(t, mc.PC, 0xfffe)
	assert.Assert(t, mc.Status, "sv-bdizc")
}

func TestLda_zeroPageIndexed(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA $80,X with X=5 reads from $85
	putInstructions(mem, 0xfffc, 0xb5, 0x80)
	putInstructions(mem, 0x0085, 0x99)
	mc.X.Load(0x05)

	step(t, mc)
	assert.Assert(t, mc.A, 0x99)
	assert.Assert(t, mc.Status, "Sv-bdizc")
}

func TestLda_zeroPageIndexedWraparound(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA $80,X with X=$ff. the index calculation is 8 bit so the effective
	// address wraps around to $7f rather than reaching $017f
	putInstructions(mem, 0xfffc, 0xb5, 0x80)
	putInstructions(mem, 0x007f, 0x21)
	putInstructions(mem, 0x017f, 0xee)
	mc.X.Load(0xff)

	step(t, mc)
	assert.Assert(t, mc.A, 0x21)
}

func TestJsr(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// JSR $4242
	putInstructions(mem, 0xfffc, 0x20, 0x42, 0x42)

	step(t, mc)
	assert.Assert(t, mc.PC, 0x4242)

	// the pushed word is the address of the instruction after the JSR, less
	// one. it went to the reset-time stack origin, least significant byte
	// first, and the stack pointer has moved up by one
	assertMem(t, mem, 0x0100, 0xfe)
	assertMem(t, mem, 0x0101, 0xff)
	assert.Assert(t, mc.SP, 0x0101)

	// flags are untouched by JSR
	assert.Assert(t, mc.Status, "sv-bdizc")
}

func TestJsr_stackFault(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// a JSR pushing at the very top of memory has nowhere for the second
	// byte of the return address
	putInstructions(mem, 0xfffc, 0x20, 0x42, 0x42)
	mc.SP.Load(0xffff)

	bdg := cpubus.NewBudget(6)
	err := mc.ExecuteInstruction(&bdg)
	if !errors.Is(err, cpubus.AddressError) {
		t.Fatalf("expected address error (got %v)", err)
	}

	// the jump never happened and nothing was written
	assert.Assert(t, mc.PC, 0xffff)
	assertMem(t, mem, 0xffff, 0x00)
}

func TestExecute(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// JSR $4242 at the reset address; LDA #$84 at the subroutine
	putInstructions(mem, 0xfffc, 0x20, 0x42, 0x42)
	putInstructions(mem, 0x4242, 0xa9, 0x84)

	bdg := cpubus.NewBudget(8)
	err := mc.Execute(&bdg)
	if err != nil {
		t.Fatal(err)
	}

	assert.Assert(t, mc.PC, 0x4244)
	assert.Assert(t, mc.A, 0x84)
	assert.Assert(t, mc.Status, "Sv-bdizc")
	assert.Assert(t, mc.SP, 0x0101)

	// return address on the stack is the JSR operand end, $ffff, less one
	assertMem(t, mem, 0x0100, 0xfe)
	assertMem(t, mem, 0x0101, 0xff)

	// eight cycles requested, eight consumed
	assert.Assert(t, bdg.Remaining(), 0)
}

func TestString(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// 8 bit registers render with two digits, 16 bit registers with four.
	// the 0x prefix is in addition to the digits
	s := mc.String()
	expected := "PC=0xfffc A=0x00 X=0x00 Y=0x00 SP=0x0100 SR=sv-bdizc"
	if s != expected {
		t.Errorf("unexpected CPU string (%s  - wanted %s)", s, expected)
	}

	putInstructions(mem, 0xfffc, 0x20, 0x42, 0x42)
	putInstructions(mem, 0x4242, 0xa9, 0x84)

	bdg := cpubus.NewBudget(8)
	err := mc.Execute(&bdg)
	if err != nil {
		t.Fatal(err)
	}

	s = mc.String()
	expected = "PC=0x4244 A=0x84 X=0x00 Y=0x00 SP=0x0101 SR=Sv-bdizc"
	if s != expected {
		t.Errorf("unexpected CPU string (%s  - wanted %s)", s, expected)
	}

	// there is no program at the new PC. the fault message renders the
	// opcode with two digits too
	bdg = cpubus.NewBudget(8)
	err = mc.Execute(&bdg)
	if err == nil {
		t.Fatal("expected execution fault")
	}
	expected = "cpu: unimplemented instruction (0x00) at (0x4244)"
	if err.Error() != expected {
		t.Errorf("unexpected fault message (%s  - wanted %s)", err.Error(), expected)
	}
}

func TestExecute_overrun(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	putInstructions(mem, 0xfffc, 0x20, 0x42, 0x42)

	// one cycle is not enough for a JSR but the instruction is not
	// interrupted. the overspend is visible in the budget
	bdg := cpubus.NewBudget(1)
	err := mc.Execute(&bdg)
	if err != nil {
		t.Fatal(err)
	}

	assert.Assert(t, mc.PC, 0x4242)
	assert.Assert(t, bdg.Remaining(), -5)
}

func TestExecute_unimplemented(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// 0xff does not decode
	putInstructions(mem, 0xfffc, 0xff)

	bdg := cpubus.NewBudget(8)
	err := mc.Execute(&bdg)
	if !errors.Is(err, cpu.UnimplementedInstruction) {
		t.Fatalf("expected unimplemented instruction error (got %v)", err)
	}

	// the opcode fetch is the only spending that took place
	assert.Assert(t, bdg.Remaining(), 7)
	assert.Assert(t, mc.LastResult.Final, true)
}

func TestExecuteInstruction_cycles(t *testing.T) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU(mem)

	// cycle cost of every implemented opcode
	programs := map[string]struct {
		bytes  []uint8
		cycles int
	}{
		"LDA immediate":   {[]uint8{0xa9, 0x84}, 2},
		"LDA zero page":   {[]uint8{0xa5, 0x10}, 3},
		"LDA zero page X": {[]uint8{0xb5, 0x10}, 4},
		"JSR":             {[]uint8{0x20, 0x42, 0x42}, 6},
	}

	for name, p := range programs {
		mc.Reset()
		putInstructions(mem, 0xfffc, p.bytes...)

		bdg := cpubus.NewBudget(p.cycles)
		err := mc.ExecuteInstruction(&bdg)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		if mc.LastResult.Cycles != p.cycles {
			t.Errorf("%s: wrong number of cycles (%d  - wanted %d)", name, mc.LastResult.Cycles, p.cycles)
		}
		assert.Assert(t, bdg.Remaining(), 0)
	}
}

// brokenMem fails every access. used to check that memory errors halt
// execution.
type brokenMem struct{}

func (mem brokenMem) Init() {
}

func (mem brokenMem) Read(address uint16) (uint8, error) {
	return 0, fmt.Errorf("%w (%#04x)", cpubus.AddressError, address)
}

func (mem brokenMem) Write(address uint16, data uint8) error {
	return fmt.Errorf("%w (%#04x)", cpubus.AddressError, address)
}

func (mem brokenMem) WriteWord(bdg *cpubus.Budget, address uint16, data uint16) error {
	return fmt.Errorf("%w (%#04x)", cpubus.AddressError, address)
}

func TestExecute_memoryFault(t *testing.T) {
	mc := cpu.NewCPU(brokenMem{})
	mc.Reset()

	bdg := cpubus.NewBudget(8)
	err := mc.Execute(&bdg)
	if !errors.Is(err, cpubus.AddressError) {
		t.Fatalf("expected address error (got %v)", err)
	}
	assert.Assert(t, mc.LastResult.Final, true)
}

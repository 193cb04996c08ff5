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

package cpu

import (
	"errors"
	"fmt"

	"github.com/Xaristrike/pal6502/hardware/cpu/execution"
	"github.com/Xaristrike/pal6502/hardware/cpu/instructions"
	"github.com/Xaristrike/pal6502/hardware/cpu/registers"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
)

// UnimplementedInstruction is returned by ExecuteInstruction() when the
// fetched opcode has no entry in the instruction table. Use errors.Is() to
// check for it. The wrapped error message names the opcode and the address it
// was read from.
var UnimplementedInstruction = errors.New("cpu: unimplemented instruction")

// handler is the function signature for operator implementations. Each
// handler is responsible for resolving the addressing mode of the definition
// it is given and for spending cycles from the budget.
type handler func(defn *instructions.Definition, bdg *cpubus.Budget) error

// CPU implements the instruction-stepped core of the machine. Register logic
// is implemented by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem cpubus.Memory

	// the table of instruction definitions, indexed by opcode
	instructions []*instructions.Definition

	// handlers dispatch opcodes to operator implementations. built once
	// during NewCPU()
	handlers [256]handler

	// 8 bit scratch register used for address indexing. defining it as part
	// of the CPU makes the wraparound behaviour of index arithmetic explicit
	acc8 registers.Register

	// LastResult records the outcome of the most recent call to
	// ExecuteInstruction()
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is not usable until Reset() has been called.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}

	for _, defn := range mc.instructions {
		if defn == nil {
			continue
		}
		switch defn.Operator {
		case instructions.Lda:
			mc.handlers[defn.OpCode] = mc.lda
		case instructions.Jsr:
			mc.handlers[defn.OpCode] = mc.jsr
		}
	}

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset readies the CPU for a new run. The PC is loaded with the reset
// address, the stack pointer with the stack origin, the other registers are
// zeroed and memory is reinitialised.
//
// All status flags are clear after reset. In particular the zero flag is not
// set, even though the accumulator is zero.
//
// Because memory is reinitialised, a program must be written into memory
// after Reset() and never before.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(cpubus.Reset)
	mc.SP.Load(cpubus.StackOrigin)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.Status.Reset()
	mc.mem.Init()
}

// FetchByte reads the byte at the program counter and advances the program
// counter by one.
//
// side-effects:
//   - consumes one cycle from the budget
//   - updates LastResult.ByteCount
func (mc *CPU) FetchByte(bdg *cpubus.Budget) (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}

	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	// +1 cycle
	bdg.Consume(1)

	return v, nil
}

// FetchWord reads the two bytes at the program counter, least significant
// byte first, and advances the program counter by two.
//
// side-effects:
//   - consumes two cycles from the budget
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData, once per byte read
func (mc *CPU) FetchWord(bdg *cpubus.Budget) (uint16, error) {
	// +1 cycle
	lo, err := mc.FetchByte(bdg)
	if err != nil {
		return 0, err
	}

	// update instruction data with partial operand
	mc.LastResult.InstructionData = uint16(lo)

	// +1 cycle
	hi, err := mc.FetchByte(bdg)
	if err != nil {
		return 0, err
	}

	// update instruction data with complete operand
	w := (uint16(hi) << 8) | uint16(lo)
	mc.LastResult.InstructionData = w

	return w, nil
}

// ReadByte reads the byte at the specified address.
//
// side-effects:
//   - consumes one cycle from the budget
func (mc *CPU) ReadByte(bdg *cpubus.Budget, address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	// +1 cycle
	bdg.Consume(1)

	return v, nil
}

// ExecuteInstruction decodes and executes the instruction at the current
// program counter, spending cycles from the budget as it goes.
//
// The budget is not consulted before or during execution. An instruction
// always runs to completion, even when that takes the budget below zero.
//
// On return, LastResult describes what happened, whether or not an error
// occurred.
func (mc *CPU) ExecuteInstruction(bdg *cpubus.Budget) error {
	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// note the budget before any spending so that the cycles consumed by
	// this instruction can be measured on completion
	remaining := bdg.Remaining()

	// read next instruction
	// +1 cycle
	opcode, err := mc.FetchByte(bdg)
	if err != nil {
		mc.LastResult.Final = true
		return err
	}

	defn := mc.instructions[opcode]
	if defn == nil {
		mc.LastResult.Cycles = remaining - bdg.Remaining()
		mc.LastResult.Final = true
		return fmt.Errorf("%w (%#02x) at (%#04x)", UnimplementedInstruction, opcode, mc.PC.Address()-1)
	}
	mc.LastResult.Defn = defn

	err = mc.handlers[opcode](defn, bdg)

	mc.LastResult.Cycles = remaining - bdg.Remaining()
	mc.LastResult.Final = true

	return err
}

// Execute runs instructions one after another until the budget is spent.
//
// The budget is checked only between instructions. The final instruction runs
// to completion so the budget may be overrun; the overrun is recorded in the
// budget itself.
//
// Execution halts immediately if an instruction fails. An opcode with no
// implementation halts with an error that wraps UnimplementedInstruction.
func (mc *CPU) Execute(bdg *cpubus.Budget) error {
	for !bdg.Spent() {
		if err := mc.ExecuteInstruction(bdg); err != nil {
			return err
		}
	}

	return nil
}

// lda implements the LDA instruction. The addressing mode of the definition
// decides where the value comes from. The zero and sign flags are set
// according to the new accumulator value.
func (mc *CPU) lda(defn *instructions.Definition, bdg *cpubus.Budget) error {
	var value uint8

	switch defn.AddressingMode {
	case instructions.Immediate:
		// for immediate mode, the value is the next byte in the program

		// +1 cycle
		v, err := mc.FetchByte(bdg)
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(v)
		value = v

	case instructions.ZeroPage:
		// +1 cycle
		a, err := mc.FetchByte(bdg)
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(a)

		// +1 cycle
		value, err = mc.ReadByte(bdg, uint16(a))
		if err != nil {
			return err
		}

	case instructions.ZeroPageIndexedX:
		// +1 cycle
		a, err := mc.FetchByte(bdg)
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(a)

		// index the address with X. the calculation happens in the 8 bit
		// accumulator so the result wraps around the top of the zero page
		// rather than leaving it
		// +1 cycle
		mc.acc8.Load(a)
		mc.acc8.Add(mc.X.Value(), false)
		bdg.Consume(1)

		// +1 cycle
		value, err = mc.ReadByte(bdg, mc.acc8.Address())
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	mc.A.Load(value)
	mc.Status.Zero = mc.A.IsZero()
	mc.Status.Sign = mc.A.IsNegative()

	return nil
}

// jsr implements the JSR instruction. The return address is pushed onto the
// stack as a single word and the PC is loaded with the subroutine address.
func (mc *CPU) jsr(defn *instructions.Definition, bdg *cpubus.Budget) error {
	// +2 cycles
	target, err := mc.FetchWord(bdg)
	if err != nil {
		return err
	}

	// the PC now points to the instruction after the JSR. the word pushed is
	// one less than that, in the manner of a real 6502: an RTS would
	// increment it on return
	// +2 cycles
	err = mc.mem.WriteWord(bdg, mc.SP.Address(), mc.PC.Address()-1)
	if err != nil {
		return err
	}
	mc.SP.Add(1)

	// perform jump
	// +1 cycle
	mc.PC.Load(target)
	bdg.Consume(1)

	return nil
}

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

package memory_test

import (
	"errors"
	"testing"

	"github.com/Xaristrike/pal6502/hardware/memory"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
	"github.com/Xaristrike/pal6502/test"
)

func readCheck(t *testing.T, ram *memory.RAM, address uint16, value uint8) {
	t.Helper()
	d, err := ram.Read(address)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, value)
}

func TestRAM_readWrite(t *testing.T) {
	ram := memory.NewRAM()
	ram.Init()

	// every address reads zero after Init()
	readCheck(t, ram, memory.Origin, 0x00)
	readCheck(t, ram, memory.Memtop, 0x00)

	test.ExpectedSuccess(t, ram.Write(0x0001, 0xff))
	readCheck(t, ram, 0x0001, 0xff)

	// the extremes of the address space are backed like anywhere else
	test.ExpectedSuccess(t, ram.Write(memory.Memtop, 0x80))
	readCheck(t, ram, memory.Memtop, 0x80)

	// Init() clears everything again
	ram.Init()
	readCheck(t, ram, 0x0001, 0x00)
	readCheck(t, ram, memory.Memtop, 0x00)
}

func TestRAM_writeWord(t *testing.T) {
	ram := memory.NewRAM()
	ram.Init()

	bdg := cpubus.NewBudget(10)
	test.ExpectedSuccess(t, ram.WriteWord(&bdg, 0x0100, 0x4241))

	// least significant byte first
	readCheck(t, ram, 0x0100, 0x41)
	readCheck(t, ram, 0x0101, 0x42)

	// both accesses metered
	test.Equate(t, bdg.Remaining(), 8)
}

func TestRAM_writeWordAtMemtop(t *testing.T) {
	ram := memory.NewRAM()
	ram.Init()

	bdg := cpubus.NewBudget(10)
	err := ram.WriteWord(&bdg, memory.Memtop, 0x4241)
	test.ExpectedFailure(t, err)
	test.Equate(t, errors.Is(err, cpubus.AddressError), true)

	// the failed write must not have touched memory or the budget
	readCheck(t, ram, memory.Memtop, 0x00)
	test.Equate(t, bdg.Remaining(), 10)
}

func TestRAM_peekPoke(t *testing.T) {
	ram := memory.NewRAM()
	ram.Init()

	test.ExpectedSuccess(t, ram.Poke(0xfffc, 0x20))
	d, err := ram.Peek(0xfffc)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x20)

	// Peek() sees what Read() sees
	readCheck(t, ram, 0xfffc, 0x20)
}

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

package hardware_test

import (
	"testing"

	"github.com/Xaristrike/pal6502/hardware"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
	"github.com/Xaristrike/pal6502/test"
)

func poke(sys *hardware.System, origin uint16, bytes ...uint8) {
	for i, b := range bytes {
		_ = sys.Mem.Poke(origin+uint16(i), b)
	}
}

func TestRun(t *testing.T) {
	sys := hardware.NewSystem()
	sys.Reset()

	poke(sys, 0xfffc, 0x20, 0x42, 0x42)
	poke(sys, 0x4242, 0xa9, 0x84)

	bdg := cpubus.NewBudget(8)
	err := sys.Run(&bdg, nil)
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.CPU.PC.Address(), 0x4244)
	test.Equate(t, sys.CPU.A.Value(), 0x84)
	test.Equate(t, bdg.Remaining(), 0)
}

func TestRun_continueCheck(t *testing.T) {
	sys := hardware.NewSystem()
	sys.Reset()

	poke(sys, 0xfffc, 0x20, 0x42, 0x42)
	poke(sys, 0x4242, 0xa9, 0x84)

	// stop the run after the first instruction, leaving budget unspent
	instructions := 0
	bdg := cpubus.NewBudget(8)
	err := sys.Run(&bdg, func() (bool, error) {
		instructions++
		return false, nil
	})
	test.ExpectedSuccess(t, err)

	test.Equate(t, instructions, 1)
	test.Equate(t, sys.CPU.PC.Address(), 0x4242)
	test.Equate(t, bdg.Remaining(), 2)
}

func TestStep(t *testing.T) {
	sys := hardware.NewSystem()
	sys.Reset()

	poke(sys, 0xfffc, 0xa9, 0x84)

	bdg := cpubus.NewBudget(2)
	err := sys.Step(&bdg)
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.CPU.A.Value(), 0x84)
	test.Equate(t, sys.CPU.LastResult.Cycles, 2)
}

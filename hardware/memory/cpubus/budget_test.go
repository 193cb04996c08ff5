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

package cpubus_test

import (
	"testing"

	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
	"github.com/Xaristrike/pal6502/test"
)

func TestBudget(t *testing.T) {
	bdg := cpubus.NewBudget(6)
	test.Equate(t, bdg.Spent(), false)
	test.Equate(t, bdg.Remaining(), 6)

	bdg.Consume(2)
	test.Equate(t, bdg.Spent(), false)
	test.Equate(t, bdg.Remaining(), 4)

	bdg.Consume(4)
	test.Equate(t, bdg.Spent(), true)
	test.Equate(t, bdg.Remaining(), 0)
}

func TestBudget_overrun(t *testing.T) {
	// the CPU checks the budget only between instructions. the budget must
	// keep counting below zero so that the overrun is visible.
	bdg := cpubus.NewBudget(1)
	bdg.Consume(6)
	test.Equate(t, bdg.Spent(), true)
	test.Equate(t, bdg.Remaining(), -5)
}

func TestBudget_zero(t *testing.T) {
	bdg := cpubus.NewBudget(0)
	test.Equate(t, bdg.Spent(), true)
	test.Equate(t, bdg.Remaining(), 0)
}

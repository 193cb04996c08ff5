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

package hardware

import (
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the machine running until the budget is spent. The budget is
// checked between instructions only, so the final instruction may overrun.
//
// The continueCheck() function is consulted after every instruction. A false
// return value stops the run early. A nil continueCheck is allowed.
func (sys *System) Run(bdg *cpubus.Budget, continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		return sys.CPU.Execute(bdg)
	}

	for !bdg.Spent() {
		if err := sys.CPU.ExecuteInstruction(bdg); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}

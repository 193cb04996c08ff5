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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Xaristrike/pal6502/hardware"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
)

// sentinal error returned by the runner loop when the measurement period is
// over.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulated machine.
//
// The machine is run flat out for the specified duration. Programs for this
// machine are short-lived by nature so each iteration of the run loop resets
// the machine, loads the program with the attach() function and executes
// against a fresh cycle budget. The totals over the measurement period are
// reported to output.
//
// CPU and memory profiles are generated when the profile argument is true.
func Check(output io.Writer, profile bool, duration string, cycles int, attach func(*hardware.System) error) error {
	if cycles < 1 {
		return fmt.Errorf("performance: cycle budget must be a positive number")
	}

	sys := hardware.NewSystem()

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// totals accumulated over every iteration of the run loop
	numCycles := 0
	numInstructions := 0

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when the measurement period has elapsed.
		// the buffer lets the timer deliver and exit even when the runner has
		// already returned through an error
		timerChan := make(chan bool, 1)

		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		// only check for the end of the measurement period every
		// PerformanceBrake CPU instructions. checking the timerChan is
		// relatively expensive
		performanceBrake := 0

		continueCheck := func() (bool, error) {
			numInstructions++

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case <-timerChan:
					return false, timedOut
				default:
				}
			}

			return true, nil
		}

		for {
			sys.Reset()

			err := attach(sys)
			if err != nil {
				return err
			}

			bdg := cpubus.NewBudget(cycles)
			err = sys.Run(&bdg, continueCheck)

			// the spent portion of the budget counts towards the total
			// however the run has ended
			numCycles += cycles - bdg.Remaining()

			if err != nil {
				return err
			}
		}
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	if profile {
		err = ProfileCPU("performance.cpu.profile", runner)
	} else {
		err = runner()
	}
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	// the memory profile is a snapshot so it is written once the runner has
	// finished
	if profile {
		err = ProfileMem("performance.mem.profile")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
	}

	// calculate performance
	mhz, speedup := CalcClock(numCycles, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f MHz (%d cycles / %d instructions in %.2f seconds) %.1f%%\n",
		mhz, numCycles, numInstructions, dur.Seconds(), speedup)))

	return nil
}

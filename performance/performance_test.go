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

package performance_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Xaristrike/pal6502/hardware"
	"github.com/Xaristrike/pal6502/performance"
	"github.com/Xaristrike/pal6502/test"
)

func attachDemo(sys *hardware.System) error {
	prog := map[uint16]uint8{
		0xfffc: 0x20, 0xfffd: 0x42, 0xfffe: 0x42,
		0x4242: 0xa9, 0x4243: 0x84,
	}
	for a, d := range prog {
		if err := sys.Mem.Poke(a, d); err != nil {
			return err
		}
	}
	return nil
}

func TestCheck(t *testing.T) {
	output := &strings.Builder{}

	err := performance.Check(output, false, "50ms", 8, attachDemo)
	test.ExpectedSuccess(t, err)

	// the rates depend on the host machine but the shape of the report does
	// not
	if !strings.Contains(output.String(), "MHz (") {
		t.Errorf("unexpected performance report: %s", output.String())
	}
	test.Equate(t, strings.HasSuffix(output.String(), "%\n"), true)
}

func TestCheck_badArguments(t *testing.T) {
	output := &strings.Builder{}

	// unparseable duration
	err := performance.Check(output, false, "foldero", 8, attachDemo)
	test.ExpectedFailure(t, err)

	// cycle budget must be positive or the run loop would make no progress
	err = performance.Check(output, false, "50ms", 0, attachDemo)
	test.ExpectedFailure(t, err)
}

func TestCheck_brokenMachine(t *testing.T) {
	output := &strings.Builder{}

	// an attach function that loads nothing leaves the machine facing an
	// instruction it does not implement
	err := performance.Check(output, false, "1s", 8, func(sys *hardware.System) error {
		return nil
	})
	test.ExpectedFailure(t, err)

	// errors from the attach function itself are returned too
	err = performance.Check(output, false, "1s", 8, func(sys *hardware.System) error {
		return fmt.Errorf("no program today")
	})
	test.ExpectedFailure(t, err)
}

func TestProfileCPU(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cpu.profile")

	err := performance.ProfileCPU(fn, func() error {
		return nil
	})
	test.ExpectedSuccess(t, err)

	_, err = os.Stat(fn)
	test.ExpectedSuccess(t, err)
}

func TestProfileCPU_runError(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cpu.profile")

	// errors from the profiled function must come back undecorated
	expected := fmt.Errorf("run failed")
	err := performance.ProfileCPU(fn, func() error {
		return expected
	})
	test.Equate(t, err == expected, true)
}

func TestProfileMem(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mem.profile")

	err := performance.ProfileMem(fn)
	test.ExpectedSuccess(t, err)

	_, err = os.Stat(fn)
	test.ExpectedSuccess(t, err)
}

func TestCalcClock(t *testing.T) {
	// one second of cycles at exactly the PAL clock rate
	mhz, speedup := performance.CalcClock(985248, 1.0)
	test.Equate(t, fmt.Sprintf("%.6f", mhz), "0.985248")
	test.Equate(t, fmt.Sprintf("%.1f", speedup), "100.0")

	// double speed
	_, speedup = performance.CalcClock(2*985248, 1.0)
	test.Equate(t, fmt.Sprintf("%.1f", speedup), "200.0")
}

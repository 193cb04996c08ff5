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

package debugger_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Xaristrike/pal6502/debugger"
	"github.com/Xaristrike/pal6502/debugger/terminal"
	"github.com/Xaristrike/pal6502/hardware"
)

type mockTerm struct {
	t      *testing.T
	inp    chan string
	out    chan string
	output []string
}

func newMockTerm(t *testing.T) *mockTerm {
	trm := &mockTerm{
		t:   t,
		inp: make(chan string),
		out: make(chan string, 100),
	}
	return trm
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(silenced bool) {
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	s := <-trm.inp
	copy(buffer, s)

	// the returned count includes the line terminator
	return len(s) + 1, nil
}

func (trm *mockTerm) TermReadCheck() bool {
	return false
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}

	trm.out <- s
}

func (trm *mockTerm) sndInput(s string) {
	trm.output = make([]string, 0, 10)
	trm.inp <- s
}

func (trm *mockTerm) rcvOutput() {
	empty := false
	for !empty {
		select {
		case s := <-trm.out:
			trm.output = append(trm.output, s)

		// the amount of output sent by the debugger is unpredictable so a
		// timeout is necessary. a matter of milliseconds should be sufficient
		case <-time.After(10 * time.Millisecond):
			empty = true
		}
	}
}

// cmpOutput compares the string argument with the *last line* of the most
// recent output. it can easily be adapted to compare the whole output if
// necessary.
func (trm *mockTerm) cmpOutput(s string) {
	trm.rcvOutput()

	if len(trm.output) == 0 {
		if len(s) != 0 {
			trm.t.Errorf("unexpected debugger output (nothing) should be (%s)", s)
			return
		}
		return
	}

	l := len(trm.output) - 1

	if trm.output[l] == s {
		return
	}

	trm.t.Errorf("unexpected debugger output (%s) should be (%s)", trm.output[l], s)
}

// attachDemo writes a short program into memory. a subroutine call at the
// reset address into a load instruction elsewhere in memory.
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

func (trm *mockTerm) testCPU() {
	trm.sndInput("CPU")
	trm.cmpOutput("PC=0xfffc A=0x00 X=0x00 Y=0x00 SP=0x0100 SR=sv-bdizc")
}

func (trm *mockTerm) testStep() {
	trm.sndInput("STEP")
	trm.cmpOutput("0xfffc JSR $4242 (6 cycles)")
	trm.sndInput("CPU")
	trm.cmpOutput("PC=0x4242 A=0x00 X=0x00 Y=0x00 SP=0x0101 SR=sv-bdizc")
	trm.sndInput("STEP")
	trm.cmpOutput("0x4242 LDA #$84 (2 cycles)")
	trm.sndInput("CPU")
	trm.cmpOutput("PC=0x4244 A=0x84 X=0x00 Y=0x00 SP=0x0101 SR=Sv-bdizc")
	trm.sndInput("LAST")
	trm.cmpOutput("0x4242 LDA #$84")
	trm.sndInput("LAST DEFN")
	trm.cmpOutput("a9 LDA +2bytes (2 cycles) [mode=Immediate effect=Read]")
}

func (trm *mockTerm) testPeekPoke() {
	trm.sndInput("PEEK 0x4243")
	trm.cmpOutput("0x4243 -> 0x84")
	trm.sndInput("POKE $80 10 0xff")
	trm.cmpOutput("0x0081 <- 0xff")
	trm.sndInput("PEEK 128 129")
	trm.cmpOutput("0x0081 -> 0xff")
	trm.sndInput("PEEK")
	trm.cmpOutput("no address specified")
	trm.sndInput("POKE qq 1")
	trm.cmpOutput("not a valid address (qq)")
}

func (trm *mockTerm) testRunReset() {
	trm.sndInput("RESET")
	trm.cmpOutput("machine reset")
	trm.sndInput("RUN 8")
	trm.cmpOutput("8 of 8 cycles spent")
	trm.sndInput("CPU")
	trm.cmpOutput("PC=0x4244 A=0x84 X=0x00 Y=0x00 SP=0x0101 SR=Sv-bdizc")

	// the demo program runs out of instructions when given a larger budget
	trm.sndInput("RUN 100")
	trm.cmpOutput("cpu: unimplemented instruction (0x00) at (0x4244)")
}

func (trm *mockTerm) testDisasm() {
	trm.sndInput("RESET")
	trm.cmpOutput("machine reset")
	trm.sndInput("DISASM")
	trm.cmpOutput("0xffff .byte $00")
	trm.sndInput("DISASM 0x4242")
	trm.cmpOutput("0x4244 .byte $00")
}

func (trm *mockTerm) testHelp() {
	trm.sndInput("HELP")
	trm.cmpOutput("VIZ")
	trm.sndInput("HELP RUN")
	trm.cmpOutput("Run the machine until the cycle budget is spent. Optional argument sets a new budget")
	trm.sndInput("HELP FOLDEROL")
	trm.cmpOutput("no help for FOLDEROL")
	trm.sndInput("FOLDEROL")
	trm.cmpOutput("FOLDEROL is not a debugger command")
}

func (trm *mockTerm) testViz(dir string) {
	filename := filepath.Join(dir, "machine.dot")
	trm.sndInput("VIZ " + filename)
	trm.cmpOutput(fmt.Sprintf("machine graph written to %s", filename))

	if _, err := os.Stat(filename); err != nil {
		trm.t.Errorf("viz file has not been written: %v", err)
	}
}

func (trm *mockTerm) testSequence(dir string) {
	defer func() { trm.sndInput("QUIT") }()
	trm.testCPU()
	trm.testStep()
	trm.testPeekPoke()
	trm.testRunReset()
	trm.testDisasm()
	trm.testHelp()
	trm.testViz(dir)
}

func TestDebugger(t *testing.T) {
	trm := newMockTerm(t)

	dbg, err := debugger.NewDebugger(trm, 8)
	if err != nil {
		t.Fatalf(err.Error())
	}

	go trm.testSequence(t.TempDir())

	err = dbg.Start(attachDemo)
	if err != nil {
		t.Fatalf(err.Error())
	}
}

// interruptTerm answers every prompt with a user interrupt and every
// confirmation with a yes.
type interruptTerm struct {
	mockTerm
}

func (trm *interruptTerm) TermRead(buffer []byte, prompt terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	if prompt.Type == terminal.PromptTypeConfirm {
		n := copy(buffer, "y\n")
		return n, nil
	}
	return 0, terminal.UserInterrupt
}

func TestDebugger_interrupt(t *testing.T) {
	trm := &interruptTerm{mockTerm: *newMockTerm(t)}

	dbg, err := debugger.NewDebugger(trm, 8)
	if err != nil {
		t.Fatalf(err.Error())
	}

	// the interrupt/confirm exchange provided by the terminal means Start()
	// returns without any user input
	err = dbg.Start(attachDemo)
	if err != nil {
		t.Fatalf(err.Error())
	}
}

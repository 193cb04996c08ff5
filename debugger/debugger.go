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

package debugger

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/Xaristrike/pal6502/debugger/terminal"
	"github.com/Xaristrike/pal6502/hardware"
	"github.com/Xaristrike/pal6502/hardware/cpu/instructions"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
	"github.com/Xaristrike/pal6502/logger"
)

// Debugger is the basic debugger for the pal6502 machine.
type Debugger struct {
	sys  *hardware.System
	term terminal.Terminal

	// the instruction definitions, used to decode the instruction at the
	// prompt address
	defns []*instructions.Definition

	// the cycle budget given to the RUN command when the user doesn't
	// specify one
	runCycles int

	// the supplied attach function loads a program into memory. it is run
	// after every reset of the machine
	attach func(*hardware.System) error

	// buffer for user input
	input [255]byte

	// events handled by TermRead() in addition to user input
	events *terminal.ReadEvents

	// set to false to cause the input loop to finish
	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The cycles argument is the budget given to the RUN command when the
// user doesn't ask for a specific amount.
func NewDebugger(term terminal.Terminal, cycles int) (*Debugger, error) {
	dbg := &Debugger{
		sys:       hardware.NewSystem(),
		term:      term,
		defns:     instructions.GetDefinitions(),
		runCycles: cycles,
	}

	dbg.events = &terminal.ReadEvents{
		IntEvents: make(chan os.Signal, 1),
	}

	// connect interrupt signals to the debugger
	signal.Notify(dbg.events.IntEvents, os.Interrupt)

	return dbg, nil
}

// Start the main debugger sequence. Returns at the end of the session.
func (dbg *Debugger) Start(attach func(*hardware.System) error) error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(newTabCompletion())

	dbg.attach = attach
	err = dbg.reset()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	err = dbg.inputLoop()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	return nil
}

// reset the machine and reload the attached program.
func (dbg *Debugger) reset() error {
	dbg.sys.Reset()
	if dbg.attach != nil {
		if err := dbg.attach(dbg.sys); err != nil {
			return err
		}
	}
	logger.Log("debugger", "machine reset")
	dbg.printLine(terminal.StyleFeedback, "machine reset")
	return nil
}

// step the machine one instruction and show what was executed.
func (dbg *Debugger) step() error {
	// stepping is not concerned with any cycle budget so the instruction
	// runs against an empty one and the overrun says how much it cost
	bdg := cpubus.NewBudget(0)

	err := dbg.sys.Step(&bdg)
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleCPUStep, "%s (%d cycles)",
		dbg.sys.CPU.LastResult.String(), dbg.sys.CPU.LastResult.Cycles)

	return nil
}

// run the machine against a fresh cycle budget.
func (dbg *Debugger) run(cycles int) error {
	bdg := cpubus.NewBudget(cycles)

	err := dbg.sys.Run(&bdg, func() (bool, error) {
		// the user can interrupt a long run
		select {
		case <-dbg.events.IntEvents:
			return false, nil
		default:
		}
		return true, nil
	})

	// the spent portion of the budget is worth reporting however the run
	// has ended
	dbg.printLine(terminal.StyleFeedback, "%d of %d cycles spent", cycles-bdg.Remaining(), cycles)

	return err
}

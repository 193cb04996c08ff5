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
	"errors"
	"io"
	"strings"

	"github.com/Xaristrike/pal6502/debugger/terminal"
)

func (dbg *Debugger) inputLoop() error {
	dbg.running = true

	for dbg.running {
		n, err := dbg.term.TermRead(dbg.input[:], dbg.buildPrompt(), dbg.events)
		if err != nil {
			if errors.Is(err, terminal.UserInterrupt) {
				dbg.confirmQuit()
				continue // for loop
			}
			if errors.Is(err, io.EOF) {
				// end of input, there is nothing more for the debugger to do
				dbg.running = false
				continue // for loop
			}
			return err
		}

		if n <= 0 {
			continue // for loop
		}

		// the character count returned by TermRead() includes the line
		// terminator
		input := strings.TrimSpace(string(dbg.input[:n-1]))
		if input == "" {
			continue // for loop
		}

		// echo input for the benefit of non-interactive terminals
		if !dbg.term.IsInteractive() {
			dbg.printLine(terminal.StyleEcho, input)
		}

		err = dbg.parseCommand(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// confirmQuit is called when the user interrupts the input loop. A second
// interrupt while the confirmation is on screen quits without an answer.
func (dbg *Debugger) confirmQuit() {
	confirm := make([]byte, 32)
	n, err := dbg.term.TermRead(confirm,
		terminal.Prompt{Type: terminal.PromptTypeConfirm, Content: "really quit (y/n) "},
		dbg.events)
	if err != nil {
		if errors.Is(err, terminal.UserInterrupt) {
			dbg.running = false
		}
		return
	}

	if n > 0 && (confirm[0] == 'y' || confirm[0] == 'Y') {
		dbg.running = false
	}
}

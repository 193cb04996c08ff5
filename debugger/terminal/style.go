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

package terminal

// Style is used to identify the category of text being sent to the
// Output.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit - the simplest interpretation is to ignore it.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back. non-interactive terminals will
	// probably want to suppress this
	StyleEcho Style = iota

	// information from the help system
	StyleHelp

	// information as a result of a command or a direct response to user input
	StyleFeedback

	// the CPU state, printed after every step
	StyleCPUStep

	// the state of some other part of the machine, memory for instance
	StyleInstrument

	// terminal prompts
	StylePromptCPUStep
	StylePromptConfirm

	// error messages. a terminal should always display these, even when
	// silenced
	StyleError
)

// IsPrompt returns true if the style is one of the prompt styles. Prompts
// are not terminated with a newline when printed.
func (sty Style) IsPrompt() bool {
	return sty == StylePromptCPUStep || sty == StylePromptConfirm
}

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
	"strings"
)

// tabCompletion keeps track of the most recent completion attempt. It
// implements the terminal.TabCompletion interface.
type tabCompletion struct {
	options    []string
	lastOption int

	// lastGuess is the last string generated and returned by the Complete()
	// function. we use it to decide whether to cycle through the options of
	// an existing completion session or to begin a new one
	lastGuess string
}

func newTabCompletion() *tabCompletion {
	tc := new(tabCompletion)
	tc.options = make([]string, 0, len(commandList))
	return tc
}

// Complete transforms the input such that the last word is expanded to the
// closest matching debugger command. Repeated calls with the previous result
// cycle through the possible expansions.
func (tc *tabCompletion) Complete(input string) string {
	p := strings.Fields(input)
	if len(p) == 0 {
		return input
	}

	if input == tc.lastGuess {
		// if there was only one option in the option list then there is
		// nothing to cycle to
		if len(tc.options) <= 1 {
			return input
		}

		// there is more than one completion option, so shorten the input by
		// one word (getting rid of the last completion effort) and step to
		// the next option
		p = p[:len(p)-1]
		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
	} else {
		if strings.HasSuffix(input, " ") {
			return input
		}

		// this is a new completion session. only the command word is
		// completed
		if len(p) > 1 {
			return input
		}

		tc.options = tc.options[:0]
		tc.lastOption = 0

		// the trigger is the word we're trying to complete on
		trigger := strings.ToUpper(p[len(p)-1])
		p = p[:len(p)-1]

		for _, c := range commandList {
			if strings.HasPrefix(c, trigger) {
				tc.options = append(tc.options, c)
			}
		}

		// no completion options - return input unchanged
		if len(tc.options) == 0 {
			return input
		}
	}

	// add guessed word to the end of the input-list and rejoin to form the
	// output
	p = append(p, tc.options[tc.lastOption])
	tc.lastGuess = strings.Join(p, " ") + " "

	return tc.lastGuess
}

// Reset forgets the current completion session.
func (tc *tabCompletion) Reset() {
	tc.lastGuess = ""
}

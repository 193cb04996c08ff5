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
	"strings"
)

// tokens represents tokenised input. this can be used to walk through the
// input string (using get()) for eas(ier) parsing.
type tokens struct {
	input  string
	tokens []string
	curr   int
}

// tokeniseInput creates and returns a new tokens instance.
func tokeniseInput(input string) *tokens {
	tk := new(tokens)

	// remove leading/trailing space
	input = strings.TrimSpace(input)

	// divide user input into tokens. removes excess white space
	tk.tokens = strings.Fields(input)

	// take a note of the raw input
	tk.input = input

	// normalise variations in syntax
	for i := 0; i < len(tk.tokens); i++ {
		// normalise hex notation
		if tk.tokens[i][0] == '$' {
			tk.tokens[i] = fmt.Sprintf("0x%s", tk.tokens[i][1:])
		}
	}

	return tk
}

func (tk *tokens) String() string {
	return tk.input
}

// isEnd returns true if we're at the end of the token list.
func (tk *tokens) isEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// remaining returns the count of remaining tokens in the token list.
func (tk *tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

// get returns the next token in the list, and a success boolean - if the end
// of the token list has been reached, the function returns false instead of
// true.
func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// unget walks backwards in the token list.
func (tk *tokens) unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// peek returns the next token in the list (without advancing the list), and a
// success boolean - if the end of the token list has been reached, the
// function returns false instead of true.
func (tk *tokens) peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

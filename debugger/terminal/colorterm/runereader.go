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

//go:build !windows
// +build !windows

package colorterm

import (
	"bufio"
	"io"
)

// readRune is the type sent over the runeReader channel.
type readRune struct {
	r   rune
	err error
}

// runeReader turns an io.Reader into a channel of runes. Having the runes
// arrive over a channel means TermRead() can service other channels while it
// waits for input.
type runeReader chan readRune

func initRuneReader(input io.Reader) runeReader {
	ch := make(chan readRune, 1)

	reader := bufio.NewReader(input)

	go func() {
		for {
			r, _, err := reader.ReadRune()
			ch <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return ch
}

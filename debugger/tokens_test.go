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
	"testing"

	"github.com/Xaristrike/pal6502/test"
)

func TestTokeniser(t *testing.T) {
	tk := tokeniseInput("  poke  $ff00 255 ")
	test.Equate(t, tk.remaining(), 3)

	s, ok := tk.get()
	test.Equate(t, ok, true)
	test.Equate(t, s, "poke")

	// leading dollar signs are converted to the 0x hex prefix
	s, _ = tk.get()
	test.Equate(t, s, "0xff00")

	tk.unget()
	s, _ = tk.peek()
	test.Equate(t, s, "0xff00")
	test.Equate(t, tk.remaining(), 2)

	_, _ = tk.get()
	s, _ = tk.get()
	test.Equate(t, s, "255")
	test.Equate(t, tk.isEnd(), true)

	_, ok = tk.get()
	test.Equate(t, ok, false)
}

func TestParseAddress(t *testing.T) {
	a, err := parseAddress("0x4242")
	test.ExpectedSuccess(t, err)
	test.Equate(t, a, uint16(0x4242))

	a, err = parseAddress("65535")
	test.ExpectedSuccess(t, err)
	test.Equate(t, a, uint16(0xffff))

	_, err = parseAddress("65536")
	test.ExpectedFailure(t, err)

	_, err = parseAddress("pitfall")
	test.ExpectedFailure(t, err)

	v, err := parseValue("0xff")
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint8(0xff))

	_, err = parseValue("256")
	test.ExpectedFailure(t, err)
}

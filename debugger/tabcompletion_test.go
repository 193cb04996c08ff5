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

func TestTabCompletion(t *testing.T) {
	tc := newTabCompletion()

	// a prefix with a single match completes immediately
	test.Equate(t, tc.Complete("DI"), "DISASM ")

	// repeated completion attempts cycle through all the matches
	tc.Reset()
	completion := tc.Complete("R")
	test.Equate(t, completion, "RAM ")
	completion = tc.Complete(completion)
	test.Equate(t, completion, "RESET ")
	completion = tc.Complete(completion)
	test.Equate(t, completion, "RUN ")
	completion = tc.Complete(completion)
	test.Equate(t, completion, "RAM ")

	// a reset forgets the session. the previous guess is completed afresh
	// rather than cycled onwards
	tc.Reset()
	completion = tc.Complete("RAM")
	test.Equate(t, completion, "RAM ")
	completion = tc.Complete(completion)
	test.Equate(t, completion, "RAM ")

	// case is normalised
	tc.Reset()
	test.Equate(t, tc.Complete("he"), "HELP ")
}

func TestTabCompletion_noMatch(t *testing.T) {
	tc := newTabCompletion()

	// unknown prefixes and anything after the command word are left alone
	test.Equate(t, tc.Complete("XYZ"), "XYZ")
	test.Equate(t, tc.Complete("PEEK 0x80"), "PEEK 0x80")
	test.Equate(t, tc.Complete("PEEK "), "PEEK ")
	test.Equate(t, tc.Complete(""), "")
}

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

package terminal_test

import (
	"testing"

	"github.com/Xaristrike/pal6502/debugger/terminal"
	"github.com/Xaristrike/pal6502/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Type: terminal.PromptTypeCPUStep, Content: "0xfffc JSR $4242"}
	test.Equate(t, p.String(), "[ 0xfffc JSR $4242 ] >> ")
	test.Equate(t, p.Style().IsPrompt(), true)

	// confirmation prompts are printed as they are
	p = terminal.Prompt{Type: terminal.PromptTypeConfirm, Content: "really quit (y/n) "}
	test.Equate(t, p.String(), "really quit (y/n) ")
	test.Equate(t, p.Style().IsPrompt(), true)
}

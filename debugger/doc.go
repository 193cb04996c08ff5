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

// Package debugger implements a command-line debugger for the pal6502
// machine. Interaction happens through an implementation of the
// terminal.Terminal interface; the plainterm and colorterm packages both
// provide one.
//
// The debugger is started with the Start() function, which will not return
// until the end of the session. The machine it debugs is its own: the
// caller supplies an attach function that loads the program into memory,
// which is run after every reset of the machine.
//
// Use the HELP command for a list of the available commands.
package debugger

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

// Package disassembly builds an annotated view of a program in memory
// without running it.
//
// Decoding starts at a nominated origin address and follows the program in
// strands. A strand is a linear run of instructions. When the decoding meets
// a subroutine instruction the call target is noted and queued up as a new
// strand, and the current strand continues past the call in the expectation
// that the subroutine will return. A strand ends when it runs into an address
// that has already been decoded or into a byte that is not a recognised
// opcode.
//
// The result is necessarily an approximation. Decoding cannot know about
// addresses that are only ever reached through computed jumps and it will
// misread bytes that are data rather than code. The entries it produces are
// clearly marked in the written output so wrong guesses are easy to spot.
//
// Use the Write() function to print the disassembly:
//
//	dsm, err := disassembly.FromMemory(mem, cpubus.Reset)
//	if err != nil {
//		...
//	}
//	dsm.Write(os.Stdout, disassembly.WriteAttr{})
package disassembly

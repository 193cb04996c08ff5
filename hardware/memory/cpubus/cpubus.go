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

// Package cpubus defines how the CPU sees memory. The Memory interface is
// implemented by the memory package and used for every access the CPU makes
// during execution. The Budget type meters those accesses.
package cpubus

import "errors"

// Memory defines the operations for the memory system when accessed from the
// CPU. Every access is accounted for: one cycle per byte read or written.
// WriteWord takes the Budget explicitly because it accounts for both of its
// accesses itself.
type Memory interface {
	// Init readies every address for a freshly reset machine.
	Init()

	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error

	// WriteWord writes data to address and address+1, least-significant byte
	// first. The write fails with AddressError if the second byte would fall
	// outside the address space. On failure neither byte is written.
	WriteWord(bdg *Budget, address uint16, data uint16) error
}

// Reset is the address execution begins at after a CPU reset. The program
// counter is set to this address directly. There is no vector indirection,
// the first opcode is read from the address itself.
const Reset = uint16(0xfffc)

// StackOrigin is the address the stack pointer is set to on reset. The stack
// pointer is a full 16bit cursor and moves up as words are pushed.
const StackOrigin = uint16(0x0100)

// AddressError is returned by Memory implementations when an access cannot
// complete. Use errors.Is() to check for it.
var AddressError = errors.New("inaccessible address")

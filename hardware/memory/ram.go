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

package memory

import (
	"fmt"
	"strings"

	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
)

// Origin is the first addressable location in memory.
const Origin = uint16(0x0000)

// Memtop is the last addressable location in memory.
const Memtop = uint16(0xffff)

// RAM is the only memory area in the machine. It covers the entire 64KB
// address space so Read() and Write() can never stray outside of it.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
func NewRAM() *RAM {
	ram := &RAM{}
	ram.memory = make([]uint8, int(Memtop)+1)
	return ram
}

// Init readies every address for a freshly reset machine. Implements the
// cpubus.Memory interface.
func (ram *RAM) Init() {
	for i := range ram.memory {
		ram.memory[i] = 0x00
	}
}

// Read is an implementation of the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.memory[address], nil
}

// Write is an implementation of the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.memory[address] = data
	return nil
}

// WriteWord is an implementation of the cpubus.Memory interface. The least
// significant byte goes to address and the most significant to address+1.
// Both accesses are counted against the budget.
//
// A word write at Memtop has nowhere to put the second byte. It fails with
// AddressError and memory is left untouched.
func (ram *RAM) WriteWord(bdg *cpubus.Budget, address uint16, data uint16) error {
	if address == Memtop {
		return fmt.Errorf("%w (%#04x)", cpubus.AddressError, address)
	}

	ram.memory[address] = uint8(data & 0x00ff)
	ram.memory[address+1] = uint8((data >> 8) & 0x00ff)
	bdg.Consume(2)

	return nil
}

// Peek returns the value at address without any cycle accounting. For use by
// tools rather than the CPU.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.memory[address], nil
}

// Poke sets the value at address without any cycle accounting. For use by
// tools rather than the CPU.
func (ram *RAM) Poke(address uint16, data uint8) error {
	ram.memory[address] = data
	return nil
}

// String returns the contents of the zero page as a hex dump. Use
// StringPage() for other pages.
func (ram *RAM) String() string {
	return ram.StringPage(0x00)
}

// StringPage returns a 256 byte page of memory as a hex dump.
func (ram *RAM) StringPage(page uint8) string {
	origin := uint16(page) << 8
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[origin+uint16((y*16)+x)]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

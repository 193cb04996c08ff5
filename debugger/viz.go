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
	"bytes"
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/Xaristrike/pal6502/disassembly"
	"github.com/Xaristrike/pal6502/hardware/cpu/instructions"
	"github.com/Xaristrike/pal6502/hardware/memory"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
)

// vizFilename is the default target file for the VIZ command.
const vizFilename = "pal6502.dot"

// the machine cannot be handed to memviz as it is. the 64KB memory array and
// the address-indexed disassembly would swamp the graph with tens of
// thousands of nodes. vizMachine is a condensed view: the CPU state and the
// reachable code, one node per strand of instructions, with an edge for
// every subroutine call.
type vizMachine struct {
	CPU  string
	Code []*vizSegment
}

type vizSegment struct {
	Origin string
	Code   []string
	Calls  []*vizSegment
}

// visualise writes a graphviz rendering of the machine to the named file.
func (dbg *Debugger) visualise(filename string) error {
	dsm, err := disassembly.FromMemory(dbg.sys.Mem, cpubus.Reset)
	if err != nil {
		return fmt.Errorf("viz: %w", err)
	}

	// one segment per strand origin. the reset address may itself be the
	// target of a subroutine call so guard against listing it twice
	origins := []uint16{cpubus.Reset}
	for _, s := range dsm.Subroutines {
		if s != cpubus.Reset {
			origins = append(origins, s)
		}
	}

	segments := make(map[uint16]*vizSegment)
	for _, o := range origins {
		segments[o] = &vizSegment{Origin: fmt.Sprintf("%#04x", o)}
	}

	v := &vizMachine{CPU: dbg.sys.CPU.String()}

	for _, o := range origins {
		seg := segments[o]

		addr := int(o)
		for addr <= int(memory.Memtop) {
			// a merge into another segment ends this one
			if uint16(addr) != o {
				if _, ok := segments[uint16(addr)]; ok {
					break // segment loop
				}
			}

			e := dsm.Entries[addr]
			if e == nil {
				break // segment loop
			}

			seg.Code = append(seg.Code, e.String())

			// a data byte ends the listing
			if e.Result.Defn == nil {
				break // segment loop
			}

			if e.Result.Defn.Effect == instructions.Subroutine {
				if call, ok := segments[e.Result.InstructionData]; ok {
					seg.Calls = append(seg.Calls, call)
				}
			}

			addr += e.Result.ByteCount
		}

		v.Code = append(v.Code, seg)
	}

	b := &bytes.Buffer{}
	memviz.Map(b, v)

	if err := os.WriteFile(filename, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("viz: %w", err)
	}

	return nil
}

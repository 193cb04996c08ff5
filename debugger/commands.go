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
	"strconv"
	"strings"

	"github.com/Xaristrike/pal6502/debugger/terminal"
	"github.com/Xaristrike/pal6502/disassembly"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
	"github.com/Xaristrike/pal6502/logger"
)

// debugger commands.
const (
	cmdCPU    = "CPU"
	cmdDisasm = "DISASM"
	cmdHelp   = "HELP"
	cmdLast   = "LAST"
	cmdLog    = "LOG"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdQuit   = "QUIT"
	cmdRAM    = "RAM"
	cmdReset  = "RESET"
	cmdRun    = "RUN"
	cmdStep   = "STEP"
	cmdViz    = "VIZ"
)

// commandList is used when listing commands (the HELP command with no
// argument) and when completing partial input. Alphabetical order.
var commandList = []string{
	cmdCPU, cmdDisasm, cmdHelp, cmdLast, cmdLog, cmdPeek, cmdPoke,
	cmdQuit, cmdRAM, cmdReset, cmdRun, cmdStep, cmdViz,
}

// help contains the help text for the debugger's top level commands.
var help = map[string]string{
	cmdCPU:    "Display the current state of the CPU",
	cmdDisasm: "Print a disassembly of memory. Decoding starts at the optional origin address",
	cmdHelp:   "Lists commands and provides help for individual debugger commands",
	cmdLast:   "Prints the result of the last instruction. The DEFN option shows the instruction definition",
	cmdLog:    "Display the log. LAST shows the most recent entry only and CLEAR empties the log",
	cmdPeek:   "Inspect individual memory addresses",
	cmdPoke:   "Modify an individual memory address. Additional values are poked into the subsequent addresses",
	cmdQuit:   "Exits the debugger",
	cmdRAM:    "Display a page of memory as a hex dump. The zero page by default",
	cmdReset:  "Reset the machine to its initial state",
	cmdRun:    "Run the machine until the cycle budget is spent. Optional argument sets a new budget",
	cmdStep:   "Step forward one instruction. Optional argument sets the number of instructions to step by",
	cmdViz:    "Write a graph of the machine to a dot file, for rendering with graphviz",
}

// parseCommand scans user input for a valid command and acts upon it.
func (dbg *Debugger) parseCommand(input string) error {
	tk := tokeniseInput(input)

	command, _ := tk.get()
	command = strings.ToUpper(command)

	switch command {
	default:
		return fmt.Errorf("%s is not a debugger command", command)

	// control of the debugger

	case cmdHelp:
		keyword, ok := tk.get()
		if ok {
			keyword = strings.ToUpper(keyword)
			txt, ok := help[keyword]
			if !ok {
				dbg.printLine(terminal.StyleHelp, "no help for %s", keyword)
			} else {
				dbg.printLine(terminal.StyleHelp, txt)
			}
		} else {
			for _, c := range commandList {
				dbg.printLine(terminal.StyleHelp, c)
			}
		}

	case cmdQuit:
		dbg.running = false

	case cmdReset:
		return dbg.reset()

	case cmdStep:
		num := 1
		if s, ok := tk.get(); ok {
			var err error
			num, err = strconv.Atoi(s)
			if err != nil || num < 1 {
				return fmt.Errorf("step count must be a positive number (%s)", s)
			}
		}
		for i := 0; i < num; i++ {
			if err := dbg.step(); err != nil {
				return err
			}
		}

	case cmdRun:
		cycles := dbg.runCycles
		if s, ok := tk.get(); ok {
			var err error
			cycles, err = strconv.Atoi(s)
			if err != nil || cycles < 1 {
				return fmt.Errorf("cycle budget must be a positive number (%s)", s)
			}

			// remember the new budget for future RUN commands
			dbg.runCycles = cycles
		}
		return dbg.run(cycles)

	// information about the machine

	case cmdCPU:
		dbg.printLine(terminal.StyleInstrument, dbg.sys.CPU.String())

	case cmdLast:
		if !dbg.sys.CPU.LastResult.Final {
			dbg.printLine(terminal.StyleFeedback, "no instruction executed yet")
			return nil
		}

		option, ok := tk.get()
		if ok {
			option = strings.ToUpper(option)
			switch option {
			case "DEFN":
				dbg.printLine(terminal.StyleInstrument, "%s", dbg.sys.CPU.LastResult.Defn)
			default:
				return fmt.Errorf("unknown last request option (%s)", option)
			}
		} else {
			dbg.printLine(terminal.StyleCPUStep, dbg.sys.CPU.LastResult.String())
		}

	case cmdPeek:
		if tk.remaining() == 0 {
			return fmt.Errorf("no address specified")
		}

		s, ok := tk.get()
		for ok {
			addr, err := parseAddress(s)
			if err != nil {
				dbg.printLine(terminal.StyleError, "%s", err)
			} else {
				v, err := dbg.sys.Mem.Peek(addr)
				if err != nil {
					dbg.printLine(terminal.StyleError, "%s", err)
				} else {
					dbg.printLine(terminal.StyleInstrument, "%#04x -> %#02x", addr, v)
				}
			}
			s, ok = tk.get()
		}

	case cmdPoke:
		s, ok := tk.get()
		if !ok {
			return fmt.Errorf("no address specified")
		}

		addr, err := parseAddress(s)
		if err != nil {
			return err
		}

		if tk.remaining() == 0 {
			return fmt.Errorf("no value specified")
		}

		// additional values are poked into the subsequent addresses
		s, ok = tk.get()
		for ok {
			v, err := parseValue(s)
			if err != nil {
				return err
			}
			if err := dbg.sys.Mem.Poke(addr, v); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleInstrument, "%#04x <- %#02x", addr, v)
			addr++
			s, ok = tk.get()
		}

	case cmdRAM:
		var page uint8
		if s, ok := tk.get(); ok {
			p, err := strconv.ParseUint(s, 0, 8)
			if err != nil {
				return fmt.Errorf("not a valid page number (%s)", s)
			}
			page = uint8(p)
		}
		dbg.printLine(terminal.StyleInstrument, dbg.sys.Mem.StringPage(page))

	case cmdDisasm:
		origin := cpubus.Reset
		if s, ok := tk.get(); ok {
			var err error
			origin, err = parseAddress(s)
			if err != nil {
				return err
			}
		}

		dsm, err := disassembly.FromMemory(dbg.sys.Mem, origin)
		if err != nil {
			return err
		}
		return dsm.Write(dbg.printStyle(terminal.StyleCPUStep), disassembly.WriteAttr{})

	case cmdViz:
		filename := vizFilename
		if s, ok := tk.get(); ok {
			filename = s
		}
		if err := dbg.visualise(filename); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine graph written to %s", filename)

	case cmdLog:
		option, ok := tk.get()
		if ok {
			option = strings.ToUpper(option)
			switch option {
			case "LAST":
				s := &strings.Builder{}
				logger.Tail(s, 1)
				dbg.printLine(terminal.StyleFeedback, s.String())
			case "CLEAR":
				logger.Clear()
				dbg.printLine(terminal.StyleFeedback, "log cleared")
			default:
				return fmt.Errorf("unknown log option (%s)", option)
			}
		} else {
			s := &strings.Builder{}
			logger.Write(s)
			if s.Len() == 0 {
				dbg.printLine(terminal.StyleFeedback, "log is empty")
			} else {
				dbg.printLine(terminal.StyleFeedback, s.String())
			}
		}
	}

	return nil
}

// parseAddress converts a string into a 16-bit address. Decimal and prefixed
// hexadecimal numbers are accepted (tokenisation has already converted any
// leading $ to 0x).
func parseAddress(s string) (uint16, error) {
	a, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("not a valid address (%s)", s)
	}
	return uint16(a), nil
}

// parseValue converts a string into an 8-bit value.
func parseValue(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("not a valid 8-bit value (%s)", s)
	}
	return uint8(v), nil
}

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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Xaristrike/pal6502/debugger"
	"github.com/Xaristrike/pal6502/debugger/terminal"
	"github.com/Xaristrike/pal6502/debugger/terminal/colorterm"
	"github.com/Xaristrike/pal6502/debugger/terminal/plainterm"
	"github.com/Xaristrike/pal6502/disassembly"
	"github.com/Xaristrike/pal6502/hardware"
	"github.com/Xaristrike/pal6502/hardware/memory"
	"github.com/Xaristrike/pal6502/hardware/memory/cpubus"
	"github.com/Xaristrike/pal6502/logger"
	"github.com/Xaristrike/pal6502/modalflag"
	"github.com/Xaristrike/pal6502/performance"
	"github.com/Xaristrike/pal6502/statsview"
	"github.com/Xaristrike/pal6502/version"
)

// the cycle budget given to the machine when the user doesn't ask for a
// specific amount. enough for the demonstration program exactly.
const defaultCycles = 8

// attachDemo loads the demonstration program into the machine: a JSR at the
// reset vector into a short subroutine that loads the accumulator.
//
//	fffc  20 42 42    JSR $4242
//	4242  a9 84       LDA #$84
//
// there is no program beyond $4243 so a budget larger than the
// demonstration's eight cycles will end with an unimplemented instruction.
func attachDemo(sys *hardware.System) error {
	prog := map[uint16]uint8{
		0xfffc: 0x20, 0xfffd: 0x42, 0xfffe: 0x42,
		0x4242: 0xa9, 0x4243: 0x84,
	}
	for a, d := range prog {
		if err := sys.Mem.Poke(a, d); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		ver, rev, release := version.Version()
		fmt.Printf("%s (%s)\n", version.ApplicationName, ver)
		if !release {
			fmt.Println(rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddInt("cycles", defaultCycles, "cycle budget for the run")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	sys := hardware.NewSystem()
	sys.Reset()

	err = attachDemo(sys)
	if err != nil {
		return err
	}

	bdg := cpubus.NewBudget(*cycles)
	err = sys.Run(&bdg, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d of %d cycles spent\n", *cycles-bdg.Remaining(), *cycles)
	fmt.Fprintln(md.Output, sys.CPU.String())

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	cycles := md.AddInt("cycles", defaultCycles, "cycle budget for the RUN command")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddBool("profile", false, "run debugger through cpu profiler")

	md.AdditionalHelp(
		`The debugger attaches the built-in demonstration program to the machine on every
reset. Type HELP at the debugger prompt for a list of debugger commands.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(term, *cycles)
	if err != nil {
		return err
	}

	// set up a running function
	dbgRun := func() error {
		return dbg.Start(attachDemo)
	}

	// if profile generation has been requested then pass the dbgRun()
	// function prepared above, through the ProfileCPU() command
	if *profile {
		err := performance.ProfileCPU("debug.cpu.profile", dbgRun)
		if err != nil {
			return err
		}
		err = performance.ProfileMem("debug.mem.profile")
		if err != nil {
			return err
		}
	} else {
		// no profile required so run dbgRun() function as normal
		err := dbgRun()
		if err != nil {
			return err
		}
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddUint("origin", uint(cpubus.Reset), "address to decode from")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *origin > uint(memory.Memtop) {
		return fmt.Errorf("origin is not a valid address (%#x)", *origin)
	}

	sys := hardware.NewSystem()
	sys.Reset()

	err = attachDemo(sys)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromMemory(sys.Mem, uint16(*origin))
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
	}

	return dsm.Write(md.Output, attr)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddInt("cycles", defaultCycles, "cycle budget for each iteration of the run loop")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	stats := md.AddBool("statsview", false, "run stats server (requires the statsview build tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("no stats server in this build")
		}
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, *profile, *duration, *cycles, attachDemo)
}

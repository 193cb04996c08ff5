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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas, with flag.FlagSet you call Parse() with the
// array of strings as the only argument, with modalflag you first NewArgs()
// with the array of arguments and then Parse() with no arguments. For example
// (note that no error handling of the Parse() function is shown here):
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() functions.
//
// Flags are added before parsing with the Add*() group of functions. These
// functions return a pointer to a variable of the specified type, set
// appropriately once Parse() has run:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//	_, _ = md.Parse()
//	if *verbose {
//		fmt.Println(additionalLogMessage)
//	}
//
// The real utility of the package comes from its handling of modes. A mode is
// a keyword taken from the command line that places the program into a
// different mode of operation, each mode with a different set of flags and
// possibly further sub-modes. Sub-modes are added before parsing:
//
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "debug", "disasm")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		...
//	case "DEBUG":
//		...
//	}
//
// Note that mode keywords are normalised to upper case. The first mode in the
// list given to AddSubModes() is the default, selected when the user
// specifies no mode at all.
//
// Layers of sub-modes are handled by calling NewMode(), rather than
// NewArgs(), when the program has decided it is in a mode with further
// sub-modes, and then calling Parse() again. Each call to Parse() peels off
// one layer of the command line.
//
// Help messages are built automatically from the flag defaults and the
// sub-mode list, and are written to the Output field of the Modes struct in
// response to the -help flag. The Parse() function reports this with the
// ParseHelp result.
package modalflag

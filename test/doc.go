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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectedFailure and ExpectedSuccess functions test for failure and
// success under generic conditions. The documentation for those functions
// describe the currently supported types.
//
// Note that the nil type is considered a success by both functions. Because
// of how errors usually work (nil to indicate no error) we *need* to
// interpret nil in this way.
//
// The Equate function compares a value against an expected value, allowing
// untyped number literals to stand in for uint8 and uint16 expectations.
//
// CompareWriter is an io.Writer implementation for capturing output in tests
// and comparing it against an example string.
package test

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

// Package memory implements the memory system of the machine: a single
// uninterrupted 64KB of RAM covering the entire address space.
//
// The CPU accesses memory through the cpubus.Memory interface, with every
// access metered against a cycle budget. Tools access memory with Peek() and
// Poke(), which take place outside of any cycle accounting.
package memory

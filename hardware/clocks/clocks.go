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

// Package clocks defines the clock rates of the 6502 as fitted to real
// machines. The emulation itself is not clocked, it runs as fast as it can,
// so the values are for comparison only. The performance package uses them to
// express a measured emulation speed as a fraction of real hardware.
//
// Values taken from:
// https://www.c64-wiki.com/wiki/Clock_rate
package clocks

// Clock rates in MHz.
const (
	NTSC = 1.022727
	PAL  = 0.985248
)

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

package performance

import "github.com/Xaristrike/pal6502/hardware/clocks"

// CalcClock takes the number of cycles consumed and duration (in seconds) and
// returns the effective clock rate in MHz, along with a comparison against
// the clock rate of a real PAL machine as a percentage.
func CalcClock(numCycles int, duration float64) (mhz float64, speedup float64) {
	mhz = float64(numCycles) / (duration * 1000000)
	speedup = 100 * mhz / clocks.PAL
	return mhz, speedup
}

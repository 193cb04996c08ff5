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

package cpubus

// Budget is the number of cycles an execution is allowed to consume. The CPU
// decrements it as memory accesses and internal operations occur.
//
// The count is signed. The CPU checks the budget only between instructions so
// the final instruction always runs to completion and may push the count
// below zero. A negative value records by how many cycles the execution
// overran.
type Budget int

// NewBudget is the preferred method of initialisation for the Budget type.
func NewBudget(cycles int) Budget {
	return Budget(cycles)
}

// Consume records the spending of n cycles.
func (b *Budget) Consume(n int) {
	*b -= Budget(n)
}

// Spent returns true once the budget has been consumed entirely.
func (b *Budget) Spent() bool {
	return *b <= 0
}

// Remaining returns the number of unspent cycles. Negative if the budget has
// been overrun.
func (b *Budget) Remaining() int {
	return int(*b)
}

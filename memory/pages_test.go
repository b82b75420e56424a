// This file is part of titanpatch.
//
// titanpatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// titanpatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with titanpatch.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"os"
	"testing"

	"github.com/jetsetilly/titanpatch/test"
)

func TestPages(t *testing.T) {
	pageSize := uintptr(os.Getpagesize())
	base := pageSize * 16

	p := pages(base+0x10, 1)
	test.ExpectEquality(t, len(p), 1)
	test.ExpectEquality(t, p[0], base)

	// a 32bit value at the end of a page spills into the next page
	p = pages(base+pageSize-2, 4)
	test.DemandEquality(t, len(p), 2)
	test.ExpectEquality(t, p[0], base)
	test.ExpectEquality(t, p[1], base+pageSize)

	// ending exactly on the page boundary does not touch the next page
	p = pages(base+pageSize-4, 4)
	test.ExpectEquality(t, len(p), 1)
}

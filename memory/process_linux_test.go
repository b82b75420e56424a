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

//go:build linux

package memory

import (
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/jetsetilly/titanpatch/test"
)

func protectionOf(t *testing.T, addr uintptr) int {
	t.Helper()
	m, err := mappings()
	test.DemandSuccess(t, err)
	for _, r := range m {
		if addr >= r.start && addr < r.end {
			return r.prot
		}
	}
	t.Fatalf("address %#x is not mapped", addr)
	return 0
}

func TestProcessWrite(t *testing.T) {
	pageSize := unix.Getpagesize()

	b, err := unix.Mmap(-1, 0, pageSize*2, unix.PROT_READ, unix.MAP_PRIVATE|unix.MAP_ANON)
	test.DemandSuccess(t, err)
	defer unix.Munmap(b)

	addr := uintptr(unsafe.Pointer(&b[0]))

	// the page is read-only before the write and after it
	test.ExpectEquality(t, protectionOf(t, addr), unix.PROT_READ)

	var mem Process
	err = Poke(mem, addr+0x10, uint8(0x90))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b[0x10], 0x90)
	test.ExpectEquality(t, Peek[uint8](mem, addr+0x10), 0x90)
	test.ExpectEquality(t, protectionOf(t, addr), unix.PROT_READ)

	// a write that spans two pages
	err = Poke(mem, addr+uintptr(pageSize)-2, uint32(1080))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, Peek[uint32](mem, addr+uintptr(pageSize)-2), 1080)
	test.ExpectEquality(t, protectionOf(t, addr), unix.PROT_READ)
	test.ExpectEquality(t, protectionOf(t, addr+uintptr(pageSize)), unix.PROT_READ)
}

func TestModuleResolver(t *testing.T) {
	addr := ModuleResolver().Resolve(0)
	test.ExpectInequality(t, addr, uintptr(0))

	// the first mapping of the executable is the ELF header
	var mem Process
	test.ExpectEquality(t, Peek[uint32](mem, addr), 0x464c457f)
	test.ExpectEquality(t, ModuleResolver().Resolve(0x10), addr+0x10)
}

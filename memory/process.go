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
	"unsafe"

	"github.com/jetsetilly/titanpatch/curated"
)

// Process is the Accessor for the memory of the current process.
//
// Addresses given to Process must be derived from the ModuleResolver() so that
// they always refer to memory the process has mapped. Accessing any other
// address will fault and cannot be recovered from.
type Process struct{}

func bytesAt(addr uintptr, size int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
}

// the start address of every page spanned by addr and size
func pages(addr uintptr, size int) []uintptr {
	pageSize := uintptr(os.Getpagesize())
	var p []uintptr
	for pg := addr &^ (pageSize - 1); pg < addr+uintptr(size); pg += pageSize {
		p = append(p, pg)
	}
	return p
}

// Read implements the Accessor interface. Page protection is not changed.
func (Process) Read(addr uintptr, p []byte) {
	copy(p, bytesAt(addr, len(p)))
}

// Write implements the Accessor interface. Page protection of every page
// spanned by the write is relaxed before the write and restored afterwards.
func (Process) Write(addr uintptr, p []byte) (err error) {
	if len(p) == 0 {
		return nil
	}

	saved, err := relax(addr, len(p))
	if err != nil {
		return curated.Errorf(ProtectionError, addr, "relax", err)
	}

	defer func() {
		if rerr := restore(addr, len(p), saved); rerr != nil && err == nil {
			err = curated.Errorf(ProtectionError, addr, "restore", rerr)
		}
	}()

	copy(bytesAt(addr, len(p)), p)

	return nil
}

type moduleResolver struct{}

// ModuleResolver returns the Resolver for the primary loaded image of the
// current process.
//
// The base address is looked up on every call to Resolve(). If the lookup
// fails Resolve() panics with a curated ResolutionError. This is not a
// condition the caller is expected to handle and it should be allowed to end
// the task of the calling goroutine.
func ModuleResolver() Resolver {
	return moduleResolver{}
}

// Resolve implements the Resolver interface.
func (moduleResolver) Resolve(offset uint32) uintptr {
	base, err := moduleBase()
	if err != nil {
		panic(curated.Errorf(ResolutionError, err))
	}
	return base + uintptr(offset)
}

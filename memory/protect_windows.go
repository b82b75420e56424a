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

//go:build windows

package memory

import (
	"golang.org/x/sys/windows"
)

type pageProtection struct {
	page uintptr
	prot uint32
}

type savedProtection []pageProtection

// relax page protection to execute+read+write for every page spanned by addr
// and size. pages are relaxed one at a time so that the previous protection
// of each page can be restored individually
func relax(addr uintptr, size int) (savedProtection, error) {
	var saved savedProtection

	for _, pg := range pages(addr, size) {
		var old uint32
		err := windows.VirtualProtect(pg, 1, windows.PAGE_EXECUTE_READWRITE, &old)
		if err != nil {
			// put back the pages that have already been relaxed
			_ = restore(addr, size, saved)
			return nil, err
		}
		saved = append(saved, pageProtection{page: pg, prot: old})
	}

	return saved, nil
}

func restore(addr uintptr, size int, saved savedProtection) error {
	for _, s := range saved {
		var dummy uint32
		err := windows.VirtualProtect(s.page, 1, s.prot, &dummy)
		if err != nil {
			return err
		}
	}
	return nil
}

func moduleBase() (uintptr, error) {
	// a nil module name returns the handle of the executable that created
	// the process. the handle of a module is its base address
	var h windows.Handle
	err := windows.GetModuleHandleEx(0, nil, &h)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

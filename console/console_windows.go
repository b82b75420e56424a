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

package console

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procAllocConsole = kernel32.NewProc("AllocConsole")
	procSetTitle     = kernel32.NewProc("SetConsoleTitleW")
)

// Attach allocates a console window with the title and returns a writer for
// it. A process that already has a console continues to use it.
func Attach(title string) (io.WriteCloser, error) {
	// AllocConsole() fails if the process already has a console. that's fine
	// because we can still open the console's screen buffer
	_, _, _ = procAllocConsole.Call()

	if t, err := windows.UTF16PtrFromString(title); err == nil {
		_, _, _ = procSetTitle.Call(uintptr(unsafe.Pointer(t)))
	}

	f, err := os.OpenFile("CONOUT$", os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	return f, nil
}

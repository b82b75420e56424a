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

package window

import (
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procIsZoomed          = user32.NewProc("IsZoomed")
	procIsIconic          = user32.NewProc("IsIconic")
	procGetWindowLongW    = user32.NewProc("GetWindowLongW")
	procSetWindowLongW    = user32.NewProc("SetWindowLongW")
	procSetWindowPos      = user32.NewProc("SetWindowPos")
	procMonitorFromWindow = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW   = user32.NewProc("GetMonitorInfoW")
)

var gwlStyle int32 = -16

// special window handles for SetWindowPos()
var (
	hwndTop       = uintptr(0)
	hwndBottom    = uintptr(1)
	hwndNoTopmost = ^uintptr(1)
)

const (
	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoActivate   = 0x0010
	swpFrameChanged = 0x0020
	swpShowWindow   = 0x0040

	monitorDefaultToNearest = 0x00000002
)

type monitorInfo struct {
	size    uint32
	monitor windows.Rect
	work    windows.Rect
	flags   uint32
}

// the callback given to EnumWindows() is created once. each call to
// windows.NewCallback() consumes a slot that is never released
var (
	enumCallback uintptr
	enumOnce     sync.Once

	// the search criteria and result for the current enumeration. guarded by
	// searchCrit
	searchCrit  sync.Mutex
	searchPID   uint32
	searchClass string
	searchFound windows.HWND
)

func enumWindow(hwnd windows.HWND, _ uintptr) uintptr {
	var pid uint32
	_, err := windows.GetWindowThreadProcessId(hwnd, &pid)
	if err != nil || pid != searchPID {
		return 1
	}

	var name [256]uint16
	n, err := windows.GetClassName(hwnd, &name[0], int32(len(name)))
	if err != nil || windows.UTF16ToString(name[:n]) != searchClass {
		return 1
	}

	searchFound = hwnd

	// stop enumeration
	return 0
}

type liveDesktop struct{}

// Live returns the Desktop for the running system.
func Live() (Desktop, error) {
	return liveDesktop{}, nil
}

func (liveDesktop) FindWindow(pid uint32, class string) (Handle, bool) {
	enumOnce.Do(func() {
		enumCallback = windows.NewCallback(enumWindow)
	})

	searchCrit.Lock()
	defer searchCrit.Unlock()

	searchPID = pid
	searchClass = class
	searchFound = 0

	// EnumWindows() returns an error when the callback stops the enumeration
	// early so the error is not interesting
	_ = windows.EnumWindows(enumCallback, nil)

	return Handle(searchFound), searchFound != 0
}

func (liveDesktop) Restore(h Handle) {
	zoomed, _, _ := procIsZoomed.Call(uintptr(h))
	iconic, _, _ := procIsIconic.Call(uintptr(h))
	if zoomed != 0 || iconic != 0 {
		windows.ShowWindow(windows.HWND(h), windows.SW_RESTORE)
	}
}

// lastError returns err only if it is a non-zero errno. lazy procedure calls
// always return a non-nil error value
func lastError(err error) error {
	if errno, ok := err.(syscall.Errno); ok && errno == 0 {
		return nil
	}
	return err
}

func (liveDesktop) Style(h Handle) (uint32, error) {
	r, _, err := procGetWindowLongW.Call(uintptr(h), uintptr(gwlStyle))
	if r == 0 {
		if err := lastError(err); err != nil {
			return 0, err
		}
	}
	return uint32(r), nil
}

func (liveDesktop) SetStyle(h Handle, style uint32) error {
	r, _, err := procSetWindowLongW.Call(uintptr(h), uintptr(gwlStyle), uintptr(style))
	if r == 0 {
		return lastError(err)
	}
	return nil
}

func (liveDesktop) MonitorBounds(h Handle) (Rect, error) {
	mon, _, _ := procMonitorFromWindow.Call(uintptr(h), monitorDefaultToNearest)

	mi := monitorInfo{}
	mi.size = uint32(unsafe.Sizeof(mi))
	r, _, err := procGetMonitorInfoW.Call(mon, uintptr(unsafe.Pointer(&mi)))
	if r == 0 {
		return Rect{}, err
	}

	return Rect{
		Left:   mi.monitor.Left,
		Top:    mi.monitor.Top,
		Width:  uint32(mi.monitor.Right - mi.monitor.Left),
		Height: uint32(mi.monitor.Bottom - mi.monitor.Top),
	}, nil
}

func (liveDesktop) Place(h Handle, rect Rect) error {
	r, _, err := procSetWindowPos.Call(uintptr(h), hwndTop,
		uintptr(rect.Left), uintptr(rect.Top),
		uintptr(rect.Width), uintptr(rect.Height),
		swpFrameChanged|swpShowWindow)
	if r == 0 {
		return err
	}
	return nil
}

func (liveDesktop) Demote(h Handle) error {
	r, _, err := procSetWindowPos.Call(uintptr(h), hwndNoTopmost, 0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoActivate)
	if r == 0 {
		return err
	}

	r, _, err = procSetWindowPos.Call(uintptr(h), hwndBottom, 0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoActivate)
	if r == 0 {
		return err
	}

	return nil
}

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

package window

import (
	"context"
	"fmt"
	"time"

	"github.com/jetsetilly/titanpatch/curated"
	"github.com/jetsetilly/titanpatch/logger"
)

// ChessWindowClass is the class name of the host's top-level window.
const ChessWindowClass = "ChessWindowClass"

// Sentinal pattern for curated errors raised by the window package.
const WindowNotFound = "window: %s not found after %v"

// Window style flags.
const (
	StyleMaximizeBox = 0x00010000
	StyleThickFrame  = 0x00040000
	StyleSysMenu     = 0x00080000
	StyleBorder      = 0x00800000
	StyleCaption     = 0x00c00000
	StyleMaximize    = 0x01000000
	StyleMinimize    = 0x20000000
)

// the decoration removed from a borderless window
const decoration = StyleCaption | StyleThickFrame | StyleMinimize | StyleMaximize | StyleSysMenu

// Handle is an opaque reference to a window.
type Handle uintptr

// Rect is a rectangle on the desktop.
type Rect struct {
	Left, Top     int32
	Width, Height uint32
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d at (%d, %d)", r.Width, r.Height, r.Left, r.Top)
}

// Desktop is the set of window system operations used by the Enforcer.
type Desktop interface {
	// FindWindow returns the first top-level window owned by the process
	// with the class name.
	FindWindow(pid uint32, class string) (Handle, bool)

	// Restore the window if it is maximised or minimised.
	Restore(h Handle)

	Style(h Handle) (uint32, error)
	SetStyle(h Handle, style uint32) error

	// MonitorBounds returns the bounds of the monitor the window is on.
	MonitorBounds(h Handle) (Rect, error)

	// Place moves and sizes the window and applies any change of style.
	Place(h Handle, r Rect) error

	// Demote sends the window to the bottom of the z-order and removes any
	// topmost status.
	Demote(h Handle) error
}

// DefaultDiscoveryInterval is the time between attempts to find the window.
const DefaultDiscoveryInterval = time.Millisecond

// Enforcer applies the window presentation rules to the host window.
type Enforcer struct {
	Desktop Desktop

	// the window must be owned by this process and have this class name
	PID   uint32
	Class string

	// if Fullscreen is true the window becomes a borderless window of Width
	// and Height. if either is zero the resolution of the monitor is used
	Fullscreen bool
	Width      uint32
	Height     uint32

	// time between discovery attempts. zero means DefaultDiscoveryInterval
	Interval time.Duration

	// the maximum time to wait for the window. zero means wait forever
	Timeout time.Duration
}

// Discover blocks until the window exists. Returns a WindowNotFound error if
// the window does not appear before the Timeout. The context can also be used
// to stop the discovery.
func (enf Enforcer) Discover(ctx context.Context) (Handle, error) {
	interval := enf.Interval
	if interval <= 0 {
		interval = DefaultDiscoveryInterval
	}

	var expired <-chan time.Time
	if enf.Timeout > 0 {
		t := time.NewTimer(enf.Timeout)
		defer t.Stop()
		expired = t.C
	}

	tck := time.NewTicker(interval)
	defer tck.Stop()

	for {
		if h, ok := enf.Desktop.FindWindow(enf.PID, enf.Class); ok {
			return h, nil
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-expired:
			return 0, curated.Errorf(WindowNotFound, enf.Class, enf.Timeout)
		case <-tck.C:
		}
	}
}

// Run discovers the window and applies the presentation rules once. Returns
// the bounds of the borderless window. The returned Rect is the zero value if
// Fullscreen is false.
func (enf Enforcer) Run(ctx context.Context) (Rect, error) {
	h, err := enf.Discover(ctx)
	if err != nil {
		return Rect{}, err
	}
	logger.Logf(logger.Allow, "window", "found %s window (%#x)", enf.Class, uintptr(h))

	err = DisableMaximize(enf.Desktop, h)
	if err != nil {
		return Rect{}, err
	}
	logger.Log(logger.Allow, "window", "disabled maximize")

	if !enf.Fullscreen {
		err = enf.Desktop.Demote(h)
		if err != nil {
			return Rect{}, fmt.Errorf("window: demote: %w", err)
		}
		logger.Log(logger.Allow, "window", "demoted window")
		return Rect{}, nil
	}

	bounds, err := enf.Desktop.MonitorBounds(h)
	if err != nil {
		return Rect{}, fmt.Errorf("window: monitor: %w", err)
	}
	if enf.Width != 0 && enf.Height != 0 {
		bounds.Width = enf.Width
		bounds.Height = enf.Height
	}

	err = MakeBorderless(enf.Desktop, h)
	if err != nil {
		return Rect{}, err
	}

	err = enf.Desktop.Place(h, bounds)
	if err != nil {
		return Rect{}, fmt.Errorf("window: place: %w", err)
	}
	logger.Logf(logger.Allow, "window", "borderless window %s", bounds)

	return bounds, nil
}

// DisableMaximize restores the window, if it is maximised, and removes the
// maximize box.
func DisableMaximize(d Desktop, h Handle) error {
	d.Restore(h)

	style, err := d.Style(h)
	if err != nil {
		return fmt.Errorf("window: style: %w", err)
	}

	err = d.SetStyle(h, style&^StyleMaximizeBox)
	if err != nil {
		return fmt.Errorf("window: style: %w", err)
	}

	return nil
}

// MakeBorderless removes the caption, frame and system menu of the window. A
// window that has no border is left as it is.
func MakeBorderless(d Desktop, h Handle) error {
	style, err := d.Style(h)
	if err != nil {
		return fmt.Errorf("window: style: %w", err)
	}

	if style&StyleBorder == 0 {
		return nil
	}

	err = d.SetStyle(h, style&^decoration)
	if err != nil {
		return fmt.Errorf("window: style: %w", err)
	}

	return nil
}

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

package preferences

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/titanpatch/curated"
	"github.com/jetsetilly/titanpatch/paths"
	"github.com/jetsetilly/titanpatch/prefs"
)

// Preferences defines and collates all the preference values used when
// attaching to the host.
type Preferences struct {
	dsk *prefs.Disk

	// allocate a console window and echo the log to it
	Console prefs.Bool

	// field of view in degrees
	FOV prefs.Float

	// resolution of the borderless window
	Width  prefs.Uint32
	Height prefs.Uint32

	// borderless window covering the monitor. if false the window is demoted
	// to the bottom of the z-order instead
	Fullscreen prefs.Bool

	// apply the constant tick patch and keep it applied
	ConstantTick prefs.Bool

	// keep the graphics level at three
	SettingsOverride prefs.Bool

	// camera altitude. only used if present in the prefs file
	Altitude prefs.Float

	// seconds to wait for the host window. zero waits forever
	WindowTimeout prefs.Int

	// launch the statsview server inside the host
	Statsview prefs.Bool

	// write a memviz graph of the attached session to this file
	Memviz prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The prefs file is searched for with paths.ResourcePath(). A missing
// prefs file is not an error.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit path to
// the prefs file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.FOV.SetHookPre(func(v prefs.Value) error {
		// NaN fails both comparisons
		if f := v.(float64); !(f > 0 && f < 180) {
			return fmt.Errorf("fov must be between 0 and 180 degrees")
		}
		return nil
	})
	p.WindowTimeout.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("window_timeout cannot be negative")
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, v := range []struct {
		key string
		p   prefsValue
	}{
		{"console", &p.Console},
		{"fov", &p.FOV},
		{"width", &p.Width},
		{"height", &p.Height},
		{"fullscreen", &p.Fullscreen},
		{"constant_tick_patch", &p.ConstantTick},
		{"settings_override", &p.SettingsOverride},
		{"window_timeout", &p.WindowTimeout},
		{"statsview", &p.Statsview},
		{"memviz", &p.Memviz},
	} {
		err = p.dsk.Add(v.key, v.p)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.AddOptional("altitude", &p.Altitude)
	if err != nil {
		return nil, err
	}

	err = p.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// the prefs package does not export the interface implemented by its types
type prefsValue interface {
	fmt.Stringer
	Set(value prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all preferences to their default value.
func (p *Preferences) SetDefaults() {
	p.Console.Set(true)
	p.FOV.Set(90.0)
	p.Width.Set(uint32(1920))
	p.Height.Set(uint32(1080))
	p.Fullscreen.Set(true)
	p.ConstantTick.Set(true)
	p.SettingsOverride.Set(true)
	p.Altitude.Set(0.0)
	p.WindowTimeout.Set(0)
	p.Statsview.Set(false)
	p.Memviz.Set("")
}

// Load preferences from the prefs file. A missing prefs file is not an error.
func (p *Preferences) Load() error {
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save preferences to the prefs file.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// WriteTo writes the preferences in the prefs file format.
func (p *Preferences) WriteTo(w io.Writer) (int64, error) {
	return p.dsk.WriteTo(w)
}

// Path of the prefs file.
func (p *Preferences) Path() string {
	return p.dsk.Path()
}

// HasAltitude returns true if the altitude was specified in the prefs file.
func (p *Preferences) HasAltitude() bool {
	return p.dsk.Loaded("altitude")
}

// Timeout returns the window timeout as a time.Duration.
func (p *Preferences) Timeout() time.Duration {
	return time.Duration(p.WindowTimeout.Get().(int)) * time.Second
}

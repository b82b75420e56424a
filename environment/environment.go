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

package environment

import (
	"os"

	"github.com/jetsetilly/titanpatch/memory"
	"github.com/jetsetilly/titanpatch/preferences"
	"github.com/jetsetilly/titanpatch/window"
)

// Label is used to name the environment
type Label string

// MainLabel is the label of the environment created when the DLL attaches.
// Environments with any other label do not start services that bind to fixed
// resources, such as the statsview server.
const MainLabel Label = ""

// Environment is used to provide context for the patching of a host. All
// access to the host's memory and windows is through this structure. Tests
// provide an environment backed by a memory.Image and a fake window.Desktop.
type Environment struct {
	Label Label

	// the process that owns the host window
	PID uint32

	// resolution of image offsets and access to the memory they refer to
	Resolver memory.Resolver
	Mem      memory.Accessor

	// window system. can be nil in which case window enforcement is skipped
	Desktop window.Desktop

	// the attach preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// If prefs is nil then the preferences are loaded from the prefs file. The PID
// is the PID of the current process and can be changed after initialisation.
func NewEnvironment(res memory.Resolver, mem memory.Accessor, desktop window.Desktop, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		PID:      uint32(os.Getpid()),
		Resolver: res,
		Mem:      mem,
		Desktop:  desktop,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// IsMain returns true if the environment is for the live host.
func (env *Environment) IsMain() bool {
	return env.Label == MainLabel
}

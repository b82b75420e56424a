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

// Package preferences collates the preference values that control the patches
// applied when the DLL attaches to the host.
//
// Values are loaded from the prefs file, found with paths.ResourcePath(). Every
// key is optional and values that are missing or unusable take their default
// value. The defaults are:
//
//	console             = true
//	fov                 = 90.0
//	width               = 1920
//	height              = 1080
//	fullscreen          = true
//	constant_tick_patch = true
//	settings_override   = true
//	window_timeout      = 0
//	statsview           = false
//	memviz              =
//
// The altitude key has no default. The altitude is only changed if the key is
// present.
//
// A width or height of zero means the resolution of the monitor the window is
// on. A window_timeout of zero means wait forever for the window.
package preferences

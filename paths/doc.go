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

// Package paths contains functions to prepare paths to titanpatch resources.
//
// The ResourcePath() function looks for the resource in the current working
// directory first and then in the directory containing the running
// executable. When injected, the running executable is the host and not the
// DLL. For example, the path to the prefs file:
//
//	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
//
// If the resource cannot be found in either location then the path in the
// working directory is returned. The caller will then see a "file not found"
// error naming the most likely location for the file.
package paths

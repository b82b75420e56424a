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

// Package prefs stores preference values. Values are typed (Bool, Int, Uint32,
// Float and String) and can have hook functions called before and after a
// change of value.
//
// The Disk type binds values to keys in an INI file. Values not found in the
// file, or which cannot be parsed, keep the value they had when they were
// added to the Disk. The environment variable named by OverrideEnv can be used
// to override values in the file without editing it.
package prefs

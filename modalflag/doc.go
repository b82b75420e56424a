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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments. Non-flag arguments can be retrieved with the RemainingArgs() or
// GetArg() function after parsing:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("LIST", "VERIFY")
//	p, err := md.Parse()
//
// A mode is a command line argument that puts the program into a different
// mode of operation, each with its own flags and arguments. Sub-modes are
// added with AddSubModes(). The first sub-mode is the default and mode
// comparisons are case insensitive. After Parse() the selected mode is
// returned by Mode():
//
//	switch md.Mode() {
//	case "VERIFY":
//		md.NewMode()
//		patchFile := md.AddString("patch", "", "patch file")
//		p, err := md.Parse()
//		if err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//		verify(*patchFile, md.GetArg(0))
//	}
//
// Modes can be chained as deep as required. The sequence of modes selected
// is returned by Path().
package modalflag

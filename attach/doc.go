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

// Package attach runs the work that follows the DLL attaching to the host.
//
// Run() applies the one-shot patches on the calling goroutine, in order:
//
//	constant tick patch (verified)
//	field of view
//	altitude (only if present in the prefs file)
//
// It then starts the watchers that keep the patches in place and the window
// enforcer, each on its own goroutine, and returns. Errors are logged and do
// not stop the remaining work.
package attach

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

// Package window enforces the presentation of the host's top-level window.
//
// The Enforcer waits for the window to be created and then, once only,
// removes the ability to maximise the window and either makes it a borderless
// window covering the monitor or sends it to the bottom of the z-order.
//
// Window system calls are made through the Desktop interface. The
// implementation for the running system is returned by Live().
package window

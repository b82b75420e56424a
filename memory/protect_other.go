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

//go:build !windows && !linux

package memory

import "errors"

type savedProtection struct{}

var errUnsupported = errors.New("not supported on this platform")

func relax(addr uintptr, size int) (savedProtection, error) {
	return savedProtection{}, errUnsupported
}

func restore(addr uintptr, size int, saved savedProtection) error {
	return errUnsupported
}

func moduleBase() (uintptr, error) {
	return 0, errUnsupported
}

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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values in the same way as fmt.Errorf(). The pattern is
// remembered and is used to identify the error later on. Patterns should be
// stored as exported const strings in the package that raises the error. For
// example, the patch package declares:
//
//	const ByteMismatch = "patch: byte mismatch at %#08x: expected %#02x found %#02x"
//
// and callers test for it with:
//
//	if curated.Is(err, patch.ByteMismatch) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(memory.ProtectionError, addr, "relax", errno)
//	f := curated.Errorf("watcher: %v", e)
//
//	curated.Has(f, memory.ProtectionError) // true
//	curated.Is(f, memory.ProtectionError)  // false
//
// The Error() function implementation normalises the error chain so that it
// does not contain duplicate adjacent parts. This means that a package can
// wrap an error with its own prefix without worrying whether the wrapped error
// already carries it.
//
// Uncurated error values (for example a syscall.Errno from VirtualProtect) that
// are used as placeholder values remain reachable through the standard
// library's errors.Is() and errors.As() because curated errors implement the
// Unwrap() []error method.
package curated

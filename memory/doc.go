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

// Package memory provides typed access to the address space of the current
// process. It is the only package that manipulates raw addresses and memory
// protection.
//
// Addresses are derived from offsets relative to the primary loaded image of
// the process with a Resolver. The ModuleResolver() function returns the
// resolver for the live process:
//
//	addr := memory.ModuleResolver().Resolve(0x13100c)
//
// Values are read and written through an Accessor with the generic Peek() and
// Poke() functions:
//
//	fov := memory.Peek[float32](mem, addr)
//	err := memory.Poke(mem, addr, float32(90.0))
//
// The Process type is the Accessor for the live process. Writes are bracketed
// by a relaxation of page protection (to execute+read+write) and a restoration
// of the previous protection. The restoration always happens, even though the
// write itself cannot fail. If either the relaxation or the restoration is
// refused by the platform the write returns a ProtectionError and the write may
// or may not have happened.
//
// The host process may be reading and writing the same bytes from its own
// threads at the same time as a write through the Process type. There is no
// protection against this: the last writer wins.
//
// The Image type is an Accessor (and a Resolver) backed by a byte slice. It is
// used to examine an executable file on disk, via LoadPE(), and as a stand-in
// for process memory in tests.
package memory

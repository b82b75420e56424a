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

// Package patch describes byte level modifications to the loaded image of the
// host executable and applies them.
//
// A Patch is a single byte substitution at an offset from the base of the
// loaded image, guarded by the byte expected to be there before the patch is
// applied. A Set is an ordered list of patches that together make one logical
// change. The known sets are listed in the catalogue and can be retrieved with
// Lookup() and Builtin().
//
// The Engine type applies a Set through a memory.Accessor. When verification
// is requested every byte in the set is checked before anything is written,
// so a set built for a different version of the executable is rejected as a
// whole:
//
//	eng := patch.Engine{Resolver: memory.ModuleResolver(), Mem: memory.Process{}}
//	set, _ := patch.Lookup(patch.ConstantTick)
//	err := eng.Apply(set, true)
//
// Writes are not rolled back if a write fails part way through a set.
//
// Additional sets can be loaded from JSON files with LoadFile().
package patch

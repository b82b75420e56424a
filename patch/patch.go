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

package patch

import (
	"fmt"
	"strings"
)

// Patch is a single byte substitution. Offset is relative to the base address
// of the loaded image. The New byte should differ from the Original byte.
type Patch struct {
	Offset   uint32
	Original uint8
	New      uint8
}

func (p Patch) String() string {
	return fmt.Sprintf("%#08x: %02x -> %02x", p.Offset, p.Original, p.New)
}

// Set is an ordered list of patches that make up one logical change.
type Set struct {
	Name        string
	Description string
	Patches     []Patch
}

func (set Set) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%d patches)", set.Name, len(set.Patches)))
	if set.Description != "" {
		s.WriteString(fmt.Sprintf(": %s", set.Description))
	}
	return s.String()
}

// clone returns a copy of the set that does not share the Patches array.
func (set Set) clone() Set {
	c := set
	c.Patches = make([]Patch, len(set.Patches))
	copy(c.Patches, set.Patches)
	return c
}

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

package watcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/titanpatch/memory"
	"github.com/jetsetilly/titanpatch/patch"
)

// SetProbe observes the first byte of a patch set. Correction re-applies the
// whole set without verification.
type SetProbe struct {
	eng        patch.Engine
	set        patch.Set
	addr       uintptr
	revertOnly bool
}

// NewSetProbe is the preferred method of initialisation for the SetProbe
// type.
//
// If revertOnly is true then the set has drifted only if the first byte has
// gone back to the original byte. Otherwise, any value other than the new byte
// is drift.
func NewSetProbe(eng patch.Engine, set patch.Set, revertOnly bool) (*SetProbe, error) {
	if len(set.Patches) == 0 {
		return nil, fmt.Errorf("watcher: set %s has no patches", set.Name)
	}
	return &SetProbe{
		eng:        eng,
		set:        set,
		addr:       eng.Resolver.Resolve(set.Patches[0].Offset),
		revertOnly: revertOnly,
	}, nil
}

func (p *SetProbe) String() string {
	return p.set.Name
}

// Drifted implements the Probe interface.
func (p *SetProbe) Drifted() bool {
	b := memory.Peek[uint8](p.eng.Mem, p.addr)
	if p.revertOnly {
		return b == p.set.Patches[0].Original
	}
	return b != p.set.Patches[0].New
}

// Correct implements the Probe interface.
func (p *SetProbe) Correct() error {
	return p.eng.Apply(p.set, false)
}

// Field is a 32-bit value at a fixed address.
type Field struct {
	Name string
	Addr uintptr
	Want uint32
}

// FieldProbe observes one or more 32-bit fields. Correction writes the
// desired value to every field that has drifted.
type FieldProbe struct {
	mem    memory.Accessor
	fields []Field
}

// NewFieldProbe is the preferred method of initialisation for the FieldProbe
// type.
func NewFieldProbe(mem memory.Accessor, fields ...Field) *FieldProbe {
	return &FieldProbe{
		mem:    mem,
		fields: fields,
	}
}

func (p *FieldProbe) String() string {
	s := make([]string, len(p.fields))
	for i, f := range p.fields {
		s[i] = fmt.Sprintf("%s=%d", f.Name, f.Want)
	}
	return strings.Join(s, " ")
}

// Drifted implements the Probe interface.
func (p *FieldProbe) Drifted() bool {
	for _, f := range p.fields {
		if memory.Peek[uint32](p.mem, f.Addr) != f.Want {
			return true
		}
	}
	return false
}

// Correct implements the Probe interface. A failure to write one field does
// not prevent the other fields being written.
func (p *FieldProbe) Correct() error {
	var errs []error
	for _, f := range p.fields {
		if memory.Peek[uint32](p.mem, f.Addr) == f.Want {
			continue
		}
		if err := memory.Poke(p.mem, f.Addr, f.Want); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

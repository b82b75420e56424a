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
	"github.com/jetsetilly/titanpatch/curated"
	"github.com/jetsetilly/titanpatch/logger"
	"github.com/jetsetilly/titanpatch/memory"
)

// Sentinal patterns for curated errors raised by the patch package.
const (
	ByteMismatch = "patch: byte mismatch at offset %#x: expected %#02x, found %#02x"
	WriteFailed  = "patch: write at offset %#x: %v"
)

// Engine applies sets of patches to memory.
type Engine struct {
	Resolver memory.Resolver
	Mem      memory.Accessor
}

// Apply the set. If verify is true then the byte at the offset of every patch
// is compared with the patch's original byte before any byte is written. The
// first mismatch ends the application with a ByteMismatch error and memory is
// left unchanged.
//
// If a write fails then no further writes are attempted and the set will be
// partially applied. Earlier writes are not rolled back.
//
// Applying a verified set twice will fail the second time because the original
// bytes are no longer present.
func (eng Engine) Apply(set Set, verify bool) error {
	if verify {
		for _, p := range set.Patches {
			b := memory.Peek[uint8](eng.Mem, eng.Resolver.Resolve(p.Offset))
			if b != p.Original {
				return curated.Errorf(ByteMismatch, p.Offset, p.Original, b)
			}
		}
	}

	for _, p := range set.Patches {
		err := memory.Poke(eng.Mem, eng.Resolver.Resolve(p.Offset), p.New)
		if err != nil {
			return curated.Errorf(WriteFailed, p.Offset, err)
		}
	}

	return nil
}

// ApplyAndReport applies the set and logs the outcome. The label is used in
// the success message. The result of Apply() is returned.
func (eng Engine) ApplyAndReport(set Set, verify bool, label string) error {
	err := eng.Apply(set, verify)
	if err != nil {
		logger.Logf(logger.Allow, "patch", "%s: %v", label, err)
		return err
	}
	logger.Logf(logger.Allow, "patch", "applied: %s", label)
	return nil
}

// Status of a set, or of a single patch, as observed in memory.
type Status int

// List of valid Status values.
const (
	// every byte is the original byte
	Unpatched Status = iota

	// every byte is the new byte
	Patched

	// a mixture of original and new bytes. the set has been partially
	// applied or is being reverted by the host
	Partial

	// at least one byte is neither the original nor the new byte. the set was
	// probably made for a different version of the executable
	Mismatched
)

func (s Status) String() string {
	switch s {
	case Unpatched:
		return "unpatched"
	case Patched:
		return "patched"
	case Partial:
		return "partially patched"
	}
	return "mismatched"
}

// Observation of a single patch.
type Observation struct {
	Patch
	Found  uint8
	Status Status
}

// Check reads the bytes at every offset in the set and reports how they
// compare with the patch. Nothing is written.
func (eng Engine) Check(set Set) []Observation {
	obs := make([]Observation, len(set.Patches))
	for i, p := range set.Patches {
		b := memory.Peek[uint8](eng.Mem, eng.Resolver.Resolve(p.Offset))
		obs[i] = Observation{Patch: p, Found: b}
		switch b {
		case p.Original:
			obs[i].Status = Unpatched
		case p.New:
			obs[i].Status = Patched
		default:
			obs[i].Status = Mismatched
		}
	}
	return obs
}

// Summarise a list of observations into the status of the set.
func Summarise(obs []Observation) Status {
	var unpatched, patched int
	for _, o := range obs {
		switch o.Status {
		case Unpatched:
			unpatched++
		case Patched:
			patched++
		default:
			return Mismatched
		}
	}
	if patched == 0 {
		return Unpatched
	}
	if unpatched == 0 {
		return Patched
	}
	return Partial
}

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

import "sort"

// Names of the sets in the catalogue.
const (
	ConstantTick   = "constant-tick"
	FOV            = "fov"
	GraphicsLevel3 = "graphics-level-3"
)

// Offsets of scalar fields in the loaded image. These are written directly
// with memory.Poke() rather than through a Set.
const (
	// float32. field of view of the board camera
	FOVOffset uint32 = 0x0013100c

	// float32. height of the board camera
	AltitudeOffset uint32 = 0x00131008

	// uint32 pair. rendering resolution. reset by the host during its own
	// initialisation
	WidthOffset  uint32 = 0x00131f60
	HeightOffset uint32 = 0x00131f64
)

// the catalogue is for the Windows 7 build of chess.exe. the table is never
// modified after initialisation and copies of sets are returned to callers
var catalogue = map[string]Set{
	// by https://github.com/adamplayer
	ConstantTick: {
		Name:        ConstantTick,
		Description: "removes the clamp on the tick rate so that animation runs at the display rate",
		Patches: []Patch{
			{Offset: 0x0003fa0e, Original: 0x75, New: 0x90},
			{Offset: 0x0003fa0f, Original: 0x0a, New: 0x90},
			{Offset: 0x0003fa14, Original: 0x75, New: 0x90},
			{Offset: 0x0003fa15, Original: 0x04, New: 0x90},
			{Offset: 0x0003fa18, Original: 0x75, New: 0xeb},
			{Offset: 0x0003fb09, Original: 0x75, New: 0xeb},
		},
	},

	// by https://github.com/adamplayer
	FOV: {
		Name:        FOV,
		Description: "forces the board camera field of view constant to 90 degrees",
		Patches: []Patch{
			{Offset: 0x0013100a, Original: 0xbe, New: 0x20},
			{Offset: 0x0013100e, Original: 0xf0, New: 0xb4},
			{Offset: 0x0013100f, Original: 0x41, New: 0x42},
		},
	},

	GraphicsLevel3: {
		Name:        GraphicsLevel3,
		Description: "pins the graphics quality setting to level 3",
		Patches: []Patch{
			{Offset: 0x00131f74, Original: 0x01, New: 0x03},
		},
	},
}

// Lookup returns the named set from the catalogue.
func Lookup(name string) (Set, bool) {
	set, ok := catalogue[name]
	if !ok {
		return Set{}, false
	}
	return set.clone(), true
}

// Builtin returns every set in the catalogue, sorted by name.
func Builtin() []Set {
	sets := make([]Set, 0, len(catalogue))
	for _, set := range catalogue {
		sets = append(sets, set.clone())
	}
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].Name < sets[j].Name
	})
	return sets
}

// MustLookup is like Lookup() but panics if the set is not in the catalogue.
// It is for use with the constant set names in this package.
func MustLookup(name string) Set {
	set, ok := Lookup(name)
	if !ok {
		panic("patch: no set in catalogue named " + name)
	}
	return set
}

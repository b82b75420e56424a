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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// File is the JSON representation of a Set. Numbers are hex strings with an
// optional 0x prefix.
//
//	{
//		"name": "constant-tick",
//		"description": "...",
//		"patches": [
//			{ "offset": "0x3fa0e", "original": "0x75", "new": "0x90" }
//		]
//	}
type File struct {
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Patches     []FilePatch `json:"patches"`
}

// FilePatch is the JSON representation of a Patch.
type FilePatch struct {
	Offset   string `json:"offset"`
	Original string `json:"original"`
	New      string `json:"new"`
}

// LoadFile reads and parses a patch JSON file. If the file does not name the
// set then the base of the filename is used.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read patch file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return Set{}, fmt.Errorf("parse patch JSON: %w", err)
	}

	set, err := f.Set()
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}

	if set.Name == "" {
		set.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	}

	return set, nil
}

// Set converts the File into a Set.
func (f File) Set() (Set, error) {
	set := Set{
		Name:        f.Name,
		Description: f.Description,
		Patches:     make([]Patch, 0, len(f.Patches)),
	}

	if len(f.Patches) == 0 {
		return Set{}, fmt.Errorf("no patches")
	}

	for i, fp := range f.Patches {
		offset, err := parseHex(fp.Offset, 32)
		if err != nil {
			return Set{}, fmt.Errorf("patch %d: invalid offset %q: %w", i, fp.Offset, err)
		}
		org, err := parseHex(fp.Original, 8)
		if err != nil {
			return Set{}, fmt.Errorf("patch %d: invalid original byte %q: %w", i, fp.Original, err)
		}
		nw, err := parseHex(fp.New, 8)
		if err != nil {
			return Set{}, fmt.Errorf("patch %d: invalid new byte %q: %w", i, fp.New, err)
		}
		if org == nw {
			return Set{}, fmt.Errorf("patch %d: original and new bytes are the same (%#02x)", i, org)
		}

		set.Patches = append(set.Patches, Patch{
			Offset:   uint32(offset),
			Original: uint8(org),
			New:      uint8(nw),
		})
	}

	return set, nil
}

func parseHex(s string, bits int) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return strconv.ParseUint(s, 16, bits)
}

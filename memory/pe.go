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

package memory

import (
	"debug/pe"
	"fmt"
	"io"
)

// LoadPE creates an Image of an executable file as it would be laid out in
// memory by the loader. Offsets resolved by the Image are relative virtual
// addresses and so the same offsets that are used with the ModuleResolver()
// in the live process can be used to examine the file.
func LoadPE(filename string) (*Image, error) {
	f, err := pe.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("pe: %w", err)
	}
	defer f.Close()

	var base uintptr
	var size uint32

	switch h := f.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		base = uintptr(h.ImageBase)
		size = h.SizeOfImage
	case *pe.OptionalHeader64:
		base = uintptr(h.ImageBase)
		size = h.SizeOfImage
	default:
		return nil, fmt.Errorf("pe: %s: no optional header", filename)
	}

	data := make([]byte, size)

	for _, s := range f.Sections {
		// uninitialised data has no bytes in the file
		if s.Size == 0 {
			continue
		}

		if uint64(s.VirtualAddress)+uint64(s.Size) > uint64(size) {
			return nil, fmt.Errorf("pe: %s: section %s extends beyond image", filename, s.Name)
		}

		// the raw size of a section can be larger than its virtual size. the
		// excess is padding and is not loaded
		n := s.Size
		if s.VirtualSize != 0 && s.VirtualSize < n {
			n = s.VirtualSize
		}

		_, err := io.ReadFull(io.NewSectionReader(s, 0, int64(n)), data[s.VirtualAddress:s.VirtualAddress+n])
		if err != nil {
			return nil, fmt.Errorf("pe: %s: section %s: %w", filename, s.Name, err)
		}
	}

	return NewImage(base, data), nil
}

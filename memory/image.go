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
	"sync"

	"github.com/jetsetilly/titanpatch/curated"
)

// Image is an Accessor backed by a byte slice. The first byte of the slice is
// at the Base address. Image also implements the Resolver interface, with
// offsets being relative to Base.
//
// Image is safe to use from more than one goroutine.
type Image struct {
	crit sync.Mutex
	base uintptr
	data []byte
}

// NewImage is the preferred method of initialisation for the Image type. The
// data slice is used directly and not copied.
func NewImage(base uintptr, data []byte) *Image {
	return &Image{
		base: base,
		data: data,
	}
}

// Base returns the address of the first byte in the image.
func (img *Image) Base() uintptr {
	return img.base
}

// Size returns the number of bytes in the image.
func (img *Image) Size() int {
	return len(img.data)
}

// Resolve implements the Resolver interface.
func (img *Image) Resolve(offset uint32) uintptr {
	return img.base + uintptr(offset)
}

// Read implements the Accessor interface. Bytes outside of the image read as
// zero.
func (img *Image) Read(addr uintptr, p []byte) {
	img.crit.Lock()
	defer img.crit.Unlock()

	for i := range p {
		a := addr + uintptr(i)
		if a < img.base || a-img.base >= uintptr(len(img.data)) {
			p[i] = 0
			continue
		}
		p[i] = img.data[a-img.base]
	}
}

// Write implements the Accessor interface. It is an error to write outside
// the image and in that case nothing is written.
func (img *Image) Write(addr uintptr, p []byte) error {
	img.crit.Lock()
	defer img.crit.Unlock()

	if addr < img.base || addr-img.base+uintptr(len(p)) > uintptr(len(img.data)) {
		return curated.Errorf(OutOfRange, addr, len(p))
	}
	copy(img.data[addr-img.base:], p)

	return nil
}

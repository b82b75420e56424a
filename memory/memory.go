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
	"encoding/binary"
	"math"
)

// Sentinal patterns for curated errors raised by the memory package.
const (
	ProtectionError = "memory: protection: %#08x: %s: %v"
	ResolutionError = "memory: resolution: %v"
	OutOfRange      = "memory: out of range: %#08x (%d bytes)"
)

// Resolver maps an offset relative to the loaded image to an absolute address.
type Resolver interface {
	Resolve(offset uint32) uintptr
}

// Accessor implementations can read and write bytes at an absolute address.
type Accessor interface {
	Read(addr uintptr, p []byte)
	Write(addr uintptr, p []byte) error
}

// Base is a Resolver with a fixed base address.
type Base uintptr

// Resolve implements the Resolver interface.
func (b Base) Resolve(offset uint32) uintptr {
	return uintptr(b) + uintptr(offset)
}

// Value is the set of types that can be used with Peek() and Poke().
type Value interface {
	uint8 | uint32 | float32 | bool
}

// SizeOf returns the number of bytes occupied by a Value of type T.
func SizeOf[T Value]() int {
	var v T
	switch any(v).(type) {
	case uint32, float32:
		return 4
	}
	return 1
}

// Peek reads a value of type T from the address. Multi-byte values are little
// endian.
func Peek[T Value](mem Accessor, addr uintptr) T {
	b := make([]byte, SizeOf[T]())
	mem.Read(addr, b)

	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = b[0]
	case *bool:
		*p = b[0] != 0
	case *uint32:
		*p = binary.LittleEndian.Uint32(b)
	case *float32:
		*p = math.Float32frombits(binary.LittleEndian.Uint32(b))
	}
	return v
}

// Poke writes a value of type T to the address. Multi-byte values are little
// endian.
func Poke[T Value](mem Accessor, addr uintptr, value T) error {
	b := make([]byte, SizeOf[T]())

	switch v := any(value).(type) {
	case uint8:
		b[0] = v
	case bool:
		if v {
			b[0] = 1
		}
	case uint32:
		binary.LittleEndian.PutUint32(b, v)
	case float32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(v))
	}

	return mem.Write(addr, b)
}

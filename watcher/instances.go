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
	"time"

	"github.com/jetsetilly/titanpatch/memory"
	"github.com/jetsetilly/titanpatch/patch"
)

// ResolutionBound is the number of consecutive stable polls after which the
// resolution watcher retires. The host only resets the resolution while it is
// initialising itself.
const ResolutionBound = 1000

// NewTickRate creates the watcher that keeps the constant tick patch in
// place. The host reverts the first byte of the set to its original value and
// so only that is considered drift.
func NewTickRate(eng patch.Engine, interval time.Duration) (*Watcher, error) {
	p, err := NewSetProbe(eng, patch.MustLookup(patch.ConstantTick), true)
	if err != nil {
		return nil, err
	}
	return NewWatcher("tick rate", p, interval, 0), nil
}

// NewGraphicsLevel creates the watcher that pins the graphics level.
func NewGraphicsLevel(eng patch.Engine, interval time.Duration) (*Watcher, error) {
	p, err := NewSetProbe(eng, patch.MustLookup(patch.GraphicsLevel3), false)
	if err != nil {
		return nil, err
	}
	return NewWatcher("graphics level", p, interval, 0), nil
}

// NewResolution creates the watcher that keeps the rendering resolution at
// the desired width and height. The watcher retires after bound consecutive
// stable polls.
func NewResolution(res memory.Resolver, mem memory.Accessor, width, height uint32, interval time.Duration, bound int) *Watcher {
	p := NewFieldProbe(mem,
		Field{Name: "width", Addr: res.Resolve(patch.WidthOffset), Want: width},
		Field{Name: "height", Addr: res.Resolve(patch.HeightOffset), Want: height},
	)
	return NewWatcher("resolution", p, interval, bound)
}

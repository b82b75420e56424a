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

package attach

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/titanpatch/version"
)

// Summary is a snapshot of the session used for the memviz graph. The session
// itself refers to the whole of the host's memory through the accessor and is
// not suitable for graphing.
type Summary struct {
	Banner      string
	TickPatched bool
	Prefs       string
	Watchers    []WatcherSummary
	WindowErr   string
}

// WatcherSummary is a snapshot of a single watcher.
type WatcherSummary struct {
	Name        string
	State       string
	Polls       int64
	Corrections int64
	Failures    int64
}

// Summarise the current state of the session.
func (sess *Session) Summarise() Summary {
	s := Summary{
		Banner:      version.Banner(),
		TickPatched: sess.tickPatched,
		Prefs:       sess.env.Prefs.String(),
	}

	for _, w := range sess.Watchers() {
		st := w.Stats()
		s.Watchers = append(s.Watchers, WatcherSummary{
			Name:        w.Name(),
			State:       w.State().String(),
			Polls:       st.Polls,
			Corrections: st.Corrections,
			Failures:    st.Failures,
		})
	}

	if err := sess.WindowErr(); err != nil {
		s.WindowErr = err.Error()
	}

	return s
}

// Memviz writes a graph of the session summary to the file in the dot format.
func (sess *Session) Memviz(pth string) error {
	f, err := os.Create(pth)
	if err != nil {
		return fmt.Errorf("attach: memviz: %w", err)
	}
	defer f.Close()

	s := sess.Summarise()
	memviz.Map(f, &s)

	return nil
}

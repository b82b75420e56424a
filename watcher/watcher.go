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
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/titanpatch/logger"
)

// DefaultInterval is the time between polls.
const DefaultInterval = time.Millisecond

// Probe implementations observe and correct one piece of state.
type Probe interface {
	fmt.Stringer

	// Drifted returns true if the state is not the desired state.
	Drifted() bool

	// Correct puts the state back to the desired state.
	Correct() error
}

// State of a watcher after a poll.
type State int32

// List of valid State values.
const (
	Polling State = iota
	Stable
	Corrected
	Failed
	Terminated
)

func (s State) String() string {
	switch s {
	case Polling:
		return "polling"
	case Stable:
		return "stable"
	case Corrected:
		return "corrected"
	case Failed:
		return "failed"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Stats are the running totals for a watcher.
type Stats struct {
	Polls       int64
	Corrections int64
	Failures    int64
}

func (s Stats) String() string {
	return fmt.Sprintf("polls=%d corrections=%d failures=%d", s.Polls, s.Corrections, s.Failures)
}

// Watcher polls a Probe and corrects drift.
type Watcher struct {
	name     string
	probe    Probe
	interval time.Duration
	bound    int

	// number of consecutive polls without drift. only accessed by the
	// goroutine running the loop
	stable int

	state       atomic.Int32
	polls       atomic.Int64
	corrections atomic.Int64
	failures    atomic.Int64
}

// NewWatcher is the preferred method of initialisation for the Watcher type.
//
// A bound of zero (or less) means the watcher never terminates. An interval of
// zero (or less) means DefaultInterval.
func NewWatcher(name string, probe Probe, interval time.Duration, bound int) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{
		name:     name,
		probe:    probe,
		interval: interval,
		bound:    bound,
	}
}

func (w *Watcher) String() string {
	s := fmt.Sprintf("%s [%s] %s (%s)", w.name, w.probe, w.State(), w.Stats())
	if w.bound > 0 {
		s = fmt.Sprintf("%s bound=%d", s, w.bound)
	}
	return s
}

// Name of the watcher.
func (w *Watcher) Name() string {
	return w.name
}

// State returns the result of the most recent poll. Safe to call from any
// goroutine.
func (w *Watcher) State() State {
	return State(w.state.Load())
}

// Stats returns the running totals. Safe to call from any goroutine.
func (w *Watcher) Stats() Stats {
	return Stats{
		Polls:       w.polls.Load(),
		Corrections: w.corrections.Load(),
		Failures:    w.failures.Load(),
	}
}

// Step performs one poll. It should not be called once Terminated has been
// returned and will do nothing if it is.
func (w *Watcher) Step() State {
	if w.State() == Terminated {
		return Terminated
	}

	w.polls.Add(1)

	if !w.probe.Drifted() {
		w.stable++
		if w.bound > 0 && w.stable >= w.bound {
			logger.Logf(logger.Allow, "watcher", "%s: stable for %d polls. retiring", w.name, w.stable)
			return w.setState(Terminated)
		}
		return w.setState(Stable)
	}

	// drift of any kind means the state is not stable, whether or not the
	// correction works
	w.stable = 0

	if err := w.probe.Correct(); err != nil {
		w.failures.Add(1)
		logger.Logf(logger.Allow, "watcher", "%s: %v", w.name, err)
		return w.setState(Failed)
	}

	w.corrections.Add(1)
	logger.Logf(logger.Allow, "watcher", "%s: corrected %s", w.name, w.probe)
	return w.setState(Corrected)
}

func (w *Watcher) setState(s State) State {
	w.state.Store(int32(s))
	return s
}

// Run the watcher loop on the calling goroutine. Returns when the watcher
// terminates or when the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	tck := time.NewTicker(w.interval)
	defer tck.Stop()

	for {
		if w.Step() == Terminated {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-tck.C:
		}
	}
}

// Spawn runs the watcher loop on a new goroutine. The returned channel is
// closed when the loop ends.
//
// A panic in the loop (for example, a failure to resolve the base address of
// the host module) ends the loop and is logged. It does not take the host
// process with it.
func Spawn(ctx context.Context, w *Watcher) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				logger.Logf(logger.Allow, "watcher", "%s: ended: %v", w.name, r)
			}
		}()

		w.Run(ctx)
	}()

	return done
}

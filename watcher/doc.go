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

// Package watcher implements reconciliation loops. A watcher repeatedly
// observes a piece of memory that the host process may change and puts it
// back to the desired value when it has drifted.
//
// What is observed and how it is corrected is the responsibility of a Probe.
// The Watcher type runs the Probe at a fixed interval. There is no backoff,
// a failed correction is logged and retried on the next poll.
//
// Each watcher owns its probe and the addresses and desired values inside it.
// Nothing is shared between watchers and so there is no synchronisation
// between them. Watchers are started with Spawn(), which runs the loop on its
// own goroutine.
//
// A watcher with a Bound stops once it has seen that many consecutive polls
// without drift. Any drift resets the count. A watcher without a Bound runs
// until its context is cancelled, which in the host is never.
package watcher

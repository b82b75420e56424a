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

// Package test bundles helper functions that remove common boilerplate from
// tests, particularly useful in conjunction with the standard go test harness.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and should be
// used when the value being tested is needed by later parts of the test. For
// example, testing that the lengths of two slices are equal before iterating
// over them in unison.
//
// The nil value is considered a success by ExpectSuccess() and a failure by
// ExpectFailure(). This is how errors usually work (nil to indicate no error)
// and so we interpret nil in that way.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for comparison with an expected string.
package test

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

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/jetsetilly/titanpatch/test"
)

func TestFromBuildInfo(t *testing.T) {
	v, r := fromBuildInfo("", nil)
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	settings := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "4f2a9c1"},
		{Key: "vcs.modified", Value: "false"},
	}
	v, r = fromBuildInfo("", settings)
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "4f2a9c1")

	settings[2].Value = "true"
	v, r = fromBuildInfo("v0.2.0", settings)
	test.ExpectEquality(t, v, "v0.2.0")
	test.ExpectEquality(t, r, "4f2a9c1+dirty")
}

func TestBanner(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(Banner(), ApplicationName))
}

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

package paths

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/titanpatch/test"
)

func TestSearch(t *testing.T) {
	wd := t.TempDir()
	exe := t.TempDir()
	const conf = "chess_titans_rtx.conf"

	// not present anywhere. the working directory is preferred
	test.ExpectEquality(t, search(conf, wd, exe), filepath.Join(wd, conf))

	// present beside the executable only
	test.DemandSuccess(t, os.WriteFile(filepath.Join(exe, conf), nil, 0o600))
	test.ExpectEquality(t, search(conf, wd, exe), filepath.Join(exe, conf))

	// present in both. the working directory wins
	test.DemandSuccess(t, os.WriteFile(filepath.Join(wd, conf), nil, 0o600))
	test.ExpectEquality(t, search(conf, wd, exe), filepath.Join(wd, conf))

	// empty directories are ignored
	test.ExpectEquality(t, search(conf, "", exe), filepath.Join(exe, conf))
	test.ExpectEquality(t, search(conf), conf)
}

func TestResourcePath(t *testing.T) {
	pth, err := ResourcePath("foo", "bar.conf")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, filepath.IsAbs(pth))
	test.ExpectEquality(t, filepath.Base(pth), "bar.conf")
	test.ExpectEquality(t, filepath.Base(filepath.Dir(pth)), "foo")
}

func TestUniqueFilename(t *testing.T) {
	match := regexp.MustCompile(`^catalogue_\d{8}_\d{6}\.dot$`)
	test.ExpectSuccess(t, match.MatchString(UniqueFilename("catalogue", "dot")))
	test.ExpectSuccess(t, match.MatchString(UniqueFilename("catalogue", ".dot")))

	match = regexp.MustCompile(`^session_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, match.MatchString(UniqueFilename("session", "")))
}

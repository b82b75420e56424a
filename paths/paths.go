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
)

// ResourcePath returns the path to the resource. The resource can be
// specified in parts which are joined with the OS path separator.
func ResourcePath(resource ...string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// the executable directory is not available on every system. in that case
	// only the working directory is used
	var exe string
	if p, err := os.Executable(); err == nil {
		exe = filepath.Dir(p)
	}

	return search(filepath.Join(resource...), wd, exe), nil
}

// search returns the first path formed by joining a directory with the
// resource that exists. if no path exists then the path in the first
// directory is returned. empty directories are ignored
func search(resource string, dirs ...string) string {
	var first string

	for _, d := range dirs {
		if d == "" {
			continue
		}

		pth := filepath.Join(d, resource)
		if first == "" {
			first = pth
		}

		if _, err := os.Stat(pth); err == nil {
			return pth
		}
	}

	if first == "" {
		return resource
	}

	return first
}

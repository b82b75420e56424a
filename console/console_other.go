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

//go:build !windows

package console

import (
	"io"
	"os"
)

type stdout struct {
	io.Writer
}

// Close does not close os.Stdout.
func (stdout) Close() error {
	return nil
}

// Attach returns a writer for os.Stdout. The title is ignored.
func Attach(title string) (io.WriteCloser, error) {
	return stdout{Writer: os.Stdout}, nil
}

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

//go:build linux

package memory

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

type pageProtection struct {
	page uintptr
	prot int
}

type savedProtection []pageProtection

type mapping struct {
	start, end uintptr
	prot       int
	path       string
}

// mappings of the current process as described by /proc/self/maps
func mappings() ([]mapping, error) {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m []mapping

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// 00400000-00452000 r-xp 00000000 08:02 173521      /usr/bin/dbus-daemon
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		rng := strings.SplitN(fields[0], "-", 2)
		if len(rng) != 2 {
			return nil, fmt.Errorf("malformed mapping: %s", scanner.Text())
		}
		start, err := strconv.ParseUint(rng[0], 16, 64)
		if err != nil {
			return nil, err
		}
		end, err := strconv.ParseUint(rng[1], 16, 64)
		if err != nil {
			return nil, err
		}

		var prot int
		if strings.Contains(fields[1], "r") {
			prot |= unix.PROT_READ
		}
		if strings.Contains(fields[1], "w") {
			prot |= unix.PROT_WRITE
		}
		if strings.Contains(fields[1], "x") {
			prot |= unix.PROT_EXEC
		}

		var path string
		if len(fields) >= 6 {
			path = fields[5]
		}

		m = append(m, mapping{start: uintptr(start), end: uintptr(end), prot: prot, path: path})
	}

	return m, scanner.Err()
}

// relax page protection to execute+read+write for every page spanned by addr
// and size. the previous protection of each page is taken from the mappings
// list
func relax(addr uintptr, size int) (savedProtection, error) {
	m, err := mappings()
	if err != nil {
		return nil, err
	}

	var saved savedProtection

	for _, pg := range pages(addr, size) {
		prot := -1
		for _, r := range m {
			if pg >= r.start && pg < r.end {
				prot = r.prot
				break
			}
		}
		if prot == -1 {
			return nil, fmt.Errorf("page %#x is not mapped", pg)
		}
		saved = append(saved, pageProtection{page: pg, prot: prot})
	}

	pageSize := unix.Getpagesize()
	for i, s := range saved {
		err := unix.Mprotect(bytesAt(s.page, pageSize), unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC)
		if err != nil {
			// put back the pages that have already been relaxed
			_ = restore(addr, size, saved[:i])
			return nil, err
		}
	}

	return saved, nil
}

func restore(addr uintptr, size int, saved savedProtection) error {
	pageSize := unix.Getpagesize()
	for _, s := range saved {
		err := unix.Mprotect(bytesAt(s.page, pageSize), s.prot)
		if err != nil {
			return err
		}
	}
	return nil
}

var base struct {
	once sync.Once
	addr uintptr
	err  error
}

// the base of the running executable is the lowest mapping of the file named
// by os.Executable(). reading the mappings is expensive compared to the
// windows equivalent so the result is remembered
func moduleBase() (uintptr, error) {
	base.once.Do(func() {
		exe, err := os.Executable()
		if err != nil {
			base.err = err
			return
		}

		m, err := mappings()
		if err != nil {
			base.err = err
			return
		}

		for _, r := range m {
			if r.path == exe {
				base.addr = r.start
				return
			}
		}

		base.err = fmt.Errorf("no mapping for %s", exe)
	})

	return base.addr, base.err
}

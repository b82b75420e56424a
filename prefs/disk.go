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

package prefs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/jetsetilly/titanpatch/curated"
	"github.com/jetsetilly/titanpatch/logger"
)

// DefaultPrefsFile is the name of the prefs file looked for by the DLL.
const DefaultPrefsFile = "chess_titans_rtx.conf"

// Sentinal pattern for curated errors raised by the prefs package.
const NoPrefsFile = "prefs: no prefs file (%s)"

// WarningBoilerPlate is written at the top of every prefs file written by
// Save().
const WarningBoilerPlate = "; chess titans rtx preferences. keys not listed here take their default value"

// the source of a value after a call to Load()
type source int

const (
	fromDefault source = iota
	fromFile
	fromOverride
)

func (s source) String() string {
	switch s {
	case fromFile:
		return "file"
	case fromOverride:
		return "override"
	}
	return "default"
}

type entry struct {
	key      string
	p        pref
	def      string
	src      source
	optional bool
}

// Disk represents preference values as stored on disk. Values are stored in
// the default section of an INI file.
type Disk struct {
	path    string
	entries []*entry
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, e := range dsk.entries {
		s.WriteString(fmt.Sprintf("%s = %s (%s)\n", e.key, e.p, e.src))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for prefs file")
	}
	return &Disk{path: path}, nil
}

// Path returns the path of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk. The current
// value of the pref is used as the default value if the key cannot be loaded.
func (dsk *Disk) Add(key string, p pref) error {
	return dsk.add(key, p, false)
}

// AddOptional is like Add() but the value is only written by Save() or
// WriteTo() if it was loaded from the file or from an override. Use
// Loaded() to check whether an optional value has been specified.
func (dsk *Disk) AddOptional(key string, p pref) error {
	return dsk.add(key, p, true)
}

func (dsk *Disk) add(key string, p pref, optional bool) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("prefs: empty key")
	}

	for _, e := range dsk.entries {
		if e.key == key {
			return fmt.Errorf("prefs: %s: already added", key)
		}
	}

	dsk.entries = append(dsk.entries, &entry{key: key, p: p, def: p.String(), optional: optional})

	return nil
}

// Loaded returns true if the value for the key was found in the prefs file or
// in the overrides during the most recent call to Load().
func (dsk *Disk) Loaded(key string) bool {
	for _, e := range dsk.entries {
		if e.key == key {
			return e.src != fromDefault
		}
	}
	return false
}

// Load preferences from disk. Every added value that is missing from the file,
// or which cannot be parsed, keeps its default value. The use of every default
// value is logged.
//
// Values in the overrides stack (see PushOverrides()) take priority over
// values in the file.
//
// A missing prefs file is not fatal. The NoPrefsFile error is returned after
// all values have been given their default or override value.
func (dsk *Disk) Load() error {
	var sec *ini.Section
	var loadErr error

	cfg, err := ini.Load(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			loadErr = curated.Errorf(NoPrefsFile, dsk.path)
		} else {
			loadErr = fmt.Errorf("prefs: %w", err)
		}
		logger.Logf(logger.Allow, "prefs", "%v: using defaults", loadErr)
	} else {
		sec = cfg.Section(ini.DefaultSection)
	}

	for _, e := range dsk.entries {
		e.src = fromDefault

		// reset value to default before loading
		err := e.p.Set(e.def)
		if err != nil {
			return fmt.Errorf("prefs: %s: %w", e.key, err)
		}

		if v, ok := GetOverride(e.key); ok {
			if err := e.p.Set(v); err != nil {
				logger.Logf(logger.Allow, "prefs", "%s: override %q not usable: %v", e.key, v, err)
			} else {
				e.src = fromOverride
				continue
			}
		}

		if sec == nil {
			continue
		}

		if !sec.HasKey(e.key) {
			if e.optional {
				continue
			}
			logger.Logf(logger.Allow, "prefs", "%s: not in prefs file: using default (%s)", e.key, e.def)
			continue
		}

		v := sec.Key(e.key).String()
		if err := e.p.Set(v); err != nil {
			logger.Logf(logger.Allow, "prefs", "%s: cannot use %q: using default (%s)", e.key, v, e.def)

			// a failed Set() may have been vetoed by a hook after the value
			// had been converted. restore the default to be sure
			_ = e.p.Set(e.def)
			continue
		}

		e.src = fromFile
	}

	return loadErr
}

func (dsk *Disk) file() (*ini.File, error) {
	cfg := ini.Empty()
	sec := cfg.Section(ini.DefaultSection)
	sec.Comment = WarningBoilerPlate

	for _, e := range dsk.entries {
		if e.optional && e.src == fromDefault {
			continue
		}
		_, err := sec.NewKey(e.key, e.p.String())
		if err != nil {
			return nil, fmt.Errorf("prefs: %w", err)
		}
	}

	return cfg, nil
}

// Save current preference values to disk. Any existing file is replaced.
func (dsk *Disk) Save() error {
	cfg, err := dsk.file()
	if err != nil {
		return err
	}

	err = cfg.SaveTo(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// WriteTo writes current preference values in the same format as Save().
func (dsk *Disk) WriteTo(w io.Writer) (int64, error) {
	cfg, err := dsk.file()
	if err != nil {
		return 0, err
	}
	return cfg.WriteTo(w)
}

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

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/titanpatch/curated"
	"github.com/jetsetilly/titanpatch/logger"
	"github.com/jetsetilly/titanpatch/prefs"
	"github.com/jetsetilly/titanpatch/test"
)

func writeTmpPrefFile(t *testing.T, content string) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	err := os.WriteFile(fn, []byte(content), 0o600)
	if err != nil {
		t.Fatalf("error writing tmp pref file: %v", err)
	}
	return fn
}

func logContents() string {
	s := &strings.Builder{}
	logger.Write(s)
	return s.String()
}

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectSuccess(t, v.Set("false"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set(" TRUE "))
	test.ExpectEquality(t, v.Get().(bool), true)

	// value is unchanged after a failed set
	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectFailure(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(bool), true)
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, v.Set("-5"))
	test.ExpectEquality(t, v.Get().(int), -5)
	test.ExpectFailure(t, v.Set("ten"))
	test.ExpectEquality(t, v.Get().(int), -5)
}

func TestUint32(t *testing.T) {
	var v prefs.Uint32
	test.ExpectEquality(t, v.Get().(uint32), uint32(0))

	test.ExpectSuccess(t, v.Set(1920))
	test.ExpectEquality(t, v.Get().(uint32), uint32(1920))
	test.ExpectSuccess(t, v.Set("1080"))
	test.ExpectEquality(t, v.String(), "1080")

	test.ExpectFailure(t, v.Set(-1))
	test.ExpectFailure(t, v.Set("-1"))
	test.ExpectFailure(t, v.Set("4294967296"))
	test.ExpectFailure(t, v.Set(1.5))
	test.ExpectEquality(t, v.Get().(uint32), uint32(1080))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(uint32), uint32(0))
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0.000")

	test.ExpectSuccess(t, v.Set(float32(90)))
	test.ExpectEquality(t, v.Get().(float64), 90.0)
	test.ExpectSuccess(t, v.Set("110.5"))
	test.ExpectEquality(t, v.String(), "110.500")
	test.ExpectSuccess(t, v.Set(45))
	test.ExpectEquality(t, v.Get().(float64), 45.0)
	test.ExpectFailure(t, v.Set("wide"))
	test.ExpectEquality(t, v.Get().(float64), 45.0)
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, v.Set("session.dot"))
	test.ExpectEquality(t, v.Get().(string), "session.dot")
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "")
}

func TestHooks(t *testing.T) {
	var v prefs.Uint32
	var post uint32

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(uint32) == 0 {
			return curated.Errorf("prefs: zero not allowed")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(uint32)
		return nil
	})

	test.ExpectSuccess(t, v.Set(640))
	test.ExpectEquality(t, post, uint32(640))

	// vetoed by pre hook. post hook is not called
	test.ExpectFailure(t, v.Set(0))
	test.ExpectEquality(t, v.Get().(uint32), uint32(640))
	test.ExpectEquality(t, post, uint32(640))
}

type values struct {
	console    prefs.Bool
	fov        prefs.Float
	width      prefs.Uint32
	height     prefs.Uint32
	fullscreen prefs.Bool
	altitude   prefs.Float
}

func newValues(t *testing.T, fn string) (*values, *prefs.Disk) {
	t.Helper()

	v := &values{}
	test.DemandSuccess(t, v.console.Set(true))
	test.DemandSuccess(t, v.fov.Set(90.0))
	test.DemandSuccess(t, v.width.Set(1920))
	test.DemandSuccess(t, v.height.Set(1080))
	test.DemandSuccess(t, v.fullscreen.Set(true))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("console", &v.console))
	test.DemandSuccess(t, dsk.Add("fov", &v.fov))
	test.DemandSuccess(t, dsk.Add("width", &v.width))
	test.DemandSuccess(t, dsk.Add("height", &v.height))
	test.DemandSuccess(t, dsk.Add("fullscreen", &v.fullscreen))
	test.DemandSuccess(t, dsk.Add("altitude", &v.altitude))

	return v, dsk
}

func TestDuplicateKey(t *testing.T) {
	var v prefs.Bool
	dsk, err := prefs.NewDisk("unused")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Add("console", &v))
	test.ExpectFailure(t, dsk.Add("console", &v))
	test.ExpectFailure(t, dsk.Add("  ", &v))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestLoad(t *testing.T) {
	fn := writeTmpPrefFile(t, "fov = 110\nwidth = wide\nfullscreen = false\naltitude = 12.5\n")
	v, dsk := newValues(t, fn)

	logger.Clear()
	err := dsk.Load()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, v.console.Get().(bool), true)
	test.ExpectEquality(t, v.fov.Get().(float64), 110.0)
	test.ExpectEquality(t, v.width.Get().(uint32), uint32(1920))
	test.ExpectEquality(t, v.height.Get().(uint32), uint32(1080))
	test.ExpectEquality(t, v.fullscreen.Get().(bool), false)
	test.ExpectEquality(t, v.altitude.Get().(float64), 12.5)

	test.ExpectEquality(t, dsk.Loaded("fov"), true)
	test.ExpectEquality(t, dsk.Loaded("width"), false)
	test.ExpectEquality(t, dsk.Loaded("height"), false)
	test.ExpectEquality(t, dsk.Loaded("altitude"), true)
	test.ExpectEquality(t, dsk.Loaded("unknown"), false)

	// every fallback to a default value is logged
	log := logContents()
	test.ExpectSuccess(t, strings.Contains(log, `prefs: width: cannot use "wide": using default (1920)`))
	test.ExpectSuccess(t, strings.Contains(log, "prefs: height: not in prefs file: using default (1080)"))
	test.ExpectSuccess(t, strings.Contains(log, "prefs: console: not in prefs file: using default (true)"))
	test.ExpectFailure(t, strings.Contains(log, "prefs: fov:"))
}

func TestMissingFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing.conf")
	v, dsk := newValues(t, fn)

	logger.Clear()
	err := dsk.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectEquality(t, v.fov.Get().(float64), 90.0)
	test.ExpectEquality(t, v.width.Get().(uint32), uint32(1920))
	test.ExpectEquality(t, dsk.Loaded("altitude"), false)
	test.ExpectSuccess(t, strings.Contains(logContents(), "using defaults"))
}

func TestLoadOverride(t *testing.T) {
	fn := writeTmpPrefFile(t, "fov = 110\nwidth = 800\n")
	v, dsk := newValues(t, fn)

	prefs.PushOverrides("fov::75; height::600; console::maybe")

	err := dsk.Load()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, v.fov.Get().(float64), 75.0)
	test.ExpectEquality(t, v.width.Get().(uint32), uint32(800))
	test.ExpectEquality(t, v.height.Get().(uint32), uint32(600))
	test.ExpectEquality(t, v.console.Get().(bool), true)
	test.ExpectEquality(t, dsk.Loaded("height"), true)

	// used overrides have been consumed
	test.ExpectEquality(t, prefs.PopOverrides(), "")
}

func TestReload(t *testing.T) {
	fn := writeTmpPrefFile(t, "width = 800\n")
	v, dsk := newValues(t, fn)

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.width.Get().(uint32), uint32(800))

	// removing the key from the file restores the default on the next load
	test.DemandSuccess(t, os.WriteFile(fn, []byte("height = 600\n"), 0o600))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.width.Get().(uint32), uint32(1920))
	test.ExpectEquality(t, v.height.Get().(uint32), uint32(600))
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	v, dsk := newValues(t, fn)

	test.DemandSuccess(t, v.fov.Set(100.0))
	test.DemandSuccess(t, v.fullscreen.Set(false))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "fov"))
	test.ExpectSuccess(t, strings.Contains(string(data), "100.000"))

	w, dsk2 := newValues(t, fn)
	test.DemandSuccess(t, dsk2.Load())
	test.ExpectEquality(t, w.fov.Get().(float64), 100.0)
	test.ExpectEquality(t, w.fullscreen.Get().(bool), false)
	test.ExpectEquality(t, w.width.Get().(uint32), uint32(1920))
}

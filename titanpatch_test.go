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

package main

import (
	"bytes"
	"debug/pe"
	"encoding/binary"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jetsetilly/titanpatch/patch"
	"github.com/jetsetilly/titanpatch/test"
)

const (
	imageBase   = 0x400000
	sectionRVA  = 0x1000
	sectionSize = 0x131000
	rawPointer  = 0x200
)

// writeExecutable creates a minimal 32bit PE file with a single section
// covering every offset in the catalogue. The bytes at the offsets in the
// patches map are set before the file is written.
func writeExecutable(t *testing.T, bytesAt map[uint32]uint8) string {
	t.Helper()

	buf := &bytes.Buffer{}

	// dos header with offset of pe signature at 0x3c
	dos := make([]byte, 0x40)
	copy(dos, "MZ")
	binary.LittleEndian.PutUint32(dos[0x3c:], 0x40)
	buf.Write(dos)
	buf.WriteString("PE\x00\x00")

	fh := pe.FileHeader{
		Machine:              pe.IMAGE_FILE_MACHINE_I386,
		NumberOfSections:     1,
		SizeOfOptionalHeader: uint16(binary.Size(pe.OptionalHeader32{})),
		Characteristics:      pe.IMAGE_FILE_EXECUTABLE_IMAGE | pe.IMAGE_FILE_32BIT_MACHINE,
	}
	test.DemandSuccess(t, binary.Write(buf, binary.LittleEndian, fh))

	oh := pe.OptionalHeader32{
		Magic:               0x10b,
		ImageBase:           imageBase,
		SectionAlignment:    0x1000,
		FileAlignment:       0x200,
		SizeOfImage:         0x140000,
		SizeOfHeaders:       rawPointer,
		NumberOfRvaAndSizes: 16,
	}
	test.DemandSuccess(t, binary.Write(buf, binary.LittleEndian, oh))

	sh := pe.SectionHeader32{
		VirtualSize:      sectionSize,
		VirtualAddress:   sectionRVA,
		SizeOfRawData:    sectionSize,
		PointerToRawData: rawPointer,
		Characteristics:  pe.IMAGE_SCN_CNT_INITIALIZED_DATA | pe.IMAGE_SCN_MEM_READ,
	}
	copy(sh.Name[:], ".data")
	test.DemandSuccess(t, binary.Write(buf, binary.LittleEndian, sh))

	buf.Write(make([]byte, rawPointer-buf.Len()))

	data := make([]byte, sectionSize)
	for offset, b := range bytesAt {
		data[offset-sectionRVA] = b
	}
	buf.Write(data)

	fn := filepath.Join(t.TempDir(), "chess.exe")
	test.DemandSuccess(t, os.WriteFile(fn, buf.Bytes(), 0o600))
	return fn
}

// bytes for an executable that has not been patched
func original() map[uint32]uint8 {
	b := make(map[uint32]uint8)
	for _, set := range patch.Builtin() {
		for _, p := range set.Patches {
			b[p.Offset] = p.Original
		}
	}
	return b
}

func run(args ...string) (string, int) {
	out := &test.CompareWriter{}
	status := launch(args, out)
	return out.String(), status
}

func TestList(t *testing.T) {
	out, status := run()
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(out, "constant-tick (6 patches)"))
	test.ExpectSuccess(t, strings.Contains(out, "0x03fa0e: 75 -> 90"))
	test.ExpectSuccess(t, strings.Contains(out, "0x13100c: field of view (float32)"))

	// explicit mode gives the same output
	out2, status := run("list")
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, out2, out)

	// list mode takes no arguments
	_, status = run("list", "chess.exe")
	test.ExpectEquality(t, status, 20)
}

func TestVersion(t *testing.T) {
	out, status := run("-version")
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "Chess Titans RTX"))
}

func TestBadFlag(t *testing.T) {
	// an unrecognised flag selects the default mode, which then fails to
	// parse the flag
	out, status := run("-nosuchflag")
	test.ExpectEquality(t, status, 20)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in LIST mode:"))
}

func TestVerifyUnpatched(t *testing.T) {
	exe := writeExecutable(t, original())

	out, status := run("verify", exe)
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, out, "constant-tick: unpatched\nfov: unpatched\ngraphics-level-3: unpatched\n")
}

func TestVerifyPatched(t *testing.T) {
	b := original()
	for _, p := range patch.MustLookup(patch.ConstantTick).Patches {
		b[p.Offset] = p.New
	}

	// only one byte of the fov set
	b[0x13100a] = 0x20

	exe := writeExecutable(t, b)

	out, status := run("verify", "-v", exe)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(out, "constant-tick: patched\n"))
	test.ExpectSuccess(t, strings.Contains(out, "fov: partially patched\n"))
	test.ExpectSuccess(t, strings.Contains(out, "  0x13100a: be -> 20: found 0x20 (patched)\n"))
	test.ExpectSuccess(t, strings.Contains(out, "  0x13100e: f0 -> b4: found 0xf0 (unpatched)\n"))
}

func TestVerifyMismatch(t *testing.T) {
	b := original()
	b[0x3fb09] = 0x74
	exe := writeExecutable(t, b)

	out, status := run("verify", exe)
	test.ExpectEquality(t, status, 20)
	test.ExpectSuccess(t, strings.Contains(out, "constant-tick: mismatched\n"))
	test.ExpectSuccess(t, strings.Contains(out, "* error in VERIFY mode: 1 of 3 sets mismatched"))
}

func TestVerifyPatchFile(t *testing.T) {
	exe := writeExecutable(t, map[uint32]uint8{0x2000: 0x74})

	pf := filepath.Join(t.TempDir(), "jump.json")
	test.DemandSuccess(t, os.WriteFile(pf, []byte(`{"patches":[{"offset":"0x2000","original":"0x74","new":"0xeb"}]}`), 0o600))

	out, status := run("verify", "-patch", pf, exe)
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, out, "jump: unpatched\n")
}

func TestVerifyArguments(t *testing.T) {
	_, status := run("verify")
	test.ExpectEquality(t, status, 20)

	_, status = run("verify", "a.exe", "b.exe")
	test.ExpectEquality(t, status, 20)

	// not an executable
	fn := filepath.Join(t.TempDir(), "chess.exe")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not an executable"), 0o600))
	_, status = run("verify", fn)
	test.ExpectEquality(t, status, 20)
}

func TestMemviz(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "catalogue.dot")

	out, status := run("memviz", "-o", fn)
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, out, "catalogue graph written to "+fn+"\n")

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
	test.ExpectSuccess(t, strings.Contains(string(data), "constant-tick"))
}

func TestPrefs(t *testing.T) {
	out, status := run("prefs", "-defaults")
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, regexp.MustCompile(`fov\s*=\s*90.000`).MatchString(out))
	test.ExpectSuccess(t, regexp.MustCompile(`fullscreen\s*=\s*true`).MatchString(out))

	fn := filepath.Join(t.TempDir(), "chess_titans_rtx.conf")
	out, status = run("prefs", "-defaults", "-o", fn)
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, out, "preferences written to "+fn+"\n")

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, regexp.MustCompile(`width\s*=\s*1920`).Match(data))
}

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

// Command titanpatch examines executable files with the patch catalogue. The
// catalogue is the same catalogue applied by the DLL when it attaches to the
// host.
//
// Modes:
//
//	LIST    list the sets in the patch catalogue (default)
//	VERIFY  check the catalogue, or a patch file, against an executable
//	MEMVIZ  write a memviz graph of the catalogue
//	PREFS   write the preferences file used by the DLL
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/titanpatch/logger"
	"github.com/jetsetilly/titanpatch/memory"
	"github.com/jetsetilly/titanpatch/modalflag"
	"github.com/jetsetilly/titanpatch/patch"
	"github.com/jetsetilly/titanpatch/paths"
	"github.com/jetsetilly/titanpatch/preferences"
	"github.com/jetsetilly/titanpatch/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch runs the command with the arguments and returns the exit status.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("LIST", "VERIFY", "MEMVIZ", "PREFS")
	log := md.AddBool("log", false, "echo log to output")
	showVersion := md.AddBool("version", false, "show version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.Banner())
		return 0
	}

	if *log {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	switch md.Mode() {
	case "LIST":
		err = list(md)

	case "VERIFY":
		err = verify(md)

	case "MEMVIZ":
		err = catalogueGraph(md)

	case "PREFS":
		err = writePrefs(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	for _, set := range patch.Builtin() {
		fmt.Fprintln(md.Output, set)
		for _, p := range set.Patches {
			fmt.Fprintf(md.Output, "  %s\n", p)
		}
	}

	fmt.Fprintln(md.Output, "fields")
	fmt.Fprintf(md.Output, "  %#08x: field of view (float32)\n", patch.FOVOffset)
	fmt.Fprintf(md.Output, "  %#08x: altitude (float32)\n", patch.AltitudeOffset)
	fmt.Fprintf(md.Output, "  %#08x: width (uint32)\n", patch.WidthOffset)
	fmt.Fprintf(md.Output, "  %#08x: height (uint32)\n", patch.HeightOffset)

	return nil
}

func verify(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Reports whether each set is unpatched, patched, partially patched or mismatched\nin the executable. A mismatched set cannot be applied by the DLL.")

	patchFile := md.AddString("patch", "", "patch file to verify instead of the catalogue")
	verbose := md.AddBool("v", false, "report every patch in the set")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("executable required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var sets []patch.Set
	if *patchFile != "" {
		set, err := patch.LoadFile(*patchFile)
		if err != nil {
			return err
		}
		sets = append(sets, set)
	} else {
		sets = patch.Builtin()
	}

	img, err := memory.LoadPE(md.GetArg(0))
	if err != nil {
		return err
	}
	eng := patch.Engine{Resolver: img, Mem: img}

	var mismatched int

	for _, set := range sets {
		obs := eng.Check(set)
		status := patch.Summarise(obs)
		if status == patch.Mismatched {
			mismatched++
		}

		fmt.Fprintf(md.Output, "%s: %s\n", set.Name, status)
		if *verbose {
			for _, o := range obs {
				fmt.Fprintf(md.Output, "  %s: found %#02x (%s)\n", o.Patch, o.Found, o.Status)
			}
		}
	}

	if mismatched > 0 {
		return fmt.Errorf("%d of %d sets mismatched", mismatched, len(sets))
	}

	return nil
}

func catalogueGraph(md *modalflag.Modes) error {
	md.NewMode()

	out := md.AddString("o", "", "output file (default is a unique filename in the current directory)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	fn := *out
	if fn == "" {
		fn = paths.UniqueFilename("catalogue", "dot")
	}

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	sets := patch.Builtin()
	memviz.Map(f, &sets)

	fmt.Fprintf(md.Output, "catalogue graph written to %s\n", fn)

	return nil
}

func writePrefs(md *modalflag.Modes) error {
	md.NewMode()

	defaults := md.AddBool("defaults", false, "write default values instead of the current values")
	out := md.AddString("o", "", "write to file instead of output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	prf, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	if *defaults {
		prf.SetDefaults()
	}

	if *out == "" {
		_, err = prf.WriteTo(md.Output)
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = prf.WriteTo(f)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "preferences written to %s\n", *out)

	return nil
}

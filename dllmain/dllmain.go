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

//go:build windows

// Command dllmain is built as a DLL to be injected into the host:
//
//	GOOS=windows GOARCH=386 CGO_ENABLED=1 go build -buildmode=c-shared -o chess_titans_rtx.dll ./dllmain
//
// The Go runtime initialises when the DLL is loaded by the host, at which
// point the package init() function runs the attach sequence. The main()
// function is required by the c-shared build mode but is never called.
package main

import "C"

import (
	"context"
	"os"

	"github.com/jetsetilly/titanpatch/attach"
	"github.com/jetsetilly/titanpatch/console"
	"github.com/jetsetilly/titanpatch/environment"
	"github.com/jetsetilly/titanpatch/logger"
	"github.com/jetsetilly/titanpatch/memory"
	"github.com/jetsetilly/titanpatch/preferences"
	"github.com/jetsetilly/titanpatch/prefs"
	"github.com/jetsetilly/titanpatch/version"
	"github.com/jetsetilly/titanpatch/window"
)

func init() {
	prefs.PushOverrides(os.Getenv(prefs.OverrideEnv))

	p, err := preferences.NewPreferences()
	if err != nil {
		// nothing useful can be done without preferences. the log will never
		// be seen because there is no console yet
		logger.Log(logger.Allow, "attach", err)
		return
	}

	if p.Console.Get().(bool) {
		w, err := console.Attach(version.ApplicationName)
		if err == nil {
			// entries logged before the console existed
			logger.Write(w)
			logger.SetEcho(w)
		}
	}

	desktop, err := window.Live()
	if err != nil {
		logger.Log(logger.Allow, "attach", err)
	}

	env, err := environment.NewEnvironment(memory.ModuleResolver(), memory.Process{}, desktop, p)
	if err != nil {
		logger.Log(logger.Allow, "attach", err)
		return
	}

	_ = attach.Run(context.Background(), env)
}

func main() {}

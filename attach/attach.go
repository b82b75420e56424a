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

package attach

import (
	"context"
	"sync"

	"github.com/jetsetilly/titanpatch/environment"
	"github.com/jetsetilly/titanpatch/logger"
	"github.com/jetsetilly/titanpatch/memory"
	"github.com/jetsetilly/titanpatch/patch"
	"github.com/jetsetilly/titanpatch/statsview"
	"github.com/jetsetilly/titanpatch/version"
	"github.com/jetsetilly/titanpatch/watcher"
	"github.com/jetsetilly/titanpatch/window"
)

// Session is the result of attaching to the host.
type Session struct {
	env *environment.Environment
	eng patch.Engine

	// whether the constant tick patch was applied. the tick rate watcher only
	// runs if it was
	tickPatched bool

	// watchers can be added by the window goroutine so access to the list is
	// through the critical section
	crit      sync.Mutex
	watchers  []*watcher.Watcher
	windowErr error

	// all goroutines started by the session
	wg sync.WaitGroup
}

// Run the attach sequence. The context is passed to every goroutine started
// by the session. The live host never cancels the context.
//
// A panic during the one-shot patches, such as a failure to resolve the
// module base address, ends the attach sequence. The panic is logged and the
// returned Session contains whatever was started before the panic.
func Run(ctx context.Context, env *environment.Environment) (sess *Session) {
	sess = &Session{
		env: env,
		eng: patch.Engine{Resolver: env.Resolver, Mem: env.Mem},
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Logf(logger.Allow, "attach", "ended: %v", r)
		}
	}()

	logger.Logf(logger.Allow, "attach", "welcome to %s", version.Banner())

	sess.oneShot()
	sess.startWatchers(ctx)
	sess.startWindow(ctx)

	// the statsview server listens on a fixed port. only the live host may
	// start it
	if env.Prefs.Statsview.Get().(bool) {
		if env.IsMain() {
			statsview.Launch()
		} else {
			logger.Logf(logger.Allow, "attach", "statsview not launched for %s environment", env.Label)
		}
	}

	if pth := env.Prefs.Memviz.String(); pth != "" {
		err := sess.Memviz(pth)
		if err != nil {
			logger.Log(logger.Allow, "attach", err)
		} else {
			logger.Logf(logger.Allow, "attach", "session graph written to %s", pth)
		}
	}

	return sess
}

func (sess *Session) oneShot() {
	p := sess.env.Prefs

	if p.ConstantTick.Get().(bool) {
		err := sess.eng.ApplyAndReport(patch.MustLookup(patch.ConstantTick), true, "constant tick")
		sess.tickPatched = err == nil
	}

	fov := float32(p.FOV.Get().(float64))
	err := memory.Poke(sess.env.Mem, sess.env.Resolver.Resolve(patch.FOVOffset), fov)
	if err != nil {
		logger.Log(logger.Allow, "attach", err)
	} else {
		logger.Logf(logger.Allow, "attach", "field of view set to %.1f", fov)
	}

	if p.HasAltitude() {
		alt := float32(p.Altitude.Get().(float64))
		err := memory.Poke(sess.env.Mem, sess.env.Resolver.Resolve(patch.AltitudeOffset), alt)
		if err != nil {
			logger.Log(logger.Allow, "attach", err)
		} else {
			logger.Logf(logger.Allow, "attach", "altitude set to %.1f", alt)
		}
	}
}

func (sess *Session) startWatchers(ctx context.Context) {
	p := sess.env.Prefs

	if p.SettingsOverride.Get().(bool) {
		w, err := watcher.NewGraphicsLevel(sess.eng, watcher.DefaultInterval)
		if err != nil {
			logger.Log(logger.Allow, "attach", err)
		} else {
			sess.spawn(ctx, w)
		}
	}

	// the resolution watcher is started by the window goroutine if the
	// resolution is taken from the monitor
	if p.Fullscreen.Get().(bool) {
		width := p.Width.Get().(uint32)
		height := p.Height.Get().(uint32)
		if width != 0 && height != 0 {
			sess.spawnResolution(ctx, width, height)
		}
	}

	if sess.tickPatched {
		w, err := watcher.NewTickRate(sess.eng, watcher.DefaultInterval)
		if err != nil {
			logger.Log(logger.Allow, "attach", err)
		} else {
			sess.spawn(ctx, w)
		}
	}
}

func (sess *Session) spawnResolution(ctx context.Context, width, height uint32) {
	w := watcher.NewResolution(sess.env.Resolver, sess.env.Mem, width, height,
		watcher.DefaultInterval, watcher.ResolutionBound)
	sess.spawn(ctx, w)
}

func (sess *Session) spawn(ctx context.Context, w *watcher.Watcher) {
	sess.crit.Lock()
	sess.watchers = append(sess.watchers, w)
	sess.crit.Unlock()

	sess.wg.Add(1)
	done := watcher.Spawn(ctx, w)
	go func() {
		defer sess.wg.Done()
		<-done
	}()

	logger.Logf(logger.Allow, "attach", "started %s watcher", w.Name())
}

func (sess *Session) startWindow(ctx context.Context) {
	if sess.env.Desktop == nil {
		logger.Log(logger.Allow, "attach", "no desktop: window not enforced")
		return
	}

	p := sess.env.Prefs

	enf := window.Enforcer{
		Desktop:    sess.env.Desktop,
		PID:        sess.env.PID,
		Class:      window.ChessWindowClass,
		Fullscreen: p.Fullscreen.Get().(bool),
		Width:      p.Width.Get().(uint32),
		Height:     p.Height.Get().(uint32),
		Timeout:    p.Timeout(),
	}

	sess.wg.Add(1)
	go func() {
		defer sess.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Logf(logger.Allow, "attach", "window: ended: %v", r)
			}
		}()

		r, err := enf.Run(ctx)
		if err != nil {
			logger.Log(logger.Allow, "attach", err)
			sess.crit.Lock()
			sess.windowErr = err
			sess.crit.Unlock()
			return
		}

		if enf.Fullscreen && (enf.Width == 0 || enf.Height == 0) {
			sess.spawnResolution(ctx, r.Width, r.Height)
		}
	}()
}

// TickPatched returns true if the constant tick patch was applied.
func (sess *Session) TickPatched() bool {
	return sess.tickPatched
}

// Watchers returns the watchers started by the session so far.
func (sess *Session) Watchers() []*watcher.Watcher {
	sess.crit.Lock()
	defer sess.crit.Unlock()
	w := make([]*watcher.Watcher, len(sess.watchers))
	copy(w, sess.watchers)
	return w
}

// Watcher returns the named watcher. Returns nil if the watcher has not been
// started.
func (sess *Session) Watcher(name string) *watcher.Watcher {
	for _, w := range sess.Watchers() {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

// WindowErr returns the error from the window enforcer, if any.
func (sess *Session) WindowErr() error {
	sess.crit.Lock()
	defer sess.crit.Unlock()
	return sess.windowErr
}

// Wait blocks until every goroutine started by the session has ended. Only
// the bounded resolution watcher ends by itself. Other goroutines end when the
// context given to Run() is cancelled.
func (sess *Session) Wait() {
	sess.wg.Wait()
}

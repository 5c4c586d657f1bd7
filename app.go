package sdlkit

import (
	"fmt"
	"time"
)

// State is the lifecycle state of an App's loop.
type State int

const (
	// StateRunning is the initial state; the loop keeps iterating in it.
	StateRunning State = iota

	// StateTerminated is entered on a quit request or the quit key. The
	// loop stops and releases its resources.
	StateTerminated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// App owns one window and one renderer and drives a poll, render, present
// loop over them. The zero value is not usable; create one with NewApp.
type App struct {
	conf  Config
	state State

	// openLibrary is the acquisition seam. Tests replace it to drive the
	// loop without a display.
	openLibrary func(InitFlags) (library, error)
}

// NewApp creates an application from the configuration. Nothing native is
// touched until Run.
func NewApp(conf Config) *App {
	return &App{
		conf: conf,
		openLibrary: func(flags InitFlags) (library, error) {
			return Open(flags)
		},
	}
}

// State reports the loop state. Before Run it is the initial StateRunning.
func (a *App) State() State {
	return a.state
}

// Run acquires the library, window, and renderer in that order, drives the
// frame loop until a quit request or the quit key arrives, and releases
// everything in reverse acquisition order, on error paths included. It
// returns nil after a normal quit and the setup error otherwise.
//
// Call Run from the main goroutine with the OS thread locked.
func (a *App) Run() error {
	lib, err := a.openLibrary(a.conf.Init)
	if err != nil {
		return err
	}
	defer lib.Close()

	win, err := lib.newWindow(a.conf)
	if err != nil {
		return err
	}
	defer win.Destroy()

	ren, err := win.newCanvas(a.conf)
	if err != nil {
		return err
	}
	defer ren.Destroy()

	a.state = StateRunning
	Logger().Info("loop running",
		"title", a.conf.Title, "width", a.conf.Width, "height", a.conf.Height)

	for a.state == StateRunning {
		a.drainEvents(lib)
		if a.state != StateRunning {
			break
		}
		a.renderFrame(win, ren)
		lib.Delay(a.conf.FrameDelay)
	}
	return nil
}

// drainEvents empties the whole event queue before the frame is drawn, so
// queued input cannot lag behind the frame rate.
func (a *App) drainEvents(lib library) {
	for {
		ev, ok := lib.Poll()
		if !ok {
			return
		}
		a.handleEvent(ev)
	}
}

func (a *App) handleEvent(ev Event) {
	switch e := ev.(type) {
	case QuitEvent:
		Logger().Info("quit requested")
		a.terminate()
	case KeyDownEvent:
		if e.Key == a.conf.QuitKey {
			Logger().Info("quit key pressed")
			a.terminate()
		}
	case WindowResizedEvent:
		Logger().Debug("window resized", "width", e.Width, "height", e.Height)
	}
}

func (a *App) terminate() {
	if a.state == StateTerminated {
		return
	}
	a.state = StateTerminated
}

// renderFrame draws the scene: the background fill, then the rectangle
// centered against the window's current size, so it stays centered across
// resizes. Failed draw calls are tolerated; the renderer logs them.
func (a *App) renderFrame(win window, ren canvas) {
	w, h := win.Size()
	rect := NewRect(0, 0, a.conf.RectW, a.conf.RectH).CenteredIn(w, h)

	ren.SetDrawColor(a.conf.Background)
	ren.Clear()
	ren.SetDrawColor(a.conf.Foreground)
	ren.FillRect(rect)
	ren.Present()
}

// The loop runs against narrow views of the handles so tests can stand in
// for the native stack. The unexported creation methods keep the chain
// sealed inside the package.

type library interface {
	newWindow(conf Config) (window, error)
	Poll() (Event, bool)
	Delay(d time.Duration)
	Close()
}

type window interface {
	newCanvas(conf Config) (canvas, error)
	Size() (width, height int32)
	Destroy()
}

type canvas interface {
	SetDrawColor(c Color) error
	Clear() error
	FillRect(rect Rect) error
	Present()
	Destroy()
}

func (l *Library) newWindow(conf Config) (window, error) {
	w, err := l.CreateWindow(conf.Title, conf.Width, conf.Height, conf.Window)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Window) newCanvas(conf Config) (canvas, error) {
	r, err := w.CreateRenderer(conf.Renderer)
	if err != nil {
		return nil, err
	}
	return r, nil
}

var (
	_ library = (*Library)(nil)
	_ window  = (*Window)(nil)
	_ canvas  = (*Renderer)(nil)
)

package sdlkit

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps a native window. Create one from an open Library and destroy
// it before the library is closed.
type Window struct {
	win *sdl.Window
}

// CreateWindow creates a window with the given title, size, and options.
// The window is centered on the screen and shown immediately.
func (l *Library) CreateWindow(title string, width, height int32, opts WindowOptions) (*Window, error) {
	flags := opts.ToSDL() | sdl.WINDOW_SHOWN
	win, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, flags)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowCreationFailed, err)
	}
	Logger().Info("window created", "title", title, "width", width, "height", height)
	return &Window{win: win}, nil
}

// Destroy releases the native window. Renderers created from the window
// must be destroyed first. Destroying an already destroyed window is a
// no-op.
func (w *Window) Destroy() {
	if w == nil || w.win == nil {
		return
	}
	if err := w.win.Destroy(); err != nil {
		Logger().Warn("window destroy failed", "error", err)
	}
	w.win = nil
	Logger().Info("window destroyed")
}

// Size returns the window's current width and height.
func (w *Window) Size() (width, height int32) {
	return w.win.GetSize()
}

// SetSize resizes the window.
func (w *Window) SetSize(width, height int32) {
	w.win.SetSize(width, height)
}

// Position returns the window's position on the screen.
func (w *Window) Position() (x, y int32) {
	return w.win.GetPosition()
}

// SetPosition moves the window.
func (w *Window) SetPosition(x, y int32) {
	w.win.SetPosition(x, y)
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.win.GetTitle()
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// Surface returns the window's software surface for direct pixel access.
// A window drawn through a Renderer must not also use its surface.
func (w *Window) Surface() (*sdl.Surface, error) {
	s, err := w.win.GetSurface()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceCreationFailed, err)
	}
	return s, nil
}

// UpdateSurface copies the window surface to the screen.
func (w *Window) UpdateSurface() error {
	return w.win.UpdateSurface()
}

// Native exposes the underlying handle for calls the wrapper does not
// cover.
func (w *Window) Native() *sdl.Window {
	return w.win
}

package sdlkit

import (
	"time"

	"golang.org/x/image/colornames"
)

// Config describes everything App needs: the window, the renderer, and the
// scene it draws. Build one with DefaultConfig and the With methods, which
// return modified copies and chain.
type Config struct {
	Title  string
	Width  int32
	Height int32

	Init     InitFlags
	Window   WindowOptions
	Renderer RendererOptions

	// Background fills the frame, Foreground fills the centered rectangle
	// of RectW by RectH pixels.
	Background Color
	Foreground Color
	RectW      float32
	RectH      float32

	// FrameDelay is slept after each presented frame.
	FrameDelay time.Duration

	// QuitKey terminates the loop when pressed, alongside the platform's
	// quit request.
	QuitKey Key
}

// DefaultConfig returns the demo configuration: an 800x600 video-only
// window, default renderer selection, a white rectangle on cornflower
// blue, and a roughly 60 frames per second pace.
func DefaultConfig() Config {
	return Config{
		Title:      "sdlkit demo",
		Width:      800,
		Height:     600,
		Init:       InitFlags{Video: true},
		Background: FromColor(colornames.Cornflowerblue),
		Foreground: White,
		RectW:      320,
		RectH:      240,
		FrameDelay: 16 * time.Millisecond,
		QuitKey:    KeyEscape,
	}
}

// WithTitle sets the window title.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize sets the window size in pixels.
func (c Config) WithSize(width, height int32) Config {
	c.Width = width
	c.Height = height
	return c
}

// WithInitFlags selects the native subsystems to initialize.
func (c Config) WithInitFlags(flags InitFlags) Config {
	c.Init = flags
	return c
}

// WithWindowOptions sets the window style.
func (c Config) WithWindowOptions(opts WindowOptions) Config {
	c.Window = opts
	return c
}

// WithRendererOptions sets the renderer style. The zero value requests
// default renderer selection.
func (c Config) WithRendererOptions(opts RendererOptions) Config {
	c.Renderer = opts
	return c
}

// WithBackground sets the clear color.
func (c Config) WithBackground(bg Color) Config {
	c.Background = bg
	return c
}

// WithForeground sets the rectangle color.
func (c Config) WithForeground(fg Color) Config {
	c.Foreground = fg
	return c
}

// WithRectSize sets the size of the centered rectangle.
func (c Config) WithRectSize(w, h float32) Config {
	c.RectW = w
	c.RectH = h
	return c
}

// WithFrameDelay sets the per-frame sleep.
func (c Config) WithFrameDelay(d time.Duration) Config {
	c.FrameDelay = d
	return c
}

// WithQuitKey sets the key that terminates the loop.
func (c Config) WithQuitKey(key Key) Config {
	c.QuitKey = key
	return c
}

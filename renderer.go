package sdlkit

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Renderer wraps a native 2D renderer bound to a window. Draw calls
// accumulate on a backbuffer until Present flips it to the screen.
//
// Failed draw calls return their error and are also logged at Debug level,
// so frame loops can ignore the returns without losing diagnostics.
type Renderer struct {
	ren *sdl.Renderer
}

// CreateRenderer creates a renderer for the window, picking the first
// driver that supports the requested options.
func (w *Window) CreateRenderer(opts RendererOptions) (*Renderer, error) {
	ren, err := sdl.CreateRenderer(w.win, -1, opts.ToSDL())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRendererCreationFailed, err)
	}
	Logger().Info("renderer created", "accelerated", opts.Accelerated, "vsync", opts.VSync)
	return &Renderer{ren: ren}, nil
}

// Destroy releases the native renderer. Destroying an already destroyed
// renderer is a no-op.
func (r *Renderer) Destroy() {
	if r == nil || r.ren == nil {
		return
	}
	if err := r.ren.Destroy(); err != nil {
		Logger().Warn("renderer destroy failed", "error", err)
	}
	r.ren = nil
	Logger().Info("renderer destroyed")
}

// SetDrawColor sets the color used by Clear and the draw calls.
func (r *Renderer) SetDrawColor(c Color) error {
	return r.debugErr("set draw color", r.ren.SetDrawColor(c.R, c.G, c.B, c.A))
}

// Clear fills the whole backbuffer with the current draw color.
func (r *Renderer) Clear() error {
	return r.debugErr("clear", r.ren.Clear())
}

// FillRect fills a rectangle with the current draw color.
func (r *Renderer) FillRect(rect Rect) error {
	sr := rect.SDL()
	return r.debugErr("fill rect", r.ren.FillRectF(&sr))
}

// DrawRect outlines a rectangle with the current draw color.
func (r *Renderer) DrawRect(rect Rect) error {
	sr := rect.SDL()
	return r.debugErr("draw rect", r.ren.DrawRectF(&sr))
}

// DrawLine draws a line between two points with the current draw color.
func (r *Renderer) DrawLine(x1, y1, x2, y2 float32) error {
	return r.debugErr("draw line", r.ren.DrawLineF(x1, y1, x2, y2))
}

// DrawPoint draws a single point with the current draw color.
func (r *Renderer) DrawPoint(x, y float32) error {
	return r.debugErr("draw point", r.ren.DrawPointF(x, y))
}

// DrawPoints draws each point with the current draw color.
func (r *Renderer) DrawPoints(pts []Point) error {
	if len(pts) == 0 {
		return nil
	}
	return r.debugErr("draw points", r.ren.DrawPointsF(fpoints(pts)))
}

// DrawLines draws connected line segments through the points with the
// current draw color.
func (r *Renderer) DrawLines(pts []Point) error {
	if len(pts) < 2 {
		return nil
	}
	return r.debugErr("draw lines", r.ren.DrawLinesF(fpoints(pts)))
}

// Present flips the backbuffer to the screen.
func (r *Renderer) Present() {
	r.ren.Present()
}

// Native exposes the underlying handle for calls the wrapper does not
// cover.
func (r *Renderer) Native() *sdl.Renderer {
	return r.ren
}

func (r *Renderer) debugErr(op string, err error) error {
	if err != nil {
		Logger().Debug("draw call failed", "op", op, "error", err)
	}
	return err
}

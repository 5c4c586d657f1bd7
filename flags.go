package sdlkit

import "github.com/veandco/go-sdl2/sdl"

// InitFlags selects which SDL subsystems Open starts.
// The zero value selects nothing.
type InitFlags struct {
	Video    bool // SDL_INIT_VIDEO
	Audio    bool // SDL_INIT_AUDIO
	Gamepad  bool // SDL_INIT_GAMECONTROLLER
	Joystick bool // SDL_INIT_JOYSTICK
	Haptic   bool // SDL_INIT_HAPTIC
	Sensor   bool // SDL_INIT_SENSOR
	Events   bool // SDL_INIT_EVENTS
}

// ToSDL converts the selection to the SDL_Init bitmask. Each true field
// contributes exactly its native bit; unselected subsystems stay clear.
func (f InitFlags) ToSDL() uint32 {
	var flags uint32

	if f.Video {
		flags |= sdl.INIT_VIDEO
	}

	if f.Audio {
		flags |= sdl.INIT_AUDIO
	}

	if f.Gamepad {
		flags |= sdl.INIT_GAMECONTROLLER
	}

	if f.Joystick {
		flags |= sdl.INIT_JOYSTICK
	}

	if f.Haptic {
		flags |= sdl.INIT_HAPTIC
	}

	if f.Sensor {
		flags |= sdl.INIT_SENSOR
	}

	if f.Events {
		flags |= sdl.INIT_EVENTS
	}

	return flags
}

// WindowOptions selects the style of a window created by CreateWindow.
// The zero value is a plain fixed-size window.
type WindowOptions struct {
	Resizable        bool // SDL_WINDOW_RESIZABLE
	Fullscreen       bool // SDL_WINDOW_FULLSCREEN
	Borderless       bool // SDL_WINDOW_BORDERLESS
	AlwaysOnTop      bool // SDL_WINDOW_ALWAYS_ON_TOP
	HighPixelDensity bool // SDL_WINDOW_ALLOW_HIGHDPI
}

// ToSDL converts the style to the SDL_CreateWindow bitmask.
// SDL_WINDOW_SHOWN is not part of the style; CreateWindow adds it.
func (o WindowOptions) ToSDL() uint32 {
	var flags uint32

	if o.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if o.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if o.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if o.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	if o.HighPixelDensity {
		flags |= sdl.WINDOW_ALLOW_HIGHDPI
	}

	return flags
}

// RendererOptions selects the driver behavior of a renderer created by
// CreateRenderer. The zero value requests SDL's default renderer selection.
type RendererOptions struct {
	Accelerated bool // SDL_RENDERER_ACCELERATED
	VSync       bool // SDL_RENDERER_PRESENTVSYNC
}

// ToSDL converts the selection to the SDL_CreateRenderer bitmask.
func (o RendererOptions) ToSDL() uint32 {
	var flags uint32

	if o.Accelerated {
		flags |= sdl.RENDERER_ACCELERATED
	}

	if o.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}

	return flags
}

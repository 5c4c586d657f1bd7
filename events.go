package sdlkit

import "github.com/veandco/go-sdl2/sdl"

// Event is an input or system event taken from the native event queue.
// The concrete types are QuitEvent, KeyDownEvent, KeyUpEvent, and
// WindowResizedEvent.
type Event interface {
	isEvent()
}

// QuitEvent signals a request to close the application, such as the window
// close button or a platform quit shortcut.
type QuitEvent struct{}

// KeyDownEvent signals a key press. Repeat is set for events generated by
// the platform's key-repeat.
type KeyDownEvent struct {
	Key    Key
	Repeat bool
}

// KeyUpEvent signals a key release.
type KeyUpEvent struct {
	Key Key
}

// WindowResizedEvent signals a change of the window's drawable size.
type WindowResizedEvent struct {
	Width  int32
	Height int32
}

func (QuitEvent) isEvent()          {}
func (KeyDownEvent) isEvent()       {}
func (KeyUpEvent) isEvent()         {}
func (WindowResizedEvent) isEvent() {}

// Key identifies a keyboard key by its keycode.
type Key int32

// Keys the demo and tests refer to by name. Any other key is still
// delivered; compare against the sdl keycode directly.
const (
	KeyEscape = Key(sdl.K_ESCAPE)
	KeyReturn = Key(sdl.K_RETURN)
	KeySpace  = Key(sdl.K_SPACE)
	KeyUp     = Key(sdl.K_UP)
	KeyDown   = Key(sdl.K_DOWN)
	KeyLeft   = Key(sdl.K_LEFT)
	KeyRight  = Key(sdl.K_RIGHT)
	KeyQ      = Key(sdl.K_q)
)

// convertEvent maps a native event to its wrapper type. Events the wrapper
// does not model convert to nil.
func convertEvent(e sdl.Event) Event {
	switch ev := e.(type) {
	case *sdl.QuitEvent:
		return QuitEvent{}
	case *sdl.KeyboardEvent:
		key := Key(ev.Keysym.Sym)
		if ev.Type == sdl.KEYDOWN {
			return KeyDownEvent{Key: key, Repeat: ev.Repeat != 0}
		}
		return KeyUpEvent{Key: key}
	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_RESIZED || ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return WindowResizedEvent{Width: ev.Data1, Height: ev.Data2}
		}
		return nil
	default:
		return nil
	}
}

package sdlkit

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// Library is the handle for the initialized native library. Open it once at
// startup, create windows from it, and Close it last during teardown, after
// every window and renderer has been released.
//
// The native library is not thread-safe. Open and all calls on the handles
// derived from it belong on the main OS thread; lock it with
// runtime.LockOSThread in an init function of package main.
type Library struct {
	closed bool
}

// Open initializes the native subsystems selected by flags.
func Open(flags InitFlags) (*Library, error) {
	bits := flags.ToSDL()
	if err := sdl.Init(bits); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}
	Logger().Info("library initialized", "flags", fmt.Sprintf("%#x", bits))
	return &Library{}, nil
}

// Close shuts the native library down. Closing an already closed handle is
// a no-op.
func (l *Library) Close() {
	if l == nil || l.closed {
		return
	}
	l.closed = true
	sdl.Quit()
	Logger().Info("library shut down")
}

// Poll removes the next pending event from the queue and reports false when
// the queue is empty. Native events the wrapper does not model are consumed
// and skipped, so a poll loop sees only the types in this package.
func (l *Library) Poll() (Event, bool) {
	for {
		native := sdl.PollEvent()
		if native == nil {
			return nil, false
		}
		if ev := convertEvent(native); ev != nil {
			return ev, true
		}
	}
}

// Wait blocks until an event the wrapper models arrives.
func (l *Library) Wait() (Event, error) {
	for {
		native := sdl.WaitEvent()
		if native == nil {
			return nil, wrapNativeError(ErrUnknown)
		}
		if ev := convertEvent(native); ev != nil {
			return ev, nil
		}
	}
}

// Delay sleeps for the given duration using the native timer. Durations
// under a millisecond are not slept.
func (l *Library) Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	sdl.Delay(uint32(d.Milliseconds()))
}

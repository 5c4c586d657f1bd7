package sdlkit

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinel errors for the failure classes of the native boundary. Wrapped
// errors carry the native detail message; match with errors.Is.
var (
	// ErrInitFailed indicates the native library could not be initialized.
	ErrInitFailed = errors.New("sdlkit: library initialization failed")

	// ErrWindowCreationFailed indicates a window could not be created.
	ErrWindowCreationFailed = errors.New("sdlkit: window creation failed")

	// ErrRendererCreationFailed indicates a renderer could not be created.
	ErrRendererCreationFailed = errors.New("sdlkit: renderer creation failed")

	// ErrSurfaceCreationFailed indicates a window surface could not be
	// obtained.
	ErrSurfaceCreationFailed = errors.New("sdlkit: surface creation failed")

	// ErrUnknown indicates a native failure outside the classes above.
	ErrUnknown = errors.New("sdlkit: unknown error")
)

// wrapNativeError attaches the native library's pending error message, if
// any, to the given sentinel.
func wrapNativeError(sentinel error) error {
	if err := sdl.GetError(); err != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return sentinel
}

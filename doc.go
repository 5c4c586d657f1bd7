// Package sdlkit is a thin Go wrapper around SDL2 for small windowed
// applications.
//
// # Overview
//
// sdlkit translates plain Go configuration structs (subsystem selection,
// window style, renderer style, colors, rectangles) into the flag and struct
// forms of the underlying SDL2 C API via github.com/veandco/go-sdl2, and
// wraps the window and renderer handles with explicit, error-checked
// lifecycles. On top of the wrapper it provides App, a single-threaded
// poll-render-present loop suitable for demos and prototypes.
//
// # Quick Start
//
//	import "github.com/gosdl/sdlkit"
//
//	func main() {
//		conf := sdlkit.DefaultConfig().
//			WithTitle("hello").
//			WithSize(640, 480)
//
//		if err := sdlkit.NewApp(conf).Run(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Run opens the library, creates a window and renderer, and draws a centered
// rectangle each frame until the window is closed or Escape is pressed.
//
// # Lifecycle
//
// SDL keeps process-global initialization state. sdlkit confines it to an
// explicit *Library handle: Open initializes the selected subsystems and
// Close shuts them down, so Open/Close pairs can run repeatedly within one
// process. Acquisition order is library, window, renderer; release is the
// exact reverse, and every create pairs with a deferred destroy so the order
// holds on error paths too.
//
// # Errors
//
// The three setup calls (Open, CreateWindow, CreateRenderer) return errors
// matched with errors.Is against the sentinel taxonomy in errors.go. Once a
// renderer exists, per-frame draw calls never fail the frame: native errors
// are reported through the package logger at Debug level. See SetLogger.
//
// # Threading
//
// SDL requires event and render calls on the thread that initialized video.
// Callers of App.Run (and of the wrapper directly) should lock the OS thread
// from main, as cmd/sdldemo does.
package sdlkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

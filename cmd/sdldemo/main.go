// Command sdldemo opens a window and draws a white rectangle centered on a
// cornflower blue background until the window is closed or the escape key
// is pressed.
package main

import (
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gosdl/sdlkit"
)

func init() {
	// The native library requires every call on the thread that
	// initialized it.
	runtime.LockOSThread()
}

func main() {
	sdlkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	conf := sdlkit.DefaultConfig().WithTitle("sdlkit demo")
	if err := sdlkit.NewApp(conf).Run(); err != nil {
		log.Fatal(err)
	}
}

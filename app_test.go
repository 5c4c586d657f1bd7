package sdlkit

import (
	"errors"
	"testing"
	"time"
)

// The fakes below stand in for the native stack so the loop can run
// without a display. A shared recorder keeps the release calls in order.

type recorder struct {
	calls []string
}

func (r *recorder) record(name string) {
	r.calls = append(r.calls, name)
}

type fakeLibrary struct {
	rec   *recorder
	flags InitFlags

	// events is the queue Poll consumes. When maxFrames is set, Delay
	// appends a quit event after that many frames as a safety stop.
	events    []Event
	maxFrames int

	windowErr error
	canvasErr error

	// liveW and liveH, when set, make the window report a size different
	// from the configured one, as after a user resize.
	liveW, liveH int32

	win    *fakeWindow
	polled int
	closed int
	delays []time.Duration
}

func (l *fakeLibrary) newWindow(conf Config) (window, error) {
	if l.windowErr != nil {
		return nil, l.windowErr
	}
	w, h := conf.Width, conf.Height
	if l.liveW != 0 {
		w, h = l.liveW, l.liveH
	}
	l.win = &fakeWindow{rec: l.rec, w: w, h: h, canvasErr: l.canvasErr}
	return l.win, nil
}

func (l *fakeLibrary) Poll() (Event, bool) {
	l.polled++
	if len(l.events) == 0 {
		return nil, false
	}
	ev := l.events[0]
	l.events = l.events[1:]
	return ev, true
}

func (l *fakeLibrary) Delay(d time.Duration) {
	l.delays = append(l.delays, d)
	if l.maxFrames > 0 && len(l.delays) >= l.maxFrames {
		l.events = append(l.events, QuitEvent{})
	}
}

func (l *fakeLibrary) Close() {
	l.closed++
	l.rec.record("library close")
}

type fakeWindow struct {
	rec       *recorder
	w, h      int32
	canvasErr error

	canvas    *fakeCanvas
	destroyed int
}

func (w *fakeWindow) newCanvas(conf Config) (canvas, error) {
	if w.canvasErr != nil {
		return nil, w.canvasErr
	}
	w.canvas = &fakeCanvas{rec: w.rec}
	return w.canvas, nil
}

func (w *fakeWindow) Size() (int32, int32) {
	return w.w, w.h
}

func (w *fakeWindow) Destroy() {
	w.destroyed++
	w.rec.record("window destroy")
}

type fakeCanvas struct {
	rec *recorder

	colors    []Color
	clears    int
	fills     []Rect
	presents  int
	destroyed int
}

func (c *fakeCanvas) SetDrawColor(col Color) error {
	c.colors = append(c.colors, col)
	return nil
}

func (c *fakeCanvas) Clear() error {
	c.clears++
	return nil
}

func (c *fakeCanvas) FillRect(r Rect) error {
	c.fills = append(c.fills, r)
	return nil
}

func (c *fakeCanvas) Present() {
	c.presents++
}

func (c *fakeCanvas) Destroy() {
	c.destroyed++
	c.rec.record("renderer destroy")
}

var (
	_ library = (*fakeLibrary)(nil)
	_ window  = (*fakeWindow)(nil)
	_ canvas  = (*fakeCanvas)(nil)
)

// newFakeApp wires an App to the fake stack.
func newFakeApp(conf Config, lib *fakeLibrary) *App {
	if lib.rec == nil {
		lib.rec = &recorder{}
	}
	app := NewApp(conf)
	app.openLibrary = func(flags InitFlags) (library, error) {
		lib.flags = flags
		return lib, nil
	}
	return app
}

func TestAppInitialState(t *testing.T) {
	app := NewApp(DefaultConfig())

	if got := app.State(); got != StateRunning {
		t.Errorf("State() = %v, want %v", got, StateRunning)
	}
}

func TestAppQuitEventTerminates(t *testing.T) {
	lib := &fakeLibrary{events: []Event{QuitEvent{}}}
	app := newFakeApp(DefaultConfig(), lib)

	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := app.State(); got != StateTerminated {
		t.Errorf("State() = %v, want %v", got, StateTerminated)
	}
	if lib.win.canvas.clears != 0 {
		t.Errorf("clears = %d, want 0 (no frame after quit)", lib.win.canvas.clears)
	}
}

func TestAppEscapeKeyTerminates(t *testing.T) {
	lib := &fakeLibrary{events: []Event{KeyDownEvent{Key: KeyEscape}}}
	app := newFakeApp(DefaultConfig(), lib)

	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := app.State(); got != StateTerminated {
		t.Errorf("State() = %v, want %v", got, StateTerminated)
	}
}

func TestAppReleasesInReverseOrder(t *testing.T) {
	lib := &fakeLibrary{events: []Event{QuitEvent{}}}
	app := newFakeApp(DefaultConfig(), lib)

	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"renderer destroy", "window destroy", "library close"}
	if len(lib.rec.calls) != len(want) {
		t.Fatalf("release calls = %v, want %v", lib.rec.calls, want)
	}
	for i, call := range want {
		if lib.rec.calls[i] != call {
			t.Fatalf("release calls = %v, want %v", lib.rec.calls, want)
		}
	}
	if lib.win.canvas.destroyed != 1 || lib.win.destroyed != 1 || lib.closed != 1 {
		t.Errorf("destroy counts = (%d, %d, %d), want (1, 1, 1)",
			lib.win.canvas.destroyed, lib.win.destroyed, lib.closed)
	}
}

func TestAppOtherEventsKeepRunning(t *testing.T) {
	// A key release of the quit key must not terminate; the safety stop
	// quits after two frames.
	lib := &fakeLibrary{
		events:    []Event{KeyUpEvent{Key: KeyEscape}, KeyDownEvent{Key: KeySpace}},
		maxFrames: 2,
	}
	app := newFakeApp(DefaultConfig(), lib)

	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if lib.win.canvas.clears != 2 {
		t.Errorf("clears = %d, want 2 frames before the safety quit", lib.win.canvas.clears)
	}
}

func TestAppDrainsQueueBeforeRendering(t *testing.T) {
	// The quit event sits behind two others; one drain must consume all
	// three, so no frame is ever drawn.
	lib := &fakeLibrary{events: []Event{
		WindowResizedEvent{Width: 100, Height: 100},
		KeyUpEvent{Key: KeySpace},
		QuitEvent{},
	}}
	app := newFakeApp(DefaultConfig(), lib)

	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if lib.win.canvas.clears != 0 {
		t.Errorf("clears = %d, want 0 (queue drained before rendering)", lib.win.canvas.clears)
	}
	if lib.polled != 4 {
		t.Errorf("polls = %d, want 4 (three events plus the empty check)", lib.polled)
	}
}

func TestAppRendersSceneOnce(t *testing.T) {
	conf := DefaultConfig().
		WithSize(640, 480).
		WithRectSize(100, 50).
		WithBackground(Blue).
		WithForeground(White).
		WithFrameDelay(16 * time.Millisecond)
	lib := &fakeLibrary{maxFrames: 1}
	app := newFakeApp(conf, lib)

	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	canvas := lib.win.canvas
	if canvas.clears != 1 || canvas.presents != 1 {
		t.Fatalf("clears = %d, presents = %d, want 1 and 1", canvas.clears, canvas.presents)
	}
	wantColors := []Color{Blue, White}
	if len(canvas.colors) != 2 || canvas.colors[0] != wantColors[0] || canvas.colors[1] != wantColors[1] {
		t.Errorf("draw colors = %v, want %v", canvas.colors, wantColors)
	}
	wantRect := Rect{X: 270, Y: 215, W: 100, H: 50}
	if len(canvas.fills) != 1 || canvas.fills[0] != wantRect {
		t.Errorf("fills = %v, want [%+v]", canvas.fills, wantRect)
	}
	if len(lib.delays) != 1 || lib.delays[0] != conf.FrameDelay {
		t.Errorf("delays = %v, want [%v]", lib.delays, conf.FrameDelay)
	}
}

func TestAppCentersAgainstLiveWindowSize(t *testing.T) {
	// The window reports a smaller size than the configured one, as after
	// a user resize; the rectangle must center against the live size.
	conf := DefaultConfig().WithSize(800, 600).WithRectSize(200, 100)
	lib := &fakeLibrary{maxFrames: 1, liveW: 400, liveH: 300}
	app := newFakeApp(conf, lib)

	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := Rect{X: 100, Y: 100, W: 200, H: 100}
	if fills := lib.win.canvas.fills; len(fills) != 1 || fills[0] != want {
		t.Errorf("fills = %v, want [%+v]", fills, want)
	}
}

func TestAppWindowFailureReleasesLibrary(t *testing.T) {
	boom := errors.New("no display")
	lib := &fakeLibrary{windowErr: boom}
	app := newFakeApp(DefaultConfig(), lib)

	if err := app.Run(); !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	want := []string{"library close"}
	if len(lib.rec.calls) != 1 || lib.rec.calls[0] != want[0] {
		t.Errorf("release calls = %v, want %v", lib.rec.calls, want)
	}
}

func TestAppRendererFailureReleasesWindowAndLibrary(t *testing.T) {
	boom := errors.New("no driver")
	lib := &fakeLibrary{canvasErr: boom}
	app := newFakeApp(DefaultConfig(), lib)

	if err := app.Run(); !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	want := []string{"window destroy", "library close"}
	if len(lib.rec.calls) != 2 || lib.rec.calls[0] != want[0] || lib.rec.calls[1] != want[1] {
		t.Errorf("release calls = %v, want %v", lib.rec.calls, want)
	}
}

func TestAppLibraryFailureAborts(t *testing.T) {
	app := NewApp(DefaultConfig())
	app.openLibrary = func(flags InitFlags) (library, error) {
		return nil, ErrInitFailed
	}

	if err := app.Run(); !errors.Is(err, ErrInitFailed) {
		t.Errorf("Run() error = %v, want %v", err, ErrInitFailed)
	}
}

func TestAppCustomQuitKey(t *testing.T) {
	conf := DefaultConfig().WithQuitKey(KeyQ)

	// Escape no longer quits.
	lib := &fakeLibrary{events: []Event{KeyDownEvent{Key: KeyEscape}}, maxFrames: 1}
	app := newFakeApp(conf, lib)
	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if lib.win.canvas.clears != 1 {
		t.Errorf("clears = %d, want 1 (escape ignored with custom quit key)", lib.win.canvas.clears)
	}

	// The custom key does.
	lib = &fakeLibrary{events: []Event{KeyDownEvent{Key: KeyQ}}}
	app = newFakeApp(conf, lib)
	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if lib.win.canvas.clears != 0 {
		t.Errorf("clears = %d, want 0 (custom quit key terminates)", lib.win.canvas.clears)
	}
}

func TestAppPassesInitFlagsThrough(t *testing.T) {
	conf := DefaultConfig().WithInitFlags(InitFlags{Video: true, Audio: true})
	lib := &fakeLibrary{events: []Event{QuitEvent{}}}
	app := newFakeApp(conf, lib)

	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if lib.flags != conf.Init {
		t.Errorf("init flags = %+v, want %+v", lib.flags, conf.Init)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateRunning, "running"},
		{StateTerminated, "terminated"},
		{State(7), "State(7)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}

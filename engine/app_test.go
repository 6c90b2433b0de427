package engine

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-timer/config"
	"github.com/lixenwraith/vi-timer/timer"
)

// countingPlayer records sound requests
type countingPlayer struct {
	chimes, clicks, cleanups int
}

func (p *countingPlayer) PlayChime() { p.chimes++ }
func (p *countingPlayer) PlayClick() { p.clicks++ }
func (p *countingPlayer) Cleanup()   { p.cleanups++ }

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

type testApp struct {
	app    *App
	screen tcell.SimulationScreen
	sound  *countingPlayer
	time   *MockTimeProvider
}

func newTestApp(t *testing.T, args ...string) *testApp {
	t.Helper()
	clock := timer.NewMockWallClock(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	state, err := timer.Initialize(args, clock)
	if err != nil {
		t.Fatalf("Initialize(%v): %v", args, err)
	}

	screen := newSimScreen(t, 40, 12)
	sound := &countingPlayer{}
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	app := NewApp(AppConfig{
		Screen:  screen,
		Args:    args,
		Clock:   clock,
		State:   state,
		Display: config.Default().Display,
		Sound:   sound,
		Time:    mock,
	})
	return &testApp{app: app, screen: screen, sound: sound, time: mock}
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestApp_AscendingFrames(t *testing.T) {
	ta := newTestApp(t)

	ta.app.lastFrame = ta.time.Now()
	for i := 0; i < 4; i++ {
		ta.time.Advance(250 * time.Millisecond)
		if !ta.app.Frame() {
			t.Fatal("Frame() requested exit in stopwatch mode")
		}
	}

	if got := ta.app.State().DisplayedTime(); !approx(got, 1.0) {
		t.Errorf("Expected displayed time 1.0, got %f", got)
	}
	if got := ta.app.Orchestrator().LastTitle(); got != "00:00:01 - timer" {
		t.Errorf("Expected title 00:00:01 - timer, got %q", got)
	}
}

func TestApp_BackwardsTimeIsEmptyFrame(t *testing.T) {
	ta := newTestApp(t)

	ta.app.lastFrame = ta.time.Now()
	ta.time.SetTime(ta.time.Now().Add(-time.Second))
	ta.app.Frame()

	if got := ta.app.State().DisplayedTime(); got != 0 {
		t.Errorf("Expected displayed time 0 after backwards step, got %f", got)
	}
}

func TestApp_CountdownChimeOnce(t *testing.T) {
	ta := newTestApp(t, "2s")

	ta.app.Tick(1.5)
	if ta.sound.chimes != 0 {
		t.Fatalf("Expected no chime before zero, got %d", ta.sound.chimes)
	}

	if !ta.app.Tick(1.0) {
		t.Fatal("Tick() requested exit without -e")
	}
	ta.app.Tick(1.0)
	ta.app.Tick(1.0)

	if ta.sound.chimes != 1 {
		t.Errorf("Expected exactly one chime, got %d", ta.sound.chimes)
	}
	if got := ta.app.State().DisplayedTime(); got != 0 {
		t.Errorf("Expected countdown clamped at 0, got %f", got)
	}
}

func TestApp_CountdownExit(t *testing.T) {
	ta := newTestApp(t, "-e", "2s")

	if !ta.app.Tick(1.0) {
		t.Fatal("Tick() exited early")
	}
	if ta.app.Tick(1.5) {
		t.Error("Expected Tick() to request exit when the countdown reaches zero")
	}
	if ta.sound.chimes != 0 {
		t.Errorf("Expected no chime on exit, got %d", ta.sound.chimes)
	}
}

func TestApp_PauseToggle(t *testing.T) {
	ta := newTestApp(t)

	if !ta.app.HandleEvent(key(' ')) {
		t.Fatal("space should not quit")
	}
	if !ta.app.State().Paused() {
		t.Fatal("Expected state to be paused")
	}
	if ta.sound.clicks != 1 {
		t.Errorf("Expected one click, got %d", ta.sound.clicks)
	}

	ta.app.Tick(3)
	if got := ta.app.State().DisplayedTime(); got != 0 {
		t.Errorf("Expected paused time to stay 0, got %f", got)
	}

	ta.app.HandleEvent(key(' '))
	ta.app.Tick(3)
	if got := ta.app.State().DisplayedTime(); !approx(got, 3) {
		t.Errorf("Expected 3 after resume, got %f", got)
	}
}

func TestApp_Scale(t *testing.T) {
	ta := newTestApp(t)
	f := config.Default().Display.ScaleFactor

	ta.app.HandleEvent(key('='))
	want := 1 + f
	if got := ta.app.State().UserScale(); !approx(got, want) {
		t.Errorf("Expected scale %f after '=', got %f", want, got)
	}

	ta.app.HandleEvent(key('-'))
	want -= f * want
	if got := ta.app.State().UserScale(); !approx(got, want) {
		t.Errorf("Expected scale %f after '-', got %f", want, got)
	}

	ta.app.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModCtrl))
	want += f * want
	if got := ta.app.State().UserScale(); !approx(got, want) {
		t.Errorf("Expected scale %f after ctrl+wheel, got %f", want, got)
	}

	ta.app.HandleEvent(key('0'))
	if got := ta.app.State().UserScale(); got != 1 {
		t.Errorf("Expected scale reset to 1, got %f", got)
	}
}

func TestApp_Reload(t *testing.T) {
	ta := newTestApp(t, "-p", "5")

	ta.app.HandleEvent(key(' ')) // unpause
	ta.app.HandleEvent(key('='))
	ta.app.Tick(2)
	if got := ta.app.State().DisplayedTime(); !approx(got, 3) {
		t.Fatalf("Expected 3 remaining, got %f", got)
	}

	ta.app.HandleEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))

	st := ta.app.State()
	if st.DisplayedTime() != 5 {
		t.Errorf("Expected reload to restore 5, got %f", st.DisplayedTime())
	}
	if !st.Paused() {
		t.Error("Expected reload to restore -p")
	}
	if st.UserScale() != 1 {
		t.Errorf("Expected reload to reset scale, got %f", st.UserScale())
	}
}

func TestApp_ReloadFailureKeepsState(t *testing.T) {
	ta := newTestApp(t, "5")
	before := ta.app.State()

	ta.app.args = []string{"5x"}
	ta.app.HandleEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))

	if ta.app.State() != before {
		t.Error("Expected failed reload to keep the current state")
	}
}

func TestApp_FullscreenHidesHintLine(t *testing.T) {
	ta := newTestApp(t)
	_, h := ta.screen.Size()

	// Status text starts with the mode name after one space
	ta.app.Tick(0)
	if r, _, _, _ := ta.screen.GetContent(1, h-1); r != 's' {
		t.Fatalf("Expected hint line on the bottom row, got %q", r)
	}

	ta.app.HandleEvent(tcell.NewEventKey(tcell.KeyF11, 0, tcell.ModNone))
	if !ta.app.Fullscreen() {
		t.Fatal("Expected fullscreen after F11")
	}

	ta.app.Tick(0)
	if r, _, _, _ := ta.screen.GetContent(1, h-1); r == 's' {
		t.Error("Expected canvas on the bottom row in fullscreen")
	}
}

func TestApp_QuitKeys(t *testing.T) {
	ta := newTestApp(t)

	quits := []tcell.Event{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quits {
		if ta.app.HandleEvent(ev) {
			t.Errorf("Expected %v to quit", ev)
		}
	}

	if !ta.app.HandleEvent(key('x')) {
		t.Error("Expected unbound key to be ignored")
	}
}

func TestApp_RunStopsOnQuitKey(t *testing.T) {
	ta := newTestApp(t)
	ta.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	errCh := make(chan error, 1)
	go func() { errCh <- ta.app.Run(context.Background()) }()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after quit key")
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	ta := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ta.app.Run(ctx); err != nil {
		t.Errorf("Run() = %v", err)
	}
}

func TestApp_RunExitsOnZeroCountdown(t *testing.T) {
	ta := newTestApp(t, "-e", "0")

	done := make(chan struct{})
	go func() {
		ta.app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not exit for a zero countdown with -e")
	}
}

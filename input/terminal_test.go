package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTerminalKeys() (*TerminalKeys, *stepClock) {
	clock := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewTerminalKeys(DefaultBindings(), clock), clock
}

func TestTerminalKeysHoldWindow(t *testing.T) {
	keys, clock := newTestTerminalKeys()
	fire := tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)

	if keys.Held(KeyFire) {
		t.Fatal("Expected no key held initially")
	}
	if !keys.HandleEvent(fire) {
		t.Fatal("Expected bound key to be handled")
	}
	if !keys.Held(KeyFire) {
		t.Error("Expected key held right after press")
	}

	clock.Advance(DefaultInitialHold - time.Millisecond)
	if !keys.Held(KeyFire) {
		t.Error("Expected key held inside the initial window")
	}

	clock.Advance(time.Millisecond)
	if keys.Held(KeyFire) {
		t.Error("Expected key released when the window expires")
	}
}

func TestTerminalKeysRepeatExtends(t *testing.T) {
	keys, clock := newTestTerminalKeys()
	right := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)

	keys.HandleEvent(right)

	// Early repeat never shortens the initial window
	clock.Advance(10 * time.Millisecond)
	keys.HandleEvent(right)
	clock.Advance(DefaultInitialHold - 20*time.Millisecond)
	if !keys.Held(KeyRight) {
		t.Error("Expected initial window kept after early repeat")
	}

	// Steady auto-repeat keeps the key held
	for i := 0; i < 20; i++ {
		keys.HandleEvent(right)
		clock.Advance(DefaultRepeatHold / 2)
		if !keys.Held(KeyRight) {
			t.Fatalf("Expected key held during auto-repeat, step %d", i)
		}
	}

	keys.HandleEvent(right)
	clock.Advance(DefaultRepeatHold)
	if keys.Held(KeyRight) {
		t.Error("Expected key released one repeat window after the last repeat")
	}
}

func TestTerminalKeysIgnoresUnbound(t *testing.T) {
	keys, _ := newTestTerminalKeys()

	if keys.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)) {
		t.Error("Expected unbound key not handled")
	}
	if keys.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("Expected non-key event not handled")
	}
	for _, k := range AllKeys() {
		if keys.Held(k) {
			t.Errorf("Expected %v not held", k)
		}
	}
}

func TestTerminalKeysModifier(t *testing.T) {
	keys, _ := newTestTerminalKeys()
	keys.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift))

	if !keys.Held(KeyUp) || !keys.Held(KeyPrecision) {
		t.Error("Expected Shift+Up to hold both Up and Precision")
	}
}

func TestTerminalKeysReleaseAll(t *testing.T) {
	keys, _ := newTestTerminalKeys()
	keys.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	keys.ReleaseAll()

	if keys.Held(KeyConfirm) {
		t.Error("Expected ReleaseAll to drop held keys")
	}
}

func TestTerminalKeysFromSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	keys, _ := newTestTerminalKeys()
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	// Skip any resize event queued by Init
	var ev tcell.Event
	for i := 0; i < 4; i++ {
		ev = screen.PollEvent()
		if _, ok := ev.(*tcell.EventKey); ok {
			break
		}
	}
	if !keys.HandleEvent(ev) {
		t.Fatalf("Expected injected Esc to be handled, got %T", ev)
	}
	if !keys.Held(KeyPause) {
		t.Error("Expected Pause held after Esc")
	}
}

func TestTerminalKeysCustomWindows(t *testing.T) {
	keys, clock := newTestTerminalKeys()
	keys.SetHoldWindows(50*time.Millisecond, 20*time.Millisecond)
	keys.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))

	clock.Advance(50 * time.Millisecond)
	if keys.Held(KeyDown) {
		t.Error("Expected custom initial window to apply")
	}
}

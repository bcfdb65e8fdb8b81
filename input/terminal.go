package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Hold windows for terminal key emulation
// Terminals report presses and auto-repeats but never releases, so a key is
// treated as held until its window expires without a new event. The first
// press gets a window long enough to bridge the auto-repeat start delay.
const (
	DefaultInitialHold = 350 * time.Millisecond
	DefaultRepeatHold  = 90 * time.Millisecond
)

// Clock is the time source for hold windows
type Clock interface {
	Now() time.Time
}

// TerminalKeys is an Oracle fed by tcell key events
// HandleEvent runs on the input goroutine, Held on the simulation goroutine
type TerminalKeys struct {
	mu          sync.Mutex
	bindings    Bindings
	clock       Clock
	initialHold time.Duration
	repeatHold  time.Duration
	heldUntil   [keyCount]time.Time
	scratch     []Key
}

// NewTerminalKeys creates a terminal oracle with the default hold windows
func NewTerminalKeys(bindings Bindings, clock Clock) *TerminalKeys {
	return &TerminalKeys{
		bindings:    bindings,
		clock:       clock,
		initialHold: DefaultInitialHold,
		repeatHold:  DefaultRepeatHold,
		scratch:     make([]Key, 0, keyCount),
	}
}

// SetHoldWindows overrides the hold windows
func (t *TerminalKeys) SetHoldWindows(initial, repeat time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.initialHold = initial
	t.repeatHold = repeat
}

// HandleEvent records a key event; returns false for events that are not bound keys
func (t *TerminalKeys) HandleEvent(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.scratch = t.bindings.Resolve(kev, t.scratch)
	if len(t.scratch) == 0 {
		return false
	}

	now := t.clock.Now()
	for _, k := range t.scratch {
		if now.Before(t.heldUntil[k]) {
			// Auto-repeat of a key already held; never shortens the window
			if until := now.Add(t.repeatHold); until.After(t.heldUntil[k]) {
				t.heldUntil[k] = until
			}
		} else {
			t.heldUntil[k] = now.Add(t.initialHold)
		}
	}
	return true
}

// Held implements Oracle
func (t *TerminalKeys) Held(k Key) bool {
	if k >= keyCount {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.clock.Now().Before(t.heldUntil[k])
}

// ReleaseAll drops every held key, e.g. on focus loss or resize
func (t *TerminalKeys) ReleaseAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.heldUntil = [keyCount]time.Time{}
}

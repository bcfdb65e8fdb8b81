// Package input turns terminal key events into the held-key oracle the engine polls
package input

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool mockgen -destination=./mocks/oracle_mock.go -package=mocks . Oracle

// Key is a logical game key, independent of the physical binding
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPrecision // Slow, precise movement modifier
	KeyFire
	KeyConfirm // Start, resume, restart
	KeyPause
	KeyQuit

	keyCount
)

var keyNames = [keyCount]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPrecision: "precision",
	KeyFire:      "fire",
	KeyConfirm:   "confirm",
	KeyPause:     "pause",
	KeyQuit:      "quit",
}

// ErrUnknownKey is returned for logical or physical key names that cannot be resolved
var ErrUnknownKey = errors.New("input: unknown key")

// String returns the logical key name used in key config files
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey resolves a logical key name, case-insensitive
func ParseKey(name string) (Key, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == lower {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("%w: logical key %q", ErrUnknownKey, name)
}

// AllKeys returns every logical key in declaration order
func AllKeys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Oracle answers whether a logical key is currently held
type Oracle interface {
	Held(k Key) bool
}

// HeldSet is a plain Oracle whose state is set directly; used for scripted input
type HeldSet [keyCount]bool

// Held implements Oracle
func (h *HeldSet) Held(k Key) bool {
	return k < keyCount && h[k]
}

// Press marks keys as held
func (h *HeldSet) Press(keys ...Key) {
	for _, k := range keys {
		h[k] = true
	}
}

// Release marks keys as not held
func (h *HeldSet) Release(keys ...Key) {
	for _, k := range keys {
		h[k] = false
	}
}

// ReleaseAll clears every key
func (h *HeldSet) ReleaseAll() {
	*h = HeldSet{}
}

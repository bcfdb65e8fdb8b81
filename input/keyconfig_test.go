package input

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseBinding(t *testing.T) {
	tests := []struct {
		name string
		want Binding
	}{
		{"z", Binding{Key: tcell.KeyRune, Rune: 'z'}},
		{"Z", Binding{Key: tcell.KeyRune, Rune: 'Z'}},
		{"Up", Binding{Key: tcell.KeyUp}},
		{"enter", Binding{Key: tcell.KeyEnter}},
		{"Esc", Binding{Key: tcell.KeyEscape}},
		{"Space", Binding{Key: tcell.KeyRune, Rune: ' '}},
		{"Shift", Binding{Key: tcell.KeyNUL, Mod: tcell.ModShift}},
	}

	for _, tt := range tests {
		got, err := ParseBinding(tt.name)
		if err != nil {
			t.Errorf("ParseBinding(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBinding(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}

	if _, err := ParseBinding("Hyper"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
}

func TestDefaultBindingsResolve(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []Key
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), []Key{KeyUp}},
		{"shift arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), []Key{KeyLeft, KeyPrecision}},
		{"fire", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), []Key{KeyFire}},
		{"precision rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), []Key{KeyPrecision}},
		{"confirm", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []Key{KeyConfirm}},
		{"pause", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), []Key{KeyPause}},
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), []Key{KeyQuit}},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Resolve(tt.ev, nil)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLoadBindingsOverrides(t *testing.T) {
	data := []byte(`
[keys]
fire = ["Space", "c"]
Pause = ["p"]
`)

	b, err := LoadBindings(data)
	if err != nil {
		t.Fatalf("LoadBindings failed: %v", err)
	}

	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	if got := b.Resolve(space, nil); !slices.Equal(got, []Key{KeyFire}) {
		t.Errorf("Expected Space to fire, got %v", got)
	}

	// Overridden logical keys lose their defaults
	z := tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)
	if got := b.Resolve(z, nil); len(got) != 0 {
		t.Errorf("Expected z unbound after override, got %v", got)
	}
	esc := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	if got := b.Resolve(esc, nil); len(got) != 0 {
		t.Errorf("Expected Esc unbound after override, got %v", got)
	}

	// Untouched logical keys keep theirs
	enter := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	if got := b.Resolve(enter, nil); !slices.Equal(got, []Key{KeyConfirm}) {
		t.Errorf("Expected Enter to confirm, got %v", got)
	}
}

func TestLoadBindingsErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"unknown logical", "[keys]\nbomb = [\"b\"]\n", ErrUnknownKey},
		{"unknown physical", "[keys]\nfire = [\"Hyper\"]\n", ErrUnknownKey},
		{"empty list", "[keys]\nfire = []\n", nil},
		{"unexpected table", "[sound]\nvolume = 3\n", nil},
		{"malformed", "[keys\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBindings([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadBindingsFile(t *testing.T) {
	b, err := LoadBindingsFile("")
	if err != nil {
		t.Fatalf("Expected defaults for empty path, got %v", err)
	}
	if len(b[KeyFire]) != 1 || b[KeyFire][0].Rune != 'z' {
		t.Errorf("Expected default fire binding, got %+v", b[KeyFire])
	}

	path := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(path, []byte("[keys]\nquit = [\"Delete\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err = LoadBindingsFile(path)
	if err != nil {
		t.Fatalf("LoadBindingsFile failed: %v", err)
	}
	if len(b[KeyQuit]) != 1 || b[KeyQuit][0].Key != tcell.KeyDelete {
		t.Errorf("Expected Delete quit binding, got %+v", b[KeyQuit])
	}

	if _, err := LoadBindingsFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

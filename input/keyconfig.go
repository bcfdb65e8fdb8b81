package input

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Binding is one physical key bound to a logical key
// A Binding with Key == tcell.KeyNUL matches any event carrying Mod (e.g. Shift+arrow)
type Binding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Matches reports whether a terminal key event triggers the binding
func (b Binding) Matches(ev *tcell.EventKey) bool {
	switch b.Key {
	case tcell.KeyNUL:
		return b.Mod != 0 && ev.Modifiers()&b.Mod != 0
	case tcell.KeyRune:
		return ev.Key() == tcell.KeyRune && ev.Rune() == b.Rune
	default:
		return ev.Key() == b.Key
	}
}

// Bindings maps each logical key to its physical keys
type Bindings map[Key][]Binding

// Aliases for names that are not in tcell.KeyNames or are awkward in TOML
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

var modAliases = map[string]tcell.ModMask{
	"shift": tcell.ModShift,
	"ctrl":  tcell.ModCtrl,
	"alt":   tcell.ModAlt,
}

// namedKeys is the lower-cased reverse of tcell.KeyNames
var namedKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseBinding resolves a physical key name: a tcell key name ("Up", "Enter", "Esc"),
// a modifier ("Shift"), an alias ("Space") or a single character ("z")
func ParseBinding(name string) (Binding, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Binding{Key: tcell.KeyRune, Rune: r}, nil
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	if r, ok := runeAliases[lower]; ok {
		return Binding{Key: tcell.KeyRune, Rune: r}, nil
	}
	if mod, ok := modAliases[lower]; ok {
		return Binding{Key: tcell.KeyNUL, Mod: mod}, nil
	}
	if k, ok := namedKeys[lower]; ok {
		return Binding{Key: k}, nil
	}
	return Binding{}, fmt.Errorf("%w: physical key %q", ErrUnknownKey, name)
}

// DefaultBindings returns the built-in layout: arrows to move, Shift or x for precision,
// z to fire, Enter to confirm, Esc to pause, q to quit
func DefaultBindings() Bindings {
	return Bindings{
		KeyUp:        {{Key: tcell.KeyUp}},
		KeyDown:      {{Key: tcell.KeyDown}},
		KeyLeft:      {{Key: tcell.KeyLeft}},
		KeyRight:     {{Key: tcell.KeyRight}},
		KeyPrecision: {{Key: tcell.KeyNUL, Mod: tcell.ModShift}, {Key: tcell.KeyRune, Rune: 'x'}},
		KeyFire:      {{Key: tcell.KeyRune, Rune: 'z'}},
		KeyConfirm:   {{Key: tcell.KeyEnter}},
		KeyPause:     {{Key: tcell.KeyEscape}},
		KeyQuit:      {{Key: tcell.KeyRune, Rune: 'q'}},
	}
}

// Resolve returns every logical key triggered by ev, in logical key order
func (b Bindings) Resolve(ev *tcell.EventKey, dst []Key) []Key {
	dst = dst[:0]
	for _, k := range AllKeys() {
		for _, binding := range b[k] {
			if binding.Matches(ev) {
				dst = append(dst, k)
				break
			}
		}
	}
	return dst
}

// keyFile is the TOML layout:
//
//	[keys]
//	fire = ["z", "Space"]
//	precision = ["Shift", "x"]
type keyFile struct {
	Keys map[string][]string `toml:"keys"`
}

// LoadBindings parses TOML key overrides on top of DefaultBindings
// A logical key listed in the file replaces all of its default bindings
func LoadBindings(data []byte) (Bindings, error) {
	var kf keyFile
	md, err := toml.Decode(string(data), &kf)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unexpected entry %q", undecoded[0].String())
	}

	bindings := DefaultBindings()
	for name, physical := range kf.Keys {
		logical, err := ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("keymap [keys]: %w", err)
		}
		if len(physical) == 0 {
			return nil, fmt.Errorf("keymap [keys] %s: no keys bound", name)
		}

		list := make([]Binding, 0, len(physical))
		for _, p := range physical {
			binding, err := ParseBinding(p)
			if err != nil {
				return nil, fmt.Errorf("keymap [keys] %s: %w", name, err)
			}
			list = append(list, binding)
		}
		bindings[logical] = list
	}
	return bindings, nil
}

// LoadBindingsFile reads a TOML key file; an empty path yields the defaults
func LoadBindingsFile(path string) (Bindings, error) {
	if path == "" {
		return DefaultBindings(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return LoadBindings(data)
}

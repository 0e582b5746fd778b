package config

import (
	"strings"

	"gioui.org/io/event"
	"gioui.org/io/key"
)

// Hotkey represents a parsed keyboard shortcut
type Hotkey struct {
	Key       key.Name
	Modifiers key.Modifiers
}

// ParseHotkey parses a shortcut string like "Ctrl+Shift+O" into a Hotkey.
// "Ctrl" means the platform shortcut modifier, so menu shortcuts written
// once use Cmd on macOS.
func ParseHotkey(s string) Hotkey {
	if strings.TrimSpace(s) == "" {
		return Hotkey{}
	}

	var mods key.Modifiers
	var rawKeyPart string

	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		switch strings.ToLower(part) {
		case "ctrl", "control":
			mods |= key.ModShortcut
		case "shift":
			mods |= key.ModShift
		case "alt", "option":
			mods |= key.ModAlt
		case "cmd", "command":
			mods |= key.ModCommand
		case "super", "meta", "win", "windows":
			mods |= key.ModSuper
		default:
			rawKeyPart = part
		}
	}

	keyName := parseKeyName(rawKeyPart)
	if keyName == "" {
		return Hotkey{}
	}
	return Hotkey{Key: keyName, Modifiers: mods}
}

var namedKeys = map[string]key.Name{
	"f1": key.NameF1, "f2": key.NameF2, "f3": key.NameF3, "f4": key.NameF4,
	"f5": key.NameF5, "f6": key.NameF6, "f7": key.NameF7, "f8": key.NameF8,
	"f9": key.NameF9, "f10": key.NameF10, "f11": key.NameF11, "f12": key.NameF12,

	"up": key.NameUpArrow, "down": key.NameDownArrow,
	"left": key.NameLeftArrow, "right": key.NameRightArrow,
	"home": key.NameHome, "end": key.NameEnd,
	"pageup": key.NamePageUp, "pgup": key.NamePageUp,
	"pagedown": key.NamePageDown, "pgdn": key.NamePageDown,

	"enter": key.NameReturn, "return": key.NameReturn,
	"tab": key.NameTab, "space": key.NameSpace,
	"backspace": key.NameDeleteBackward,
	"delete": key.NameDeleteForward, "del": key.NameDeleteForward,
	"escape": key.NameEscape, "esc": key.NameEscape,
}

// parseKeyName converts a key string to Gio's key.Name
func parseKeyName(s string) key.Name {
	if len(s) == 1 {
		// Gio reports letters in upper case
		return key.Name(strings.ToUpper(s))
	}
	if name, ok := namedKeys[strings.ToLower(s)]; ok {
		return name
	}
	return key.Name(s)
}

// Matches checks if a key event matches this hotkey exactly, so Ctrl+S
// and Ctrl+Shift+S stay distinct
func (h Hotkey) Matches(k key.Event) bool {
	if h.Key == "" {
		return false
	}
	return k.Name == h.Key && k.Modifiers == h.Modifiers
}

// IsEmpty returns true if the hotkey is not configured
func (h Hotkey) IsEmpty() bool {
	return h.Key == ""
}

// String returns the hotkey in the platform's menu notation
func (h Hotkey) String() string {
	if h.Key == "" {
		return ""
	}
	var parts []string
	for _, m := range modifierLabels {
		if h.Modifiers.Contain(m.mod) {
			parts = append(parts, m.label)
		}
	}
	return strings.Join(append(parts, string(h.Key)), "+")
}

// Filter returns a key.Filter that matches this hotkey
func (h Hotkey) Filter(focus event.Tag) key.Filter {
	return key.Filter{
		Focus:    focus,
		Name:     h.Key,
		Required: h.Modifiers,
	}
}

// Keymap resolves key events back to the shortcut strings it was built from.
type Keymap struct {
	hotkeys   []Hotkey
	shortcuts []string
}

// NewKeymap parses shortcuts, skipping empty ones and later duplicates of
// the same key combination.
func NewKeymap(shortcuts []string) *Keymap {
	km := &Keymap{}
	seen := make(map[Hotkey]bool)
	for _, s := range shortcuts {
		hk := ParseHotkey(s)
		if hk.IsEmpty() || seen[hk] {
			continue
		}
		seen[hk] = true
		km.hotkeys = append(km.hotkeys, hk)
		km.shortcuts = append(km.shortcuts, s)
	}
	return km
}

func (km *Keymap) Len() int { return len(km.hotkeys) }

// Filters returns one key filter per hotkey
func (km *Keymap) Filters(focus event.Tag) []event.Filter {
	filters := make([]event.Filter, len(km.hotkeys))
	for i, hk := range km.hotkeys {
		filters[i] = hk.Filter(focus)
	}
	return filters
}

// Lookup returns the shortcut string matching a key press
func (km *Keymap) Lookup(e key.Event) (string, bool) {
	if e.State != key.Press {
		return "", false
	}
	for i, hk := range km.hotkeys {
		if hk.Matches(e) {
			return km.shortcuts[i], true
		}
	}
	return "", false
}

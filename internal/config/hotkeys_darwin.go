//go:build darwin

package config

import "gioui.org/io/key"

// modifierLabels lists modifiers in the order macOS menus display them
var modifierLabels = []struct {
	mod   key.Modifiers
	label string
}{
	{key.ModCtrl, "Ctrl"},
	{key.ModAlt, "Option"},
	{key.ModShift, "Shift"},
	{key.ModCommand, "Cmd"},
	{key.ModSuper, "Super"},
}

//go:build !darwin

package config

import "gioui.org/io/key"

// modifierLabels lists modifiers in the order Windows/Linux menus display them
var modifierLabels = []struct {
	mod   key.Modifiers
	label string
}{
	{key.ModCtrl, "Ctrl"},
	{key.ModCommand, "Cmd"},
	{key.ModShift, "Shift"},
	{key.ModAlt, "Alt"},
	{key.ModSuper, "Super"},
}

//go:build !debug

// Package debug writes categorized trace lines to stderr. This build has
// tracing compiled out; rebuild with -tags debug to get it.
package debug

const Enabled = false

type Category string

const (
	APP      Category = "APP"
	FS       Category = "FS"
	TREE     Category = "TREE"
	MENU     Category = "MENU"
	ACTION   Category = "ACTION"
	STORE    Category = "STORE"
	CONFIG   Category = "CONFIG"
	UI       Category = "UI"
	FS_ENTRY Category = "FS_ENTRY"
	UI_EVENT Category = "UI_EVENT"
)

func Log(cat Category, format string, args ...any) {}

func IsEnabled(cat Category) bool { return false }

func EnableAll() {}

//go:build debug

// Package debug writes categorized trace lines to stderr. It is compiled in
// only with -tags debug; release builds get no-op stubs.
//
// CANOPY_DEBUG picks the categories at startup: "all", "none", or a comma
// separated list such as "TREE,MENU". Unset leaves every category on except
// the per-entry and per-frame ones.
package debug

import (
	"log"
	"os"
	"strings"
	"sync"
)

const Enabled = true

type Category string

const (
	APP    Category = "APP"    // Workbench, tabs, orchestration
	FS     Category = "FS"     // Directory reads and the fetch worker
	TREE   Category = "TREE"   // Expansion and lazy loading
	MENU   Category = "MENU"   // Menu transitions
	ACTION Category = "ACTION" // Dispatch
	STORE  Category = "STORE"  // Embedded SQL
	CONFIG Category = "CONFIG" // Settings and shortcuts
	UI     Category = "UI"     // Layout and rendering

	FS_ENTRY Category = "FS_ENTRY" // One line per directory entry
	UI_EVENT Category = "UI_EVENT" // One line per emitted event
)

var (
	normal  = []Category{APP, FS, TREE, MENU, ACTION, STORE, CONFIG, UI}
	verbose = []Category{FS_ENTRY, UI_EVENT}
)

var (
	mu     sync.RWMutex
	active map[Category]bool
	out    = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
)

func init() {
	active = parseSpec(os.Getenv("CANOPY_DEBUG"))
}

// parseSpec turns a CANOPY_DEBUG value into the set of active categories.
// Unknown names are kept so callers may log under ad hoc categories.
func parseSpec(spec string) map[Category]bool {
	on := make(map[Category]bool)
	spec = strings.ToUpper(strings.TrimSpace(spec))
	switch spec {
	case "":
		for _, c := range normal {
			on[c] = true
		}
	case "ALL":
		for _, c := range append(normal, verbose...) {
			on[c] = true
		}
	case "NONE":
	default:
		for _, name := range strings.Split(spec, ",") {
			if name = strings.TrimSpace(name); name != "" {
				on[Category(name)] = true
			}
		}
	}
	return on
}

// Log prints one line tagged with cat when cat is active.
func Log(cat Category, format string, args ...any) {
	if !IsEnabled(cat) {
		return
	}
	out.Printf("["+string(cat)+"] "+format, args...)
}

func IsEnabled(cat Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return active[cat]
}

// EnableAll turns on every category, the verbose ones included.
func EnableAll() {
	mu.Lock()
	defer mu.Unlock()
	for _, c := range append(normal, verbose...) {
		active[c] = true
	}
}

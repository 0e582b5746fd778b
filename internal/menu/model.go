// Package menu holds the menu bar registry and the open/close state machine
// that drives it.
package menu

import "github.com/justyntemme/canopy/internal/action"

// ID identifies one top-level menu.
type ID int

const (
	File ID = iota
	Edit
	Navigate
	Search
	SQLEditor
	Database
	Window
	Help
)

var titles = map[ID]string{
	File:      "File",
	Edit:      "Edit",
	Navigate:  "Navigate",
	Search:    "Search",
	SQLEditor: "SQL Editor",
	Database:  "Database",
	Window:    "Window",
	Help:      "Help",
}

// Title is the header label shown in the menu bar.
func (id ID) Title() string {
	if t, ok := titles[id]; ok {
		return t
	}
	return "?"
}

func (id ID) String() string { return id.Title() }

// SeparatorLabel marks an item that renders as a rule and never acts.
const SeparatorLabel = "---"

// Item is one entry of a dropdown menu.
type Item struct {
	Label    string
	Shortcut string // Empty when the item has none
	Action   action.ID
	Enabled  bool
	Submenu  []Item
}

func NewItem(label, shortcut, actionID string) Item {
	return Item{
		Label:    label,
		Shortcut: shortcut,
		Action:   action.Parse(actionID),
		Enabled:  true,
	}
}

// Separator returns a separator item.
func Separator() Item {
	return NewItem(SeparatorLabel, "", "separator")
}

// WithEnabled returns a copy of i with Enabled set.
func (i Item) WithEnabled(enabled bool) Item {
	i.Enabled = enabled
	return i
}

func (i Item) IsSeparator() bool { return i.Label == SeparatorLabel }

// Interactive reports whether clicking i should run its action.
func (i Item) Interactive() bool { return i.Enabled && !i.IsSeparator() }

// Menu is one header and its items.
type Menu struct {
	ID    ID
	Items []Item
}

// Model is the read-only menu registry. It is built once at startup and
// shared by everything that renders or reacts to menus.
type Model struct {
	order []ID
	items map[ID][]Item
}

func NewModel(menus ...Menu) *Model {
	m := &Model{items: make(map[ID][]Item, len(menus))}
	for _, mn := range menus {
		if _, dup := m.items[mn.ID]; !dup {
			m.order = append(m.order, mn.ID)
		}
		items := make([]Item, len(mn.Items))
		copy(items, mn.Items)
		m.items[mn.ID] = items
	}
	return m
}

// Headers returns the menus in menu bar order.
func (m *Model) Headers() []ID {
	out := make([]ID, len(m.order))
	copy(out, m.order)
	return out
}

// Items returns a copy of the items under id.
func (m *Model) Items(id ID) []Item {
	items := m.items[id]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Item returns the item at index under id.
func (m *Model) Item(id ID, index int) (Item, bool) {
	items := m.items[id]
	if index < 0 || index >= len(items) {
		return Item{}, false
	}
	return items[index], true
}

// Binding ties a shortcut string to the item that declares it.
type Binding struct {
	Menu     ID
	Index    int
	Shortcut string
	Action   action.ID
}

// Bindings returns the shortcuts of interactive items. When two items claim
// the same shortcut the first one in menu bar order wins.
func (m *Model) Bindings() []Binding {
	var out []Binding
	seen := make(map[string]bool)
	for _, id := range m.order {
		for i, item := range m.items[id] {
			if item.Shortcut == "" || !item.Interactive() || seen[item.Shortcut] {
				continue
			}
			seen[item.Shortcut] = true
			out = append(out, Binding{Menu: id, Index: i, Shortcut: item.Shortcut, Action: item.Action})
		}
	}
	return out
}

// Default returns the application's menu bar.
func Default() *Model {
	return NewModel(
		Menu{ID: File, Items: []Item{
			NewItem("Open Folder", "Ctrl+Shift+O", "open_folder"),
			NewItem("Recent Edits", "", "recent_edit"),
			NewItem("Find File...", "Ctrl+O", "find_file"),
			NewItem("New", "Ctrl+N", "new_file"),
			NewItem("Save", "Ctrl+S", "save_file"),
			NewItem("Save As", "", "save_as"),
			NewItem("Save All", "Ctrl+Shift+S", "save_all"),
			NewItem("Close", "Ctrl+W", "close_file"),
			NewItem("Print", "Ctrl+P", "print_file"),
			NewItem("Rename", "F2", "rename_file"),
			NewItem("Refresh", "F5", "refresh_file"),
			Separator(),
			NewItem("Import", "", "import_file"),
			NewItem("Export", "", "export_file"),
			Separator(),
			NewItem("Properties", "", "file_property"),
			Separator(),
			NewItem("Exit", "Ctrl+Q", "exit"),
		}},
		Menu{ID: Edit, Items: []Item{
			NewItem("Undo", "Ctrl+Z", "undo"),
			NewItem("Redo", "Ctrl+Y", "redo"),
			NewItem("Cut", "Ctrl+X", "cut"),
			NewItem("Copy", "Ctrl+C", "copy"),
			NewItem("Paste", "Ctrl+V", "paste"),
			NewItem("Delete", "Del", "delete").WithEnabled(false),
			Separator(),
			NewItem("Generate UUID", "Ctrl+Shift+U", "generate_uuid"),
		}},
		Menu{ID: Navigate, Items: []Item{
			NewItem("Go to Line", "Ctrl+G", "goto_line"),
		}},
		Menu{ID: Search, Items: []Item{
			NewItem("Find", "Ctrl+F", "find"),
		}},
		Menu{ID: SQLEditor, Items: []Item{
			NewItem("New Query", "", "new_query"),
		}},
		Menu{ID: Database, Items: []Item{
			NewItem("Connect Database", "", "connect_db"),
		}},
		Menu{ID: Window, Items: []Item{
			NewItem("New Window", "Ctrl+Shift+N", "new_window"),
			NewItem("Toggle Dark Mode", "Ctrl+Shift+D", "toggle_dark_mode"),
		}},
		Menu{ID: Help, Items: []Item{
			NewItem("About", "", "about"),
		}},
	)
}

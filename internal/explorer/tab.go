package explorer

import (
	"path/filepath"

	"github.com/justyntemme/canopy/internal/debug"
)

// Tab binds one tree to the folder it was opened on.
type Tab struct {
	Name     string
	RootPath string
	Tree     *Tree
	Active   bool
}

// NewTab opens root and reads its first level.
func NewTab(root string, loader Loader) *Tab {
	return &Tab{
		Name:     tabTitle(root),
		RootPath: root,
		Tree:     NewTree(root, loader),
	}
}

// Expanded returns the tab's set of expanded paths.
func (t *Tab) Expanded() PathSet {
	return t.Tree.Expanded()
}

func tabTitle(path string) string {
	title := filepath.Base(path)
	if title == "" || title == "/" || title == "." || title == string(filepath.Separator) {
		title = path
	}
	return title
}

// TabSet is the ordered list of open explorer tabs. At most one is active.
type TabSet struct {
	tabs []*Tab
}

func (s *TabSet) Len() int { return len(s.tabs) }

// Tabs returns the tabs in the order they were opened.
func (s *TabSet) Tabs() []*Tab { return s.tabs }

// At returns the tab at index i, or nil.
func (s *TabSet) At(i int) *Tab {
	if i < 0 || i >= len(s.tabs) {
		return nil
	}
	return s.tabs[i]
}

// Open appends a new tab rooted at root and makes it the only active tab.
func (s *TabSet) Open(root string, loader Loader) *Tab {
	tab := NewTab(root, loader)
	s.tabs = append(s.tabs, tab)
	s.Activate(len(s.tabs) - 1)
	debug.Log(debug.APP, "Opened tab %q at %s (index %d)", tab.Name, root, len(s.tabs)-1)
	return tab
}

// Activate makes the tab at i the only active tab.
func (s *TabSet) Activate(i int) bool {
	if i < 0 || i >= len(s.tabs) {
		return false
	}
	for j, tab := range s.tabs {
		tab.Active = j == i
	}
	return true
}

// ActiveIndex returns the index of the active tab, or -1.
func (s *TabSet) ActiveIndex() int {
	for i, tab := range s.tabs {
		if tab.Active {
			return i
		}
	}
	return -1
}

// Active returns the active tab, or nil.
func (s *TabSet) Active() *Tab {
	return s.At(s.ActiveIndex())
}

// Close removes the tab at i. Closing the active tab activates the tab that
// slides into its slot, or the new last tab.
func (s *TabSet) Close(i int) bool {
	if i < 0 || i >= len(s.tabs) {
		return false
	}
	wasActive := s.tabs[i].Active
	s.tabs = append(s.tabs[:i], s.tabs[i+1:]...)

	debug.Log(debug.APP, "Closed tab %d, %d remaining", i, len(s.tabs))

	if wasActive && len(s.tabs) > 0 {
		if i >= len(s.tabs) {
			i = len(s.tabs) - 1
		}
		s.Activate(i)
	}
	return true
}

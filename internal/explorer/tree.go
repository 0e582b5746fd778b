package explorer

import (
	"github.com/justyntemme/canopy/internal/debug"
)

// Toggled describes what a toggle did.
type Toggled int

const (
	Ignored Toggled = iota // Unknown path or not a directory
	Collapsed
	Expanded
)

func (t Toggled) String() string {
	switch t {
	case Collapsed:
		return "collapsed"
	case Expanded:
		return "expanded"
	default:
		return "ignored"
	}
}

// Row is one visible line of a tree in display order.
type Row struct {
	Node     *FileNode
	Depth    int
	Expanded bool
}

// Tree is the forest under one opened root folder plus the set of expanded
// directories. Collapsing only hides children; they stay in memory so a
// later expand does no I/O.
type Tree struct {
	root     string
	roots    []*FileNode
	index    map[string]*FileNode
	expanded PathSet
	loader   Loader
}

// NewTree reads the first level of root.
func NewTree(root string, loader Loader) *Tree {
	t := &Tree{
		root:     root,
		index:    make(map[string]*FileNode),
		expanded: NewPathSet(),
		loader:   loader,
	}
	t.roots = loader.Load(root)
	t.indexNodes(t.roots)
	debug.Log(debug.TREE, "NewTree: %q with %d top-level entries", root, len(t.roots))
	return t
}

func (t *Tree) Root() string { return t.root }

func (t *Tree) Roots() []*FileNode { return t.roots }

// Expanded returns the live set of expanded paths.
func (t *Tree) Expanded() PathSet { return t.expanded }

func (t *Tree) IsExpanded(path string) bool { return t.expanded.Has(path) }

// Find returns the node at path, or nil.
func (t *Tree) Find(path string) *FileNode {
	if path == "" {
		return nil
	}
	return t.index[path]
}

// Toggle expands or collapses the directory at path, reading it
// synchronously the first time it is expanded.
func (t *Tree) Toggle(path string) Toggled {
	result, needsLoad := t.toggle(path, false)
	if needsLoad {
		n := t.index[path]
		t.splice(n, t.loader.Load(path))
	}
	return result
}

// BeginToggle is Toggle for callers that read directories elsewhere. On the
// first expansion the sentinel is swapped for a loading placeholder and
// needsLoad is true; the caller must then read path and pass the result to
// CompleteLoad. Toggling again while the read is outstanding never asks for
// a second read.
func (t *Tree) BeginToggle(path string) (result Toggled, needsLoad bool) {
	return t.toggle(path, true)
}

// CompleteLoad installs the children read for path. It returns false, and
// changes nothing, unless path is currently waiting on a read.
func (t *Tree) CompleteLoad(path string, children []*FileNode) bool {
	n := t.Find(path)
	if n == nil || !n.Loading() {
		debug.Log(debug.TREE, "CompleteLoad: %q not loading, dropping %d children", path, len(children))
		return false
	}
	t.splice(n, children)
	return true
}

func (t *Tree) toggle(path string, async bool) (Toggled, bool) {
	n := t.Find(path)
	if n == nil || !n.IsDir {
		debug.Log(debug.TREE, "Toggle: ignoring %q", path)
		return Ignored, false
	}

	if t.expanded.Has(path) {
		t.expanded.Remove(path)
		debug.Log(debug.TREE, "Toggle: collapsed %q", path)
		return Collapsed, false
	}

	t.expanded.Add(path)
	if !n.Unloaded() {
		debug.Log(debug.TREE, "Toggle: expanded %q (cached)", path)
		return Expanded, false
	}

	if async {
		n.Children = []*FileNode{newLoading()}
	}
	debug.Log(debug.TREE, "Toggle: expanded %q, loading children", path)
	return Expanded, true
}

func (t *Tree) splice(n *FileNode, children []*FileNode) {
	if children == nil {
		children = []*FileNode{}
	}
	n.Children = children
	t.indexNodes(children)
	debug.Log(debug.TREE, "splice: %q now has %d children", n.Path, len(children))
}

func (t *Tree) indexNodes(nodes []*FileNode) {
	for _, n := range nodes {
		if n.IsPlaceholder() || n.Path == "" {
			continue
		}
		t.index[n.Path] = n
	}
}

// Rows flattens the visible part of the tree. A directory's children are
// visited only while its path is expanded, regardless of what is cached.
func (t *Tree) Rows() []Row {
	var rows []Row
	var walk func(nodes []*FileNode, depth int)
	walk = func(nodes []*FileNode, depth int) {
		for _, n := range nodes {
			open := n.IsDir && t.expanded.Has(n.Path)
			rows = append(rows, Row{Node: n, Depth: depth, Expanded: open})
			if open {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(t.roots, 0)
	return rows
}

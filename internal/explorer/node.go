// Package explorer holds the lazily expanding directory tree shown in the
// sidebar, along with the tabs that own one tree each.
package explorer

import (
	"sort"
	"time"
)

const (
	// SentinelName labels the single placeholder child of a directory whose
	// real children have not been read yet.
	SentinelName = "..."
	// LoadingName labels the placeholder that replaces the sentinel while an
	// asynchronous read is in flight.
	LoadingName = "loading…"
)

type nodeKind uint8

const (
	kindEntry nodeKind = iota
	kindUnloaded
	kindLoading
)

// FileNode is a file or directory in an explorer tree. A directory's
// Children is either exactly one placeholder or its real, sorted entries.
type FileNode struct {
	Name     string
	Path     string
	IsDir    bool
	Size     int64
	ModTime  time.Time
	Children []*FileNode

	kind nodeKind
}

func newSentinel() *FileNode {
	return &FileNode{Name: SentinelName, kind: kindUnloaded}
}

func newLoading() *FileNode {
	return &FileNode{Name: LoadingName, kind: kindLoading}
}

// IsPlaceholder reports whether n stands in for children that have not been
// read. Placeholders have an empty Path and never match a real entry, even
// one named "...".
func (n *FileNode) IsPlaceholder() bool {
	return n.kind != kindEntry
}

// Unloaded reports whether n is a directory whose children were never requested.
func (n *FileNode) Unloaded() bool {
	return n.IsDir && len(n.Children) == 1 && n.Children[0].kind == kindUnloaded
}

// Loading reports whether a read of n's children is outstanding.
func (n *FileNode) Loading() bool {
	return n.IsDir && len(n.Children) == 1 && n.Children[0].kind == kindLoading
}

// Loaded reports whether n's real children have been materialized.
func (n *FileNode) Loaded() bool {
	return n.IsDir && !n.Unloaded() && !n.Loading()
}

// PathSet is the set of expanded directory paths.
type PathSet map[string]struct{}

func NewPathSet() PathSet {
	return make(PathSet)
}

func (s PathSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

func (s PathSet) Add(path string) {
	s[path] = struct{}{}
}

func (s PathSet) Remove(path string) {
	delete(s, path)
}

func (s PathSet) Len() int {
	return len(s)
}

// Paths returns the members in lexical order.
func (s PathSet) Paths() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

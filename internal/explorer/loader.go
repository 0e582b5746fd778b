package explorer

import (
	"sort"
	"strings"

	"github.com/justyntemme/canopy/internal/debug"
	"github.com/justyntemme/canopy/internal/fs"
)

// HiddenPrefix marks entries the explorer never shows.
const HiddenPrefix = "."

// Loader reads one directory level.
type Loader interface {
	Load(path string) []*FileNode
}

// ReadDirFunc returns the raw children of a directory.
type ReadDirFunc func(path string) ([]fs.Entry, error)

// DirectoryLoader turns a raw directory listing into sorted explorer nodes.
// Nothing is cached: every call reads from disk.
type DirectoryLoader struct {
	readDir ReadDirFunc
}

// NewDirectoryLoader returns a loader backed by readDir, or by fs.ReadDir
// when readDir is nil.
func NewDirectoryLoader(readDir ReadDirFunc) *DirectoryLoader {
	if readDir == nil {
		readDir = fs.ReadDir
	}
	return &DirectoryLoader{readDir: readDir}
}

// Load returns the visible children of path. An unreadable directory yields
// an empty slice so the rest of the tree stays browsable.
func (l *DirectoryLoader) Load(path string) []*FileNode {
	entries, err := l.readDir(path)
	if err != nil {
		debug.Log(debug.TREE, "Load: %q unreadable, showing empty: %v", path, err)
		return []*FileNode{}
	}
	return BuildNodes(entries)
}

// BuildNodes filters hidden entries, seeds every directory with the unloaded
// sentinel, and sorts the result with SortNodes.
func BuildNodes(entries []fs.Entry) []*FileNode {
	nodes := make([]*FileNode, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name, HiddenPrefix) {
			continue
		}
		n := &FileNode{
			Name:    e.Name,
			Path:    e.Path,
			IsDir:   e.IsDir,
			Size:    e.Size,
			ModTime: e.ModTime,
		}
		if n.IsDir {
			n.Children = []*FileNode{newSentinel()}
		}
		nodes = append(nodes, n)
	}
	SortNodes(nodes)
	return nodes
}

// SortNodes orders directories before files, then by case-insensitive name.
func SortNodes(nodes []*FileNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodeLess(nodes[i], nodes[j])
	})
}

func nodeLess(a, b *FileNode) bool {
	if a.IsDir != b.IsDir {
		return a.IsDir
	}
	la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if la != lb {
		return la < lb
	}
	return a.Name < b.Name
}

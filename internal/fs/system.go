package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/justyntemme/canopy/internal/debug"
)

type OpType int

const (
	FetchDir OpType = iota
)

type Request struct {
	Op   OpType
	Path string
	Gen  int64 // Echoed back so the caller can drop stale responses
}

// Entry is one direct child of a directory as read from disk.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

type Response struct {
	Op      OpType
	Path    string
	Entries []Entry
	Err     error
	Gen     int64
}

// System serves directory reads off the UI goroutine.
type System struct {
	RequestChan  chan Request
	ResponseChan chan Response
}

func NewSystem() *System {
	return &System{
		RequestChan:  make(chan Request, 10),
		ResponseChan: make(chan Response, 10),
	}
}

// Start processes requests until RequestChan is closed.
func (s *System) Start() {
	for req := range s.RequestChan {
		debug.Log(debug.FS, "Request: op=%d path=%q gen=%d", req.Op, req.Path, req.Gen)

		switch req.Op {
		case FetchDir:
			entries, err := ReadDir(req.Path)
			resp := Response{Op: FetchDir, Path: req.Path, Entries: entries, Err: err, Gen: req.Gen}
			debug.Log(debug.FS, "FetchDir response: path=%q entries=%d gen=%d err=%v",
				resp.Path, len(resp.Entries), resp.Gen, resp.Err)
			s.ResponseChan <- resp
		}
	}
}

// ReadDir returns the direct children of path in no particular order.
// Children that cannot be stat'ed are left out. The error is non-nil only
// when path itself is unreadable.
func ReadDir(path string) ([]Entry, error) {
	root := filepath.Clean(path)
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	c := &childCollector{root: root}
	// Follow makes a symlinked directory report as a directory
	if err := fastwalk.Walk(&fastwalk.Config{Follow: true}, root, c.visit); err != nil {
		debug.Log(debug.FS, "ReadDir %q: %v", root, err)
		return nil, err
	}

	debug.Log(debug.FS, "ReadDir %q: %d entries", root, len(c.entries))
	return c.entries, nil
}

// childCollector gathers one level of a fastwalk traversal. visit runs on
// several goroutines at once.
type childCollector struct {
	root string

	mu      sync.Mutex
	entries []Entry
}

func (c *childCollector) visit(p string, d fs.DirEntry, err error) error {
	switch {
	case err != nil:
		debug.Log(debug.FS_ENTRY, "visit %q: %v", p, err)
		return nil
	case p == c.root:
		return nil
	case filepath.Dir(p) != c.root:
		// Followed symlinks can still surface grandchildren
		if d.IsDir() {
			return fastwalk.SkipDir
		}
		return nil
	}

	if e, ok := statEntry(p, d); ok {
		c.mu.Lock()
		c.entries = append(c.entries, e)
		c.mu.Unlock()
	}
	if d.IsDir() {
		return fastwalk.SkipDir
	}
	return nil
}

// statEntry describes p, falling back to the link itself when p is a
// dangling symlink.
func statEntry(p string, d fs.DirEntry) (Entry, bool) {
	info, err := fastwalk.StatDirEntry(p, d)
	if err != nil {
		if info, err = os.Lstat(p); err != nil {
			debug.Log(debug.FS_ENTRY, "stat %q: %v", p, err)
			return Entry{}, false
		}
	}
	return Entry{
		Name:    d.Name(),
		Path:    p,
		IsDir:   info.IsDir(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, true
}

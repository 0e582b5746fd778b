package app

import (
	"log"

	"github.com/justyntemme/canopy/internal/debug"
	"github.com/justyntemme/canopy/internal/explorer"
	"github.com/justyntemme/canopy/internal/fs"
)

type pendingLoad struct {
	tree *explorer.Tree
	path string
}

// loadRouter pairs fs worker responses with the tree that asked for them.
// It is owned by the frame loop and is not safe for concurrent use.
type loadRouter struct {
	pending map[int64]pendingLoad
	nextGen int64
}

func newLoadRouter() *loadRouter {
	return &loadRouter{pending: make(map[int64]pendingLoad)}
}

// request records a read of path for tree and returns the worker request.
func (r *loadRouter) request(tree *explorer.Tree, path string) fs.Request {
	r.nextGen++
	r.pending[r.nextGen] = pendingLoad{tree: tree, path: path}
	debug.Log(debug.FS, "request: gen %d %s", r.nextGen, path)
	return fs.Request{Op: fs.FetchDir, Path: path, Gen: r.nextGen}
}

// apply installs resp into the tree that requested it. Responses with an
// unknown or already used generation are dropped. A failed read installs an
// empty directory. It reports whether a tree changed.
func (r *loadRouter) apply(resp fs.Response) bool {
	load, ok := r.pending[resp.Gen]
	if !ok {
		debug.Log(debug.FS, "apply: dropping gen %d for %s", resp.Gen, resp.Path)
		return false
	}
	delete(r.pending, resp.Gen)

	children := []*explorer.FileNode{}
	if resp.Err != nil {
		log.Printf("FS Error: %v", resp.Err)
	} else {
		children = explorer.BuildNodes(resp.Entries)
	}
	return load.tree.CompleteLoad(load.path, children)
}

func (r *loadRouter) outstanding() int { return len(r.pending) }

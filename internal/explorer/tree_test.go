package explorer

import (
	"path"
	"reflect"
	"strings"
	"testing"

	"github.com/justyntemme/canopy/internal/fs"
)

// countingLoader serves a fixed in-memory hierarchy and counts reads per path.
type countingLoader struct {
	dirs  map[string][]fs.Entry
	calls map[string]int
}

func newCountingLoader() *countingLoader {
	dir := func(p string) fs.Entry { return fs.Entry{Name: path.Base(p), Path: p, IsDir: true} }
	file := func(p string) fs.Entry { return fs.Entry{Name: path.Base(p), Path: p} }
	return &countingLoader{
		dirs: map[string][]fs.Entry{
			"/root":         {dir("/root/src"), dir("/root/docs"), file("/root/README.md")},
			"/root/src":     {dir("/root/src/pkg"), file("/root/src/main.go")},
			"/root/src/pkg": {file("/root/src/pkg/util.go")},
			"/root/docs":    {},
		},
		calls: make(map[string]int),
	}
}

func (l *countingLoader) Load(p string) []*FileNode {
	l.calls[p]++
	return BuildNodes(l.dirs[p])
}

func rowNames(rows []Row) string {
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = strings.Repeat("  ", r.Depth) + r.Node.Name
	}
	return strings.Join(parts, "|")
}

func TestNewTreeLoadsFirstLevel(t *testing.T) {
	l := newCountingLoader()
	tree := NewTree("/root", l)

	if got := strings.Join(names(tree.Roots()), ","); got != "docs,src,README.md" {
		t.Errorf("unexpected roots: %s", got)
	}
	if l.calls["/root"] != 1 {
		t.Errorf("expected 1 read of /root, got %d", l.calls["/root"])
	}
	if tree.Expanded().Len() != 0 {
		t.Error("new tree should have nothing expanded")
	}
}

func TestToggleLazyLoadIdempotent(t *testing.T) {
	l := newCountingLoader()
	tree := NewTree("/root", l)

	if got := tree.Toggle("/root/src"); got != Expanded {
		t.Fatalf("expected Expanded, got %s", got)
	}
	if l.calls["/root/src"] != 1 {
		t.Fatalf("expected 1 read, got %d", l.calls["/root/src"])
	}
	first := tree.Find("/root/src").Children

	if got := tree.Toggle("/root/src"); got != Collapsed {
		t.Fatalf("expected Collapsed, got %s", got)
	}
	if tree.Find("/root/src").Loaded() != true {
		t.Error("collapse must keep loaded children")
	}

	if got := tree.Toggle("/root/src"); got != Expanded {
		t.Fatalf("expected Expanded, got %s", got)
	}
	if l.calls["/root/src"] != 1 {
		t.Errorf("re-expand read the directory again: %d reads", l.calls["/root/src"])
	}
	if !reflect.DeepEqual(first, tree.Find("/root/src").Children) {
		t.Error("children changed across collapse/expand")
	}
}

func TestToggleExpandedSetMembership(t *testing.T) {
	tree := NewTree("/root", newCountingLoader())

	tree.Toggle("/root/src")
	if !tree.IsExpanded("/root/src") || !tree.Find("/root/src").Loaded() {
		t.Error("expanded path must be loaded")
	}
	tree.Toggle("/root/src")
	if tree.IsExpanded("/root/src") {
		t.Error("collapse should remove path from set")
	}
}

func TestToggleEmptyDirectoryLoadsOnce(t *testing.T) {
	l := newCountingLoader()
	tree := NewTree("/root", l)

	for i := 0; i < 4; i++ {
		tree.Toggle("/root/docs")
	}
	if l.calls["/root/docs"] != 1 {
		t.Errorf("empty directory read %d times", l.calls["/root/docs"])
	}
	n := tree.Find("/root/docs")
	if n.Unloaded() || len(n.Children) != 0 {
		t.Errorf("expected loaded empty directory, got %+v", n.Children)
	}
}

func TestToggleIgnored(t *testing.T) {
	l := newCountingLoader()
	tree := NewTree("/root", l)
	before := rowNames(tree.Rows())

	testCases := []string{"/root/README.md", "/elsewhere", "", "/root/src/main.go"}
	for _, p := range testCases {
		if got := tree.Toggle(p); got != Ignored {
			t.Errorf("Toggle(%q): expected Ignored, got %s", p, got)
		}
	}
	if tree.Expanded().Len() != 0 {
		t.Error("ignored toggles must not touch the expanded set")
	}
	if after := rowNames(tree.Rows()); after != before {
		t.Errorf("rows changed: %s -> %s", before, after)
	}
}

func TestRowsOnlyDescendIntoExpanded(t *testing.T) {
	tree := NewTree("/root", newCountingLoader())

	tree.Toggle("/root/src")
	tree.Toggle("/root/src/pkg")
	want := "docs|src|  pkg|    util.go|  main.go|README.md"
	if got := rowNames(tree.Rows()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	// Collapse the parent; the nested expansion is remembered but hidden
	tree.Toggle("/root/src")
	if got := rowNames(tree.Rows()); got != "docs|src|README.md" {
		t.Errorf("unexpected rows after collapse: %s", got)
	}
	if !tree.IsExpanded("/root/src/pkg") {
		t.Error("nested expansion should survive parent collapse")
	}

	tree.Toggle("/root/src")
	if got := rowNames(tree.Rows()); got != want {
		t.Errorf("expected nested expansion restored, got %s", got)
	}
}

func TestBeginToggleAsync(t *testing.T) {
	l := newCountingLoader()
	tree := NewTree("/root", l)

	result, needsLoad := tree.BeginToggle("/root/src")
	if result != Expanded || !needsLoad {
		t.Fatalf("expected Expanded with load, got %s %v", result, needsLoad)
	}
	n := tree.Find("/root/src")
	if !n.Loading() {
		t.Fatal("expected loading placeholder")
	}
	if rows := rowNames(tree.Rows()); rows != "docs|src|  "+LoadingName+"|README.md" {
		t.Errorf("unexpected rows while loading: %s", rows)
	}

	// A collapse/expand while loading must not request a second read
	if r, load := tree.BeginToggle("/root/src"); r != Collapsed || load {
		t.Errorf("expected Collapsed without load, got %s %v", r, load)
	}
	if r, load := tree.BeginToggle("/root/src"); r != Expanded || load {
		t.Errorf("expected Expanded without load, got %s %v", r, load)
	}

	children := l.Load("/root/src")
	if !tree.CompleteLoad("/root/src", children) {
		t.Fatal("CompleteLoad rejected outstanding load")
	}
	if !n.Loaded() || len(n.Children) != 2 {
		t.Fatalf("expected 2 loaded children, got %+v", n.Children)
	}
	if tree.Find("/root/src/main.go") == nil {
		t.Error("loaded children should be addressable")
	}

	// Duplicate completion is dropped
	if tree.CompleteLoad("/root/src", BuildNodes(nil)) {
		t.Error("second CompleteLoad should be rejected")
	}
	if len(n.Children) != 2 {
		t.Error("second CompleteLoad replaced children")
	}
}

func TestCompleteLoadUnknownPath(t *testing.T) {
	tree := NewTree("/root", newCountingLoader())
	if tree.CompleteLoad("/root/src", nil) {
		t.Error("CompleteLoad on a never-toggled directory should be rejected")
	}
	if tree.CompleteLoad("/missing", nil) {
		t.Error("CompleteLoad on an unknown path should be rejected")
	}
	if !tree.Find("/root/src").Unloaded() {
		t.Error("rejected CompleteLoad changed the node")
	}
}

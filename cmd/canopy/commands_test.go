package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/justyntemme/canopy/internal/explorer"
	"github.com/justyntemme/canopy/internal/store"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestTreeDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "hello")
	writeFile(t, filepath.Join(root, "a", "c.txt"), "hello world")
	writeFile(t, filepath.Join(root, "a", "deep", "d.txt"), "x")
	writeFile(t, filepath.Join(root, ".hidden"), "x")

	tests := []struct {
		depth int
		want  []string
	}{
		{0, []string{"▸ a/", "· b.txt (5 B)"}},
		{1, []string{"▾ a/", "  ▸ deep/", "  · c.txt (11 B)", "· b.txt (5 B)"}},
		{2, []string{"▾ a/", "  ▾ deep/", "    · d.txt (1 B)", "  · c.txt (11 B)", "· b.txt (5 B)"}},
	}

	for _, tt := range tests {
		tab := explorer.NewTab(root, explorer.NewDirectoryLoader(nil))
		expandTo(tab.Tree, tt.depth)

		var buf bytes.Buffer
		writeRows(&buf, tab.Tree.Rows())
		got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("depth %d:\n got %q\nwant %q", tt.depth, got, tt.want)
		}
	}
}

func TestReturnsRows(t *testing.T) {
	tests := []struct {
		q    string
		want bool
	}{
		{"SELECT 1", true},
		{"  select * from t", true},
		{"WITH x AS (SELECT 1) SELECT * FROM x", true},
		{"PRAGMA table_info(t)", true},
		{"INSERT INTO t VALUES (1)", false},
		{"create table t (id int)", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := returnsRows(tt.q); got != tt.want {
			t.Errorf("returnsRows(%q) = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestRunSQL(t *testing.T) {
	db := store.NewManager()
	if err := db.Connect(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatal(err)
	}
	defer db.Disconnect()

	var buf bytes.Buffer
	if err := runSQL(&buf, db, "CREATE TABLE people (id INTEGER, name TEXT)"); err != nil {
		t.Fatal(err)
	}
	if err := runSQL(&buf, db, "INSERT INTO people VALUES (1, 'ada'), (2, NULL)"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "OK\nOK\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	if err := runSQL(&buf, db, "SELECT id, name FROM people ORDER BY id"); err != nil {
		t.Fatal(err)
	}
	want := "ID  NAME\n1   ada\n2   NULL\n(2 rows)\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

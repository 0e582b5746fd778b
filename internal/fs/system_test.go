package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestNewSystem(t *testing.T) {
	s := NewSystem()
	if s == nil {
		t.Fatal("NewSystem returned nil")
	}
	if s.RequestChan == nil {
		t.Error("RequestChan is nil")
	}
	if s.ResponseChan == nil {
		t.Error("ResponseChan is nil")
	}
}

func TestReadDir(t *testing.T) {
	tmpDir := t.TempDir()

	dirs := []string{"dir1", "dir2", ".hidden_dir"}
	files := []string{"file1.txt", "file2.go", ".hidden_file"}

	for _, d := range dirs {
		if err := os.Mkdir(filepath.Join(tmpDir, d), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", d, err)
		}
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, f), []byte("test content"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", f, err)
		}
	}

	// Nested entries must not be returned
	if err := os.WriteFile(filepath.Join(tmpDir, "dir1", "nested.txt"), []byte("nested"), 0644); err != nil {
		t.Fatalf("failed to create nested file: %v", err)
	}

	entries, err := ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir returned error: %v", err)
	}

	// Hidden filtering is the explorer's job, so all six come back
	expectedCount := len(dirs) + len(files)
	if len(entries) != expectedCount {
		t.Errorf("expected %d entries, got %d", expectedCount, len(entries))
	}

	entryMap := make(map[string]Entry)
	for _, e := range entries {
		entryMap[e.Name] = e
	}

	for _, d := range dirs {
		e, ok := entryMap[d]
		if !ok {
			t.Errorf("directory %s not found in entries", d)
			continue
		}
		if !e.IsDir {
			t.Errorf("expected %s to be a directory", d)
		}
		if e.Path != filepath.Join(tmpDir, d) {
			t.Errorf("expected path %q, got %q", filepath.Join(tmpDir, d), e.Path)
		}
	}

	for _, f := range files {
		e, ok := entryMap[f]
		if !ok {
			t.Errorf("file %s not found in entries", f)
			continue
		}
		if e.IsDir {
			t.Errorf("expected %s to be a file", f)
		}
		if e.Size != int64(len("test content")) {
			t.Errorf("expected size %d for %s, got %d", len("test content"), f, e.Size)
		}
	}

	if _, ok := entryMap["nested.txt"]; ok {
		t.Error("nested.txt should not be returned")
	}
}

func TestReadDirSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, "inner.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	if err := os.Symlink(target, filepath.Join(dir, "linked")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling")); err != nil {
		t.Fatal(err)
	}

	// A trailing separator must not change which entries count as children
	entries, err := ReadDir(dir + string(filepath.Separator))
	if err != nil {
		t.Fatalf("ReadDir returned error: %v", err)
	}

	tests := []struct {
		name  string
		isDir bool
	}{
		{"linked", true},
		{"dangling", false},
	}
	got := make(map[string]Entry)
	for _, e := range entries {
		got[e.Name] = e
	}
	if len(got) != len(tests) {
		t.Errorf("expected %d entries, got %+v", len(tests), entries)
	}
	for _, tt := range tests {
		e, ok := got[tt.name]
		if !ok {
			t.Errorf("%s not returned", tt.name)
			continue
		}
		if e.IsDir != tt.isDir {
			t.Errorf("%s: IsDir = %v, want %v", tt.name, e.IsDir, tt.isDir)
		}
		if e.Path != filepath.Join(dir, tt.name) {
			t.Errorf("%s: path %q", tt.name, e.Path)
		}
	}
}

func TestReadDirEmpty(t *testing.T) {
	entries, err := ReadDir(t.TempDir())
	if err != nil {
		t.Fatalf("ReadDir returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}

func TestReadDirMissing(t *testing.T) {
	_, err := ReadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestSystemFetchDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	s := NewSystem()
	go s.Start()
	defer close(s.RequestChan)

	s.RequestChan <- Request{Op: FetchDir, Path: tmpDir, Gen: 7}

	select {
	case resp := <-s.ResponseChan:
		if resp.Err != nil {
			t.Fatalf("unexpected error: %v", resp.Err)
		}
		if resp.Op != FetchDir {
			t.Errorf("expected Op=FetchDir, got %d", resp.Op)
		}
		if resp.Path != tmpDir {
			t.Errorf("expected Path=%q, got %q", tmpDir, resp.Path)
		}
		if resp.Gen != 7 {
			t.Errorf("expected Gen=7, got %d", resp.Gen)
		}
		if len(resp.Entries) != 1 || resp.Entries[0].Name != "sub" {
			t.Errorf("unexpected entries: %+v", resp.Entries)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for FetchDir response")
	}
}

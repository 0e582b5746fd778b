package app

import (
	"path/filepath"
	"testing"
	"time"
)

func TestStatusBarReverts(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewStatusBar(func() time.Time { return now })

	if s.Message() != ReadyMessage {
		t.Fatalf("expected %q, got %q", ReadyMessage, s.Message())
	}
	if _, ok := s.ExpiresAt(); ok {
		t.Error("ready message should not expire")
	}

	s.Notify("Opened folder: work")
	if got, ok := s.ExpiresAt(); !ok || !got.Equal(now.Add(statusTimeout)) {
		t.Errorf("unexpected expiry %v %v", got, ok)
	}

	now = now.Add(statusTimeout - time.Millisecond)
	if s.Message() != "Opened folder: work" {
		t.Errorf("message reverted early: %q", s.Message())
	}

	now = now.Add(time.Millisecond)
	if s.Message() != ReadyMessage {
		t.Errorf("expected revert, got %q", s.Message())
	}
	if _, ok := s.ExpiresAt(); ok {
		t.Error("expiry should clear after revert")
	}
}

func TestStatusBarLatestWins(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewStatusBar(func() time.Time { return now })

	s.Notify("first")
	now = now.Add(2 * time.Second)
	s.Notify("second")
	now = now.Add(2 * time.Second)

	if s.Message() != "second" {
		t.Errorf("expected the newer message to restart the timer, got %q", s.Message())
	}
}

func TestCleanPickedPath(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"/home/me/projects\n", "/home/me/projects", true},
		{"/home/me/projects/", "/home/me/projects", true},
		{"/", "/", true},
		{"  \n", "", false},
		{"relative/dir", "", false},
		{`C:\Users\me`, `C:\Users\me`, true},
		{`C:\`, `C:\`, true},
		{`D:/`, `D:\`, true},
		{`\\server\share`, `\\server\share`, true},
	}

	for _, tt := range tests {
		want := tt.want
		if tt.wantOK {
			want = filepath.Clean(want)
		}
		got, ok := cleanPickedPath(tt.in)
		if ok != tt.wantOK || got != want {
			t.Errorf("cleanPickedPath(%q) = %q, %v; want %q, %v", tt.in, got, ok, want, tt.wantOK)
		}
	}
}

package app

import (
	"log"
	"sync"
	"time"
)

// Sink receives human-readable status notifications.
type Sink interface {
	Notify(msg string)
}

const (
	// ReadyMessage is shown when no recent notification is pending.
	ReadyMessage = "Ready"

	statusTimeout = 3 * time.Second
)

// StatusBar is the Sink behind the window's bottom bar. A message is shown
// for statusTimeout and then the bar reverts to ReadyMessage.
type StatusBar struct {
	mu      sync.Mutex
	now     func() time.Time
	message string
	setAt   time.Time
}

// NewStatusBar creates a status bar showing ReadyMessage. now defaults to
// time.Now.
func NewStatusBar(now func() time.Time) *StatusBar {
	if now == nil {
		now = time.Now
	}
	return &StatusBar{now: now, message: ReadyMessage}
}

func (s *StatusBar) Notify(msg string) {
	s.mu.Lock()
	s.message = msg
	s.setAt = s.now()
	s.mu.Unlock()
	log.Printf("Status: %s", msg)
}

// Message returns the text to display right now.
func (s *StatusBar) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setAt.IsZero() {
		return s.message
	}
	if !s.now().Before(s.setAt.Add(statusTimeout)) {
		s.message = ReadyMessage
		s.setAt = time.Time{}
	}
	return s.message
}

// ExpiresAt reports when the current message reverts, so the window can
// schedule a redraw for that moment.
func (s *StatusBar) ExpiresAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setAt.IsZero() {
		return time.Time{}, false
	}
	return s.setAt.Add(statusTimeout), true
}

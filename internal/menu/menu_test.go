package menu

import (
	"image"
	"testing"
	"time"

	"github.com/justyntemme/canopy/internal/action"
)

type recordingDispatcher struct {
	got []action.ID
}

func (d *recordingDispatcher) Dispatch(id action.ID) { d.got = append(d.got, id) }

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestInteraction() (*Interaction, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewInteraction(Default(), clock.Now), clock
}

func indexOf(t *testing.T, m *Model, id ID, label string) int {
	t.Helper()
	for i, item := range m.Items(id) {
		if item.Label == label {
			return i
		}
	}
	t.Fatalf("no item %q under %s", label, id)
	return -1
}

func TestDefaultHeaders(t *testing.T) {
	want := []ID{File, Edit, Navigate, Search, SQLEditor, Database, Window, Help}
	got := Default().Headers()
	if len(got) != len(want) {
		t.Fatalf("expected %d headers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestDefaultItems(t *testing.T) {
	m := Default()

	del, ok := m.Item(Edit, indexOf(t, m, Edit, "Delete"))
	if !ok || del.Enabled {
		t.Error("Delete should be present and disabled")
	}

	open, _ := m.Item(File, indexOf(t, m, File, "Open Folder"))
	if open.Action != action.Of(action.OpenFolder) {
		t.Errorf("Open Folder maps to %s", open.Action)
	}

	recent, _ := m.Item(File, indexOf(t, m, File, "Recent Edits"))
	if recent.Action.Known() || recent.Action.Raw != "recent_edit" {
		t.Errorf("expected unrecognized recent_edit, got %+v", recent.Action)
	}

	if _, ok := m.Item(File, 999); ok {
		t.Error("out of range index should not resolve")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	m := Default()
	items := m.Items(File)
	items[0].Label = "mutated"
	if m.Items(File)[0].Label == "mutated" {
		t.Error("Items must not expose the registry")
	}
}

func TestBindingsSkipDisabled(t *testing.T) {
	seen := make(map[string]action.ID)
	for _, b := range Default().Bindings() {
		if _, dup := seen[b.Shortcut]; dup {
			t.Errorf("shortcut %s bound twice", b.Shortcut)
		}
		seen[b.Shortcut] = b.Action
	}
	if _, ok := seen["Del"]; ok {
		t.Error("disabled Delete must not contribute a binding")
	}
	if seen["Ctrl+Shift+U"] != action.Of(action.GenerateUUID) {
		t.Errorf("Ctrl+Shift+U bound to %s", seen["Ctrl+Shift+U"])
	}
	if seen["Ctrl+Shift+O"] != action.Of(action.OpenFolder) {
		t.Errorf("Ctrl+Shift+O bound to %s", seen["Ctrl+Shift+O"])
	}
}

func TestItemPredicates(t *testing.T) {
	testCases := []struct {
		name        string
		item        Item
		separator   bool
		interactive bool
	}{
		{"enabled", NewItem("Save", "Ctrl+S", "save_file"), false, true},
		{"disabled", NewItem("Delete", "Del", "delete").WithEnabled(false), false, false},
		{"separator", Separator(), true, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.item.IsSeparator() != tc.separator {
				t.Errorf("IsSeparator = %v", tc.item.IsSeparator())
			}
			if tc.item.Interactive() != tc.interactive {
				t.Errorf("Interactive = %v", tc.item.Interactive())
			}
		})
	}
}

func TestHeaderClickedOpensAtAnchor(t *testing.T) {
	m, clock := newTestInteraction()
	header := image.Rect(40, 0, 90, 24)

	m.HeaderClicked(Edit, header)
	s := m.State()
	if !s.Open || s.Menu != Edit {
		t.Fatalf("expected Edit open, got %+v", s)
	}
	if s.Anchor != image.Pt(40, 24) {
		t.Errorf("expected anchor (40,24), got %v", s.Anchor)
	}
	if !s.OpenedAt.Equal(clock.Now().Add(OpenDelay)) {
		t.Errorf("unexpected OpenedAt %v", s.OpenedAt)
	}
}

func TestHeaderClickedSameTwiceCloses(t *testing.T) {
	m, _ := newTestInteraction()
	m.HeaderClicked(File, image.Rect(0, 0, 30, 24))
	m.HeaderClicked(File, image.Rect(0, 0, 30, 24))
	if m.IsOpen() {
		t.Error("second click on the open header should close it")
	}
	if m.State() != (State{}) {
		t.Errorf("closed state should be zero, got %+v", m.State())
	}
}

func TestHeaderClickedSwitchesMenu(t *testing.T) {
	m, _ := newTestInteraction()
	m.HeaderClicked(File, image.Rect(0, 0, 30, 24))
	m.HeaderClicked(Help, image.Rect(300, 0, 340, 24))

	id, open := m.OpenMenu()
	if !open || id != Help {
		t.Fatalf("expected Help open, got %s %v", id, open)
	}
	if m.State().Anchor != image.Pt(300, 24) {
		t.Errorf("anchor not moved: %v", m.State().Anchor)
	}
}

func TestCancel(t *testing.T) {
	m, _ := newTestInteraction()
	m.Cancel()
	if m.IsOpen() {
		t.Fatal("cancel while closed should stay closed")
	}
	m.HeaderClicked(Window, image.Rect(0, 0, 10, 10))
	m.Cancel()
	if m.IsOpen() {
		t.Error("cancel should close")
	}
}

func TestClickOutsideHonorsOpenDelay(t *testing.T) {
	m, clock := newTestInteraction()
	m.HeaderClicked(File, image.Rect(0, 0, 30, 24))

	if m.ClickOutside() {
		t.Fatal("click in the opening frame must not close")
	}
	clock.Advance(OpenDelay / 2)
	if m.ClickOutside() || !m.IsOpen() {
		t.Fatal("click before OpenedAt must not close")
	}
	clock.Advance(OpenDelay / 2)
	if !m.ClickOutside() || m.IsOpen() {
		t.Error("click at OpenedAt should close")
	}
	if m.ClickOutside() {
		t.Error("click while closed reports nothing")
	}
}

func TestItemClickedDispatchesOnce(t *testing.T) {
	m, _ := newTestInteraction()
	d := &recordingDispatcher{}
	m.HeaderClicked(File, image.Rect(0, 0, 30, 24))

	if !m.ItemClicked(indexOf(t, m.Model(), File, "Open Folder"), d) {
		t.Fatal("expected dispatch")
	}
	if m.IsOpen() {
		t.Error("menu should close after an enabled item")
	}
	if len(d.got) != 1 || d.got[0] != action.Of(action.OpenFolder) {
		t.Errorf("expected one open_folder dispatch, got %v", d.got)
	}
}

func TestItemClickedInert(t *testing.T) {
	m, _ := newTestInteraction()
	model := m.Model()
	d := &recordingDispatcher{}

	testCases := []struct {
		name  string
		menu  ID
		index int
	}{
		{"disabled delete", Edit, indexOf(t, model, Edit, "Delete")},
		{"separator", File, indexOf(t, model, File, SeparatorLabel)},
		{"out of range", Help, 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m.HeaderClicked(tc.menu, image.Rect(0, 0, 10, 10))
			before := m.State()
			if m.ItemClicked(tc.index, d) {
				t.Error("inert item dispatched")
			}
			if m.State() != before {
				t.Errorf("state changed: %+v -> %+v", before, m.State())
			}
			m.Cancel()
		})
	}
	if len(d.got) != 0 {
		t.Errorf("expected no dispatches, got %v", d.got)
	}
}

func TestItemClickedWhileClosed(t *testing.T) {
	m, _ := newTestInteraction()
	d := &recordingDispatcher{}
	if m.ItemClicked(0, d) || len(d.got) != 0 {
		t.Error("click while closed must not dispatch")
	}
}

func TestDisabledItemKeepsMenuOpen(t *testing.T) {
	m := NewModel(Menu{ID: File, Items: []Item{
		NewItem("Open Folder", "Ctrl+O", "open_folder"),
		NewItem("Delete", "", "delete").WithEnabled(false),
	}})
	in := NewInteraction(m, nil)
	d := &recordingDispatcher{}
	header := image.Rect(0, 0, 40, 24)

	in.HeaderClicked(File, header)
	if in.ItemClicked(1, d) {
		t.Error("disabled item should not be handled")
	}
	if id, open := in.OpenMenu(); !open || id != File {
		t.Fatalf("expected File to stay open, got %s open=%v", id, open)
	}
	if len(d.got) != 0 {
		t.Errorf("expected no dispatch, got %v", d.got)
	}

	in.HeaderClicked(File, header)
	if in.IsOpen() {
		t.Error("second click on the open header should close it")
	}
}

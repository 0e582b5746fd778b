package explorer

import "testing"

func activeCount(s *TabSet) int {
	n := 0
	for _, tab := range s.Tabs() {
		if tab.Active {
			n++
		}
	}
	return n
}

func TestTabSetOpenActivatesExclusively(t *testing.T) {
	var s TabSet
	l := newCountingLoader()

	for i, root := range []string{"/root", "/root/src", "/root/docs"} {
		tab := s.Open(root, l)
		if s.Len() != i+1 {
			t.Fatalf("expected %d tabs, got %d", i+1, s.Len())
		}
		if activeCount(&s) != 1 {
			t.Fatalf("expected exactly one active tab, got %d", activeCount(&s))
		}
		if s.Active() != tab || s.ActiveIndex() != i {
			t.Errorf("newest tab should be active")
		}
		if tab.RootPath != root || tab.Tree.Root() != root {
			t.Errorf("tab root mismatch: %q", tab.RootPath)
		}
	}

	if s.At(0).Name != "root" || s.At(1).Name != "src" {
		t.Errorf("unexpected tab names %q %q", s.At(0).Name, s.At(1).Name)
	}
}

func TestTabSetActivate(t *testing.T) {
	var s TabSet
	l := newCountingLoader()
	s.Open("/root", l)
	s.Open("/root/src", l)

	if !s.Activate(0) || s.ActiveIndex() != 0 || activeCount(&s) != 1 {
		t.Error("Activate(0) failed")
	}
	if s.Activate(5) || s.Activate(-1) {
		t.Error("out of range Activate should fail")
	}
	if s.ActiveIndex() != 0 {
		t.Error("failed Activate changed the active tab")
	}
}

func TestTabSetClose(t *testing.T) {
	testCases := []struct {
		name       string
		open       int
		active     int
		close      int
		wantActive int
		wantLen    int
	}{
		{"close inactive", 3, 2, 0, 1, 2},
		{"close active middle", 3, 1, 1, 1, 2},
		{"close active last", 3, 2, 2, 1, 2},
		{"close only tab", 1, 0, 0, -1, 0},
	}

	roots := []string{"/root", "/root/src", "/root/docs"}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var s TabSet
			l := newCountingLoader()
			for i := 0; i < tc.open; i++ {
				s.Open(roots[i], l)
			}
			s.Activate(tc.active)

			if !s.Close(tc.close) {
				t.Fatal("Close returned false")
			}
			if s.Len() != tc.wantLen {
				t.Errorf("expected %d tabs, got %d", tc.wantLen, s.Len())
			}
			if s.ActiveIndex() != tc.wantActive {
				t.Errorf("expected active %d, got %d", tc.wantActive, s.ActiveIndex())
			}
			if tc.wantLen > 0 && activeCount(&s) != 1 {
				t.Errorf("expected one active tab, got %d", activeCount(&s))
			}
		})
	}

	var s TabSet
	if s.Close(0) {
		t.Error("Close on empty set should fail")
	}
}

func TestTabExpandedIsTreeSet(t *testing.T) {
	tab := NewTab("/root", newCountingLoader())
	tab.Tree.Toggle("/root/src")
	if !tab.Expanded().Has("/root/src") {
		t.Error("tab should expose its tree's expanded set")
	}
}

package menu

import (
	"image"
	"time"

	"github.com/justyntemme/canopy/internal/action"
	"github.com/justyntemme/canopy/internal/debug"
)

// OpenDelay pushes OpenedAt past the frame that opened the menu, so the same
// click is not also seen as an outside click that closes it.
const OpenDelay = 100 * time.Millisecond

// State is either closed (the zero value) or open on one menu.
type State struct {
	Open     bool
	Menu     ID
	Anchor   image.Point // Where the dropdown's top-left corner goes
	OpenedAt time.Time
}

// Dispatcher runs the action of a clicked item.
type Dispatcher interface {
	Dispatch(id action.ID)
}

// Interaction tracks which dropdown, if any, is open.
type Interaction struct {
	model *Model
	now   func() time.Time
	state State
}

// NewInteraction starts closed. now defaults to time.Now.
func NewInteraction(model *Model, now func() time.Time) *Interaction {
	if now == nil {
		now = time.Now
	}
	return &Interaction{model: model, now: now}
}

func (m *Interaction) Model() *Model { return m.model }

func (m *Interaction) State() State { return m.state }

func (m *Interaction) IsOpen() bool { return m.state.Open }

// OpenMenu returns the open menu, if any.
func (m *Interaction) OpenMenu() (ID, bool) {
	return m.state.Menu, m.state.Open
}

// HeaderClicked handles a click on the header of menu id whose bounds are
// header. Clicking the open menu's header closes it; any other header opens
// that menu directly, replacing the current one.
func (m *Interaction) HeaderClicked(id ID, header image.Rectangle) {
	if m.state.Open && m.state.Menu == id {
		debug.Log(debug.MENU, "HeaderClicked: closing %s", id)
		m.close()
		return
	}
	m.state = State{
		Open:     true,
		Menu:     id,
		Anchor:   image.Pt(header.Min.X, header.Max.Y),
		OpenedAt: m.now().Add(OpenDelay),
	}
	debug.Log(debug.MENU, "HeaderClicked: opened %s at %v", id, m.state.Anchor)
}

// Cancel closes any open menu.
func (m *Interaction) Cancel() {
	if m.state.Open {
		debug.Log(debug.MENU, "Cancel: closing %s", m.state.Menu)
	}
	m.close()
}

// ClickOutside closes the open menu unless the click arrived before
// OpenedAt. It reports whether the menu was closed.
func (m *Interaction) ClickOutside() bool {
	if !m.state.Open || m.now().Before(m.state.OpenedAt) {
		return false
	}
	debug.Log(debug.MENU, "ClickOutside: closing %s", m.state.Menu)
	m.close()
	return true
}

// ItemClicked handles a click on the item at index of the open menu. An
// enabled item closes the menu and then runs its action through d exactly
// once. Separators, disabled items, and clicks while closed change nothing.
// It reports whether an action was dispatched.
func (m *Interaction) ItemClicked(index int, d Dispatcher) bool {
	if !m.state.Open {
		return false
	}
	item, ok := m.model.Item(m.state.Menu, index)
	if !ok || !item.Interactive() {
		debug.Log(debug.MENU, "ItemClicked: %s[%d] not interactive", m.state.Menu, index)
		return false
	}

	m.close()
	debug.Log(debug.MENU, "ItemClicked: %q -> %s", item.Label, item.Action)
	d.Dispatch(item.Action)
	return true
}

func (m *Interaction) close() {
	m.state = State{}
}

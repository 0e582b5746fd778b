package ui

import (
	"image"
	"time"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/canopy/internal/action"
	"github.com/justyntemme/canopy/internal/config"
	"github.com/justyntemme/canopy/internal/debug"
	"github.com/justyntemme/canopy/internal/explorer"
	"github.com/justyntemme/canopy/internal/menu"
)

type UIAction int

const (
	ActionNone UIAction = iota
	ActionMenuHeader
	ActionMenuItem
	ActionMenuCancel
	ActionClickOutside
	ActionDispatch
	ActionToggleNode
	ActionOpenNode
	ActionSwitchTab
	ActionCloseTab
	ActionSidebar
)

// SidebarButton identifies a shortcut button above the explorer.
type SidebarButton int

const (
	SidebarExplorer SidebarButton = iota
	SidebarDatabase
	SidebarSettings
)

// UIEvent is one user interaction seen while laying out a frame. Which
// fields are set depends on Action.
type UIEvent struct {
	Action   UIAction
	Menu     menu.ID         // ActionMenuHeader
	Rect     image.Rectangle // ActionMenuHeader: header bounds in window coordinates
	Index    int             // ActionMenuItem, ActionSwitchTab, ActionCloseTab
	Command  action.ID       // ActionDispatch
	Path     string          // ActionToggleNode, ActionOpenNode
	Sidebar  SidebarButton   // ActionSidebar
}

// TabView is what the tab strip needs to know about one explorer tab.
type TabView struct {
	Name   string
	Active bool
}

// State is the read-only snapshot a frame is drawn from.
type State struct {
	Menu            menu.State
	Tabs            []TabView
	Title           string
	Rows            []explorer.Row
	Status          string
	StatusExpiresAt time.Time // Zero when the status never expires
	CurrentFile     string
	DarkMode        bool
	ConfigError     string
}

type rowButtons struct {
	toggle widget.Clickable
	open   widget.Clickable
}

type tabButtons struct {
	tab   widget.Clickable
	close widget.Clickable
}

type Renderer struct {
	Theme *material.Theme
	menus *menu.Model
	pal   palette

	keymap    *config.Keymap
	shortcuts map[string]action.ID

	headerBtns  map[menu.ID]*widget.Clickable
	headerRects map[menu.ID]image.Rectangle
	itemBtns    []widget.Clickable

	dropdownRect image.Rectangle
	dropdownTag  struct{}

	sidebarBtns [3]widget.Clickable
	tabBtns     []tabButtons
	rowBtns     map[string]*rowButtons
	treeList    layout.List
	darkModeBtn widget.Clickable
	preview     *imagePreview

	focused  bool
	keyTag   struct{}
	mouseTag struct{}

	events []UIEvent
}

// NewRenderer creates a renderer for the given menu bar. Shortcuts of
// enabled menu items become window-wide key bindings.
func NewRenderer(menus *menu.Model) *Renderer {
	r := &Renderer{
		Theme:       material.NewTheme(),
		menus:       menus,
		pal:         lightPalette,
		shortcuts:   make(map[string]action.ID),
		headerBtns:  make(map[menu.ID]*widget.Clickable),
		headerRects: make(map[menu.ID]image.Rectangle),
		rowBtns:     make(map[string]*rowButtons),
		preview:     newImagePreview(1024),
	}
	r.treeList.Axis = layout.Vertical

	var keys []string
	for _, b := range menus.Bindings() {
		r.shortcuts[b.Shortcut] = b.Action
		keys = append(keys, b.Shortcut)
	}
	r.keymap = config.NewKeymap(keys)

	for _, id := range menus.Headers() {
		r.headerBtns[id] = new(widget.Clickable)
		if n := len(menus.Items(id)); n > len(r.itemBtns) {
			r.itemBtns = make([]widget.Clickable, n)
		}
	}
	applyPalette(r.Theme, r.pal)
	return r
}

func (r *Renderer) emit(evt UIEvent) {
	debug.Log(debug.UI_EVENT, "emit: action=%d menu=%s index=%d path=%q cmd=%s", evt.Action, evt.Menu, evt.Index, evt.Path, evt.Command)
	r.events = append(r.events, evt)
}

// Layout draws one frame and returns the interactions it saw, in order.
func (r *Renderer) Layout(gtx layout.Context, state *State) []UIEvent {
	r.events = r.events[:0]
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()

	r.setTheme(state.DarkMode)
	paint.Fill(gtx.Ops, r.pal.bg)

	// ===== KEYBOARD =====
	event.Op(gtx.Ops, &r.keyTag)
	if !r.focused {
		gtx.Execute(key.FocusCmd{Tag: &r.keyTag})
		r.focused = true
	}
	r.processKeys(gtx, state)

	// ===== OUTSIDE CLICKS =====
	// Presses seen by the pass-through tag registered at the end of the
	// previous frame.
	r.processPresses(gtx, state)

	// ===== MAIN LAYOUT =====
	layout.Stack{}.Layout(gtx,
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = gtx.Constraints.Max
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.layoutMenuBar(gtx, state)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.layoutConfigErrorBanner(gtx, state.ConfigError)
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							gtx.Constraints.Min.X, gtx.Constraints.Max.X = gtx.Dp(260), gtx.Dp(260)
							gtx.Constraints.Min.Y = gtx.Constraints.Max.Y
							paint.FillShape(gtx.Ops, r.pal.sidebar, clip.Rect{Max: gtx.Constraints.Max}.Op())
							return r.layoutSidebar(gtx, state)
						}),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							size := image.Pt(gtx.Dp(1), gtx.Constraints.Max.Y)
							paint.FillShape(gtx.Ops, r.pal.border, clip.Rect{Max: size}.Op())
							return layout.Dimensions{Size: size}
						}),
						layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
							return r.layoutMainContent(gtx, state)
						}),
					)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.layoutStatusBar(gtx, state)
				}),
			)
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return r.layoutDropdown(gtx, state)
		}),
	)

	// Topmost, pass-through: sees every press without stealing it
	area := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	pass := pointer.PassOp{}.Push(gtx.Ops)
	event.Op(gtx.Ops, &r.mouseTag)
	pass.Pop()
	area.Pop()

	return r.events
}

func (r *Renderer) setTheme(dark bool) {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	if p != r.pal {
		r.pal = p
		applyPalette(r.Theme, p)
	}
}

// processKeys turns Escape and menu shortcuts into events.
func (r *Renderer) processKeys(gtx layout.Context, state *State) {
	filters := append(r.keymap.Filters(&r.keyTag), key.Filter{Focus: &r.keyTag, Name: key.NameEscape})
	for {
		ev, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		e, ok := ev.(key.Event)
		if !ok || e.State != key.Press {
			continue
		}
		if e.Name == key.NameEscape && e.Modifiers == 0 {
			if state.Menu.Open {
				r.emit(UIEvent{Action: ActionMenuCancel})
			}
			continue
		}
		if shortcut, ok := r.keymap.Lookup(e); ok {
			r.emit(UIEvent{Action: ActionDispatch, Command: r.shortcuts[shortcut]})
		}
	}
}

// processPresses reports presses that land outside the open dropdown and
// the menu headers.
func (r *Renderer) processPresses(gtx layout.Context, state *State) {
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: &r.mouseTag, Kinds: pointer.Press})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok || !state.Menu.Open {
			continue
		}
		pos := e.Position.Round()
		if pos.In(r.dropdownRect) || r.onHeader(pos) {
			continue
		}
		r.emit(UIEvent{Action: ActionClickOutside})
	}
}

func (r *Renderer) onHeader(p image.Point) bool {
	for _, rect := range r.headerRects {
		if p.In(rect) {
			return true
		}
	}
	return false
}

// flatButton is a borderless text button
func (r *Renderer) flatButton(gtx layout.Context, btn *widget.Clickable, label string, bold bool) layout.Dimensions {
	b := material.Button(r.Theme, btn, label)
	b.Inset = layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(8), Right: unit.Dp(8)}
	b.Background = r.pal.sidebar
	b.Color = r.pal.fg
	b.TextSize = unit.Sp(13)
	if bold {
		b.Font.Weight = 600
	}
	return b.Layout(gtx)
}

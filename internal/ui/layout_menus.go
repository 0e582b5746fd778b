package ui

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/canopy/internal/config"
	"github.com/justyntemme/canopy/internal/menu"
)

// Menu bar and dropdowns

const dropdownWidth = unit.Dp(240)

// layoutMenuBar draws the headers left to right and records their bounds.
// The bar sits at the window origin, so local and window coordinates agree.
func (r *Renderer) layoutMenuBar(gtx layout.Context, state *State) layout.Dimensions {
	height := gtx.Dp(28)
	paint.FillShape(gtx.Ops, r.pal.menuBar, clip.Rect{Max: image.Pt(gtx.Constraints.Max.X, height)}.Op())

	openID, open := state.Menu.Menu, state.Menu.Open
	x := gtx.Dp(4)
	for _, id := range r.menus.Headers() {
		btn := r.headerBtns[id]
		if btn.Clicked(gtx) {
			r.emit(UIEvent{Action: ActionMenuHeader, Menu: id, Rect: r.headerRects[id]})
		}

		stack := op.Offset(image.Pt(x, 0)).Push(gtx.Ops)
		hgtx := gtx
		hgtx.Constraints.Min = image.Point{}
		dims := material.Clickable(hgtx, btn, func(gtx layout.Context) layout.Dimensions {
			return layout.Stack{}.Layout(gtx,
				layout.Expanded(func(gtx layout.Context) layout.Dimensions {
					if open && openID == id {
						paint.FillShape(gtx.Ops, r.pal.border, clip.Rect{Max: gtx.Constraints.Min}.Op())
					}
					return layout.Dimensions{Size: gtx.Constraints.Min}
				}),
				layout.Stacked(func(gtx layout.Context) layout.Dimensions {
					return layout.Inset{Top: unit.Dp(5), Bottom: unit.Dp(5), Left: unit.Dp(10), Right: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						lbl := material.Body2(r.Theme, id.Title())
						lbl.Color = r.pal.fg
						return lbl.Layout(gtx)
					})
				}),
			)
		})
		stack.Pop()

		r.headerRects[id] = image.Rect(x, 0, x+dims.Size.X, max(height, dims.Size.Y))
		x += dims.Size.X
	}
	return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, height)}
}

// layoutDropdown draws the open menu's items below its header.
func (r *Renderer) layoutDropdown(gtx layout.Context, state *State) layout.Dimensions {
	if !state.Menu.Open {
		r.dropdownRect = image.Rectangle{}
		return layout.Dimensions{}
	}
	items := r.menus.Items(state.Menu.Menu)

	for i := range items {
		if r.itemBtns[i].Clicked(gtx) {
			r.emit(UIEvent{Action: ActionMenuItem, Index: i})
		}
	}

	anchor := state.Menu.Anchor
	defer op.Offset(anchor).Push(gtx.Ops).Pop()
	gtx.Constraints.Min = image.Point{}

	macro := op.Record(gtx.Ops)
	dims := r.menuShell(gtx, dropdownWidth, func(gtx layout.Context) layout.Dimensions {
		children := make([]layout.FlexChild, len(items))
		for i := range items {
			item := items[i]
			btn := &r.itemBtns[i]
			children[i] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if item.IsSeparator() {
					return r.layoutMenuSeparator(gtx)
				}
				return r.menuItem(gtx, btn, item)
			})
		}
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
	call := macro.Stop()

	r.dropdownRect = image.Rectangle{Min: anchor, Max: anchor.Add(dims.Size)}

	// Catch presses on the dropdown background, beneath the items, so they
	// never reach the widgets underneath
	area := clip.Rect{Max: dims.Size}.Push(gtx.Ops)
	event.Op(gtx.Ops, &r.dropdownTag)
	area.Pop()
	for {
		if _, ok := gtx.Event(pointer.Filter{Target: &r.dropdownTag, Kinds: pointer.Press | pointer.Release}); !ok {
			break
		}
	}

	call.Add(gtx.Ops)
	return dims
}

// menuItem renders one row: label on the left, shortcut on the right.
// Disabled items are drawn greyed out and take no clicks.
func (r *Renderer) menuItem(gtx layout.Context, btn *widget.Clickable, item menu.Item) layout.Dimensions {
	textColor := r.pal.fg
	if !item.Enabled {
		textColor = r.pal.disabled
	}
	row := func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Inset{Top: unit.Dp(6), Bottom: unit.Dp(6), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body2(r.Theme, item.Label)
					lbl.Color = textColor
					return lbl.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if item.Shortcut == "" {
						return layout.Dimensions{}
					}
					lbl := material.Caption(r.Theme, config.ParseHotkey(item.Shortcut).String())
					lbl.Color = r.pal.muted
					return lbl.Layout(gtx)
				}),
			)
		})
	}
	if !item.Enabled {
		return row(gtx)
	}
	return material.Clickable(gtx, btn, row)
}

func (r *Renderer) layoutMenuSeparator(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(1))
		paint.FillShape(gtx.Ops, r.pal.border, clip.Rect{Max: size}.Op())
		return layout.Dimensions{Size: size}
	})
}

// menuShell draws a fixed-width rounded box with a layered drop shadow.
func (r *Renderer) menuShell(gtx layout.Context, width unit.Dp, content layout.Widget) layout.Dimensions {
	cornerRadius := gtx.Dp(6)
	widthPx := gtx.Dp(width)

	// Measure the content first so the shadows can be drawn beneath it
	macro := op.Record(gtx.Ops)
	gtx.Constraints.Min.X = widthPx
	gtx.Constraints.Max.X = widthPx
	contentDims := widget.Border{Color: r.pal.border, Width: unit.Dp(1), CornerRadius: unit.Dp(6)}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			return layout.Stack{}.Layout(gtx,
				layout.Expanded(func(gtx layout.Context) layout.Dimensions {
					rr := clip.RRect{
						Rect: image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y),
						NE:   cornerRadius, NW: cornerRadius, SE: cornerRadius, SW: cornerRadius,
					}
					paint.FillShape(gtx.Ops, r.pal.menuBg, rr.Op(gtx.Ops))
					return layout.Dimensions{Size: gtx.Constraints.Min}
				}),
				layout.Stacked(func(gtx layout.Context) layout.Dimensions {
					return layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4)}.Layout(gtx, content)
				}),
			)
		})
	contentCall := macro.Stop()

	// Outer soft layer first, then the tighter darker one
	for _, s := range []struct {
		offset int
		col    color.NRGBA
	}{{gtx.Dp(5), r.pal.shadowOuter}, {gtx.Dp(2), r.pal.shadow}} {
		shadow := clip.RRect{
			Rect: image.Rect(s.offset, s.offset, contentDims.Size.X+s.offset, contentDims.Size.Y+s.offset),
			NE:   cornerRadius, NW: cornerRadius, SE: cornerRadius, SW: cornerRadius,
		}
		paint.FillShape(gtx.Ops, s.col, shadow.Op(gtx.Ops))
	}

	contentCall.Add(gtx.Ops)
	return contentDims
}

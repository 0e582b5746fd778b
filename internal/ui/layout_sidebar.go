package ui

import (
	"image"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/justyntemme/canopy/internal/explorer"
)

// Sidebar layout - shortcut buttons, explorer tabs, active tree

var sidebarLabels = [...]string{
	SidebarExplorer: "Explorer",
	SidebarDatabase: "Database",
	SidebarSettings: "Settings",
}

func (r *Renderer) layoutSidebar(gtx layout.Context, state *State) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, r.layoutSidebarButtons)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return r.layoutHorizontalSeparator(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return r.layoutTabStrip(gtx, state)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if state.Title == "" {
				return layout.Dimensions{}
			}
			return layout.Inset{Top: unit.Dp(6), Bottom: unit.Dp(4), Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body2(r.Theme, state.Title)
				lbl.Font.Weight = font.Bold
				lbl.Color = r.pal.fg
				lbl.MaxLines = 1
				return lbl.Layout(gtx)
			})
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return r.layoutTree(gtx, state.Rows)
		}),
	)
}

func (r *Renderer) layoutSidebarButtons(gtx layout.Context) layout.Dimensions {
	children := make([]layout.FlexChild, len(sidebarLabels))
	for i := range sidebarLabels {
		b := SidebarButton(i)
		btn := &r.sidebarBtns[i]
		children[i] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if btn.Clicked(gtx) {
				r.emit(UIEvent{Action: ActionSidebar, Sidebar: b})
			}
			return r.flatButton(gtx, btn, sidebarLabels[b], false)
		})
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
}

// layoutTabStrip renders one button per explorer tab plus a close button.
func (r *Renderer) layoutTabStrip(gtx layout.Context, state *State) layout.Dimensions {
	if len(state.Tabs) == 0 {
		return layout.Dimensions{}
	}
	for len(r.tabBtns) < len(state.Tabs) {
		r.tabBtns = append(r.tabBtns, tabButtons{})
	}

	children := make([]layout.FlexChild, len(state.Tabs))
	for i, tab := range state.Tabs {
		idx := i
		btns := &r.tabBtns[i]
		if btns.tab.Clicked(gtx) {
			r.emit(UIEvent{Action: ActionSwitchTab, Index: idx})
		}
		if btns.close.Clicked(gtx) {
			r.emit(UIEvent{Action: ActionCloseTab, Index: idx})
		}
		children[i] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Stack{}.Layout(gtx,
				layout.Expanded(func(gtx layout.Context) layout.Dimensions {
					if tab.Active {
						paint.FillShape(gtx.Ops, r.pal.activeTab, clip.Rect{Max: gtx.Constraints.Min}.Op())
						underline := image.Rect(0, gtx.Constraints.Min.Y-gtx.Dp(2), gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
						paint.FillShape(gtx.Ops, r.pal.accent, clip.Rect(underline).Op())
					}
					return layout.Dimensions{Size: gtx.Constraints.Min}
				}),
				layout.Stacked(func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return material.Clickable(gtx, &btns.tab, func(gtx layout.Context) layout.Dimensions {
								return layout.Inset{Top: unit.Dp(6), Bottom: unit.Dp(6), Left: unit.Dp(10), Right: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
									lbl := material.Body2(r.Theme, tab.Name)
									lbl.Color = r.pal.fg
									lbl.MaxLines = 1
									if tab.Active {
										lbl.Font.Weight = font.Bold
									}
									return lbl.Layout(gtx)
								})
							})
						}),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return material.Clickable(gtx, &btns.close, func(gtx layout.Context) layout.Dimensions {
								return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
									lbl := material.Caption(r.Theme, "×")
									lbl.Color = r.pal.muted
									return lbl.Layout(gtx)
								})
							})
						}),
					)
				}),
			)
		})
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
}

// layoutTree renders the visible rows of the active tree. Directories get a
// toggle glyph; clicking a name reports it as opened.
func (r *Renderer) layoutTree(gtx layout.Context, rows []explorer.Row) layout.Dimensions {
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.Node.IsPlaceholder() {
			continue
		}
		btns := r.rowButtonsFor(row.Node.Path)
		seen[row.Node.Path] = true
		if btns.toggle.Clicked(gtx) {
			r.emit(UIEvent{Action: ActionToggleNode, Path: row.Node.Path})
		}
		if btns.open.Clicked(gtx) {
			r.emit(UIEvent{Action: ActionOpenNode, Path: row.Node.Path})
		}
	}
	for path := range r.rowBtns {
		if !seen[path] {
			delete(r.rowBtns, path)
		}
	}

	return r.treeList.Layout(gtx, len(rows), func(gtx layout.Context, i int) layout.Dimensions {
		return r.layoutTreeRow(gtx, rows[i])
	})
}

func (r *Renderer) rowButtonsFor(path string) *rowButtons {
	btns, ok := r.rowBtns[path]
	if !ok {
		btns = new(rowButtons)
		r.rowBtns[path] = btns
	}
	return btns
}

func (r *Renderer) layoutTreeRow(gtx layout.Context, row explorer.Row) layout.Dimensions {
	indent := unit.Dp(8 + 16*row.Depth)
	node := row.Node
	inset := layout.Inset{Top: unit.Dp(2), Bottom: unit.Dp(2), Left: indent, Right: unit.Dp(8)}

	if node.IsPlaceholder() {
		return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			lbl := material.Body2(r.Theme, node.Name)
			lbl.Color = r.pal.disabled
			lbl.Font.Style = font.Italic
			return lbl.Layout(gtx)
		})
	}

	btns := r.rowButtonsFor(node.Path)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				glyph, col := "·", r.pal.muted
				if node.IsDir {
					glyph, col = "▸", r.pal.dir
					if row.Expanded {
						glyph = "▾"
					}
				}
				draw := func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = gtx.Dp(16)
					lbl := material.Body2(r.Theme, glyph)
					lbl.Color = col
					return lbl.Layout(gtx)
				}
				if !node.IsDir {
					return draw(gtx)
				}
				return material.Clickable(gtx, &btns.toggle, draw)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Clickable(gtx, &btns.open, func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body2(r.Theme, node.Name)
					lbl.Color = r.pal.fg
					if node.IsDir {
						lbl.Color = r.pal.dir
					}
					lbl.MaxLines = 1
					return lbl.Layout(gtx)
				})
			}),
		)
	})
}

func (r *Renderer) layoutHorizontalSeparator(gtx layout.Context) layout.Dimensions {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(1))
	paint.FillShape(gtx.Ops, r.pal.border, clip.Rect{Max: size}.Op())
	return layout.Dimensions{Size: size}
}

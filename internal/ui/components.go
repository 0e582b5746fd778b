package ui

import (
	"fmt"
	"image"
	"time"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/canopy/internal/action"
)

// layoutMainContent shows the file last opened from a tree, an image preview
// when it is one, and the theme switch.
func (r *Renderer) layoutMainContent(gtx layout.Context, state *State) layout.Dimensions {
	if r.darkModeBtn.Clicked(gtx) {
		r.emit(UIEvent{Action: ActionDispatch, Command: action.Of(action.ToggleDarkMode)})
	}

	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				text := "No file open"
				if state.CurrentFile != "" {
					text = "Current file: " + state.CurrentFile
				}
				lbl := material.Body1(r.Theme, text)
				lbl.Color = r.pal.fg
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := "Dark Mode"
				if state.DarkMode {
					label = "Light Mode"
				}
				return material.Button(r.Theme, &r.darkModeBtn, label).Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return r.layoutPreview(gtx, state.CurrentFile)
			}),
		)
	})
}

func (r *Renderer) layoutPreview(gtx layout.Context, path string) layout.Dimensions {
	img, size, st := r.preview.get(path)

	caption := func(gtx layout.Context, text string) layout.Dimensions {
		lbl := material.Caption(r.Theme, text)
		lbl.Color = r.pal.muted
		return lbl.Layout(gtx)
	}

	switch st {
	case previewLoading:
		// Poll until the decoder goroutine finishes
		gtx.Execute(op.InvalidateCmd{At: gtx.Now.Add(50 * time.Millisecond)})
		return caption(gtx, "Loading preview...")
	case previewFailed:
		return caption(gtx, "No preview available")
	case previewReady:
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return caption(gtx, fmt.Sprintf("%d × %d", size.X, size.Y))
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return widget.Image{Src: img, Fit: widget.ScaleDown, Position: layout.NW}.Layout(gtx)
			}),
		)
	}
	return layout.Dimensions{}
}

// layoutStatusBar renders the status message on the left and the app name on
// the right, and schedules a redraw for when the message expires.
func (r *Renderer) layoutStatusBar(gtx layout.Context, state *State) layout.Dimensions {
	if !state.StatusExpiresAt.IsZero() {
		gtx.Execute(op.InvalidateCmd{At: state.StatusExpiresAt})
	}

	fg := r.pal.fg
	if state.DarkMode {
		fg = colWhite
	}

	macro := op.Record(gtx.Ops)
	dims := layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Caption(r.Theme, state.Status)
				lbl.Color = fg
				lbl.MaxLines = 1
				return lbl.Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Caption(r.Theme, "Canopy")
				lbl.Color = fg
				return lbl.Layout(gtx)
			}),
		)
	})
	call := macro.Stop()

	paint.FillShape(gtx.Ops, r.pal.statusBar, clip.Rect{Max: dims.Size}.Op())
	call.Add(gtx.Ops)
	return dims
}

// layoutConfigErrorBanner renders a red error banner when config.json fails to parse
func (r *Renderer) layoutConfigErrorBanner(gtx layout.Context, configErr string) layout.Dimensions {
	if configErr == "" {
		return layout.Dimensions{}
	}

	macro := op.Record(gtx.Ops)
	dims := layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			lbl := material.Body2(r.Theme, "Config error: "+configErr+" (using defaults)")
			lbl.Color = colErrorBannerText
			lbl.Font.Weight = font.Bold
			lbl.MaxLines = 1
			return lbl.Layout(gtx)
		})
	call := macro.Stop()

	paint.FillShape(gtx.Ops, colErrorBannerBg, clip.Rect{Max: image.Pt(gtx.Constraints.Max.X, dims.Size.Y)}.Op())
	call.Add(gtx.Ops)
	return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, dims.Size.Y)}
}

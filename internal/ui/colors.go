package ui

import (
	"image/color"

	"gioui.org/widget/material"
)

// palette holds the colors that change with the theme
type palette struct {
	bg          color.NRGBA
	fg          color.NRGBA
	sidebar     color.NRGBA
	menuBar     color.NRGBA
	menuBg      color.NRGBA
	border      color.NRGBA
	muted       color.NRGBA
	disabled    color.NRGBA
	dir         color.NRGBA
	activeTab   color.NRGBA
	statusBar   color.NRGBA
	accent      color.NRGBA
	shadow      color.NRGBA
	shadowOuter color.NRGBA
}

var lightPalette = palette{
	bg:          color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	fg:          color.NRGBA{R: 0, G: 0, B: 0, A: 255},
	sidebar:     color.NRGBA{R: 245, G: 245, B: 245, A: 255},
	menuBar:     color.NRGBA{R: 236, G: 236, B: 236, A: 255},
	menuBg:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	border:      color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	muted:       color.NRGBA{R: 100, G: 100, B: 100, A: 255},
	disabled:    color.NRGBA{R: 150, G: 150, B: 150, A: 255},
	dir:         color.NRGBA{R: 0, G: 0, B: 128, A: 255},
	activeTab:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	statusBar:   color.NRGBA{R: 236, G: 236, B: 236, A: 255},
	accent:      color.NRGBA{R: 66, G: 133, B: 244, A: 255},
	shadow:      color.NRGBA{R: 0, G: 0, B: 0, A: 60},
	shadowOuter: color.NRGBA{R: 0, G: 0, B: 0, A: 25},
}

var darkPalette = palette{
	bg:          color.NRGBA{R: 30, G: 30, B: 30, A: 255},
	fg:          color.NRGBA{R: 220, G: 220, B: 220, A: 255},
	sidebar:     color.NRGBA{R: 37, G: 37, B: 38, A: 255},
	menuBar:     color.NRGBA{R: 45, G: 45, B: 48, A: 255},
	menuBg:      color.NRGBA{R: 45, G: 45, B: 48, A: 255},
	border:      color.NRGBA{R: 70, G: 70, B: 70, A: 255},
	muted:       color.NRGBA{R: 160, G: 160, B: 160, A: 255},
	disabled:    color.NRGBA{R: 110, G: 110, B: 110, A: 255},
	dir:         color.NRGBA{R: 140, G: 180, B: 255, A: 255},
	activeTab:   color.NRGBA{R: 30, G: 30, B: 30, A: 255},
	statusBar:   color.NRGBA{R: 0, G: 90, B: 158, A: 255},
	accent:      color.NRGBA{R: 66, G: 133, B: 244, A: 255},
	shadow:      color.NRGBA{R: 0, G: 0, B: 0, A: 120},
	shadowOuter: color.NRGBA{R: 0, G: 0, B: 0, A: 60},
}

// Theme-independent colors
var (
	colWhite           = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colErrorBannerBg   = color.NRGBA{R: 220, G: 53, B: 69, A: 255}
	colErrorBannerText = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// applyPalette points the material theme at p
func applyPalette(th *material.Theme, p palette) {
	th.Palette = material.Palette{
		Bg:         p.bg,
		Fg:         p.fg,
		ContrastBg: p.accent,
		ContrastFg: colWhite,
	}
}

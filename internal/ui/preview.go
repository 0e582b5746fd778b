package ui

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gioui.org/op/paint"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/justyntemme/canopy/internal/debug"
)

type previewState int

const (
	previewNone previewState = iota // Not an image, or nothing open
	previewLoading
	previewReady
	previewFailed
)

var previewExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

func isPreviewable(path string) bool {
	return previewExts[strings.ToLower(filepath.Ext(path))]
}

// imagePreview decodes the current file off the UI goroutine and holds one
// scaled copy of it. Asking for a different path drops the old image.
type imagePreview struct {
	maxPixels int

	mu    sync.Mutex
	path  string
	state previewState
	img   paint.ImageOp
	size  image.Point // Original dimensions
	err   error
}

func newImagePreview(maxPixels int) *imagePreview {
	return &imagePreview{maxPixels: maxPixels}
}

// get returns the preview for path, starting a decode the first time path
// is asked for.
func (p *imagePreview) get(path string) (paint.ImageOp, image.Point, previewState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if path != p.path {
		p.path = path
		p.img = paint.ImageOp{}
		p.size = image.Point{}
		p.err = nil
		p.state = previewNone
		if path != "" && isPreviewable(path) {
			p.state = previewLoading
			go p.load(path)
		}
	}
	return p.img, p.size, p.state
}

func (p *imagePreview) load(path string) {
	img, err := decodeImage(path)
	var op paint.ImageOp
	var size image.Point
	if err == nil {
		size = img.Bounds().Size()
		op = paint.NewImageOp(scaleToFit(img, p.maxPixels))
		debug.Log(debug.UI, "preview: decoded %s (%dx%d)", path, size.X, size.Y)
	} else {
		debug.Log(debug.UI, "preview: %s: %v", path, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.path != path {
		return
	}
	if err != nil {
		p.state, p.err = previewFailed, err
		return
	}
	p.state, p.img, p.size = previewReady, op, size
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// scaleToFit shrinks src so neither side exceeds maxPixels. Smaller images
// are returned as is.
func scaleToFit(src image.Image, maxPixels int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxPixels && h <= maxPixels {
		return src
	}

	scale := float64(maxPixels) / float64(max(w, h))
	nw := max(1, int(float64(w)*scale))
	nh := max(1, int(float64(h)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

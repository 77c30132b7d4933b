package android

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	xslice "github.com/frantjc/x/slice"
	"github.com/shogo82148/androidbinary"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ErrIconUnavailable reports that an APK exposes no decodable icon,
// e.g. vector-only layers or an obfuscated resource folder. It is an
// expected outcome, not a failure of the rest of the inspection.
var ErrIconUnavailable = errors.New("icon unavailable")

var rasterExts = []string{".png", ".jpg", ".jpeg", ".webp"}

// IconDescriptor is the resolved form of a manifest icon reference:
// either a single raster entry, or the two layers of an adaptive icon.
// Adaptive layer references may themselves be empty when the layer is
// not backed by a raster archive entry.
type IconDescriptor struct {
	Bitmap     string
	Foreground string
	Background string
}

// Adaptive reports whether the descriptor came from an adaptive-icon
// XML rather than a flat bitmap.
func (d *IconDescriptor) Adaptive() bool {
	return d.Bitmap == ""
}

// ResolveIcon resolves a manifest-declared icon reference, typically
// Badging.BestIcon, to the archive entries backing it.
func (a *APK) ResolveIcon(ref string) (*IconDescriptor, error) {
	if ref == "" || androidbinary.IsResID(ref) {
		return nil, ErrIconUnavailable
	}

	ext := strings.ToLower(path.Ext(ref))
	if xslice.Includes(rasterExts, ext) {
		return &IconDescriptor{Bitmap: ref}, nil
	}

	if ext != ".xml" {
		return nil, fmt.Errorf("%w: unsupported icon reference %s", ErrIconUnavailable, ref)
	}

	data, err := a.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIconUnavailable, err)
	}

	foreground, background, err := a.decodeAdaptiveIcon(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIconUnavailable, err)
	}

	return &IconDescriptor{Foreground: foreground, Background: background}, nil
}

// Icon resolves ref and composites it into a single displayable image.
// A flat bitmap is decoded as-is. For an adaptive icon, every raster
// layer is decoded and the foreground is alpha-composited over the
// background on the larger of the two canvases, center-aligned; a
// vector or otherwise undecodable layer is simply left out. When no
// layer decodes, Icon returns ErrIconUnavailable.
func (a *APK) Icon(ref string) (image.Image, error) {
	desc, err := a.ResolveIcon(ref)
	if err != nil {
		return nil, err
	}

	if !desc.Adaptive() {
		img := a.loadLayer(desc.Bitmap)
		if img == nil {
			return nil, fmt.Errorf("%w: undecodable %s", ErrIconUnavailable, desc.Bitmap)
		}

		return img, nil
	}

	img := compositeLayers(a.loadLayer(desc.Background), a.loadLayer(desc.Foreground))
	if img == nil {
		return nil, fmt.Errorf("%w: no decodable layers", ErrIconUnavailable)
	}

	return img, nil
}

// loadLayer decodes a raster archive entry, or returns nil for
// references that cannot be decoded: empty, unresolved resource IDs
// such as color references, and vector drawables.
func (a *APK) loadLayer(ref string) image.Image {
	if ref == "" || androidbinary.IsResID(ref) {
		return nil
	}

	if !xslice.Includes(rasterExts, strings.ToLower(path.Ext(ref))) {
		return nil
	}

	data, err := a.ReadFile(ref)
	if err != nil {
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	return img
}

func compositeLayers(background, foreground image.Image) image.Image {
	switch {
	case background == nil && foreground == nil:
		return nil
	case background == nil:
		return foreground
	case foreground == nil:
		return background
	}

	var (
		width  = max(background.Bounds().Dx(), foreground.Bounds().Dx())
		height = max(background.Bounds().Dy(), foreground.Bounds().Dy())
		canvas = imaging.New(width, height, color.Transparent)
	)

	for _, layer := range []image.Image{background, foreground} {
		if layer.Bounds().Dx() != width || layer.Bounds().Dy() != height {
			layer = imaging.Resize(layer, width, height, imaging.Lanczos)
		}

		canvas = imaging.OverlayCenter(canvas, layer, 1.0)
	}

	return canvas
}

// EncodePNG serializes a composited icon for export.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

package android

import (
	"archive/zip"
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngEntry(t *testing.T, size int, c color.Color) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			img.Set(x, y, c)
		}
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Error(err)
		t.FailNow()
	}

	return buf.Bytes()
}

func newTestAPK(t *testing.T, entries map[string][]byte) *APK {
	t.Helper()

	var (
		buf = new(bytes.Buffer)
		zw  = zip.NewWriter(buf)
	)
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Error(err)
			t.FailNow()
		}

		if _, err = w.Write(data); err != nil {
			t.Error(err)
			t.FailNow()
		}
	}

	if err := zw.Close(); err != nil {
		t.Error(err)
		t.FailNow()
	}

	a, err := NewAPK(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	return a
}

func adaptiveXML(foreground, background string) []byte {
	return []byte(`<?xml version="1.0" encoding="utf-8"?>
<adaptive-icon xmlns:android="http://schemas.android.com/apk/res/android">
    <background android:drawable="` + background + `"/>
    <foreground android:drawable="` + foreground + `"/>
</adaptive-icon>`)
}

func TestIconBitmap(t *testing.T) {
	a := newTestAPK(t, map[string][]byte{
		"res/mipmap-xxxhdpi-v4/ic_launcher.png": pngEntry(t, 48, color.NRGBA{R: 255, A: 255}),
	})

	img, err := a.Icon("res/mipmap-xxxhdpi-v4/ic_launcher.png")
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	if img.Bounds().Dx() != 48 || img.Bounds().Dy() != 48 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestIconAdaptive(t *testing.T) {
	a := newTestAPK(t, map[string][]byte{
		"res/mipmap-anydpi-v26/ic_launcher.xml": adaptiveXML(
			"res/drawable/ic_launcher_foreground.png",
			"res/drawable/ic_launcher_background.png",
		),
		"res/drawable/ic_launcher_foreground.png": pngEntry(t, 64, color.NRGBA{G: 255, A: 128}),
		"res/drawable/ic_launcher_background.png": pngEntry(t, 32, color.NRGBA{B: 255, A: 255}),
	})

	desc, err := a.ResolveIcon("res/mipmap-anydpi-v26/ic_launcher.xml")
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	if !desc.Adaptive() || desc.Foreground != "res/drawable/ic_launcher_foreground.png" || desc.Background != "res/drawable/ic_launcher_background.png" {
		t.Errorf("descriptor = %+v", desc)
	}

	img, err := a.Icon("res/mipmap-anydpi-v26/ic_launcher.xml")
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	// No smaller than the larger input layer.
	if img.Bounds().Dx() < 64 || img.Bounds().Dy() < 64 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestIconAdaptiveVectorLayerLeftOut(t *testing.T) {
	a := newTestAPK(t, map[string][]byte{
		"res/mipmap-anydpi-v26/ic_launcher.xml": adaptiveXML(
			"res/drawable/ic_launcher_foreground.xml",
			"res/drawable/ic_launcher_background.png",
		),
		"res/drawable/ic_launcher_foreground.xml": []byte(`<vector/>`),
		"res/drawable/ic_launcher_background.png": pngEntry(t, 32, color.NRGBA{B: 255, A: 255}),
	})

	img, err := a.Icon("res/mipmap-anydpi-v26/ic_launcher.xml")
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	if img.Bounds().Dx() != 32 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestIconAdaptiveVectorOnly(t *testing.T) {
	a := newTestAPK(t, map[string][]byte{
		"res/mipmap-anydpi-v26/ic_launcher.xml": adaptiveXML(
			"res/drawable/ic_launcher_foreground.xml",
			"res/drawable/ic_launcher_background.xml",
		),
		"res/drawable/ic_launcher_foreground.xml": []byte(`<vector/>`),
		"res/drawable/ic_launcher_background.xml": []byte(`<vector/>`),
	})

	if _, err := a.Icon("res/mipmap-anydpi-v26/ic_launcher.xml"); !errors.Is(err, ErrIconUnavailable) {
		t.Errorf("err = %v", err)
	}
}

func TestIconUnavailable(t *testing.T) {
	a := newTestAPK(t, map[string][]byte{})

	for _, ref := range []string{
		"",
		"res/mipmap-anydpi-v26/ic_launcher.xml",
		"res/mipmap-xxxhdpi-v4/ic_launcher.png",
		"@0x7f030001",
	} {
		if _, err := a.Icon(ref); !errors.Is(err, ErrIconUnavailable) {
			t.Errorf("Icon(%q) = %v", ref, err)
		}
	}
}

package android

import (
	"bytes"
	"encoding/xml"

	"github.com/shogo82148/androidbinary"
)

// adaptiveIcon mirrors the <adaptive-icon> resource XML introduced in
// API 26, as compiled into the APK's binary XML encoding.
type adaptiveIcon struct {
	Background adaptiveIconLayer `xml:"background"`
	Foreground adaptiveIconLayer `xml:"foreground"`
}

type adaptiveIconLayer struct {
	Drawable androidbinary.String `xml:"http://schemas.android.com/apk/res/android drawable,attr"`
}

// plainAdaptiveIcon handles the rare APK whose resource XML was never
// compiled and is stored as plain text.
type plainAdaptiveIcon struct {
	XMLName    xml.Name               `xml:"adaptive-icon"`
	Background plainAdaptiveIconLayer `xml:"background"`
	Foreground plainAdaptiveIconLayer `xml:"foreground"`
}

type plainAdaptiveIconLayer struct {
	Drawable string `xml:"drawable,attr"`
}

// decodeAdaptiveIcon extracts the foreground and background drawable
// references from an adaptive-icon descriptor. Each reference may be
// empty or an unresolved resource ID when the layer cannot be tied
// back to an archive entry.
func (a *APK) decodeAdaptiveIcon(data []byte) (foreground, background string, err error) {
	if xf, xerr := androidbinary.NewXMLFile(bytes.NewReader(data)); xerr == nil {
		icon := &adaptiveIcon{}
		if derr := xf.Decode(icon, a.resources(), nil); derr == nil {
			foreground, _ = icon.Foreground.Drawable.String()
			background, _ = icon.Background.Drawable.String()
			return foreground, background, nil
		}
	}

	plain := &plainAdaptiveIcon{}
	if err = xml.Unmarshal(data, plain); err != nil {
		return "", "", err
	}

	return plain.Foreground.Drawable, plain.Background.Drawable, nil
}

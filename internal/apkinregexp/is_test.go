package apkinregexp

import "testing"

func TestIsAPK(t *testing.T) {
	for _, name := range []string{
		"app.apk",
		"dir/app-1.2.0.apk",
		"/tmp/example app.apk",
		`C:\apps\example.apk`,
		`..\apps\example.apk`,
		"示例应用_1.2.0.apk",
		"Example_1.2.0.APK",
	} {
		if !IsAPK(name) {
			t.Errorf("IsAPK(%q) = false", name)
		}
	}

	for _, name := range []string{
		"",
		"app.ipa",
		"app.apk.txt",
	} {
		if IsAPK(name) {
			t.Errorf("IsAPK(%q) = true", name)
		}
	}
}

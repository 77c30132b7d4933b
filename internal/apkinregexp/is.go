package apkinregexp

func IsUUID(s string) bool {
	return UUID.MatchString(s)
}

func IsAPK(s string) bool {
	return APK.MatchString(s)
}

// SanitizeFilename strips characters that are illegal in filenames.
func SanitizeFilename(s string) string {
	return IllegalFilename.ReplaceAllString(s, "")
}

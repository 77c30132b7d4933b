package apkinutil

const (
	ContentTypeMultiPart = "multipart/form-data"
	ContentTypeAPK       = "application/vnd.android.package-archive"
	ContentTypeJSON      = "application/json"
	ContentTypePNG       = "image/png"
)

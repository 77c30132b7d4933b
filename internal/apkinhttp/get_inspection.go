package apkinhttp

import (
	"io"
	"net/http"

	"github.com/apkin/apkin/internal/apkinblob"
	"github.com/apkin/apkin/internal/apkinutil"
	accept "github.com/timewasted/go-accept-headers"
	"gocloud.dev/blob"
)

func getInspection(bucket *blob.Bucket) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			ctx    = r.Context()
			id     = inspectionID(r)
			pretty = pretty(r)
		)

		// An Accept of image/png gets the icon directly, the
		// drag-and-drop equivalent of an <img> pointed at the
		// inspection URL.
		if negotiated, err := accept.Parse(r.Header.Get("Accept")).Negotiate(
			apkinutil.ContentTypeJSON, apkinutil.ContentTypePNG,
		); err == nil && negotiated == apkinutil.ContentTypePNG {
			serveBlob(w, r, apkinutil.ContentTypePNG, func() (io.ReadCloser, error) {
				return apkinblob.NewIconReader(ctx, bucket, id)
			}, pretty)
			return
		}

		serveBlob(w, r, apkinutil.ContentTypeJSON, func() (io.ReadCloser, error) {
			return apkinblob.NewInspectionReader(ctx, bucket, id)
		}, pretty)
	}
}

func serveBlob(w http.ResponseWriter, _ *http.Request, contentType string, open func() (io.ReadCloser, error), pretty bool) {
	rc, err := open()
	if err != nil {
		_ = respondErrorJSON(w, err, pretty)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	_, _ = io.Copy(w, rc)
}

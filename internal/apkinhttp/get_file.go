package apkinhttp

import (
	"io"
	"net/http"

	"github.com/apkin/apkin/internal/apkinblob"
	"github.com/apkin/apkin/internal/apkinutil"
	"gocloud.dev/blob"
)

func getIcon(bucket *blob.Bucket) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveBlob(w, r, apkinutil.ContentTypePNG, func() (io.ReadCloser, error) {
			return apkinblob.NewIconReader(r.Context(), bucket, inspectionID(r))
		}, pretty(r))
	}
}

func getAPK(bucket *blob.Bucket) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveBlob(w, r, apkinutil.ContentTypeAPK, func() (io.ReadCloser, error) {
			return apkinblob.NewAPKReader(r.Context(), bucket, inspectionID(r))
		}, pretty(r))
	}
}

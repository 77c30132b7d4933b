package apkinhttp

import (
	"io"
	"mime"
	"net/http"
	"os"

	"github.com/apkin/apkin"
	"github.com/apkin/apkin/internal/apkinblob"
	"github.com/apkin/apkin/internal/apkinerr"
	"github.com/google/uuid"
	"gocloud.dev/blob"
)

func postInspections(bucket *blob.Bucket, opts ...apkin.InspectOpt) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			ctx    = r.Context()
			pretty = pretty(r)
			id     = uuid.NewString()
		)

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			_ = respondErrorJSON(w, apkinerr.HTTPStatusCodeError(err, http.StatusBadRequest), pretty)
			return
		}

		name, err := apkinblob.WriteAPK(ctx, bucket, mediaType, params["boundary"], id, r.Body)
		if err != nil {
			_ = respondErrorJSON(w, err, pretty)
			return
		}

		// aapt2 wants a file on disk, so the upload is pulled back
		// out of the bucket into a temporary one.
		tmp, err := os.CreateTemp("", "*.apk")
		if err != nil {
			_ = respondErrorJSON(w, err, pretty)
			return
		}
		defer os.Remove(tmp.Name())

		rc, err := apkinblob.NewAPKReader(ctx, bucket, id)
		if err != nil {
			_ = respondErrorJSON(w, err, pretty)
			return
		}

		_, err = io.Copy(tmp, rc)
		_ = rc.Close()
		if err == nil {
			err = tmp.Close()
		}
		if err != nil {
			_ = respondErrorJSON(w, err, pretty)
			return
		}

		inspection, icon, err := apkin.Inspect(ctx, tmp.Name(), opts...)
		if err != nil {
			_ = respondErrorJSON(w, err, pretty)
			return
		}

		inspection.ID = id
		if name != "" {
			inspection.Name = name
		}

		if icon != nil {
			if err = apkinblob.WriteIcon(ctx, bucket, id, icon); err != nil {
				_ = respondErrorJSON(w, err, pretty)
				return
			}
		}

		if err = apkinblob.WriteInspection(ctx, bucket, inspection); err != nil {
			_ = respondErrorJSON(w, err, pretty)
			return
		}

		w.WriteHeader(http.StatusCreated)
		_ = respondJSON(w, inspection, pretty)
	}
}

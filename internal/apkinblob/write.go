package apkinblob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/apkin/apkin"
	"github.com/apkin/apkin/android"
	"github.com/apkin/apkin/internal/apkinerr"
	"github.com/apkin/apkin/internal/apkinutil"
	"gocloud.dev/blob"
)

// WriteAPK stores an uploaded APK under id, accepting either a raw
// body or a multipart form whose "apk" field (or any *.apk file part)
// carries the archive. It returns the uploaded filename when the
// upload had one.
func WriteAPK(ctx context.Context, bucket *blob.Bucket, mediaType, boundary, id string, r io.Reader) (string, error) {
	if strings.EqualFold(mediaType, apkinutil.ContentTypeMultiPart) {
		mr := multipart.NewReader(r, boundary)
		for {
			part, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				return "", err
			}

			if part.FormName() == "apk" || strings.HasSuffix(strings.ToLower(part.FileName()), ".apk") {
				return part.FileName(), write(ctx, bucket, APKKey(id), apkinutil.ContentTypeAPK, part)
			}
		}

		return "", apkinerr.HTTPStatusCodeError(fmt.Errorf("no .apk in multipart upload"), http.StatusBadRequest)
	}

	return "", write(ctx, bucket, APKKey(id), apkinutil.ContentTypeAPK, r)
}

func WriteInspection(ctx context.Context, bucket *blob.Bucket, inspection *apkin.Inspection) error {
	data, err := json.Marshal(inspection)
	if err != nil {
		return err
	}

	return bucket.WriteAll(ctx, InspectionKey(inspection.ID), data, &blob.WriterOptions{
		ContentType: apkinutil.ContentTypeJSON,
	})
}

func WriteIcon(ctx context.Context, bucket *blob.Bucket, id string, icon image.Image) error {
	w, err := bucket.NewWriter(ctx, IconKey(id), &blob.WriterOptions{
		ContentType: apkinutil.ContentTypePNG,
	})
	if err != nil {
		return err
	}

	if err = android.EncodePNG(w, icon); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}

func write(ctx context.Context, bucket *blob.Bucket, key, contentType string, r io.Reader) error {
	w, err := bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return err
	}

	if _, err = io.Copy(w, r); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}

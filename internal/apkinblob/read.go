package apkinblob

import (
	"context"
	"io"
	"net/http"

	"github.com/apkin/apkin/internal/apkinerr"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// NewInspectionReader reads back the inspection JSON stored under id.
func NewInspectionReader(ctx context.Context, bucket *blob.Bucket, id string) (io.ReadCloser, error) {
	return newReader(ctx, bucket, InspectionKey(id))
}

// NewIconReader reads back the composited icon stored under id. APKs
// without a decodable icon have no stored icon, which reads as not
// found.
func NewIconReader(ctx context.Context, bucket *blob.Bucket, id string) (io.ReadCloser, error) {
	return newReader(ctx, bucket, IconKey(id))
}

// NewAPKReader reads back the original upload stored under id.
func NewAPKReader(ctx context.Context, bucket *blob.Bucket, id string) (io.ReadCloser, error) {
	return newReader(ctx, bucket, APKKey(id))
}

func newReader(ctx context.Context, bucket *blob.Bucket, key string) (io.ReadCloser, error) {
	rc, err := bucket.NewReader(ctx, key, nil)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, apkinerr.HTTPStatusCodeError(err, http.StatusNotFound)
	} else if err != nil {
		return nil, err
	}

	return rc, nil
}

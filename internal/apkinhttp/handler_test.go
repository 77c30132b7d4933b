package apkinhttp

import (
	"context"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apkin/apkin"
	"github.com/apkin/apkin/android"
	"github.com/apkin/apkin/internal/apkinblob"
	"github.com/google/uuid"
	"gocloud.dev/blob"

	_ "gocloud.dev/blob/memblob"
)

func newTestBucket(t *testing.T) *blob.Bucket {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	t.Cleanup(func() {
		_ = bucket.Close()
	})

	return bucket
}

func TestGetInspectionNotFound(t *testing.T) {
	var (
		handler = NewHandler(newTestBucket(t))
		rec     = httptest.NewRecorder()
		req     = httptest.NewRequest(http.MethodGet, "/api/v1/inspections/"+uuid.NewString(), nil)
	)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestGetInspection(t *testing.T) {
	var (
		ctx    = context.Background()
		bucket = newTestBucket(t)
		id     = uuid.NewString()
	)

	if err := apkinblob.WriteInspection(ctx, bucket, &apkin.Inspection{
		ID:      id,
		Badging: &android.Badging{Package: "com.example.app", VersionCode: 7},
	}); err != nil {
		t.Error(err)
		t.FailNow()
	}

	var (
		handler = NewHandler(bucket)
		rec     = httptest.NewRecorder()
		req     = httptest.NewRequest(http.MethodGet, "/api/v1/inspections/"+id, nil)
	)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
		t.FailNow()
	}

	inspection := &apkin.Inspection{}
	if err := json.NewDecoder(rec.Body).Decode(inspection); err != nil {
		t.Error(err)
		t.FailNow()
	}

	if inspection.Badging == nil || inspection.Badging.Package != "com.example.app" {
		t.Errorf("inspection = %+v", inspection)
	}

	// No icon was stored for this inspection.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/inspections/"+id+"/icon.png", nil)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("icon status = %d", rec.Code)
	}
}

func TestGetInspectionNegotiatesIcon(t *testing.T) {
	var (
		ctx    = context.Background()
		bucket = newTestBucket(t)
		id     = uuid.NewString()
	)

	if err := apkinblob.WriteIcon(ctx, bucket, id, image.NewNRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Error(err)
		t.FailNow()
	}

	var (
		handler = NewHandler(bucket)
		rec     = httptest.NewRecorder()
		req     = httptest.NewRequest(http.MethodGet, "/api/v1/inspections/"+id, nil)
	)
	req.Header.Set("Accept", "image/png")

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}

	if contentType := rec.Header().Get("Content-Type"); contentType != "image/png" {
		t.Errorf("content type = %q", contentType)
	}
}

func TestPostInspectionsBadContentType(t *testing.T) {
	var (
		handler = NewHandler(newTestBucket(t))
		rec     = httptest.NewRecorder()
		req     = httptest.NewRequest(http.MethodPost, "/api/v1/inspections", nil)
	)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

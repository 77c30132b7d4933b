package apkinhttp

import (
	"fmt"
	"net/http"

	"github.com/apkin/apkin"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gocloud.dev/blob"
)

// NewHandler serves apkin's inspection API out of the given bucket.
func NewHandler(bucket *blob.Bucket, opts ...apkin.InspectOpt) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "ok")
	})

	r.Post("/api/v1/inspections", postInspections(bucket, opts...))

	r.Get(fmt.Sprintf("/api/v1/inspections/%s", idParam), getInspection(bucket))

	r.Get(fmt.Sprintf("/api/v1/inspections/%s/icon.png", idParam), getIcon(bucket))

	r.Get(fmt.Sprintf("/api/v1/inspections/%s/app.apk", idParam), getAPK(bucket))

	return r
}

package apkinhttp

import (
	"encoding/json"
	"net/http"

	"github.com/apkin/apkin/internal/apkinerr"
)

func respondJSON(w http.ResponseWriter, a any, pretty bool) error {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(a)
}

func respondErrorJSON(w http.ResponseWriter, err error, pretty bool) error {
	w.WriteHeader(apkinerr.HTTPStatusCode(err))

	return respondJSON(w, map[string]string{"error": err.Error()}, pretty)
}

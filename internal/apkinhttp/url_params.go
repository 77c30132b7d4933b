package apkinhttp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/apkin/apkin/internal/apkinregexp"
	"github.com/go-chi/chi/v5"
)

var idParam = fmt.Sprintf("{id:%s}", apkinregexp.UUID.String())

func inspectionID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

func pretty(r *http.Request) bool {
	pretty, _ := strconv.ParseBool(r.URL.Query().Get("pretty"))
	return pretty
}

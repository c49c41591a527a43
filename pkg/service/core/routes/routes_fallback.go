package routes

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/go-chi/chi"
	"github.com/navikt/dbinfo-backend/pkg/errs"
)

const apiPrefix = "/api"

// NotFound writes {success:false, error:"Not Found", timestamp} with a 404
func NotFound(w http.ResponseWriter, _ *http.Request) {
	errs.WriteErrorResponse(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// NewFallbackRoutes handles everything no other route matched. When
// assetsDir is set, GET requests outside /api for an existing file are served
// from it, the rest gets the JSON 404.
func NewFallbackRoutes(assetsDir string) AddRoutesFn {
	fallback := http.HandlerFunc(NotFound)

	if assetsDir != "" {
		fallback = assets(os.DirFS(assetsDir), fallback)
	}

	return func(router chi.Router) {
		router.NotFound(fallback)
		router.MethodNotAllowed(NotFound)
	}
}

func assets(fsys fs.FS, notFound http.HandlerFunc) http.HandlerFunc {
	files := http.FileServer(http.FS(fsys))

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			notFound(w, r)
			return
		}

		if r.URL.Path == apiPrefix || strings.HasPrefix(r.URL.Path, apiPrefix+"/") {
			notFound(w, r)
			return
		}

		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")

		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			notFound(w, r)
			return
		}

		files.ServeHTTP(w, r)
	}
}

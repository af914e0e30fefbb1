package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// StaticHandler serves a built single-page web client from dir. Paths
// that don't match a file fall back to index.html so client-side routes
// work, except under /api/ and the well-known endpoints, which must
// keep returning JSON 404s.
func StaticHandler(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/.well-known/") {
			http.NotFound(w, r)
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}

		fileServer.ServeHTTP(w, r)
	})
}

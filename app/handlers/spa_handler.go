package handlers

import (
	"net/http"
	"os"
	"path/filepath"
)

// SPAHandler serves the built presentation bundle. Requests for files that
// exist under the dist directory are served directly; everything else falls
// back to index.html so client side routing works.
type SPAHandler struct {
	distDir string
}

func NewSPAHandler(distDir string) *SPAHandler {
	return &SPAHandler{distDir: distDir}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.distDir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	index := filepath.Join(h.distDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}

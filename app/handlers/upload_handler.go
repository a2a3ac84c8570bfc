package handlers

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/unrolled/render"
)

// maxUploadSize caps product/banner imagery at 32 MB.
const maxUploadSize = 32 << 20

type UploadHandler struct {
	render    *render.Render
	uploadDir string
}

func NewUploadHandler(render *render.Render, uploadDir string) *UploadHandler {
	return &UploadHandler{
		render:    render,
		uploadDir: uploadDir,
	}
}

// Upload serves POST /api/upload. The multipart "file" part is stored under
// the upload directory with a generated name and the public URL is returned.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Dosya yüklenemedi."})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "file alanı zorunludur."})
		return
	}
	defer file.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		log.Printf("Upload: yükleme dizini oluşturulamadı (%s): %v", h.uploadDir, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Dosya kaydedilemedi"})
		return
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		log.Printf("Upload: dosya oluşturulamadı (%s): %v", name, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Dosya kaydedilemedi"})
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		log.Printf("Upload: dosya yazılamadı (%s): %v", name, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Dosya kaydedilemedi"})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"url": "/uploads/" + name})
}

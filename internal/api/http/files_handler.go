package http

import (
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"thesishub-backend/internal/storage"
)

// FilesHandler streams objects from the filesystem-backed store. It is only
// mounted when the mock storage backend is active; MinIO deployments hand
// out presigned URLs straight to the object store instead.
type FilesHandler struct {
	store *storage.MockStore
}

func NewFilesHandler(store *storage.MockStore) *FilesHandler {
	return &FilesHandler{store: store}
}

func (h *FilesHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" || strings.Contains(key, "..") {
		writeError(w, http.StatusBadRequest, "invalid object key")
		return
	}
	obj, err := h.store.Open(key)
	if err != nil {
		if os.IsNotExist(err) {
			writeError(w, http.StatusNotFound, "object not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to open object")
		return
	}
	defer obj.Close()

	switch path.Ext(key) {
	case ".pdf":
		w.Header().Set("Content-Type", "application/pdf")
	case ".png":
		w.Header().Set("Content-Type", "image/png")
	default:
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Content-Disposition", "attachment; filename=\""+path.Base(key)+"\"")
	io.Copy(w, obj)
}

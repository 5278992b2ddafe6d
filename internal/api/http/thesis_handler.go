package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/service"
)

// Upload size cap for thesis documents.
const maxUploadBytes = 64 << 20

type ThesisHandler struct {
	theses service.ThesisService
}

func NewThesisHandler(theses service.ThesisService) *ThesisHandler {
	return &ThesisHandler{theses: theses}
}

// Upload accepts a multipart form: metadata fields plus a "file" part with
// the thesis document.
func (h *ThesisHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "thesis file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}

	thesis := &domain.Thesis{
		Title:      r.FormValue("title"),
		Author:     r.FormValue("author"),
		College:    r.FormValue("college"),
		Department: r.FormValue("department"),
		Batch:      r.FormValue("batch"),
		Abstract:   r.FormValue("abstract"),
		UploadedBy: claims.UserID,
	}
	if err := h.theses.Upload(r.Context(), thesis, file, header.Size, contentType); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, thesis)
}

// AttachQRCode accepts a multipart "image" part with the shelf QR code.
func (h *ThesisHandler) AttachQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid thesis id")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	image, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "qr code image is required")
		return
	}
	defer image.Close()

	thesis, err := h.theses.AttachQRCode(r.Context(), id, image, header.Size)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, thesis)
}

func (h *ThesisHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid thesis id")
		return
	}
	thesis, err := h.theses.GetThesis(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, thesis)
}

type thesisPage struct {
	Theses []domain.Thesis `json:"theses"`
	Total  int32           `json:"total"`
}

func (h *ThesisHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	query := r.URL.Query().Get("q")

	var (
		theses []domain.Thesis
		total  int32
		err    error
	)
	if query != "" {
		theses, total, err = h.theses.SearchTheses(r.Context(), query,
			r.URL.Query().Get("college"), r.URL.Query().Get("batch"), page, pageSize)
	} else {
		theses, total, err = h.theses.ListTheses(r.Context(), page, pageSize)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, thesisPage{Theses: theses, Total: total})
}

func (h *ThesisHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid thesis id")
		return
	}
	var thesis domain.Thesis
	if err := json.NewDecoder(r.Body).Decode(&thesis); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	thesis.ID = id
	if err := h.theses.UpdateThesis(r.Context(), &thesis); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, thesis)
}

func (h *ThesisHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid thesis id")
		return
	}
	if err := h.theses.DeleteThesis(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DownloadURL hands out a presigned link when the caller is an admin or
// holds active approved access.
func (h *ThesisHandler) DownloadURL(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid thesis id")
		return
	}
	url, err := h.theses.GetDownloadURL(r.Context(), claims.UserID, claims.Role, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"download_url": url})
}

func pagination(r *http.Request) (int32, int32) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32)
	pageSize, _ := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return int32(page), int32(pageSize)
}

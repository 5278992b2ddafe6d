package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/service"
)

type BookshelfHandler struct {
	shelves service.BookshelfService
}

func NewBookshelfHandler(shelves service.BookshelfService) *BookshelfHandler {
	return &BookshelfHandler{shelves: shelves}
}

func (h *BookshelfHandler) Create(w http.ResponseWriter, r *http.Request) {
	var shelf domain.Bookshelf
	if err := json.NewDecoder(r.Body).Decode(&shelf); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.shelves.CreateShelf(r.Context(), &shelf); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, shelf)
}

func (h *BookshelfHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bookshelf id")
		return
	}
	shelf, err := h.shelves.GetShelf(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shelf)
}

func (h *BookshelfHandler) List(w http.ResponseWriter, r *http.Request) {
	shelves, err := h.shelves.ListShelves(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Bookshelf{"bookshelves": shelves})
}

func (h *BookshelfHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bookshelf id")
		return
	}
	var shelf domain.Bookshelf
	if err := json.NewDecoder(r.Body).Decode(&shelf); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	shelf.ID = id
	if err := h.shelves.UpdateShelf(r.Context(), &shelf); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shelf)
}

func (h *BookshelfHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bookshelf id")
		return
	}
	if err := h.shelves.DeleteShelf(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type assignThesisRequest struct {
	ThesisID int32  `json:"thesis_id"`
	Position int32  `json:"position"`
	RFIDTag  string `json:"rfid_tag"`
}

func (h *BookshelfHandler) AssignThesis(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bookshelf id")
		return
	}
	var body assignThesisRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	slot, err := h.shelves.AssignThesis(r.Context(), id, body.ThesisID, body.Position, body.RFIDTag)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}

func (h *BookshelfHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bookshelf id")
		return
	}
	slots, err := h.shelves.ListSlots(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.ShelfSlot{"slots": slots})
}

func (h *BookshelfHandler) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid slot id")
		return
	}
	if err := h.shelves.RemoveSlot(r.Context(), int32(slotID)); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

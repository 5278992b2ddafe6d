package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/service"
)

type AccessHandler struct {
	access service.AccessService
}

func NewAccessHandler(access service.AccessService) *AccessHandler {
	return &AccessHandler{access: access}
}

type submitRequestBody struct {
	ThesisID     int32  `json:"thesis_id"`
	Purpose      string `json:"purpose"`
	DurationDays int32  `json:"duration_days"`
}

// Submit creates a pending access request for the authenticated caller.
func (h *AccessHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var body submitRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.access.SubmitRequest(r.Context(), claims.UserID, body.ThesisID, body.Purpose, body.DurationDays)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

// ListMine returns the caller's own requests.
func (h *AccessHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	reqs, err := h.access.ListMyRequests(r.Context(), claims.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *AccessHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.access.Approve)
}

func (h *AccessHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.access.Reject)
}

func (h *AccessHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.access.AdminRemove)
}

func (h *AccessHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, int32) (*domain.AccessRequest, error)) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	req, err := op(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func requestID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}

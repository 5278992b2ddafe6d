package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/security"
)

func withClaims(r *http.Request, claims *security.UserClaims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
}

func accessRouter(h *AccessHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/access-requests", h.Submit).Methods(http.MethodPost)
	r.HandleFunc("/access-requests/{id:[0-9]+}/approve", h.Approve).Methods(http.MethodPost)
	r.HandleFunc("/access-requests/{id:[0-9]+}/reject", h.Reject).Methods(http.MethodPost)
	r.HandleFunc("/access-requests/{id:[0-9]+}/remove", h.Remove).Methods(http.MethodPost)
	return r
}

func TestAccessHandler_Submit(t *testing.T) {
	access := new(MockAccessService)
	h := NewAccessHandler(access)
	router := accessRouter(h)

	access.On("SubmitRequest", mock.Anything, int32(42), int32(7), "literature review", int32(14)).
		Return(&domain.AccessRequest{ID: 5, RequesterID: 42, ThesisID: 7, Status: domain.AccessRequestStatusPending}, nil)

	body := `{"thesis_id": 7, "purpose": "literature review", "duration_days": 14}`
	req := httptest.NewRequest(http.MethodPost, "/access-requests", strings.NewReader(body))
	req = withClaims(req, &security.UserClaims{UserID: 42, Role: domain.RoleStudent})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"PENDING"`)
}

func TestAccessHandler_Approve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		access := new(MockAccessService)
		h := NewAccessHandler(access)
		router := accessRouter(h)

		access.On("Approve", mock.Anything, int32(5)).
			Return(&domain.AccessRequest{ID: 5, Status: domain.AccessRequestStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/access-requests/5/approve", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"APPROVED"`)
	})

	t.Run("Lost race maps to 409", func(t *testing.T) {
		access := new(MockAccessService)
		h := NewAccessHandler(access)
		router := accessRouter(h)

		access.On("Approve", mock.Anything, int32(5)).Return(nil, domain.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/access-requests/5/approve", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Unknown request maps to 404", func(t *testing.T) {
		access := new(MockAccessService)
		h := NewAccessHandler(access)
		router := accessRouter(h)

		access.On("Approve", mock.Anything, int32(99)).Return(nil, domain.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodPost, "/access-requests/99/approve", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAccessHandler_Remove(t *testing.T) {
	access := new(MockAccessService)
	h := NewAccessHandler(access)
	router := accessRouter(h)

	access.On("AdminRemove", mock.Anything, int32(5)).
		Return(&domain.AccessRequest{ID: 5, Status: domain.AccessRequestStatusRemoved}, nil)

	req := httptest.NewRequest(http.MethodPost, "/access-requests/5/remove", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"REMOVED"`)
}

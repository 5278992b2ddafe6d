package http

import (
	"net/http"
	"time"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/logger"
	"thesishub-backend/internal/service"
)

type AdminHandler struct {
	admin  service.AdminService
	access service.AccessService

	windowDays int32
	warnDays   int32
}

func NewAdminHandler(admin service.AdminService, access service.AccessService, windowDays, warnDays int32) *AdminHandler {
	return &AdminHandler{admin: admin, access: access, windowDays: windowDays, warnDays: warnDays}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.DashboardStats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type accessRequestView struct {
	domain.AccessRequest
	DaysRemaining int32              `json:"days_remaining"`
	Badge         domain.ExpiryBadge `json:"badge,omitempty"`
}

type accessRequestList struct {
	Requests []accessRequestView `json:"requests"`
}

func (h *AdminHandler) decorate(requests []domain.AccessRequest, now time.Time) []accessRequestView {
	views := make([]accessRequestView, len(requests))
	for i, req := range requests {
		v := accessRequestView{AccessRequest: req, DaysRemaining: req.DaysRemaining(h.windowDays, now)}
		if req.Status == domain.AccessRequestStatusApproved {
			v.Badge = domain.ClassifyExpiry(v.DaysRemaining)
		}
		views[i] = v
	}
	return views
}

// ListAccessRequests backs the admin access-management screen. Both sweeps
// run before the listing so each view load reflects expirations up to the
// moment of the request, not just the last cron tick.
func (h *AdminHandler) ListAccessRequests(w http.ResponseWriter, r *http.Request) {
	h.runSweeps(r)

	var (
		requests []domain.AccessRequest
		err      error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		requests, err = h.access.ListRequests(r.Context(), domain.AccessRequestStatus(status))
	} else {
		requests, err = h.admin.ListAllRequests(r.Context())
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accessRequestList{Requests: h.decorate(requests, time.Now().UTC())})
}

func (h *AdminHandler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	h.runSweeps(r)

	requests, err := h.admin.ListPendingRequests(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accessRequestList{Requests: h.decorate(requests, time.Now().UTC())})
}

// runSweeps is best effort. A sweep failure degrades freshness of the
// listing but never blocks it.
func (h *AdminHandler) runSweeps(r *http.Request) {
	now := time.Now().UTC()
	if _, err := h.access.SweepExpirations(r.Context(), h.windowDays, now); err != nil {
		logger.Warn("expiration sweep on admin view failed", "error", err)
	}
	if _, err := h.access.SweepExpiringSoon(r.Context(), h.warnDays, h.windowDays, now); err != nil {
		logger.Warn("expiring-soon sweep on admin view failed", "error", err)
	}
}

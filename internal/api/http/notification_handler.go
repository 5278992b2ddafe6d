package http

import (
	"net/http"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/service"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type notificationPage struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int32                 `json:"total"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	page, pageSize := pagination(r)
	notes, total, err := h.notifications.GetNotifications(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notificationPage{Notifications: notes, Total: total})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := h.notifications.MarkAsRead(r.Context(), claims.UserID, id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if err := h.notifications.MarkAllAsRead(r.Context(), claims.UserID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if err := h.notifications.DeleteAll(r.Context(), claims.UserID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	count, err := h.notifications.CountUnread(r.Context(), claims.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"unread": count})
}

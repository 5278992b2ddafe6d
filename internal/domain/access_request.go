package domain

import (
	"errors"
	"time"
)

type AccessRequestStatus string

const (
	AccessRequestStatusPending  AccessRequestStatus = "PENDING"
	AccessRequestStatusApproved AccessRequestStatus = "APPROVED"
	AccessRequestStatusRejected AccessRequestStatus = "REJECTED"
	AccessRequestStatusRemoved  AccessRequestStatus = "REMOVED"
	AccessRequestStatusExpired  AccessRequestStatus = "EXPIRED"
)

var (
	// ErrRequesterNotFound indicates submission referenced a nonexistent user.
	ErrRequesterNotFound = errors.New("requester not found")
	// ErrThesisNotFound indicates submission referenced a nonexistent thesis.
	ErrThesisNotFound = errors.New("thesis not found")
	// ErrRequestNotFound indicates the request id is absent from the store.
	ErrRequestNotFound = errors.New("access request not found")
	// ErrInvalidTransition indicates the current status does not permit the
	// attempted transition. Callers should treat this as "someone else already
	// acted" and refresh, not as a fatal error.
	ErrInvalidTransition = errors.New("invalid access request transition")
)

// AccessRequest is one user's time-bounded claim on one thesis. Status,
// ApprovedOn and RemovedOn are written only by the access service; all other
// fields are immutable after creation.
type AccessRequest struct {
	ID           int32               `json:"id"`
	RequesterID  int32               `json:"requester_id"`
	ThesisID     int32               `json:"thesis_id"`
	Purpose      string              `json:"purpose"`
	DurationDays int32               `json:"duration_days"` // display/audit only, not used for expiration
	Status       AccessRequestStatus `json:"status"`
	RequestedOn  time.Time           `json:"requested_on"`
	ApprovedOn   *time.Time          `json:"approved_on,omitempty"`
	RemovedOn    *time.Time          `json:"removed_on,omitempty"`
}

func (r *AccessRequest) IsPending() bool {
	return r.Status == AccessRequestStatusPending
}

func (r *AccessRequest) IsApproved() bool {
	return r.Status == AccessRequestStatusApproved
}

// IsTerminal reports whether no further transition is defined for the
// request's current status.
func (r *AccessRequest) IsTerminal() bool {
	switch r.Status {
	case AccessRequestStatusRejected, AccessRequestStatusRemoved, AccessRequestStatusExpired:
		return true
	}
	return false
}

// ExpiryBadge classifies how close an approved request is to expiring.
type ExpiryBadge string

const (
	ExpiryBadgeExpired      ExpiryBadge = "expired"       // days remaining <= 0
	ExpiryBadgeExpiringSoon ExpiryBadge = "expiring_soon" // 1..3 days
	ExpiryBadgeAmber        ExpiryBadge = "amber"         // 4..7 days
	ExpiryBadgeGreen        ExpiryBadge = "green"         // > 7 days
)

// DaysRemaining returns ceil((approvedOn + windowDays*24h - now) / 24h) for an
// approved request. The window counts wall-clock 24h periods, not calendar
// days. Requests that were never approved have no expiry; -1 is returned.
func (r *AccessRequest) DaysRemaining(windowDays int32, now time.Time) int32 {
	if r.ApprovedOn == nil {
		return -1
	}
	expiresAt := r.ApprovedOn.Add(time.Duration(windowDays) * 24 * time.Hour)
	left := expiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	days := int32(left / (24 * time.Hour))
	if left%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// ClassifyExpiry maps a days-remaining value to its display badge.
func ClassifyExpiry(daysRemaining int32) ExpiryBadge {
	switch {
	case daysRemaining <= 0:
		return ExpiryBadgeExpired
	case daysRemaining <= 3:
		return ExpiryBadgeExpiringSoon
	case daysRemaining <= 7:
		return ExpiryBadgeAmber
	default:
		return ExpiryBadgeGreen
	}
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func approvedAt(t time.Time) *AccessRequest {
	return &AccessRequest{
		Status:     AccessRequestStatusApproved,
		ApprovedOn: &t,
	}
}

func TestAccessRequest_DaysRemaining(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	window := int32(30)

	t.Run("Never approved", func(t *testing.T) {
		req := &AccessRequest{Status: AccessRequestStatusPending}
		assert.Equal(t, int32(-1), req.DaysRemaining(window, now))
	})

	t.Run("Window fully elapsed", func(t *testing.T) {
		req := approvedAt(now.Add(-30 * 24 * time.Hour))
		assert.Equal(t, int32(0), req.DaysRemaining(window, now))
	})

	t.Run("Window elapsed long ago", func(t *testing.T) {
		req := approvedAt(now.Add(-45 * 24 * time.Hour))
		assert.Equal(t, int32(0), req.DaysRemaining(window, now))
	})

	t.Run("Partial day rounds up", func(t *testing.T) {
		// 29 days and 1 hour elapsed: 23 hours remain, counted as 1 day.
		req := approvedAt(now.Add(-29*24*time.Hour - time.Hour))
		assert.Equal(t, int32(1), req.DaysRemaining(window, now))
	})

	t.Run("Exact day boundary", func(t *testing.T) {
		req := approvedAt(now.Add(-27 * 24 * time.Hour))
		assert.Equal(t, int32(3), req.DaysRemaining(window, now))
	})

	t.Run("Fresh approval", func(t *testing.T) {
		req := approvedAt(now)
		assert.Equal(t, int32(30), req.DaysRemaining(window, now))
	})

	t.Run("Mid window", func(t *testing.T) {
		req := approvedAt(now.Add(-20 * 24 * time.Hour))
		assert.Equal(t, int32(10), req.DaysRemaining(window, now))
	})
}

func TestClassifyExpiry(t *testing.T) {
	assert.Equal(t, ExpiryBadgeExpired, ClassifyExpiry(0))
	assert.Equal(t, ExpiryBadgeExpired, ClassifyExpiry(-1))
	assert.Equal(t, ExpiryBadgeExpiringSoon, ClassifyExpiry(1))
	assert.Equal(t, ExpiryBadgeExpiringSoon, ClassifyExpiry(3))
	assert.Equal(t, ExpiryBadgeAmber, ClassifyExpiry(4))
	assert.Equal(t, ExpiryBadgeAmber, ClassifyExpiry(7))
	assert.Equal(t, ExpiryBadgeGreen, ClassifyExpiry(8))
	assert.Equal(t, ExpiryBadgeGreen, ClassifyExpiry(30))
}

func TestAccessRequest_IsTerminal(t *testing.T) {
	cases := map[AccessRequestStatus]bool{
		AccessRequestStatusPending:  false,
		AccessRequestStatusApproved: false,
		AccessRequestStatusRejected: true,
		AccessRequestStatusRemoved:  true,
		AccessRequestStatusExpired:  true,
	}
	for status, terminal := range cases {
		req := &AccessRequest{Status: status}
		assert.Equal(t, terminal, req.IsTerminal(), "status %s", status)
	}
}

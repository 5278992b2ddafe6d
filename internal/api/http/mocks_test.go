package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"thesishub-backend/internal/domain"
)

// MockAccessService
type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) SubmitRequest(ctx context.Context, requesterID, thesisID int32, purpose string, durationDays int32) (*domain.AccessRequest, error) {
	args := m.Called(ctx, requesterID, thesisID, purpose, durationDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessRequest), args.Error(1)
}
func (m *MockAccessService) Approve(ctx context.Context, requestID int32) (*domain.AccessRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessRequest), args.Error(1)
}
func (m *MockAccessService) Reject(ctx context.Context, requestID int32) (*domain.AccessRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessRequest), args.Error(1)
}
func (m *MockAccessService) AdminRemove(ctx context.Context, requestID int32) (*domain.AccessRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessRequest), args.Error(1)
}
func (m *MockAccessService) SweepExpirations(ctx context.Context, windowDays int32, now time.Time) (int, error) {
	args := m.Called(ctx, windowDays, now)
	return args.Int(0), args.Error(1)
}
func (m *MockAccessService) SweepExpiringSoon(ctx context.Context, warnDays, windowDays int32, now time.Time) (int, error) {
	args := m.Called(ctx, warnDays, windowDays, now)
	return args.Int(0), args.Error(1)
}
func (m *MockAccessService) GetRequest(ctx context.Context, requestID int32) (*domain.AccessRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessRequest), args.Error(1)
}
func (m *MockAccessService) ListRequests(ctx context.Context, status domain.AccessRequestStatus) ([]domain.AccessRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.AccessRequest), args.Error(1)
}
func (m *MockAccessService) ListMyRequests(ctx context.Context, requesterID int32) ([]domain.AccessRequest, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]domain.AccessRequest), args.Error(1)
}
func (m *MockAccessService) HasActiveAccess(ctx context.Context, requesterID, thesisID, windowDays int32, now time.Time) (bool, error) {
	args := m.Called(ctx, requesterID, thesisID, windowDays, now)
	return args.Bool(0), args.Error(1)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
func (m *MockAdminService) ListPendingRequests(ctx context.Context) ([]domain.AccessRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AccessRequest), args.Error(1)
}
func (m *MockAdminService) ListAllRequests(ctx context.Context) ([]domain.AccessRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AccessRequest), args.Error(1)
}

package service_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"thesishub-backend/internal/domain"
)

// MockAccessRequestRepo
type MockAccessRequestRepo struct {
	mock.Mock
}

func (m *MockAccessRequestRepo) Create(ctx context.Context, req *domain.AccessRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockAccessRequestRepo) GetByID(ctx context.Context, id int32) (*domain.AccessRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessRequest), args.Error(1)
}
func (m *MockAccessRequestRepo) ListByRequester(ctx context.Context, requesterID int32) ([]domain.AccessRequest, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]domain.AccessRequest), args.Error(1)
}
func (m *MockAccessRequestRepo) ListByStatus(ctx context.Context, status domain.AccessRequestStatus) ([]domain.AccessRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.AccessRequest), args.Error(1)
}
func (m *MockAccessRequestRepo) List(ctx context.Context) ([]domain.AccessRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AccessRequest), args.Error(1)
}
func (m *MockAccessRequestRepo) CountByStatus(ctx context.Context, status domain.AccessRequestStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockAccessRequestRepo) GetApproved(ctx context.Context, requesterID, thesisID int32) (*domain.AccessRequest, error) {
	args := m.Called(ctx, requesterID, thesisID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessRequest), args.Error(1)
}
func (m *MockAccessRequestRepo) MarkApproved(ctx context.Context, id int32, approvedOn time.Time) (bool, error) {
	args := m.Called(ctx, id, approvedOn)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccessRequestRepo) MarkRejected(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccessRequestRepo) MarkRemoved(ctx context.Context, id int32, removedOn time.Time) (bool, error) {
	args := m.Called(ctx, id, removedOn)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccessRequestRepo) ExpireDue(ctx context.Context, cutoff, removedOn time.Time) ([]domain.AccessRequest, error) {
	args := m.Called(ctx, cutoff, removedOn)
	return args.Get(0).([]domain.AccessRequest), args.Error(1)
}
func (m *MockAccessRequestRepo) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.AccessRequest, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.AccessRequest), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) ListAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockThesisRepo
type MockThesisRepo struct {
	mock.Mock
}

func (m *MockThesisRepo) Create(ctx context.Context, thesis *domain.Thesis) error {
	args := m.Called(ctx, thesis)
	return args.Error(0)
}
func (m *MockThesisRepo) GetByID(ctx context.Context, id int32) (*domain.Thesis, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Thesis), args.Error(1)
}
func (m *MockThesisRepo) Update(ctx context.Context, thesis *domain.Thesis) error {
	args := m.Called(ctx, thesis)
	return args.Error(0)
}
func (m *MockThesisRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockThesisRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Thesis, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Thesis), args.Get(1).(int32), args.Error(2)
}
func (m *MockThesisRepo) Search(ctx context.Context, query, college, batch string, page, pageSize int32) ([]domain.Thesis, int32, error) {
	args := m.Called(ctx, query, college, batch, page, pageSize)
	return args.Get(0).([]domain.Thesis), args.Get(1).(int32), args.Error(2)
}
func (m *MockThesisRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
func (m *MockNotificationRepo) MarkAllAsRead(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockNotificationRepo) DeleteAll(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockNotificationRepo) CountUnread(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}

// MockObjectStore
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, r, size, contentType)
	return args.Error(0)
}
func (m *MockObjectStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
func (m *MockObjectStore) Exists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

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

// MockEmitter
type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) Emit(ctx context.Context, userID int32, title, message string, noteType domain.NotificationType, thesisID, accessRequestID *int32) (*domain.Notification, error) {
	args := m.Called(ctx, userID, title, message, noteType, thesisID, accessRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendAccessDecision(ctx context.Context, email, name, thesisTitle, decision string) error {
	args := m.Called(ctx, email, name, thesisTitle, decision)
	return args.Error(0)
}
func (m *MockEmailService) SendAccessExpired(ctx context.Context, email, name, thesisTitle string, windowDays int32) error {
	args := m.Called(ctx, email, name, thesisTitle, windowDays)
	return args.Error(0)
}

package repository

import (
	"context"
	"time"

	"thesishub-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListAdmins(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int32, error)
}

type ThesisRepository interface {
	Create(ctx context.Context, thesis *domain.Thesis) error
	GetByID(ctx context.Context, id int32) (*domain.Thesis, error)
	Update(ctx context.Context, thesis *domain.Thesis) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Thesis, int32, error)
	// Search matches query as a case-insensitive substring against title,
	// author, college, department and batch.
	Search(ctx context.Context, query, college, batch string, page, pageSize int32) ([]domain.Thesis, int32, error)
	Count(ctx context.Context) (int32, error)
}

type AccessRequestRepository interface {
	Create(ctx context.Context, req *domain.AccessRequest) error
	GetByID(ctx context.Context, id int32) (*domain.AccessRequest, error)
	ListByRequester(ctx context.Context, requesterID int32) ([]domain.AccessRequest, error)
	ListByStatus(ctx context.Context, status domain.AccessRequestStatus) ([]domain.AccessRequest, error)
	List(ctx context.Context) ([]domain.AccessRequest, error)
	CountByStatus(ctx context.Context, status domain.AccessRequestStatus) (int32, error)

	// GetApproved returns the requester's approved request for a thesis, or
	// nil when none exists.
	GetApproved(ctx context.Context, requesterID, thesisID int32) (*domain.AccessRequest, error)

	// MarkApproved, MarkRejected and MarkRemoved are conditional single-row
	// transitions: the UPDATE carries the expected current status in its
	// WHERE clause, so two concurrent calls on the same request yield exactly
	// one success. They return false when zero rows were affected.
	MarkApproved(ctx context.Context, id int32, approvedOn time.Time) (bool, error)
	MarkRejected(ctx context.Context, id int32) (bool, error)
	MarkRemoved(ctx context.Context, id int32, removedOn time.Time) (bool, error)

	// ExpireDue transitions every APPROVED request with approved_on <= cutoff
	// to EXPIRED in one statement and returns the affected rows. Safe to call
	// repeatedly: expired rows leave the APPROVED set on the first call.
	ExpireDue(ctx context.Context, cutoff, removedOn time.Time) ([]domain.AccessRequest, error)

	// ListExpiringBetween returns APPROVED requests whose approved_on falls in
	// (from, to], i.e. requests that will expire soon but have not yet.
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.AccessRequest, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
	MarkAllAsRead(ctx context.Context, userID int32) error
	DeleteAll(ctx context.Context, userID int32) error
	CountUnread(ctx context.Context, userID int32) (int32, error)
}

type BookshelfRepository interface {
	Create(ctx context.Context, shelf *domain.Bookshelf) error
	GetByID(ctx context.Context, id int32) (*domain.Bookshelf, error)
	Update(ctx context.Context, shelf *domain.Bookshelf) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Bookshelf, error)

	AssignSlot(ctx context.Context, slot *domain.ShelfSlot) error
	ListSlots(ctx context.Context, bookshelfID int32) ([]domain.ShelfSlot, error)
	ClearSlot(ctx context.Context, slotID int32) error
}

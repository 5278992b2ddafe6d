package service

import (
	"context"
	"io"
	"time"

	"thesishub-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password, department string, role domain.Role) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

// AccessService owns the access request state machine. It is the only writer
// of AccessRequest.Status/ApprovedOn/RemovedOn.
type AccessService interface {
	SubmitRequest(ctx context.Context, requesterID, thesisID int32, purpose string, durationDays int32) (*domain.AccessRequest, error)
	Approve(ctx context.Context, requestID int32) (*domain.AccessRequest, error)
	Reject(ctx context.Context, requestID int32) (*domain.AccessRequest, error)
	AdminRemove(ctx context.Context, requestID int32) (*domain.AccessRequest, error)

	// SweepExpirations expires every approved request whose window has fully
	// elapsed at now and notifies each affected requester. Returns the number
	// of requests expired.
	SweepExpirations(ctx context.Context, windowDays int32, now time.Time) (int, error)

	// SweepExpiringSoon warns every admin about approved requests expiring
	// within warnDays of now. Re-invocation re-warns: there is no
	// already-warned marker. Returns the number of requests warned about.
	SweepExpiringSoon(ctx context.Context, warnDays, windowDays int32, now time.Time) (int, error)

	GetRequest(ctx context.Context, requestID int32) (*domain.AccessRequest, error)
	ListRequests(ctx context.Context, status domain.AccessRequestStatus) ([]domain.AccessRequest, error)
	ListMyRequests(ctx context.Context, requesterID int32) ([]domain.AccessRequest, error)

	// HasActiveAccess reports whether the requester holds an approved,
	// not-yet-expired claim on the thesis.
	HasActiveAccess(ctx context.Context, requesterID, thesisID, windowDays int32, now time.Time) (bool, error)
}

// NotificationEmitter creates one notification row as a transition side
// effect. Emission failures must not roll back the transition that caused
// them.
type NotificationEmitter interface {
	Emit(ctx context.Context, userID int32, title, message string, noteType domain.NotificationType, thesisID, accessRequestID *int32) (*domain.Notification, error)
}

type NotificationService interface {
	NotificationEmitter
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
	MarkAllAsRead(ctx context.Context, userID int32) error
	DeleteAll(ctx context.Context, userID int32) error
	CountUnread(ctx context.Context, userID int32) (int32, error)
}

type ThesisService interface {
	Upload(ctx context.Context, thesis *domain.Thesis, file io.Reader, size int64, contentType string) error
	AttachQRCode(ctx context.Context, thesisID int32, image io.Reader, size int64) (*domain.Thesis, error)
	GetThesis(ctx context.Context, id int32) (*domain.Thesis, error)
	ListTheses(ctx context.Context, page, pageSize int32) ([]domain.Thesis, int32, error)
	SearchTheses(ctx context.Context, query, college, batch string, page, pageSize int32) ([]domain.Thesis, int32, error)
	UpdateThesis(ctx context.Context, thesis *domain.Thesis) error
	DeleteThesis(ctx context.Context, id int32) error

	// GetDownloadURL returns a presigned URL for the thesis document. Admins
	// always pass; everyone else needs an active approved access request.
	GetDownloadURL(ctx context.Context, userID int32, role domain.Role, thesisID int32) (string, error)
}

type AdminService interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	ListPendingRequests(ctx context.Context) ([]domain.AccessRequest, error)
	ListAllRequests(ctx context.Context) ([]domain.AccessRequest, error)
}

type BookshelfService interface {
	CreateShelf(ctx context.Context, shelf *domain.Bookshelf) error
	GetShelf(ctx context.Context, id int32) (*domain.Bookshelf, error)
	UpdateShelf(ctx context.Context, shelf *domain.Bookshelf) error
	DeleteShelf(ctx context.Context, id int32) error
	ListShelves(ctx context.Context) ([]domain.Bookshelf, error)
	AssignThesis(ctx context.Context, bookshelfID, thesisID, position int32, rfidTag string) (*domain.ShelfSlot, error)
	ListSlots(ctx context.Context, bookshelfID int32) ([]domain.ShelfSlot, error)
	RemoveSlot(ctx context.Context, slotID int32) error
}

type EmailService interface {
	SendAccessDecision(ctx context.Context, email, name, thesisTitle, decision string) error
	SendAccessExpired(ctx context.Context, email, name, thesisTitle string, windowDays int32) error
}

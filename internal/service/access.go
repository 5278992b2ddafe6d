package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/logger"
	"thesishub-backend/internal/repository"
)

type accessService struct {
	reqRepo    repository.AccessRequestRepository
	userRepo   repository.UserRepository
	thesisRepo repository.ThesisRepository
	emitter    NotificationEmitter
	emailSvc   EmailService
}

func NewAccessService(
	reqRepo repository.AccessRequestRepository,
	userRepo repository.UserRepository,
	thesisRepo repository.ThesisRepository,
	emitter NotificationEmitter,
	emailSvc EmailService,
) AccessService {
	return &accessService{
		reqRepo:    reqRepo,
		userRepo:   userRepo,
		thesisRepo: thesisRepo,
		emitter:    emitter,
		emailSvc:   emailSvc,
	}
}

func (s *accessService) SubmitRequest(ctx context.Context, requesterID, thesisID int32, purpose string, durationDays int32) (*domain.AccessRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequesterNotFound
		}
		return nil, fmt.Errorf("failed to resolve requester: %w", err)
	}
	if _, err := s.thesisRepo.GetByID(ctx, thesisID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrThesisNotFound
		}
		return nil, fmt.Errorf("failed to resolve thesis: %w", err)
	}

	req := &domain.AccessRequest{
		RequesterID:  requesterID,
		ThesisID:     thesisID,
		Purpose:      purpose,
		DurationDays: durationDays,
		Status:       domain.AccessRequestStatusPending,
		RequestedOn:  time.Now(),
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create access request: %w", err)
	}

	// No notification on submission: admins discover pending requests by
	// listing them, not by push.
	return req, nil
}

func (s *accessService) Approve(ctx context.Context, requestID int32) (*domain.AccessRequest, error) {
	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ok, err := s.reqRepo.MarkApproved(ctx, requestID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to approve access request: %w", err)
	}
	if !ok {
		// Someone else already acted on this request.
		return nil, domain.ErrInvalidTransition
	}
	req.Status = domain.AccessRequestStatusApproved
	req.ApprovedOn = &now

	thesis, _ := s.thesisRepo.GetByID(ctx, req.ThesisID)
	title := thesisTitle(thesis)
	s.notify(ctx, req.RequesterID, "Access Request Approved",
		fmt.Sprintf("Your request to view %q was approved.", title),
		domain.NotificationTypeSuccess, req)
	s.email(ctx, req.RequesterID, title, "approved")

	return req, nil
}

func (s *accessService) Reject(ctx context.Context, requestID int32) (*domain.AccessRequest, error) {
	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	ok, err := s.reqRepo.MarkRejected(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to reject access request: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}
	req.Status = domain.AccessRequestStatusRejected

	thesis, _ := s.thesisRepo.GetByID(ctx, req.ThesisID)
	title := thesisTitle(thesis)
	s.notify(ctx, req.RequesterID, "Access Request Rejected",
		fmt.Sprintf("Your request to view %q was rejected.", title),
		domain.NotificationTypeError, req)
	s.email(ctx, req.RequesterID, title, "rejected")

	return req, nil
}

func (s *accessService) AdminRemove(ctx context.Context, requestID int32) (*domain.AccessRequest, error) {
	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ok, err := s.reqRepo.MarkRemoved(ctx, requestID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to remove access: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}
	req.Status = domain.AccessRequestStatusRemoved
	req.RemovedOn = &now

	thesis, _ := s.thesisRepo.GetByID(ctx, req.ThesisID)
	title := thesisTitle(thesis)
	s.notify(ctx, req.RequesterID, "Access Removed",
		fmt.Sprintf("Your access to %q was removed by an administrator.", title),
		domain.NotificationTypeWarning, req)

	return req, nil
}

func (s *accessService) SweepExpirations(ctx context.Context, windowDays int32, now time.Time) (int, error) {
	cutoff := now.Add(-time.Duration(windowDays) * 24 * time.Hour)
	expired, err := s.reqRepo.ExpireDue(ctx, cutoff, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire access requests: %w", err)
	}

	for i := range expired {
		req := &expired[i]
		thesis, _ := s.thesisRepo.GetByID(ctx, req.ThesisID)
		title := thesisTitle(thesis)
		s.notify(ctx, req.RequesterID, "Access Expired",
			fmt.Sprintf("Your access to %q expired after %d days.", title, windowDays),
			domain.NotificationTypeWarning, req)
		s.emailExpired(ctx, req.RequesterID, title, windowDays)
	}

	if len(expired) > 0 {
		logger.Info("Expired access requests", "count", len(expired), "window_days", windowDays)
	}
	return len(expired), nil
}

func (s *accessService) SweepExpiringSoon(ctx context.Context, warnDays, windowDays int32, now time.Time) (int, error) {
	// A request expires at approved_on + window. It is "expiring soon" when
	// the expiry falls in (now, now+warn], i.e. approved_on in
	// (now-window, now-window+warn].
	from := now.Add(-time.Duration(windowDays) * 24 * time.Hour)
	to := from.Add(time.Duration(warnDays) * 24 * time.Hour)
	expiring, err := s.reqRepo.ListExpiringBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to list expiring access requests: %w", err)
	}
	if len(expiring) == 0 {
		return 0, nil
	}

	admins, err := s.userRepo.ListAdmins(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list admins: %w", err)
	}

	for i := range expiring {
		req := &expiring[i]
		days := req.DaysRemaining(windowDays, now)
		thesis, _ := s.thesisRepo.GetByID(ctx, req.ThesisID)
		title := thesisTitle(thesis)
		// Fan-out to every admin. Repeated sweeps re-warn; there is no
		// already-warned marker on the request.
		for _, admin := range admins {
			s.notify(ctx, admin.ID, "Access Expiring Soon",
				fmt.Sprintf("Access to %q for user %d expires in %d day(s).", title, req.RequesterID, days),
				domain.NotificationTypeWarning, req)
		}
	}
	return len(expiring), nil
}

func (s *accessService) GetRequest(ctx context.Context, requestID int32) (*domain.AccessRequest, error) {
	return s.getRequest(ctx, requestID)
}

func (s *accessService) ListRequests(ctx context.Context, status domain.AccessRequestStatus) ([]domain.AccessRequest, error) {
	if status == "" {
		return s.reqRepo.List(ctx)
	}
	return s.reqRepo.ListByStatus(ctx, status)
}

func (s *accessService) ListMyRequests(ctx context.Context, requesterID int32) ([]domain.AccessRequest, error) {
	return s.reqRepo.ListByRequester(ctx, requesterID)
}

func (s *accessService) HasActiveAccess(ctx context.Context, requesterID, thesisID, windowDays int32, now time.Time) (bool, error) {
	req, err := s.reqRepo.GetApproved(ctx, requesterID, thesisID)
	if err != nil {
		return false, fmt.Errorf("failed to look up approved access: %w", err)
	}
	if req == nil {
		return false, nil
	}
	return req.DaysRemaining(windowDays, now) > 0, nil
}

func (s *accessService) getRequest(ctx context.Context, requestID int32) (*domain.AccessRequest, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get access request: %w", err)
	}
	return req, nil
}

// notify emits one notification to userID referencing the request and its
// thesis. Best-effort: a failed insert is logged and does not undo the
// transition.
func (s *accessService) notify(ctx context.Context, userID int32, title, message string, noteType domain.NotificationType, req *domain.AccessRequest) {
	thesisID := req.ThesisID
	requestID := req.ID
	if _, err := s.emitter.Emit(ctx, userID, title, message, noteType, &thesisID, &requestID); err != nil {
		logger.Warn("Failed to emit notification", "error", err, "user_id", userID, "request_id", requestID)
	}
}

func (s *accessService) email(ctx context.Context, requesterID int32, thesisTitle, decision string) {
	if s.emailSvc == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return
	}
	_ = s.emailSvc.SendAccessDecision(ctx, user.Email, user.Name, thesisTitle, decision)
}

func (s *accessService) emailExpired(ctx context.Context, requesterID int32, thesisTitle string, windowDays int32) {
	if s.emailSvc == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return
	}
	_ = s.emailSvc.SendAccessExpired(ctx, user.Email, user.Name, thesisTitle, windowDays)
}

func thesisTitle(t *domain.Thesis) string {
	if t == nil {
		return "this thesis"
	}
	return t.Title
}

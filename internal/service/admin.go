package service

import (
	"context"
	"fmt"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/repository"
)

type adminService struct {
	reqRepo    repository.AccessRequestRepository
	userRepo   repository.UserRepository
	thesisRepo repository.ThesisRepository
}

func NewAdminService(
	reqRepo repository.AccessRequestRepository,
	userRepo repository.UserRepository,
	thesisRepo repository.ThesisRepository,
) AdminService {
	return &adminService{
		reqRepo:    reqRepo,
		userRepo:   userRepo,
		thesisRepo: thesisRepo,
	}
}

func (s *adminService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	var err error
	if stats.TotalTheses, err = s.thesisRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count theses: %w", err)
	}
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.PendingRequests, err = s.reqRepo.CountByStatus(ctx, domain.AccessRequestStatusPending); err != nil {
		return nil, fmt.Errorf("failed to count pending requests: %w", err)
	}
	if stats.ApprovedRequests, err = s.reqRepo.CountByStatus(ctx, domain.AccessRequestStatusApproved); err != nil {
		return nil, fmt.Errorf("failed to count approved requests: %w", err)
	}
	if stats.ExpiredRequests, err = s.reqRepo.CountByStatus(ctx, domain.AccessRequestStatusExpired); err != nil {
		return nil, fmt.Errorf("failed to count expired requests: %w", err)
	}
	return stats, nil
}

func (s *adminService) ListPendingRequests(ctx context.Context) ([]domain.AccessRequest, error) {
	return s.reqRepo.ListByStatus(ctx, domain.AccessRequestStatusPending)
}

func (s *adminService) ListAllRequests(ctx context.Context) ([]domain.AccessRequest, error) {
	return s.reqRepo.List(ctx)
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/repository"
	"thesishub-backend/internal/storage"
)

// ErrAccessDenied indicates the caller has no active approved claim on the
// thesis document.
var ErrAccessDenied = errors.New("no active access to this thesis")

const downloadURLExpiry = 15 * time.Minute

type thesisService struct {
	thesisRepo     repository.ThesisRepository
	objects        storage.ObjectStore
	access         AccessService
	expirationDays int32
}

func NewThesisService(thesisRepo repository.ThesisRepository, objects storage.ObjectStore, access AccessService, expirationDays int32) ThesisService {
	return &thesisService{
		thesisRepo:     thesisRepo,
		objects:        objects,
		access:         access,
		expirationDays: expirationDays,
	}
}

func (s *thesisService) Upload(ctx context.Context, thesis *domain.Thesis, file io.Reader, size int64, contentType string) error {
	if thesis.Title == "" || thesis.Author == "" {
		return errors.New("title and author are required")
	}
	key := fmt.Sprintf("theses/%s.pdf", uuid.New().String())
	if err := s.objects.Put(ctx, key, file, size, contentType); err != nil {
		return fmt.Errorf("failed to store thesis document: %w", err)
	}
	thesis.FileKey = key

	if err := s.thesisRepo.Create(ctx, thesis); err != nil {
		// The row is authoritative; remove the orphaned object.
		_ = s.objects.Delete(ctx, key)
		return fmt.Errorf("failed to create thesis record: %w", err)
	}
	return nil
}

func (s *thesisService) AttachQRCode(ctx context.Context, thesisID int32, image io.Reader, size int64) (*domain.Thesis, error) {
	thesis, err := s.getThesis(ctx, thesisID)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("qrcodes/%s.png", uuid.New().String())
	if err := s.objects.Put(ctx, key, image, size, "image/png"); err != nil {
		return nil, fmt.Errorf("failed to store QR code: %w", err)
	}
	if thesis.QRCodeKey != "" {
		_ = s.objects.Delete(ctx, thesis.QRCodeKey)
	}
	thesis.QRCodeKey = key
	if err := s.thesisRepo.Update(ctx, thesis); err != nil {
		return nil, fmt.Errorf("failed to update thesis record: %w", err)
	}
	return thesis, nil
}

func (s *thesisService) GetThesis(ctx context.Context, id int32) (*domain.Thesis, error) {
	return s.getThesis(ctx, id)
}

func (s *thesisService) ListTheses(ctx context.Context, page, pageSize int32) ([]domain.Thesis, int32, error) {
	return s.thesisRepo.List(ctx, page, pageSize)
}

func (s *thesisService) SearchTheses(ctx context.Context, query, college, batch string, page, pageSize int32) ([]domain.Thesis, int32, error) {
	return s.thesisRepo.Search(ctx, query, college, batch, page, pageSize)
}

func (s *thesisService) UpdateThesis(ctx context.Context, thesis *domain.Thesis) error {
	if _, err := s.getThesis(ctx, thesis.ID); err != nil {
		return err
	}
	return s.thesisRepo.Update(ctx, thesis)
}

func (s *thesisService) DeleteThesis(ctx context.Context, id int32) error {
	thesis, err := s.getThesis(ctx, id)
	if err != nil {
		return err
	}
	if err := s.thesisRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete thesis record: %w", err)
	}
	if thesis.FileKey != "" {
		_ = s.objects.Delete(ctx, thesis.FileKey)
	}
	if thesis.QRCodeKey != "" {
		_ = s.objects.Delete(ctx, thesis.QRCodeKey)
	}
	return nil
}

func (s *thesisService) GetDownloadURL(ctx context.Context, userID int32, role domain.Role, thesisID int32) (string, error) {
	thesis, err := s.getThesis(ctx, thesisID)
	if err != nil {
		return "", err
	}

	if role != domain.RoleAdmin {
		ok, err := s.access.HasActiveAccess(ctx, userID, thesisID, s.expirationDays, time.Now())
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrAccessDenied
		}
	}

	url, err := s.objects.PresignGet(ctx, thesis.FileKey, downloadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}
	return url, nil
}

func (s *thesisService) getThesis(ctx context.Context, id int32) (*domain.Thesis, error) {
	thesis, err := s.thesisRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrThesisNotFound
		}
		return nil, fmt.Errorf("failed to get thesis: %w", err)
	}
	return thesis, nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/repository"
)

var ErrShelfFull = errors.New("bookshelf is at capacity")

type bookshelfService struct {
	shelfRepo  repository.BookshelfRepository
	thesisRepo repository.ThesisRepository
}

func NewBookshelfService(shelfRepo repository.BookshelfRepository, thesisRepo repository.ThesisRepository) BookshelfService {
	return &bookshelfService{shelfRepo: shelfRepo, thesisRepo: thesisRepo}
}

func (s *bookshelfService) CreateShelf(ctx context.Context, shelf *domain.Bookshelf) error {
	if shelf.Name == "" {
		return errors.New("shelf name is required")
	}
	if shelf.Capacity <= 0 {
		shelf.Capacity = 50
	}
	applySettingsDefaults(&shelf.Settings)
	return s.shelfRepo.Create(ctx, shelf)
}

func (s *bookshelfService) GetShelf(ctx context.Context, id int32) (*domain.Bookshelf, error) {
	shelf, err := s.shelfRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("bookshelf %d not found", id)
		}
		return nil, err
	}
	return shelf, nil
}

func (s *bookshelfService) UpdateShelf(ctx context.Context, shelf *domain.Bookshelf) error {
	if _, err := s.GetShelf(ctx, shelf.ID); err != nil {
		return err
	}
	applySettingsDefaults(&shelf.Settings)
	return s.shelfRepo.Update(ctx, shelf)
}

func (s *bookshelfService) DeleteShelf(ctx context.Context, id int32) error {
	return s.shelfRepo.Delete(ctx, id)
}

func (s *bookshelfService) ListShelves(ctx context.Context) ([]domain.Bookshelf, error) {
	return s.shelfRepo.List(ctx)
}

func (s *bookshelfService) AssignThesis(ctx context.Context, bookshelfID, thesisID, position int32, rfidTag string) (*domain.ShelfSlot, error) {
	shelf, err := s.GetShelf(ctx, bookshelfID)
	if err != nil {
		return nil, err
	}
	if _, err := s.thesisRepo.GetByID(ctx, thesisID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrThesisNotFound
		}
		return nil, err
	}

	slots, err := s.shelfRepo.ListSlots(ctx, bookshelfID)
	if err != nil {
		return nil, err
	}
	if int32(len(slots)) >= shelf.Capacity {
		return nil, ErrShelfFull
	}

	slot := &domain.ShelfSlot{
		BookshelfID: bookshelfID,
		ThesisID:    thesisID,
		Position:    position,
		RFIDTag:     rfidTag,
	}
	if err := s.shelfRepo.AssignSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to assign shelf slot: %w", err)
	}
	return slot, nil
}

func (s *bookshelfService) ListSlots(ctx context.Context, bookshelfID int32) ([]domain.ShelfSlot, error) {
	return s.shelfRepo.ListSlots(ctx, bookshelfID)
}

func (s *bookshelfService) RemoveSlot(ctx context.Context, slotID int32) error {
	return s.shelfRepo.ClearSlot(ctx, slotID)
}

func applySettingsDefaults(settings *domain.BookshelfSettings) {
	if settings.LEDColor == "" {
		settings.LEDColor = "green"
	}
	if settings.LEDBrightness == 0 {
		settings.LEDBrightness = 80
	}
	if settings.SensorPollSecs == 0 {
		settings.SensorPollSecs = 30
	}
	if settings.FirmwareVersion == "" {
		settings.FirmwareVersion = "1.0.0"
	}
}

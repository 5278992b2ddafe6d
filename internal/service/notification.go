package service

import (
	"context"
	"time"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/notify"
	"thesishub-backend/internal/repository"
)

type notificationService struct {
	noteRepo  repository.NotificationRepository
	publisher notify.Publisher
}

// NewNotificationService builds the notification emitter and read surface.
// publisher may be nil when no live fan-out is configured.
func NewNotificationService(noteRepo repository.NotificationRepository, publisher notify.Publisher) NotificationService {
	return &notificationService{noteRepo: noteRepo, publisher: publisher}
}

func (s *notificationService) Emit(ctx context.Context, userID int32, title, message string, noteType domain.NotificationType, thesisID, accessRequestID *int32) (*domain.Notification, error) {
	note := &domain.Notification{
		UserID:          userID,
		ThesisID:        thesisID,
		AccessRequestID: accessRequestID,
		Title:           title,
		Message:         message,
		Type:            noteType,
		IsRead:          false,
		CreatedOn:       time.Now(),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.Publish(ctx, *note)
	}
	return note, nil
}

func (s *notificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, userID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, userID)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID int32) error {
	return s.noteRepo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) DeleteAll(ctx context.Context, userID int32) error {
	return s.noteRepo.DeleteAll(ctx, userID)
}

func (s *notificationService) CountUnread(ctx context.Context, userID int32) (int32, error) {
	return s.noteRepo.CountUnread(ctx, userID)
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/notify"
	"thesishub-backend/internal/service"
)

func TestNotificationService_Emit(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates the row and publishes to the bus", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		bus := notify.NewBus()
		var published []domain.Notification
		bus.Subscribe(func(note domain.Notification) {
			published = append(published, note)
		})
		svc := service.NewNotificationService(noteRepo, bus)

		thesisID := int32(7)
		requestID := int32(5)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		note, err := svc.Emit(ctx, 42, "Access Request Approved", "ok", domain.NotificationTypeSuccess, &thesisID, &requestID)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), note.UserID)
		assert.False(t, note.IsRead)

		assert.Len(t, published, 1)
		assert.Equal(t, "Access Request Approved", published[0].Title)
	})

	t.Run("Insert failure returns the error and publishes nothing", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		bus := notify.NewBus()
		var published []domain.Notification
		bus.Subscribe(func(note domain.Notification) {
			published = append(published, note)
		})
		svc := service.NewNotificationService(noteRepo, bus)

		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(errors.New("insert failed"))

		note, err := svc.Emit(ctx, 42, "t", "m", domain.NotificationTypeInfo, nil, nil)
		assert.Error(t, err)
		assert.Nil(t, note)
		assert.Empty(t, published)
	})

	t.Run("Nil publisher is allowed", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		svc := service.NewNotificationService(noteRepo, nil)

		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		note, err := svc.Emit(ctx, 42, "t", "m", domain.NotificationTypeInfo, nil, nil)
		assert.NoError(t, err)
		assert.NotNil(t, note)
	})
}

func TestNotificationService_GetNotifications(t *testing.T) {
	ctx := context.Background()
	noteRepo := new(MockNotificationRepo)
	svc := service.NewNotificationService(noteRepo, nil)

	notes := []domain.Notification{{ID: 1}, {ID: 2}}
	// page 2 with page size 10 means offset 10
	noteRepo.On("List", ctx, int32(42), int32(10), int32(10)).Return(notes, int32(12), nil)

	got, total, err := svc.GetNotifications(ctx, 42, 2, 10)
	assert.NoError(t, err)
	assert.Equal(t, int32(12), total)
	assert.Len(t, got, 2)
}

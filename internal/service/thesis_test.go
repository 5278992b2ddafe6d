package service_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/service"
)

func newThesisFixture() (*MockThesisRepo, *MockObjectStore, *MockAccessService, service.ThesisService) {
	thesisRepo := new(MockThesisRepo)
	objects := new(MockObjectStore)
	access := new(MockAccessService)
	svc := service.NewThesisService(thesisRepo, objects, access, 30)
	return thesisRepo, objects, access, svc
}

func TestThesisService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		thesisRepo, objects, _, svc := newThesisFixture()
		file := strings.NewReader("%PDF-1.4")
		objects.On("Put", ctx, mock.AnythingOfType("string"), file, int64(8), "application/pdf").Return(nil)
		thesisRepo.On("Create", ctx, mock.AnythingOfType("*domain.Thesis")).Return(nil)

		thesis := &domain.Thesis{Title: "Graph Mining", Author: "Alice"}
		err := svc.Upload(ctx, thesis, file, 8, "application/pdf")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(thesis.FileKey, "theses/"))
		assert.True(t, strings.HasSuffix(thesis.FileKey, ".pdf"))
	})

	t.Run("Record failure removes the stored object", func(t *testing.T) {
		thesisRepo, objects, _, svc := newThesisFixture()
		file := strings.NewReader("%PDF-1.4")
		objects.On("Put", ctx, mock.AnythingOfType("string"), file, int64(8), "application/pdf").Return(nil)
		thesisRepo.On("Create", ctx, mock.AnythingOfType("*domain.Thesis")).Return(errors.New("duplicate key"))
		objects.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)

		err := svc.Upload(ctx, &domain.Thesis{Title: "T", Author: "A"}, file, 8, "application/pdf")
		assert.Error(t, err)
		objects.AssertCalled(t, "Delete", ctx, mock.AnythingOfType("string"))
	})

	t.Run("Missing metadata", func(t *testing.T) {
		_, objects, _, svc := newThesisFixture()
		err := svc.Upload(ctx, &domain.Thesis{}, strings.NewReader(""), 0, "application/pdf")
		assert.Error(t, err)
		objects.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestThesisService_GetDownloadURL(t *testing.T) {
	ctx := context.Background()
	thesis := &domain.Thesis{ID: 7, Title: "Graph Mining", FileKey: "theses/abc.pdf"}

	t.Run("Admin bypasses the access check", func(t *testing.T) {
		thesisRepo, objects, access, svc := newThesisFixture()
		thesisRepo.On("GetByID", ctx, int32(7)).Return(thesis, nil)
		objects.On("PresignGet", ctx, "theses/abc.pdf", mock.AnythingOfType("time.Duration")).
			Return("https://store/abc.pdf?sig=x", nil)

		url, err := svc.GetDownloadURL(ctx, 1, domain.RoleAdmin, 7)
		require.NoError(t, err)
		assert.NotEmpty(t, url)
		access.AssertNotCalled(t, "HasActiveAccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Student with active access", func(t *testing.T) {
		thesisRepo, objects, access, svc := newThesisFixture()
		thesisRepo.On("GetByID", ctx, int32(7)).Return(thesis, nil)
		access.On("HasActiveAccess", ctx, int32(42), int32(7), int32(30), mock.AnythingOfType("time.Time")).Return(true, nil)
		objects.On("PresignGet", ctx, "theses/abc.pdf", mock.AnythingOfType("time.Duration")).
			Return("https://store/abc.pdf?sig=x", nil)

		url, err := svc.GetDownloadURL(ctx, 42, domain.RoleStudent, 7)
		require.NoError(t, err)
		assert.NotEmpty(t, url)
	})

	t.Run("Student without access is denied", func(t *testing.T) {
		thesisRepo, objects, access, svc := newThesisFixture()
		thesisRepo.On("GetByID", ctx, int32(7)).Return(thesis, nil)
		access.On("HasActiveAccess", ctx, int32(42), int32(7), int32(30), mock.AnythingOfType("time.Time")).Return(false, nil)

		url, err := svc.GetDownloadURL(ctx, 42, domain.RoleStudent, 7)
		assert.ErrorIs(t, err, service.ErrAccessDenied)
		assert.Empty(t, url)
		objects.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown thesis", func(t *testing.T) {
		thesisRepo, _, _, svc := newThesisFixture()
		thesisRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows)

		_, err := svc.GetDownloadURL(ctx, 42, domain.RoleAdmin, 99)
		assert.ErrorIs(t, err, domain.ErrThesisNotFound)
	})
}

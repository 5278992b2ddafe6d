package postgres

import (
	"database/sql"

	"thesishub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ThesisRepository
	repository.AccessRequestRepository
	repository.NotificationRepository
	repository.BookshelfRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		ThesisRepository:        NewThesisRepository(db),
		AccessRequestRepository: NewAccessRequestRepository(db),
		NotificationRepository:  NewNotificationRepository(db),
		BookshelfRepository:     NewBookshelfRepository(db),
	}
}

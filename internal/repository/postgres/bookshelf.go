package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/repository"
)

type bookshelfRepository struct {
	db *sql.DB
}

func NewBookshelfRepository(db *sql.DB) repository.BookshelfRepository {
	return &bookshelfRepository{db: db}
}

func (r *bookshelfRepository) Create(ctx context.Context, s *domain.Bookshelf) error {
	settings, err := json.Marshal(s.Settings)
	if err != nil {
		return err
	}
	query := `INSERT INTO bookshelves (name, location, capacity, settings, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.Name, s.Location, s.Capacity, settings, time.Now()).Scan(&s.ID)
}

func (r *bookshelfRepository) GetByID(ctx context.Context, id int32) (*domain.Bookshelf, error) {
	s := &domain.Bookshelf{}
	var settings []byte
	query := `SELECT id, name, location, capacity, settings, created_on FROM bookshelves WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Location, &s.Capacity, &settings, &s.CreatedOn)
	if err != nil {
		return nil, err
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &s.Settings); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (r *bookshelfRepository) Update(ctx context.Context, s *domain.Bookshelf) error {
	settings, err := json.Marshal(s.Settings)
	if err != nil {
		return err
	}
	query := `UPDATE bookshelves SET name = $1, location = $2, capacity = $3, settings = $4 WHERE id = $5`
	_, err = r.db.ExecContext(ctx, query, s.Name, s.Location, s.Capacity, settings, s.ID)
	return err
}

func (r *bookshelfRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookshelves WHERE id = $1`, id)
	return err
}

func (r *bookshelfRepository) List(ctx context.Context) ([]domain.Bookshelf, error) {
	query := `SELECT id, name, location, capacity, settings, created_on FROM bookshelves ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shelves []domain.Bookshelf
	for rows.Next() {
		var s domain.Bookshelf
		var settings []byte
		if err := rows.Scan(&s.ID, &s.Name, &s.Location, &s.Capacity, &settings, &s.CreatedOn); err != nil {
			return nil, err
		}
		if len(settings) > 0 {
			if err := json.Unmarshal(settings, &s.Settings); err != nil {
				return nil, err
			}
		}
		shelves = append(shelves, s)
	}
	return shelves, rows.Err()
}

func (r *bookshelfRepository) AssignSlot(ctx context.Context, slot *domain.ShelfSlot) error {
	query := `INSERT INTO shelf_slots (bookshelf_id, thesis_id, position, rfid_tag)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, slot.BookshelfID, slot.ThesisID, slot.Position, slot.RFIDTag).Scan(&slot.ID)
}

func (r *bookshelfRepository) ListSlots(ctx context.Context, bookshelfID int32) ([]domain.ShelfSlot, error) {
	query := `SELECT id, bookshelf_id, thesis_id, position, rfid_tag FROM shelf_slots WHERE bookshelf_id = $1 ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, bookshelfID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []domain.ShelfSlot
	for rows.Next() {
		var s domain.ShelfSlot
		if err := rows.Scan(&s.ID, &s.BookshelfID, &s.ThesisID, &s.Position, &s.RFIDTag); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *bookshelfRepository) ClearSlot(ctx context.Context, slotID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM shelf_slots WHERE id = $1`, slotID)
	return err
}

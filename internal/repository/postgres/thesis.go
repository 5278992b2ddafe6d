package postgres

import (
	"context"
	"database/sql"
	"time"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/repository"
)

type thesisRepository struct {
	db *sql.DB
}

func NewThesisRepository(db *sql.DB) repository.ThesisRepository {
	return &thesisRepository{db: db}
}

const thesisColumns = `id, title, author, college, department, batch, abstract, file_key, qr_code_key, uploaded_by, created_on`

func (r *thesisRepository) Create(ctx context.Context, t *domain.Thesis) error {
	query := `INSERT INTO theses (title, author, college, department, batch, abstract, file_key, qr_code_key, uploaded_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		t.Title, t.Author, t.College, t.Department, t.Batch, t.Abstract, t.FileKey, t.QRCodeKey, t.UploadedBy, time.Now()).Scan(&t.ID)
}

func (r *thesisRepository) GetByID(ctx context.Context, id int32) (*domain.Thesis, error) {
	t := &domain.Thesis{}
	query := `SELECT ` + thesisColumns + ` FROM theses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Author, &t.College, &t.Department, &t.Batch, &t.Abstract, &t.FileKey, &t.QRCodeKey, &t.UploadedBy, &t.CreatedOn)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *thesisRepository) Update(ctx context.Context, t *domain.Thesis) error {
	query := `UPDATE theses SET title = $1, author = $2, college = $3, department = $4, batch = $5, abstract = $6, file_key = $7, qr_code_key = $8
	          WHERE id = $9`
	_, err := r.db.ExecContext(ctx, query, t.Title, t.Author, t.College, t.Department, t.Batch, t.Abstract, t.FileKey, t.QRCodeKey, t.ID)
	return err
}

func (r *thesisRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM theses WHERE id = $1`, id)
	return err
}

func (r *thesisRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Thesis, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + thesisColumns + ` FROM theses ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	theses, err := scanTheses(rows)
	if err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM theses`).Scan(&count); err != nil {
		return nil, 0, err
	}
	return theses, count, nil
}

// Search delegates matching to ILIKE substring predicates, mirroring the
// portal's original substring search.
func (r *thesisRepository) Search(ctx context.Context, query, college, batch string, page, pageSize int32) ([]domain.Thesis, int32, error) {
	offset := (page - 1) * pageSize
	pattern := "%" + query + "%"
	sqlQuery := `SELECT ` + thesisColumns + ` FROM theses
	             WHERE (title ILIKE $1 OR author ILIKE $1 OR college ILIKE $1 OR department ILIKE $1 OR batch ILIKE $1)
	               AND ($2 = '' OR college = $2)
	               AND ($3 = '' OR batch = $3)
	             ORDER BY created_on DESC LIMIT $4 OFFSET $5`
	rows, err := r.db.QueryContext(ctx, sqlQuery, pattern, college, batch, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	theses, err := scanTheses(rows)
	if err != nil {
		return nil, 0, err
	}

	var count int32
	countQuery := `SELECT count(*) FROM theses
	               WHERE (title ILIKE $1 OR author ILIKE $1 OR college ILIKE $1 OR department ILIKE $1 OR batch ILIKE $1)
	                 AND ($2 = '' OR college = $2)
	                 AND ($3 = '' OR batch = $3)`
	if err := r.db.QueryRowContext(ctx, countQuery, pattern, college, batch).Scan(&count); err != nil {
		return nil, 0, err
	}
	return theses, count, nil
}

func (r *thesisRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM theses`).Scan(&count)
	return count, err
}

func scanTheses(rows *sql.Rows) ([]domain.Thesis, error) {
	var theses []domain.Thesis
	for rows.Next() {
		var t domain.Thesis
		if err := rows.Scan(&t.ID, &t.Title, &t.Author, &t.College, &t.Department, &t.Batch, &t.Abstract, &t.FileKey, &t.QRCodeKey, &t.UploadedBy, &t.CreatedOn); err != nil {
			return nil, err
		}
		theses = append(theses, t)
	}
	return theses, rows.Err()
}

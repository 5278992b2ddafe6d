package postgres

import (
	"context"
	"database/sql"
	"time"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, role, department, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Role, u.Department, time.Now()).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, password_hash, role, department, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Department, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, password_hash, role, department, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Department, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name = $1, email = $2, password_hash = $3, role = $4, department = $5 WHERE id = $6`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Role, u.Department, u.ID)
	return err
}

func (r *userRepository) ListAdmins(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, name, email, password_hash, role, department, created_on FROM users WHERE role = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Department, &u.CreatedOn); err != nil {
			return nil, err
		}
		admins = append(admins, u)
	}
	return admins, rows.Err()
}

func (r *userRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count)
	return count, err
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/logger"
	"thesishub-backend/internal/repository"
)

type accessRequestRepository struct {
	db *sql.DB
}

func NewAccessRequestRepository(db *sql.DB) repository.AccessRequestRepository {
	return &accessRequestRepository{db: db}
}

const accessRequestColumns = `id, requester_id, thesis_id, purpose, duration_days, status, requested_on, approved_on, removed_on`

func (r *accessRequestRepository) Create(ctx context.Context, req *domain.AccessRequest) error {
	query := `INSERT INTO access_requests (requester_id, thesis_id, purpose, duration_days, status, requested_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	logger.DatabaseCall("INSERT", "access_requests", "requesterID", req.RequesterID, "thesisID", req.ThesisID)
	err := r.db.QueryRowContext(ctx, query,
		req.RequesterID, req.ThesisID, req.Purpose, req.DurationDays, req.Status, req.RequestedOn).Scan(&req.ID)
	logger.DatabaseResult("INSERT", 1, err, "requestID", req.ID)
	return err
}

func (r *accessRequestRepository) GetByID(ctx context.Context, id int32) (*domain.AccessRequest, error) {
	req := &domain.AccessRequest{}
	query := `SELECT ` + accessRequestColumns + ` FROM access_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.RequesterID, &req.ThesisID, &req.Purpose, &req.DurationDays, &req.Status, &req.RequestedOn, &req.ApprovedOn, &req.RemovedOn)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *accessRequestRepository) ListByRequester(ctx context.Context, requesterID int32) ([]domain.AccessRequest, error) {
	query := `SELECT ` + accessRequestColumns + ` FROM access_requests WHERE requester_id = $1 ORDER BY requested_on DESC`
	return r.queryRequests(ctx, query, requesterID)
}

func (r *accessRequestRepository) ListByStatus(ctx context.Context, status domain.AccessRequestStatus) ([]domain.AccessRequest, error) {
	query := `SELECT ` + accessRequestColumns + ` FROM access_requests WHERE status = $1 ORDER BY requested_on DESC`
	return r.queryRequests(ctx, query, status)
}

func (r *accessRequestRepository) List(ctx context.Context) ([]domain.AccessRequest, error) {
	query := `SELECT ` + accessRequestColumns + ` FROM access_requests ORDER BY requested_on DESC`
	return r.queryRequests(ctx, query)
}

func (r *accessRequestRepository) CountByStatus(ctx context.Context, status domain.AccessRequestStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM access_requests WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *accessRequestRepository) GetApproved(ctx context.Context, requesterID, thesisID int32) (*domain.AccessRequest, error) {
	req := &domain.AccessRequest{}
	query := `SELECT ` + accessRequestColumns + ` FROM access_requests
	          WHERE requester_id = $1 AND thesis_id = $2 AND status = $3
	          ORDER BY approved_on DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, requesterID, thesisID, domain.AccessRequestStatusApproved).Scan(
		&req.ID, &req.RequesterID, &req.ThesisID, &req.Purpose, &req.DurationDays, &req.Status, &req.RequestedOn, &req.ApprovedOn, &req.RemovedOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *accessRequestRepository) MarkApproved(ctx context.Context, id int32, approvedOn time.Time) (bool, error) {
	query := `UPDATE access_requests SET status = $1, approved_on = $2 WHERE id = $3 AND status = $4`
	return r.conditionalUpdate(ctx, query, domain.AccessRequestStatusApproved, approvedOn, id, domain.AccessRequestStatusPending)
}

func (r *accessRequestRepository) MarkRejected(ctx context.Context, id int32) (bool, error) {
	query := `UPDATE access_requests SET status = $1 WHERE id = $2 AND status = $3`
	return r.conditionalUpdate(ctx, query, domain.AccessRequestStatusRejected, id, domain.AccessRequestStatusPending)
}

func (r *accessRequestRepository) MarkRemoved(ctx context.Context, id int32, removedOn time.Time) (bool, error) {
	query := `UPDATE access_requests SET status = $1, removed_on = $2 WHERE id = $3 AND status = $4`
	return r.conditionalUpdate(ctx, query, domain.AccessRequestStatusRemoved, removedOn, id, domain.AccessRequestStatusApproved)
}

func (r *accessRequestRepository) conditionalUpdate(ctx context.Context, query string, args ...any) (bool, error) {
	logger.DatabaseCall("UPDATE", "access_requests", "args", args)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	logger.DatabaseResult("UPDATE", rows, nil)
	return rows > 0, nil
}

func (r *accessRequestRepository) ExpireDue(ctx context.Context, cutoff, removedOn time.Time) ([]domain.AccessRequest, error) {
	query := `UPDATE access_requests
	          SET status = $1, removed_on = $2
	          WHERE status = $3 AND approved_on <= $4
	          RETURNING ` + accessRequestColumns
	logger.DatabaseCall("UPDATE", "access_requests", "cutoff", cutoff)
	rows, err := r.db.QueryContext(ctx, query,
		domain.AccessRequestStatusExpired, removedOn, domain.AccessRequestStatusApproved, cutoff)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return nil, err
	}
	defer rows.Close()
	expired, err := scanAccessRequests(rows)
	logger.DatabaseResult("UPDATE", int64(len(expired)), err)
	return expired, err
}

func (r *accessRequestRepository) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.AccessRequest, error) {
	query := `SELECT ` + accessRequestColumns + ` FROM access_requests
	          WHERE status = $1 AND approved_on > $2 AND approved_on <= $3
	          ORDER BY approved_on`
	return r.queryRequests(ctx, query, domain.AccessRequestStatusApproved, from, to)
}

func (r *accessRequestRepository) queryRequests(ctx context.Context, query string, args ...any) ([]domain.AccessRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAccessRequests(rows)
}

func scanAccessRequests(rows *sql.Rows) ([]domain.AccessRequest, error) {
	var reqs []domain.AccessRequest
	for rows.Next() {
		var req domain.AccessRequest
		if err := rows.Scan(&req.ID, &req.RequesterID, &req.ThesisID, &req.Purpose, &req.DurationDays, &req.Status, &req.RequestedOn, &req.ApprovedOn, &req.RemovedOn); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

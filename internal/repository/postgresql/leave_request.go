package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workdocs/leave-engine-go/internal/domain/leave"
	"github.com/workdocs/leave-engine-go/internal/pkg/database"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) leave.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

func (r *requestRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id,
			start_date, end_date, days_requested, leave_type, reason,
			status, created_at, updated_at
		) VALUES (
			$1, $2,
			$3, $4, $5, $6, $7,
			$8, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), req.EmployeeID,
		req.StartDate, req.EndDate, req.DaysRequested, req.LeaveType, req.Reason,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.Request{}, err
	}

	return req, nil
}

func (r *requestRepositoryImpl) getByID(ctx context.Context, id string, forUpdate bool) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id,
			   lr.start_date, lr.end_date, lr.days_requested, lr.leave_type, lr.reason,
			   lr.status, lr.approved_at,
			   lr.created_at, lr.updated_at,
			   e.full_name as employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`
	if forUpdate {
		query += " FOR UPDATE OF lr"
	}

	var req leave.Request
	var employeeName string

	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID,
		&req.StartDate, &req.EndDate, &req.DaysRequested, &req.LeaveType, &req.Reason,
		&req.Status, &req.ApprovedAt,
		&req.CreatedAt, &req.UpdatedAt,
		&employeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}

	req.EmployeeName = &employeeName

	excluded, err := r.GetExcludedDates(ctx, req.ID)
	if err != nil {
		return leave.Request{}, err
	}
	req.ExcludedDates = excluded

	return req, nil
}

func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	return r.getByID(ctx, id, false)
}

func (r *requestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.Request, error) {
	return r.getByID(ctx, id, true)
}

func (r *requestRepositoryImpl) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.end_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.start_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM leave_requests lr
		WHERE %s
	`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT lr.id, lr.employee_id,
			   lr.start_date, lr.end_date, lr.days_requested, lr.leave_type, lr.reason,
			   lr.status, lr.approved_at,
			   lr.created_at, lr.updated_at,
			   e.full_name as employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE %s
		ORDER BY lr.start_date DESC, lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := scanRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func scanRequests(rows pgx.Rows) ([]leave.Request, error) {
	requests := make([]leave.Request, 0)
	for rows.Next() {
		var req leave.Request
		var employeeName string

		err := rows.Scan(
			&req.ID, &req.EmployeeID,
			&req.StartDate, &req.EndDate, &req.DaysRequested, &req.LeaveType, &req.Reason,
			&req.Status, &req.ApprovedAt,
			&req.CreatedAt, &req.UpdatedAt,
			&employeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}

		req.EmployeeName = &employeeName
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *requestRepositoryImpl) Update(ctx context.Context, req leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET start_date = $1, end_date = $2, days_requested = $3,
			leave_type = $4, reason = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.StartDate, req.EndDate, req.DaysRequested,
		req.LeaveType, req.Reason, req.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrRequestNotFound
		}
		return fmt.Errorf("failed to update leave request with id %s: %w", req.ID, err)
	}
	return nil
}

func (r *requestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, approvedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, approvedAt, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrRequestNotFound
		}
		return fmt.Errorf("failed to update status for leave request with id %s: %w", id, err)
	}
	return nil
}

func (r *requestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Excluded dates cascade via FK.
	query := `
		DELETE FROM leave_requests
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepositoryImpl) ReplaceExcludedDates(ctx context.Context, requestID string, dates []leave.ExcludedDate) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_request_excluded_dates WHERE leave_request_id = $1`, requestID); err != nil {
		return fmt.Errorf("failed to clear excluded dates: %w", err)
	}

	for _, d := range dates {
		_, err := q.Exec(ctx, `
			INSERT INTO leave_request_excluded_dates (id, leave_request_id, date, reason)
			VALUES ($1, $2, $3, $4)
		`, uuid.NewString(), requestID, d.Date, d.Reason)
		if err != nil {
			return fmt.Errorf("failed to insert excluded date: %w", err)
		}
	}

	return nil
}

func (r *requestRepositoryImpl) GetExcludedDates(ctx context.Context, requestID string) ([]leave.ExcludedDate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, leave_request_id, date, reason
		FROM leave_request_excluded_dates
		WHERE leave_request_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := make([]leave.ExcludedDate, 0)
	for rows.Next() {
		var d leave.ExcludedDate
		if err := rows.Scan(&d.ID, &d.LeaveRequestID, &d.Date, &d.Reason); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

func (r *requestRepositoryImpl) ListApprovedIntersecting(ctx context.Context, from, to time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id,
			   lr.start_date, lr.end_date, lr.days_requested, lr.leave_type, lr.reason,
			   lr.status, lr.approved_at,
			   lr.created_at, lr.updated_at,
			   e.full_name as employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.status = $1
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		ORDER BY lr.start_date, e.full_name
	`

	rows, err := q.Query(ctx, query, leave.RequestStatusApproved, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leave requests: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

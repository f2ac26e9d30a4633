package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workdocs/leave-engine-go/internal/domain/leave"
	"github.com/workdocs/leave-engine-go/internal/pkg/database"
)

type entitlementRepositoryImpl struct {
	db *database.DB
}

func NewEntitlementRepository(db *database.DB) leave.EntitlementRepository {
	return &entitlementRepositoryImpl{db: db}
}

const entitlementColumns = `
	id, employee_id, year,
	total_days, carried_over_days, manual_adjustment_days, used_days,
	created_at, updated_at
`

func scanEntitlement(row pgx.Row) (leave.Entitlement, error) {
	var ent leave.Entitlement
	err := row.Scan(
		&ent.ID, &ent.EmployeeID, &ent.Year,
		&ent.TotalDays, &ent.CarriedOverDays, &ent.ManualAdjustmentDays, &ent.UsedDays,
		&ent.CreatedAt, &ent.UpdatedAt,
	)
	return ent, err
}

func (r *entitlementRepositoryImpl) getByEmployeeYear(ctx context.Context, employeeID string, year int, forUpdate bool) (leave.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entitlementColumns + `
		FROM leave_entitlements
		WHERE employee_id = $1 AND year = $2
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	ent, err := scanEntitlement(q.QueryRow(ctx, query, employeeID, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Entitlement{}, leave.ErrEntitlementNotFound
		}
		return leave.Entitlement{}, err
	}

	return ent, nil
}

func (r *entitlementRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID string, year int) (leave.Entitlement, error) {
	return r.getByEmployeeYear(ctx, employeeID, year, false)
}

func (r *entitlementRepositoryImpl) GetByEmployeeYearForUpdate(ctx context.Context, employeeID string, year int) (leave.Entitlement, error) {
	return r.getByEmployeeYear(ctx, employeeID, year, true)
}

// GetOrCreate implements leave.EntitlementRepository. The insert races safely
// against concurrent first touches of the same (employee, year): ON CONFLICT
// DO NOTHING yields no row, and the follow-up select picks up the winner's.
func (r *entitlementRepositoryImpl) GetOrCreate(ctx context.Context, employeeID string, year, totalDays int) (leave.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_entitlements (
			id, employee_id, year,
			total_days, carried_over_days, manual_adjustment_days, used_days,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, 0, 0, 0, NOW(), NOW())
		ON CONFLICT (employee_id, year) DO NOTHING
		RETURNING ` + entitlementColumns

	ent, err := scanEntitlement(q.QueryRow(ctx, query, uuid.NewString(), employeeID, year, totalDays))
	if err == nil {
		return ent, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.Entitlement{}, err
	}

	return r.GetByEmployeeYear(ctx, employeeID, year)
}

func (r *entitlementRepositoryImpl) UpdateAdjustments(ctx context.Context, employeeID string, year, carriedOverDays, manualAdjustmentDays int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_entitlements
		SET carried_over_days = $1, manual_adjustment_days = $2, updated_at = NOW()
		WHERE employee_id = $3 AND year = $4
	`

	commandTag, err := q.Exec(ctx, query, carriedOverDays, manualAdjustmentDays, employeeID, year)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("entitlement for employee %s year %d: %w", employeeID, year, leave.ErrEntitlementNotFound)
	}
	return nil
}

func (r *entitlementRepositoryImpl) AddCarriedOverDays(ctx context.Context, employeeID string, year, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_entitlements
		SET carried_over_days = carried_over_days + $1, updated_at = NOW()
		WHERE employee_id = $2 AND year = $3
	`

	commandTag, err := q.Exec(ctx, query, days, employeeID, year)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("entitlement for employee %s year %d: %w", employeeID, year, leave.ErrEntitlementNotFound)
	}
	return nil
}

// AddUsedDays debits (positive days) or credits (negative days) the ledger
// row. The increment is a single UPDATE, so concurrent approvals for the same
// employee and year serialize on the row without lost updates.
func (r *entitlementRepositoryImpl) AddUsedDays(ctx context.Context, employeeID string, year, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_entitlements
		SET used_days = used_days + $1, updated_at = NOW()
		WHERE employee_id = $2 AND year = $3
	`

	commandTag, err := q.Exec(ctx, query, days, employeeID, year)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("entitlement for employee %s year %d: %w", employeeID, year, leave.ErrEntitlementNotFound)
	}
	return nil
}

func (r *entitlementRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entitlementColumns + `
		FROM leave_entitlements
		WHERE employee_id = $1
		ORDER BY year DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entitlements := make([]leave.Entitlement, 0)
	for rows.Next() {
		var ent leave.Entitlement
		if err := rows.Scan(
			&ent.ID, &ent.EmployeeID, &ent.Year,
			&ent.TotalDays, &ent.CarriedOverDays, &ent.ManualAdjustmentDays, &ent.UsedDays,
			&ent.CreatedAt, &ent.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entitlements = append(entitlements, ent)
	}

	return entitlements, rows.Err()
}

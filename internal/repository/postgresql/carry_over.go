package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/workdocs/leave-engine-go/internal/domain/leave"
	"github.com/workdocs/leave-engine-go/internal/pkg/database"
)

type carryOverRepositoryImpl struct {
	db *database.DB
}

func NewCarryOverRepository(db *database.DB) leave.CarryOverRepository {
	return &carryOverRepositoryImpl{db: db}
}

// Record implements leave.CarryOverRepository. The unique constraint on
// (employee_id, from_year, to_year) is the idempotency guard: a second
// invocation for the same year pair reports ErrCarryOverAlreadyDone instead
// of double-adding the carried amount.
func (r *carryOverRepositoryImpl) Record(ctx context.Context, co leave.CarryOver) (leave.CarryOver, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_carry_overs (id, employee_id, from_year, to_year, days, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), co.EmployeeID, co.FromYear, co.ToYear, co.Days,
	).Scan(&co.ID, &co.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return leave.CarryOver{}, leave.ErrCarryOverAlreadyDone
		}
		return leave.CarryOver{}, err
	}

	return co, nil
}

func (r *carryOverRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.CarryOver, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, from_year, to_year, days, created_at
		FROM leave_carry_overs
		WHERE employee_id = $1
		ORDER BY from_year DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carryOvers := make([]leave.CarryOver, 0)
	for rows.Next() {
		var co leave.CarryOver
		if err := rows.Scan(&co.ID, &co.EmployeeID, &co.FromYear, &co.ToYear, &co.Days, &co.CreatedAt); err != nil {
			return nil, err
		}
		carryOvers = append(carryOvers, co)
	}

	return carryOvers, rows.Err()
}

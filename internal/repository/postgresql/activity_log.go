package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/workdocs/leave-engine-go/internal/domain/activity"
	"github.com/workdocs/leave-engine-go/internal/pkg/database"
)

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

func (r *activityRepositoryImpl) Insert(ctx context.Context, entry activity.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activity_logs (id, entity_type, entity_id, action, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	_, err := q.Exec(ctx, query,
		uuid.NewString(), entry.EntityType, entry.EntityID, entry.Action, entry.ActorID,
	)
	return err
}

func (r *activityRepositoryImpl) ListByEntity(ctx context.Context, entityType, entityID string) ([]activity.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, entity_type, entity_id, action, actor_id, created_at
		FROM activity_logs
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, entityType, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]activity.Entry, 0)
	for rows.Next() {
		var entry activity.Entry
		if err := rows.Scan(
			&entry.ID, &entry.EntityType, &entry.EntityID, &entry.Action, &entry.ActorID, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

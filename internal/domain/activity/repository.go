package activity

import "context"

// ActivityRepository - interface for the activity_logs table
type ActivityRepository interface {
	Insert(ctx context.Context, entry Entry) error
	ListByEntity(ctx context.Context, entityType, entityID string) ([]Entry, error)
}

package activity

import (
	"context"
	"log/slog"

	"github.com/workdocs/leave-engine-go/internal/domain/activity"
)

// Service emits audit events to the activity log. Emission is
// fire-and-forget: failures are logged, never propagated, so an unavailable
// audit sink cannot fail the operation being recorded.
type Service struct {
	activity.ActivityRepository
}

func NewActivityService(repo activity.ActivityRepository) *Service {
	return &Service{ActivityRepository: repo}
}

func (s *Service) Record(ctx context.Context, entityType, entityID string, action activity.Action, actorID *string) {
	// Detached from the request context so a cancelled request still gets
	// its event recorded.
	entry := activity.Entry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		ActorID:    actorID,
	}
	if err := s.Insert(context.WithoutCancel(ctx), entry); err != nil {
		slog.Error("failed to record activity",
			"entity_type", entityType,
			"entity_id", entityID,
			"action", action,
			"error", err,
		)
	}
}

func (s *Service) History(ctx context.Context, entityType, entityID string) ([]activity.Entry, error) {
	return s.ListByEntity(ctx, entityType, entityID)
}

package activity

import "time"

type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionDelete  Action = "delete"
)

// Entry is one audit event. Emission is fire-and-forget: a failed insert is
// logged and never fails the operation that produced it.
type Entry struct {
	ID         string
	EntityType string
	EntityID   string
	Action     Action
	ActorID    *string

	CreatedAt time.Time
}

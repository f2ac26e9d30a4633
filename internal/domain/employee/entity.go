package employee

import "time"

// Employee is owned by the HR subsystem. The leave engine only reads the
// Saturday-work policy flag; the rest is carried for display.
type Employee struct {
	ID            string
	FullName      string
	WorksSaturday bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SpecialistID uuid.UUID `json:"specialist_id" binding:"required"`
	ServiceID    uuid.UUID `json:"service_id" binding:"required"`
	ScheduledAt  time.Time `json:"scheduled_at" binding:"required"`
	// DurationMin overrides the service default when set.
	DurationMin      int  `json:"duration_min,omitempty"`
	ParticipantCount *int `json:"participant_count,omitempty"`
}

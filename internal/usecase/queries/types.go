package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	CustomerID       uuid.UUID `json:"customer_id"`
	SpecialistID     uuid.UUID `json:"specialist_id"`
	SpecialistName   string    `json:"specialist_name"`
	ServiceID        uuid.UUID `json:"service_id"`
	ServiceName      string    `json:"service_name"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	DurationMin      int       `json:"duration_min"`
	Status           string    `json:"status"`
	ParticipantCount int       `json:"participant_count"`
	GroupSessionID   *string   `json:"group_session_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	DurationMin int       `json:"duration_min"`
	Status      string    `json:"status"`
}

type IntervalView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type DayAvailabilityView struct {
	SpecialistID  uuid.UUID      `json:"specialist_id"`
	Date          string         `json:"date"`
	Timezone      string         `json:"timezone"`
	OpenIntervals []IntervalView `json:"open_intervals"`
	Slots         []IntervalView `json:"slots"`
}

type GroupSpotsView struct {
	ServiceID    uuid.UUID `json:"service_id"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Available    bool      `json:"available"`
	SpotsLeft    *int      `json:"spots_left,omitempty"`
	CurrentCount int       `json:"current_count"`
}

package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads.

type ServiceSnapshot struct {
	ID              uuid.UUID
	SpecialistID    uuid.UUID
	Name            string
	DurationMin     int
	MaxParticipants *int
}

// IsGroup reports whether the service is booked as a shared session: a
// configured participant limit is what distinguishes group services.
func (s *ServiceSnapshot) IsGroup() bool {
	return s.MaxParticipants != nil
}

type SpecialistSnapshot struct {
	ID           uuid.UUID
	DisplayName  string
	Timezone     string
	WorkingHours []byte
	CreatedAt    time.Time
}

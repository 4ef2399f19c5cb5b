//go:build unit || e2e

package builder

import (
	"time"

	dombooking "miyzapis/internal/domain/booking"
	reqdto "miyzapis/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CustomerID       uuid.UUID
	SpecialistID     uuid.UUID
	ServiceID        uuid.UUID
	ScheduledAt      time.Time
	DurationMin      int
	ParticipantCount int
	Group            bool
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		CustomerID:       uuid.New(),
		SpecialistID:     uuid.New(),
		ServiceID:        uuid.New(),
		ScheduledAt:      time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		DurationMin:      60,
		ParticipantCount: 1,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(
		b.CustomerID, b.SpecialistID, b.ServiceID,
		b.ScheduledAt, b.DurationMin, b.ParticipantCount, b.Group,
	)
}

// BuildReconstructed returns a persisted-looking booking in the given
// status without running constructor validation.
func (b *BookingBuilder) BuildReconstructed(status dombooking.Status) *dombooking.Booking {
	var groupSessionID *string
	if b.Group {
		key := dombooking.GroupSessionKey(b.ServiceID, b.ScheduledAt)
		groupSessionID = &key
	}
	now := time.Now()
	return dombooking.ReconstructBooking(
		uuid.New(), b.CustomerID, b.SpecialistID, b.ServiceID,
		b.ScheduledAt, b.DurationMin, status, b.ParticipantCount,
		groupSessionID, now, now,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	participants := b.ParticipantCount
	return reqdto.CreateBookingRequest{
		SpecialistID:     b.SpecialistID,
		ServiceID:        b.ServiceID,
		ScheduledAt:      b.ScheduledAt,
		DurationMin:      b.DurationMin,
		ParticipantCount: &participants,
	}
}

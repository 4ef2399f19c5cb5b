package booking

import (
	"errors"
	"time"

	"miyzapis/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration     = errors.New("duration must be positive")
	ErrInvalidParticipants = errors.New("participant count must be positive")
	ErrInvalidStatus       = errors.New("invalid booking status")
)

type Booking struct {
	id               uuid.UUID
	customerID       uuid.UUID
	specialistID     uuid.UUID
	serviceID        uuid.UUID
	scheduledAt      time.Time
	duration         time.Duration
	status           Status
	participantCount int
	groupSessionID   *string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewBooking builds the admission candidate. Group bookings derive their
// session key from (serviceID, scheduledAt); individual bookings carry
// none. Status starts at PENDING, later transitions belong to the
// payment and booking-management flows.
func NewBooking(
	customerID, specialistID, serviceID uuid.UUID,
	scheduledAt time.Time,
	durationMin int,
	participantCount int,
	group bool,
) (*Booking, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if participantCount <= 0 {
		return nil, ErrInvalidParticipants
	}

	b := &Booking{
		id:               uuid.New(),
		customerID:       customerID,
		specialistID:     specialistID,
		serviceID:        serviceID,
		scheduledAt:      scheduledAt,
		duration:         time.Duration(durationMin) * time.Minute,
		status:           StatusPending,
		participantCount: participantCount,
	}
	if group {
		key := GroupSessionKey(serviceID, scheduledAt)
		b.groupSessionID = &key
	}
	return b, nil
}

func ReconstructBooking(
	id, customerID, specialistID, serviceID uuid.UUID,
	scheduledAt time.Time,
	durationMin int,
	status Status,
	participantCount int,
	groupSessionID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		customerID:       customerID,
		specialistID:     specialistID,
		serviceID:        serviceID,
		scheduledAt:      scheduledAt,
		duration:         time.Duration(durationMin) * time.Minute,
		status:           status,
		participantCount: participantCount,
		groupSessionID:   groupSessionID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Interval is the occupied calendar range [scheduledAt, scheduledAt+duration).
func (b *Booking) Interval() (schedule.Interval, error) {
	return schedule.NewInterval(b.scheduledAt, b.scheduledAt.Add(b.duration))
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) CustomerID() uuid.UUID   { return b.customerID }
func (b *Booking) SpecialistID() uuid.UUID { return b.specialistID }
func (b *Booking) ServiceID() uuid.UUID    { return b.serviceID }
func (b *Booking) ScheduledAt() time.Time  { return b.scheduledAt }
func (b *Booking) DurationMin() int        { return int(b.duration / time.Minute) }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) ParticipantCount() int   { return b.participantCount }
func (b *Booking) GroupSessionID() *string { return b.groupSessionID }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }

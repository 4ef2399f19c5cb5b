package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"miyzapis/internal/domain/booking"
	"miyzapis/internal/infra"
	"miyzapis/internal/pkg/clock"
	"miyzapis/internal/pkg/errs"
	"miyzapis/internal/usecase/queries"
	"miyzapis/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpecialistNotFound      = errs.New("specialist not found")
	ErrServiceNotFound         = errs.New("service not found")
	ErrServiceMismatch         = errs.New("service does not belong to specialist")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrTimeConflict            = errs.New("booking time conflict")
	ErrCapacityExceeded        = errs.New("group session capacity exceeded")
	ErrAdmissionTransient      = errs.New("booking admission temporarily unavailable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// TimeConflictError carries the occupied interval so the client can say
// which range is no longer free. Matched via errors.Is(err, ErrTimeConflict).
type TimeConflictError struct {
	ConflictStart time.Time
	ConflictEnd   time.Time
}

func (e *TimeConflictError) Error() string {
	return fmt.Sprintf("requested time overlaps existing booking [%s,%s)",
		e.ConflictStart.Format(time.RFC3339), e.ConflictEnd.Format(time.RFC3339))
}

// CapacityError carries the remaining seat count for the "only N spots
// left" message. Matched via errors.Is(err, ErrCapacityExceeded).
type CapacityError struct {
	SpotsLeft    int
	CurrentCount int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("group session full: %d spots left, %d taken", e.SpotsLeft, e.CurrentCount)
}

type AdmitBookingParams struct {
	CustomerID   uuid.UUID
	SpecialistID uuid.UUID
	ServiceID    uuid.UUID
	ScheduledAt  time.Time
	// DurationMin falls back to the service's configured duration when zero.
	DurationMin      int
	ParticipantCount *int
}

type BookingCommands interface {
	AdmitBooking(ctx context.Context, params AdmitBookingParams) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

// AdmitBooking decides whether the requested appointment can be placed
// on the specialist's calendar and persists it if so.
//
// The conflict/capacity check and the insert run inside one
// serializable transaction: a pre-validated decision would otherwise be
// stale by the time of the insert, and two concurrent requests for the
// same slot could both observe "free" and both succeed. Serialization
// failures are retried by the unit of work; exhaustion surfaces as
// ErrAdmissionTransient.
func (c *bookingCommandsImpl) AdmitBooking(ctx context.Context, params AdmitBookingParams) (*queries.BookingView, error) {
	svc, specialist, err := c.validateTargets(ctx, params)
	if err != nil {
		return nil, err
	}

	entity, err := c.buildCandidate(params, svc)
	if err != nil {
		return nil, err
	}

	loc := specialistLocation(specialist)

	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		if svc.IsGroup() {
			return c.admitGroup(ctx, tx, entity, svc)
		}
		return c.admitIndividual(ctx, tx, entity, loc)
	})
	if err != nil {
		if errors.Is(err, shared.ErrTxRetriesExhausted) {
			return nil, errs.Mark(err, ErrAdmissionTransient)
		}
		return nil, err
	}

	view, err := c.bookingQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) validateTargets(ctx context.Context, params AdmitBookingParams) (*shared.ServiceSnapshot, *shared.SpecialistSnapshot, error) {
	reads := c.uow.CommandReads()

	svc, err := reads.ServiceByID(ctx, params.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrServiceNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if svc.SpecialistID != params.SpecialistID {
		return nil, nil, ErrServiceMismatch
	}

	specialist, err := reads.SpecialistByID(ctx, params.SpecialistID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrSpecialistNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return svc, specialist, nil
}

func (c *bookingCommandsImpl) buildCandidate(params AdmitBookingParams, svc *shared.ServiceSnapshot) (*booking.Booking, error) {
	durationMin := params.DurationMin
	if durationMin == 0 {
		durationMin = svc.DurationMin
	}

	participants := 1
	if params.ParticipantCount != nil {
		participants = *params.ParticipantCount
	}

	entity, err := booking.NewBooking(
		params.CustomerID,
		params.SpecialistID,
		params.ServiceID,
		params.ScheduledAt,
		durationMin,
		participants,
		svc.IsGroup(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return entity, nil
}

func (c *bookingCommandsImpl) admitGroup(ctx context.Context, tx shared.Tx, entity *booking.Booking, svc *shared.ServiceSnapshot) error {
	key := entity.GroupSessionID()
	if key == nil {
		return errs.Mark(errs.New("group booking missing session key"), ErrDomainValidation)
	}

	current, err := tx.Reads().GroupParticipantCount(ctx, *key)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	spots := booking.AvailableSpots(current, svc.MaxParticipants)
	if !booking.CanAccommodate(entity.ParticipantCount(), spots) {
		left := 0
		if spots.SpotsLeft != nil {
			left = *spots.SpotsLeft
		}
		return errs.Mark(&CapacityError{SpotsLeft: left, CurrentCount: current}, ErrCapacityExceeded)
	}

	return c.insert(ctx, tx, entity)
}

func (c *bookingCommandsImpl) admitIndividual(ctx context.Context, tx shared.Tx, entity *booking.Booking, loc *time.Location) error {
	candidate, err := entity.Interval()
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	dayStart := midnightOf(entity.ScheduledAt(), loc)
	existing, err := tx.Reads().ActiveBookingsForDay(ctx, entity.SpecialistID(), dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if conflict := booking.FindConflict(candidate, existing); conflict != nil {
		iv, ivErr := conflict.Interval()
		if ivErr != nil {
			return errs.Mark(ivErr, ErrDatabaseOperationFailed)
		}
		return errs.Mark(&TimeConflictError{
			ConflictStart: iv.Start(),
			ConflictEnd:   iv.End(),
		}, ErrTimeConflict)
	}

	return c.insert(ctx, tx, entity)
}

func (c *bookingCommandsImpl) insert(ctx context.Context, tx shared.Tx, entity *booking.Booking) error {
	if _, err := tx.Bookings().Create(ctx, tx.DB(), entity); err != nil {
		// The exclusion constraint is the backstop for anything the
		// in-transaction check did not see.
		if infra.IsKind(err, infra.KindConflict) {
			iv, ivErr := entity.Interval()
			if ivErr != nil {
				return errs.Mark(ivErr, ErrDomainValidation)
			}
			return errs.Mark(&TimeConflictError{
				ConflictStart: iv.Start(),
				ConflictEnd:   iv.End(),
			}, ErrTimeConflict)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	payload, err := json.Marshal(map[string]any{
		"booking_id":    entity.ID(),
		"customer_id":   entity.CustomerID(),
		"specialist_id": entity.SpecialistID(),
		"scheduled_at":  entity.ScheduledAt(),
		"type":          "booking_created",
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Notifications().CreateJob(ctx, tx.DB(), "push", "booking_created", payload, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func specialistLocation(specialist *shared.SpecialistSnapshot) *time.Location {
	loc, err := time.LoadLocation(specialist.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func midnightOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

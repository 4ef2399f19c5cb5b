package queries

import (
	"context"
	"time"

	"miyzapis/internal/domain/booking"
	"miyzapis/internal/domain/schedule"
	"miyzapis/internal/infra"
	"miyzapis/internal/pkg/config"
	"miyzapis/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSpecialistNotFound = errs.New("specialist not found")
	ErrServiceNotFound    = errs.New("service not found")
	ErrInvalidDate        = errs.New("invalid date")
)

type AvailabilityQueries interface {
	DayAvailability(ctx context.Context, specialistID uuid.UUID, date string) (*DayAvailabilityView, error)
	GroupSpots(ctx context.Context, serviceID uuid.UUID, scheduledAt time.Time) (*GroupSpotsView, error)
}

type availabilityQueriesImpl struct {
	specialists SpecialistReader
	services    ServiceReader
	bookings    BookingReader
	slotMinutes int
}

func NewAvailabilityQueries(
	specialists SpecialistReader,
	services ServiceReader,
	bookings BookingReader,
	cfg config.Config,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		specialists: specialists,
		services:    services,
		bookings:    bookings,
		slotMinutes: cfg.Booking.SlotMinutes,
	}
}

// DayAvailability renders one specialist's calendar for one date in the
// specialist's own timezone: the resolved open intervals minus already
// booked time, plus the discrete start-time grid derived from them.
func (q *availabilityQueriesImpl) DayAvailability(ctx context.Context, specialistID uuid.UUID, date string) (*DayAvailabilityView, error) {
	specialist, err := q.specialists.FindByID(ctx, specialistID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSpecialistNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	loc, err := time.LoadLocation(specialist.Timezone)
	if err != nil {
		loc = time.UTC
	}

	dayStart, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	// Unparseable stored hours degrade to a closed week rather than an
	// error; an empty calendar is the safe answer.
	ws := schedule.ParseWeeklySchedule(specialist.WorkingHours)

	blocks, err := q.specialists.BlocksForRange(ctx, specialistID, dayStart, dayEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	open := schedule.ResolveOpenIntervals(ws, blocks, dayStart, loc)

	booked, err := q.bookings.ActiveForDay(ctx, specialistID, dayStart, dayEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	open = schedule.SubtractBusy(open, busyIntervals(booked))

	return &DayAvailabilityView{
		SpecialistID:  specialistID,
		Date:          date,
		Timezone:      loc.String(),
		OpenIntervals: toIntervalViews(open),
		Slots:         toIntervalViews(schedule.GenerateSlots(open, q.slotMinutes)),
	}, nil
}

// GroupSpots reports the seat situation for a group session identified
// by service and start time. A nil SpotsLeft means unlimited capacity.
func (q *availabilityQueriesImpl) GroupSpots(ctx context.Context, serviceID uuid.UUID, scheduledAt time.Time) (*GroupSpotsView, error) {
	svc, err := q.services.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrServiceNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	key := booking.GroupSessionKey(serviceID, scheduledAt)
	current, err := q.bookings.GroupParticipantCount(ctx, key)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	spots := booking.AvailableSpots(current, svc.MaxParticipants)
	return &GroupSpotsView{
		ServiceID:    serviceID,
		ScheduledAt:  scheduledAt,
		Available:    spots.Available,
		SpotsLeft:    spots.SpotsLeft,
		CurrentCount: spots.CurrentCount,
	}, nil
}

func busyIntervals(bookings []*booking.Booking) []schedule.Interval {
	out := make([]schedule.Interval, 0, len(bookings))
	for _, b := range bookings {
		iv, err := b.Interval()
		if err != nil {
			continue
		}
		out = append(out, iv)
	}
	return out
}

func toIntervalViews(ivs []schedule.Interval) []IntervalView {
	out := make([]IntervalView, 0, len(ivs))
	for _, iv := range ivs {
		out = append(out, IntervalView{Start: iv.Start(), End: iv.End()})
	}
	return out
}

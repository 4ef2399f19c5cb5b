package queries

import (
	"context"
	"time"

	"miyzapis/internal/infra"
	"miyzapis/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrQueryFailed     = errs.New("query failed")
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBySpecialistDate(ctx context.Context, specialistID uuid.UUID, date string, tz *time.Location) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	bookings BookingReader
}

func NewBookingQueries(bookings BookingReader) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBySpecialistDate(ctx context.Context, specialistID uuid.UUID, date string, tz *time.Location) ([]*BookingListItem, error) {
	if tz == nil {
		tz = time.UTC
	}
	dayStart, err := time.ParseInLocation("2006-01-02", date, tz)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	items, err := q.bookings.ListForSpecialistDay(ctx, specialistID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}

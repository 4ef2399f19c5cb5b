package repository

import (
	"context"
	"errors"
	"time"

	"miyzapis/internal/domain/booking"
	"miyzapis/internal/infra"
	"miyzapis/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeExclusionViolation = "23P01"

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Create inserts the admitted booking. The bookings table carries an
// exclusion constraint on (specialist, occupied range) for individual
// bookings; a violation maps to KindConflict so the admission path can
// report it like any other overlap.
func (r *BookingRepository) Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	scheduledEnd := b.ScheduledAt().Add(time.Duration(b.DurationMin()) * time.Minute)

	var id uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO bookings
			(id, customer_id, specialist_id, service_id,
			 scheduled_at, scheduled_end, duration_min,
			 status, participant_count, group_session_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, b.ID(), b.CustomerID(), b.SpecialistID(), b.ServiceID(),
		b.ScheduledAt(), scheduledEnd, b.DurationMin(),
		b.Status().String(), b.ParticipantCount(),
		pgconv.StringPtrToPgtype(b.GroupSessionID()),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeExclusionViolation {
			return uuid.Nil, infra.WrapRepoErr(infra.KindConflict, "booking overlaps an existing booking", err)
		}
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking", err)
	}
	return id, nil
}

package readstore

import (
	"context"
	"time"

	"miyzapis/internal/domain/booking"
	"miyzapis/internal/infra"
	"miyzapis/internal/pkg/pgconv"
	"miyzapis/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

// ActiveForDay loads the bookings that occupy calendar time for the
// specialist within [dayStart, dayEnd). Run inside the admission
// transaction this is the conflict-check snapshot.
func (s *BookingReadStore) ActiveForDay(ctx context.Context, specialistID uuid.UUID, dayStart, dayEnd time.Time) ([]*booking.Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, customer_id, specialist_id, service_id,
		       scheduled_at, duration_min, status, participant_count,
		       group_session_id, created_at, updated_at
		FROM bookings
		WHERE specialist_id = $1
		  AND scheduled_at >= $2
		  AND scheduled_at < $3
		  AND status = ANY($4)
		ORDER BY scheduled_at
	`, specialistID, dayStart, dayEnd, statusStrings(booking.ActiveStatuses))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query active bookings", err)
	}
	defer rows.Close()

	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read bookings", err)
	}
	return out, nil
}

// GroupParticipantCount sums seats taken for one group-session key.
// COMPLETED bookings still count: the session happened and the seat was
// consumed. A single aggregate keeps the accounting in the database
// instead of any process-local counter.
func (s *BookingReadStore) GroupParticipantCount(ctx context.Context, groupSessionID string) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(participant_count), 0)
		FROM bookings
		WHERE group_session_id = $1
		  AND status = ANY($2)
	`, groupSessionID, statusStrings(booking.SeatStatuses)).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to sum group participants", err)
	}
	return count, nil
}

func (s *BookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		v              queries.BookingView
		groupSessionID pgtype.Text
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, `
		SELECT b.id, b.customer_id, b.specialist_id, sp.display_name,
		       b.service_id, sv.name, b.scheduled_at, b.duration_min,
		       b.status, b.participant_count, b.group_session_id,
		       b.created_at, b.updated_at
		FROM bookings b
		JOIN specialists sp ON sp.id = b.specialist_id
		JOIN services sv ON sv.id = b.service_id
		WHERE b.id = $1
	`, id).Scan(
		&v.ID, &v.CustomerID, &v.SpecialistID, &v.SpecialistName,
		&v.ServiceID, &v.ServiceName, &v.ScheduledAt, &v.DurationMin,
		&v.Status, &v.ParticipantCount, &groupSessionID,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}

	v.GroupSessionID = pgconv.StringPtrFromPgtype(groupSessionID)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

func (s *BookingReadStore) ListForSpecialistDay(ctx context.Context, specialistID uuid.UUID, dayStart, dayEnd time.Time) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT b.id, b.service_id, sv.name, b.scheduled_at, b.duration_min, b.status
		FROM bookings b
		JOIN services sv ON sv.id = b.service_id
		WHERE b.specialist_id = $1
		  AND b.scheduled_at >= $2
		  AND b.scheduled_at < $3
		ORDER BY b.scheduled_at
	`, specialistID, dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var out []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.ServiceID, &item.ServiceName, &item.ScheduledAt, &item.DurationMin, &item.Status); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking list item", err)
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking list", err)
	}
	return out, nil
}

func scanBooking(scan func(dest ...any) error) (*booking.Booking, error) {
	var (
		id, customerID, specialistID, serviceID uuid.UUID
		scheduledAt                             time.Time
		durationMin, participantCount           int
		status                                  string
		groupSessionID                          pgtype.Text
		createdAt, updatedAt                    pgtype.Timestamptz
	)
	if err := scan(
		&id, &customerID, &specialistID, &serviceID,
		&scheduledAt, &durationMin, &status, &participantCount,
		&groupSessionID, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, customerID, specialistID, serviceID,
		scheduledAt, durationMin,
		booking.Status(status), participantCount,
		pgconv.StringPtrFromPgtype(groupSessionID),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func statusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

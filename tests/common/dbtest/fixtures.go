//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const defaultWorkingHours = `{
	"monday":    {"isWorking": true, "startTime": "09:00", "endTime": "17:00"},
	"tuesday":   {"isWorking": true, "startTime": "09:00", "endTime": "17:00"},
	"wednesday": {"isWorking": true, "startTime": "09:00", "endTime": "17:00"},
	"thursday":  {"isWorking": true, "startTime": "09:00", "endTime": "17:00"},
	"friday":    {"isWorking": true, "startTime": "09:00", "endTime": "17:00"}
}`

func CreateTestSpecialist(t *testing.T, db DBLike, displayName, timezone string) uuid.UUID {
	t.Helper()
	return CreateTestSpecialistWithHours(t, db, displayName, timezone, defaultWorkingHours)
}

func CreateTestSpecialistWithHours(t *testing.T, db DBLike, displayName, timezone, workingHours string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO specialists (id, display_name, timezone, working_hours)
		VALUES ($1, $2, $3, $4)
	`, id, displayName, timezone, []byte(workingHours))
	require.NoError(t, err)
	return id
}

func CreateTestService(t *testing.T, db DBLike, specialistID uuid.UUID, name string, durationMin int, maxParticipants *int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO services (id, specialist_id, name, duration_min, max_participants)
		VALUES ($1, $2, $3, $4, $5)
	`, id, specialistID, name, durationMin, maxParticipants)
	require.NoError(t, err)
	return id
}

func CreateTestAvailabilityBlock(t *testing.T, db DBLike, specialistID uuid.UUID, start, end time.Time, isAvailable bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO availability_blocks (id, specialist_id, start_datetime, end_datetime, is_available)
		VALUES ($1, $2, $3, $4, $5)
	`, id, specialistID, start, end, isAvailable)
	require.NoError(t, err)
	return id
}

func CreateTestBooking(t *testing.T, db DBLike, customerID, specialistID, serviceID uuid.UUID, scheduledAt time.Time, durationMin int, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings
			(id, customer_id, specialist_id, service_id,
			 scheduled_at, scheduled_end, duration_min, status, participant_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1)
	`, id, customerID, specialistID, serviceID,
		scheduledAt, scheduledAt.Add(time.Duration(durationMin)*time.Minute), durationMin, status)
	require.NoError(t, err)
	return id
}

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		TRUNCATE bookings, notification_jobs, availability_blocks, services, specialists CASCADE
	`)
	return err
}

package readstore

import (
	"context"
	"time"

	"miyzapis/internal/domain/schedule"
	"miyzapis/internal/infra"
	"miyzapis/internal/pkg/pgconv"
	"miyzapis/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpecialistReadStore struct {
	db infra.DBTX
}

func NewSpecialistReadStore(db infra.DBTX) *SpecialistReadStore {
	return &SpecialistReadStore{db: db}
}

func (s *SpecialistReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.SpecialistSnapshot, error) {
	var (
		snap         shared.SpecialistSnapshot
		workingHours []byte
		createdAt    pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, display_name, timezone, working_hours, created_at
		FROM specialists
		WHERE id = $1
	`, id).Scan(&snap.ID, &snap.DisplayName, &snap.Timezone, &workingHours, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "specialist not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find specialist", err)
	}

	snap.WorkingHours = workingHours
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &snap, nil
}

// BlocksForRange returns the availability overrides touching
// [from, to), in start order.
func (s *SpecialistReadStore) BlocksForRange(ctx context.Context, specialistID uuid.UUID, from, to time.Time) ([]schedule.AvailabilityBlock, error) {
	rows, err := s.db.Query(ctx, `
		SELECT start_datetime, end_datetime, is_available
		FROM availability_blocks
		WHERE specialist_id = $1
		  AND start_datetime < $3
		  AND end_datetime > $2
		ORDER BY start_datetime
	`, specialistID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query availability blocks", err)
	}
	defer rows.Close()

	var blocks []schedule.AvailabilityBlock
	for rows.Next() {
		var b schedule.AvailabilityBlock
		if err := rows.Scan(&b.Start, &b.End, &b.IsAvailable); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan availability block", err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read availability blocks", err)
	}
	return blocks, nil
}

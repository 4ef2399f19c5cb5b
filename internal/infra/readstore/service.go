package readstore

import (
	"context"

	"miyzapis/internal/infra"
	"miyzapis/internal/pkg/pgconv"
	"miyzapis/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ServiceReadStore struct {
	db infra.DBTX
}

func NewServiceReadStore(db infra.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: db}
}

func (s *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var (
		snap            shared.ServiceSnapshot
		maxParticipants pgtype.Int4
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, specialist_id, name, duration_min, max_participants
		FROM services
		WHERE id = $1
	`, id).Scan(&snap.ID, &snap.SpecialistID, &snap.Name, &snap.DurationMin, &maxParticipants)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "service not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find service", err)
	}

	snap.MaxParticipants = pgconv.IntPtrFromPgtype(maxParticipants)
	return &snap, nil
}

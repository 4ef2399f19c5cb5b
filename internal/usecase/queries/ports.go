package queries

import (
	"context"
	"time"

	"miyzapis/internal/domain/booking"
	"miyzapis/internal/domain/schedule"
	"miyzapis/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read-side ports, implemented by the infra readstores.

type BookingReader interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForSpecialistDay(ctx context.Context, specialistID uuid.UUID, dayStart, dayEnd time.Time) ([]*BookingListItem, error)
	ActiveForDay(ctx context.Context, specialistID uuid.UUID, dayStart, dayEnd time.Time) ([]*booking.Booking, error)
	GroupParticipantCount(ctx context.Context, groupSessionID string) (int, error)
}

type SpecialistReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.SpecialistSnapshot, error)
	BlocksForRange(ctx context.Context, specialistID uuid.UUID, from, to time.Time) ([]schedule.AvailabilityBlock, error)
}

type ServiceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error)
}

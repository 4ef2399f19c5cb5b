package shared

import (
	"context"
	"time"

	"miyzapis/internal/domain/booking"
	"miyzapis/internal/infra"
	"miyzapis/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTxRetriesExhausted marks a write transaction that kept failing on
// serialization conflicts or lock waits after bounded retries. Callers
// surface it as a transient, retryable outcome.
var ErrTxRetriesExhausted = errs.New("transaction failed after max retries")

type UnitOfWork interface {
	// Within: read-committed transaction for plain write operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: the admission path; the check-then-insert
	// sequence must observe a serializable snapshot so two concurrent
	// admissions cannot both read "no conflict" and both insert
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
	// CommandReads: validation reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() infra.DBTX
}

type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	SpecialistByID(ctx context.Context, id uuid.UUID) (*SpecialistSnapshot, error)
	ActiveBookingsForDay(ctx context.Context, specialistID uuid.UUID, dayStart, dayEnd time.Time) ([]*booking.Booking, error)
	GroupParticipantCount(ctx context.Context, groupSessionID string) (int, error)
}

type BookingRepository interface {
	Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, db infra.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

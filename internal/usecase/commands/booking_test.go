//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"miyzapis/internal/domain/booking"
	"miyzapis/internal/infra"
	"miyzapis/internal/pkg/clock"
	"miyzapis/internal/pkg/errs"
	"miyzapis/internal/usecase/commands"
	"miyzapis/internal/usecase/queries"
	"miyzapis/internal/usecase/shared"
	queriesmock "miyzapis/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeStore is the shared in-memory persistence behind the fake unit of
// work. The uow mutex makes each transaction atomic against the others,
// mirroring what serializable isolation guarantees.
type fakeStore struct {
	bookings []*booking.Booking
	jobs     int

	createErr error
}

func (s *fakeStore) groupCount(key string) int {
	total := 0
	for _, b := range s.bookings {
		if b.GroupSessionID() != nil && *b.GroupSessionID() == key && b.Status().OccupiesSeat() {
			total += b.ParticipantCount()
		}
	}
	return total
}

type fakeReads struct {
	store      *fakeStore
	service    *shared.ServiceSnapshot
	serviceErr error
	specialist *shared.SpecialistSnapshot
	specErr    error
}

func (r *fakeReads) ServiceByID(_ context.Context, _ uuid.UUID) (*shared.ServiceSnapshot, error) {
	return r.service, r.serviceErr
}

func (r *fakeReads) SpecialistByID(_ context.Context, _ uuid.UUID) (*shared.SpecialistSnapshot, error) {
	return r.specialist, r.specErr
}

func (r *fakeReads) ActiveBookingsForDay(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, len(r.store.bookings))
	copy(out, r.store.bookings)
	return out, nil
}

func (r *fakeReads) GroupParticipantCount(_ context.Context, key string) (int, error) {
	return r.store.groupCount(key), nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (f *fakeBookingRepo) Create(_ context.Context, _ infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if f.store.createErr != nil {
		return uuid.Nil, f.store.createErr
	}
	f.store.bookings = append(f.store.bookings, b)
	return b.ID(), nil
}

type fakeNotificationRepo struct {
	store *fakeStore
}

func (f *fakeNotificationRepo) CreateJob(_ context.Context, _ infra.DBTX, _, _ string, _ []byte, _ time.Time) error {
	f.store.jobs++
	return nil
}

type fakeTx struct {
	reads *fakeReads
}

func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{store: t.reads.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository {
	return &fakeNotificationRepo{store: t.reads.store}
}
func (t *fakeTx) Reads() shared.CommandReads { return t.reads }
func (t *fakeTx) DB() infra.DBTX             { return nil }

type fakeUoW struct {
	mu    sync.Mutex
	reads *fakeReads

	serializableErr error
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.WithinSerializable(ctx, fn)
}

func (u *fakeUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.serializableErr != nil {
		return u.serializableErr
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, &fakeTx{reads: u.reads})
}

func (u *fakeUoW) WithinReadOnly(_ context.Context, _ func(ctx context.Context, db infra.DBTX) error) error {
	return nil
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.reads }

type fixture struct {
	store *fakeStore
	uow   *fakeUoW
	sut   commands.BookingCommands

	specialistID uuid.UUID
	serviceID    uuid.UUID
	customerID   uuid.UUID
	scheduledAt  time.Time
}

func newFixture(t *testing.T, maxParticipants *int) *fixture {
	t.Helper()

	f := &fixture{
		store:        &fakeStore{},
		specialistID: uuid.New(),
		serviceID:    uuid.New(),
		customerID:   uuid.New(),
		scheduledAt:  time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
	}

	reads := &fakeReads{
		store: f.store,
		service: &shared.ServiceSnapshot{
			ID:              f.serviceID,
			SpecialistID:    f.specialistID,
			Name:            "Deep Tissue Massage",
			DurationMin:     60,
			MaxParticipants: maxParticipants,
		},
		specialist: &shared.SpecialistSnapshot{
			ID:          f.specialistID,
			DisplayName: "Anna K",
			Timezone:    "UTC",
		},
	}
	f.uow = &fakeUoW{reads: reads}

	ctrl := gomock.NewController(t)
	bookingQueries := queriesmock.NewMockBookingQueries(ctrl)
	bookingQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
			return &queries.BookingView{ID: id}, nil
		}).AnyTimes()

	f.sut = commands.NewBookingCommands(f.uow, bookingQueries, clock.NewMockClock(f.scheduledAt))
	return f
}

func (f *fixture) params() commands.AdmitBookingParams {
	return commands.AdmitBookingParams{
		CustomerID:   f.customerID,
		SpecialistID: f.specialistID,
		ServiceID:    f.serviceID,
		ScheduledAt:  f.scheduledAt,
	}
}

func TestAdmitBooking_Individual(t *testing.T) {
	t.Run("admits into an empty calendar", func(t *testing.T) {
		f := newFixture(t, nil)

		view, err := f.sut.AdmitBooking(context.Background(), f.params())
		require.NoError(t, err)
		require.NotNil(t, view)

		require.Len(t, f.store.bookings, 1)
		created := f.store.bookings[0]
		assert.Equal(t, view.ID, created.ID())
		assert.Equal(t, booking.StatusPending, created.Status())
		assert.Equal(t, 60, created.DurationMin(), "duration defaults from the service")
		assert.Equal(t, 1, created.ParticipantCount(), "participant count defaults to one")
		assert.Nil(t, created.GroupSessionID())
		assert.Equal(t, 1, f.store.jobs, "a notification job is enqueued with the insert")
	})

	t.Run("explicit duration overrides service default", func(t *testing.T) {
		f := newFixture(t, nil)
		params := f.params()
		params.DurationMin = 90

		_, err := f.sut.AdmitBooking(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, 90, f.store.bookings[0].DurationMin())
	})

	t.Run("rejects overlap with existing booking", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.sut.AdmitBooking(context.Background(), f.params())
		require.NoError(t, err)

		params := f.params()
		params.ScheduledAt = f.scheduledAt.Add(30 * time.Minute)

		_, err = f.sut.AdmitBooking(context.Background(), params)
		require.ErrorIs(t, err, commands.ErrTimeConflict)

		var detail *commands.TimeConflictError
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, f.scheduledAt, detail.ConflictStart)
		assert.Equal(t, f.scheduledAt.Add(time.Hour), detail.ConflictEnd)

		assert.Len(t, f.store.bookings, 1, "conflicting booking must not be inserted")
	})

	t.Run("admits back to back booking", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.sut.AdmitBooking(context.Background(), f.params())
		require.NoError(t, err)

		params := f.params()
		params.ScheduledAt = f.scheduledAt.Add(time.Hour)

		_, err = f.sut.AdmitBooking(context.Background(), params)
		require.NoError(t, err)
		assert.Len(t, f.store.bookings, 2)
	})

	t.Run("exclusion constraint violation surfaces as time conflict", func(t *testing.T) {
		f := newFixture(t, nil)
		f.store.createErr = infra.WrapRepoErr(infra.KindConflict, "booking overlaps an existing booking", errs.New("23P01"))

		_, err := f.sut.AdmitBooking(context.Background(), f.params())
		require.ErrorIs(t, err, commands.ErrTimeConflict)
	})
}

func TestAdmitBooking_Group(t *testing.T) {
	limit := func(n int) *int { return &n }

	groupParams := func(f *fixture, participants int) commands.AdmitBookingParams {
		params := f.params()
		params.ParticipantCount = &participants
		return params
	}

	t.Run("admits while seats remain", func(t *testing.T) {
		f := newFixture(t, limit(5))

		_, err := f.sut.AdmitBooking(context.Background(), groupParams(f, 3))
		require.NoError(t, err)

		created := f.store.bookings[0]
		require.NotNil(t, created.GroupSessionID())
		assert.Equal(t, booking.GroupSessionKey(f.serviceID, f.scheduledAt), *created.GroupSessionID())
	})

	t.Run("same session accepts bookings up to the cap", func(t *testing.T) {
		f := newFixture(t, limit(5))

		_, err := f.sut.AdmitBooking(context.Background(), groupParams(f, 4))
		require.NoError(t, err)

		_, err = f.sut.AdmitBooking(context.Background(), groupParams(f, 1))
		require.NoError(t, err)
		assert.Len(t, f.store.bookings, 2)
	})

	t.Run("rejects when requested exceeds remaining seats", func(t *testing.T) {
		f := newFixture(t, limit(5))

		_, err := f.sut.AdmitBooking(context.Background(), groupParams(f, 4))
		require.NoError(t, err)

		_, err = f.sut.AdmitBooking(context.Background(), groupParams(f, 2))
		require.ErrorIs(t, err, commands.ErrCapacityExceeded)

		var detail *commands.CapacityError
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, 1, detail.SpotsLeft)
		assert.Equal(t, 4, detail.CurrentCount)
		assert.Len(t, f.store.bookings, 1)
	})

	t.Run("group bookings never run the overlap check", func(t *testing.T) {
		f := newFixture(t, limit(10))

		_, err := f.sut.AdmitBooking(context.Background(), groupParams(f, 1))
		require.NoError(t, err)

		// Same start time, same specialist: fine for a group session.
		_, err = f.sut.AdmitBooking(context.Background(), groupParams(f, 1))
		require.NoError(t, err)
		assert.Len(t, f.store.bookings, 2)
	})

	t.Run("service without participant cap takes the individual path", func(t *testing.T) {
		f := newFixture(t, nil)

		params := f.params()
		params.ParticipantCount = intPtr(50)

		_, err := f.sut.AdmitBooking(context.Background(), params)
		require.NoError(t, err)
		assert.Nil(t, f.store.bookings[0].GroupSessionID())
	})
}

func TestAdmitBooking_Validation(t *testing.T) {
	t.Run("zero participant count rejected", func(t *testing.T) {
		f := newFixture(t, nil)
		params := f.params()
		params.ParticipantCount = intPtr(0)

		_, err := f.sut.AdmitBooking(context.Background(), params)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("negative duration rejected", func(t *testing.T) {
		f := newFixture(t, nil)
		params := f.params()
		params.DurationMin = -15

		_, err := f.sut.AdmitBooking(context.Background(), params)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture(t, nil)
		f.uow.reads.service = nil
		f.uow.reads.serviceErr = infra.WrapRepoErr(infra.KindNotFound, "service not found", errs.New("no rows"))

		_, err := f.sut.AdmitBooking(context.Background(), f.params())
		require.ErrorIs(t, err, commands.ErrServiceNotFound)
	})

	t.Run("unknown specialist", func(t *testing.T) {
		f := newFixture(t, nil)
		f.uow.reads.specialist = nil
		f.uow.reads.specErr = infra.WrapRepoErr(infra.KindNotFound, "specialist not found", errs.New("no rows"))

		_, err := f.sut.AdmitBooking(context.Background(), f.params())
		require.ErrorIs(t, err, commands.ErrSpecialistNotFound)
	})

	t.Run("service belonging to another specialist", func(t *testing.T) {
		f := newFixture(t, nil)
		f.uow.reads.service.SpecialistID = uuid.New()

		_, err := f.sut.AdmitBooking(context.Background(), f.params())
		require.ErrorIs(t, err, commands.ErrServiceMismatch)
	})
}

func TestAdmitBooking_Transient(t *testing.T) {
	f := newFixture(t, nil)
	f.uow.serializableErr = errs.Mark(errs.New("serialization failure"), shared.ErrTxRetriesExhausted)

	_, err := f.sut.AdmitBooking(context.Background(), f.params())
	require.ErrorIs(t, err, commands.ErrAdmissionTransient)
}

// Two concurrent admissions for the same slot: exactly one wins. The
// fake unit of work serializes transactions the way the database's
// serializable isolation would.
func TestAdmitBooking_ConcurrentSameSlot(t *testing.T) {
	f := newFixture(t, nil)

	var wg sync.WaitGroup
	errsCh := make(chan error, 2)

	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.sut.AdmitBooking(context.Background(), f.params())
			errsCh <- err
		}()
	}
	wg.Wait()
	close(errsCh)

	var successes, conflicts int
	for err := range errsCh {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, commands.ErrTimeConflict)
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, f.store.bookings, 1)
}

func intPtr(n int) *int { return &n }

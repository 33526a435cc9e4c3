package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ReservesService/pkg/ptr"
)

type fakeSpaceRepo struct {
	spaces map[int64]*domain.Space
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, id int64) (*domain.Space, error) {
	s, ok := f.spaces[id]
	if !ok {
		return nil, spaceRepo.ErrSpaceNotFound
	}
	copied := *s
	return &copied, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	nextID       int64

	createCalls int
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	f.createCalls++
	created := *r
	f.nextID++
	created.ID = f.nextID
	f.reservations = append(f.reservations, &created)
	return &created, nil
}

func (f *fakeReservationRepo) FindOverlapping(_ context.Context, spaceID int64, start, end time.Time) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if r.SpaceID != spaceID || !r.IsActive() {
			continue
		}
		if r.StartTime.Before(end) && start.Before(r.EndTime) {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	timeConflicts int
}

func (f *fakeMetrics) IncTimeConflict() { f.timeConflicts++ }

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(spaces *fakeSpaceRepo, reservations *fakeReservationRepo) (*UseCase, *fakeMetrics) {
	metrics := &fakeMetrics{}
	uc := NewUseCase(spaces, reservations, fakeTxManager{}, metrics, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc, metrics
}

func validRequest() *Request {
	return &Request{
		SpaceID:   1,
		UserName:  "Ivan Petrov",
		UserEmail: "ivan@example.com",
		StartTime: time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 11, 10, 11, 0, 0, 0, time.UTC),
	}
}

func availableSpace() *domain.Space {
	return &domain.Space{
		ID:           1,
		Name:         "Meeting Room A",
		Type:         domain.TypeMeetingRoom,
		Capacity:     8,
		PricePerHour: 25.0,
		Available:    true,
	}
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("creates confirmed reservation with ceil pricing", func(t *testing.T) {
		spaces := &fakeSpaceRepo{spaces: map[int64]*domain.Space{1: availableSpace()}}
		reservations := &fakeReservationRepo{}
		uc, _ := newTestUseCase(spaces, reservations)

		req := validRequest()
		req.EndTime = req.StartTime.Add(61 * time.Minute) // 2 billed hours

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.Equal(t, "Meeting Room A", resp.SpaceName)
		assert.Equal(t, 50.0, resp.TotalPrice)
	})

	t.Run("rejects overlapping window", func(t *testing.T) {
		spaces := &fakeSpaceRepo{spaces: map[int64]*domain.Space{1: availableSpace()}}
		reservations := &fakeReservationRepo{reservations: []*domain.Reservation{{
			ID:        10,
			SpaceID:   1,
			StartTime: time.Date(2025, 11, 10, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC),
			Status:    domain.StatusConfirmed,
		}}}
		uc, metrics := newTestUseCase(spaces, reservations)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTimeConflict)
		assert.Zero(t, reservations.createCalls)
		assert.Equal(t, 1, metrics.timeConflicts)
	})

	t.Run("touching windows do not conflict", func(t *testing.T) {
		spaces := &fakeSpaceRepo{spaces: map[int64]*domain.Space{1: availableSpace()}}
		reservations := &fakeReservationRepo{reservations: []*domain.Reservation{{
			ID:        10,
			SpaceID:   1,
			StartTime: time.Date(2025, 11, 10, 11, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC),
			Status:    domain.StatusConfirmed,
		}}}
		uc, _ := newTestUseCase(spaces, reservations)

		// Ends exactly where the existing reservation starts.
		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	})

	t.Run("cancelled reservations do not block", func(t *testing.T) {
		spaces := &fakeSpaceRepo{spaces: map[int64]*domain.Space{1: availableSpace()}}
		reservations := &fakeReservationRepo{reservations: []*domain.Reservation{{
			ID:        10,
			SpaceID:   1,
			StartTime: time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 11, 10, 11, 0, 0, 0, time.UTC),
			Status:    domain.StatusCancelled,
		}}}
		uc, _ := newTestUseCase(spaces, reservations)

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	})

	t.Run("space not found", func(t *testing.T) {
		uc, _ := newTestUseCase(&fakeSpaceRepo{spaces: map[int64]*domain.Space{}}, &fakeReservationRepo{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSpaceNotFound)
	})

	t.Run("space unavailable", func(t *testing.T) {
		space := availableSpace()
		space.Available = false
		spaces := &fakeSpaceRepo{spaces: map[int64]*domain.Space{1: space}}
		uc, _ := newTestUseCase(spaces, &fakeReservationRepo{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSpaceUnavailable)
	})
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(&fakeSpaceRepo{spaces: map[int64]*domain.Space{}}, &fakeReservationRepo{})

	t.Run("end before start", func(t *testing.T) {
		req := validRequest()
		req.StartTime, req.EndTime = req.EndTime, req.StartTime

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("start in past", func(t *testing.T) {
		req := validRequest()
		req.StartTime = testNow.Add(-time.Hour)
		req.EndTime = testNow.Add(time.Hour)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrStartInPast)
	})

	t.Run("malformed email", func(t *testing.T) {
		req := validRequest()
		req.UserEmail = "not-an-email"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("notes too long", func(t *testing.T) {
		req := validRequest()
		long := make([]byte, domain.MaxNotesLength+1)
		for i := range long {
			long[i] = 'x'
		}
		req.Notes = ptr.Ptr(string(long))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/reservation"
	spaceRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/space"
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
	reservations map[int64]*domain.Reservation

	updateCalls int
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReservationRepo) FindOverlapping(_ context.Context, spaceID int64, start, end time.Time) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if r.SpaceID != spaceID || !r.IsActive() {
			continue
		}
		if r.StartTime.Before(end) && start.Before(r.EndTime) {
			copied := *r
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, id int64, reservation *domain.Reservation) (*domain.Reservation, error) {
	f.updateCalls++
	if _, ok := f.reservations[id]; !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	updated := *reservation
	updated.ID = id
	f.reservations[id] = &updated
	copied := updated
	return &copied, nil
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

func testSetup() (*fakeSpaceRepo, *fakeReservationRepo) {
	spaces := &fakeSpaceRepo{spaces: map[int64]*domain.Space{1: {
		ID:           1,
		Name:         "Meeting Room A",
		Type:         domain.TypeMeetingRoom,
		Capacity:     8,
		PricePerHour: 25.0,
		Available:    true,
	}}}
	reservations := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{1: {
		ID:         1,
		SpaceID:    1,
		SpaceName:  "Meeting Room A",
		UserName:   "Ivan Petrov",
		UserEmail:  "ivan@example.com",
		StartTime:  time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 11, 10, 11, 0, 0, 0, time.UTC),
		Status:     domain.StatusConfirmed,
		TotalPrice: 50.0,
	}}}
	return spaces, reservations
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("moves window and reprices", func(t *testing.T) {
		spaces, reservations := testSetup()
		uc, _ := newTestUseCase(spaces, reservations)

		resp, err := uc.Execute(context.Background(), &Request{
			ReservationID: 1,
			StartTime:     time.Date(2025, 11, 11, 9, 0, 0, 0, time.UTC),
			EndTime:       time.Date(2025, 11, 11, 12, 30, 0, 0, time.UTC), // 4 billed hours
		})
		require.NoError(t, err)
		assert.Equal(t, 100.0, resp.TotalPrice)
		assert.Equal(t, 1, reservations.updateCalls)
	})

	t.Run("own window does not conflict with itself", func(t *testing.T) {
		spaces, reservations := testSetup()
		uc, _ := newTestUseCase(spaces, reservations)

		// Shift one hour into the old window.
		resp, err := uc.Execute(context.Background(), &Request{
			ReservationID: 1,
			StartTime:     time.Date(2025, 11, 10, 10, 0, 0, 0, time.UTC),
			EndTime:       time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, 50.0, resp.TotalPrice)
	})

	t.Run("conflicts with another reservation", func(t *testing.T) {
		spaces, reservations := testSetup()
		reservations.reservations[2] = &domain.Reservation{
			ID:        2,
			SpaceID:   1,
			StartTime: time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 11, 10, 14, 0, 0, 0, time.UTC),
			Status:    domain.StatusConfirmed,
		}
		uc, metrics := newTestUseCase(spaces, reservations)

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: 1,
			StartTime:     time.Date(2025, 11, 10, 11, 0, 0, 0, time.UTC),
			EndTime:       time.Date(2025, 11, 10, 13, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrTimeConflict)
		assert.Zero(t, reservations.updateCalls)
		assert.Equal(t, 1, metrics.timeConflicts)
	})

	t.Run("cancelled reservation is immutable", func(t *testing.T) {
		spaces, reservations := testSetup()
		reservations.reservations[1].Status = domain.StatusCancelled
		uc, _ := newTestUseCase(spaces, reservations)

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: 1,
			StartTime:     time.Date(2025, 11, 11, 9, 0, 0, 0, time.UTC),
			EndTime:       time.Date(2025, 11, 11, 10, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrReservationCancelled)
	})

	t.Run("not found", func(t *testing.T) {
		spaces, _ := testSetup()
		uc, _ := newTestUseCase(spaces, &fakeReservationRepo{reservations: map[int64]*domain.Reservation{}})

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: 42,
			StartTime:     time.Date(2025, 11, 11, 9, 0, 0, 0, time.UTC),
			EndTime:       time.Date(2025, 11, 11, 10, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("inverted window rejected before any lookup", func(t *testing.T) {
		spaces, reservations := testSetup()
		uc, _ := newTestUseCase(spaces, reservations)

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: 1,
			StartTime:     time.Date(2025, 11, 11, 10, 0, 0, 0, time.UTC),
			EndTime:       time.Date(2025, 11, 11, 9, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

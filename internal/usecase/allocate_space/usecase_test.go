package allocate_space

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

type fakeSpaceRepo struct {
	spaces []*domain.Space
}

func (f *fakeSpaceRepo) List(_ context.Context, filter domain.SpaceFilter) ([]*domain.Space, error) {
	var result []*domain.Space
	for _, s := range f.spaces {
		if filter.AvailableOnly && !s.Available {
			continue
		}
		copied := *s
		result = append(result, &copied)
	}
	return result, nil
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
	attempts int
	failures int
}

func (f *fakeMetrics) IncAllocationAttempt() { f.attempts++ }
func (f *fakeMetrics) IncAllocationFailure() { f.failures++ }

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow   = time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	testStart = time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2025, 11, 10, 11, 0, 0, 0, time.UTC)
)

func newTestUseCase(spaces *fakeSpaceRepo, reservations *fakeReservationRepo) (*UseCase, *fakeMetrics) {
	metrics := &fakeMetrics{}
	uc := NewUseCase(spaces, reservations, fakeTxManager{}, metrics, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc, metrics
}

func allocationRequest() *Request {
	return &Request{
		RequiredCapacity: 5,
		StartTime:        testStart,
		EndTime:          testEnd,
		UserName:         "Ivan Petrov",
		UserEmail:        "ivan@example.com",
	}
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("allocates cheapest free candidate", func(t *testing.T) {
		spaces := &fakeSpaceRepo{spaces: []*domain.Space{
			space(1, 20.0, 8),
			space(2, 10.0, 8),
		}}
		reservations := &fakeReservationRepo{}
		uc, metrics := newTestUseCase(spaces, reservations)

		resp, err := uc.Execute(context.Background(), allocationRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.SpaceID)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.Equal(t, 20.0, resp.TotalPrice)
		assert.Equal(t, 1, metrics.attempts)
		assert.Zero(t, metrics.failures)
	})

	t.Run("falls through to next candidate when cheapest is busy", func(t *testing.T) {
		spaces := &fakeSpaceRepo{spaces: []*domain.Space{
			space(1, 20.0, 8),
			space(2, 10.0, 8),
		}}
		reservations := &fakeReservationRepo{reservations: []*domain.Reservation{{
			ID:        99,
			SpaceID:   2,
			StartTime: testStart,
			EndTime:   testEnd,
			Status:    domain.StatusConfirmed,
		}}, nextID: 99}
		uc, _ := newTestUseCase(spaces, reservations)

		resp, err := uc.Execute(context.Background(), allocationRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.SpaceID)
		assert.Equal(t, 40.0, resp.TotalPrice)
	})

	t.Run("exhaustion persists nothing", func(t *testing.T) {
		spaces := &fakeSpaceRepo{spaces: []*domain.Space{
			space(1, 20.0, 8),
			space(2, 10.0, 8),
		}}
		reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
			{ID: 98, SpaceID: 1, StartTime: testStart, EndTime: testEnd, Status: domain.StatusConfirmed},
			{ID: 99, SpaceID: 2, StartTime: testStart, EndTime: testEnd, Status: domain.StatusConfirmed},
		}, nextID: 99}
		uc, metrics := newTestUseCase(spaces, reservations)

		_, err := uc.Execute(context.Background(), allocationRequest())
		assert.ErrorIs(t, err, ErrNoSpaceAvailable)
		assert.Zero(t, reservations.createCalls)
		assert.Equal(t, 1, metrics.failures)
	})

	t.Run("no candidate matches the filter", func(t *testing.T) {
		spaces := &fakeSpaceRepo{spaces: []*domain.Space{space(1, 20.0, 2)}}
		uc, metrics := newTestUseCase(spaces, &fakeReservationRepo{})

		_, err := uc.Execute(context.Background(), allocationRequest())
		assert.ErrorIs(t, err, ErrNoSpaceAvailable)
		assert.Equal(t, 1, metrics.failures)
	})

	t.Run("rejects window starting in the past", func(t *testing.T) {
		uc, _ := newTestUseCase(&fakeSpaceRepo{}, &fakeReservationRepo{})

		req := allocationRequest()
		req.StartTime = testNow.Add(-time.Hour)
		req.EndTime = testNow.Add(time.Hour)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrStartInPast)
	})
}

func TestRankByTotalCost(t *testing.T) {
	// 90 minutes bills 2 hours, so a $9/h space costs $18 and a $10/h space $20.
	start := testStart
	end := testStart.Add(90 * time.Minute)

	a := space(1, 10.0, 8)
	b := space(2, 9.0, 8)

	ranked := rankByTotalCost([]*domain.Space{a, b}, start, end)

	require.Len(t, ranked, 2)
	assert.Equal(t, int64(2), ranked[0].ID)
	assert.Equal(t, int64(1), ranked[1].ID)

	// Stable: equal cost preserves candidate order.
	c := space(3, 10.0, 12)
	ranked = rankByTotalCost([]*domain.Space{a, c}, start, end)
	assert.Equal(t, int64(1), ranked[0].ID)
	assert.Equal(t, int64(3), ranked[1].ID)
}

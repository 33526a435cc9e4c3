package get_free_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
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
	return s, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	spaces := &fakeSpaceRepo{spaces: map[int64]*domain.Space{1: {ID: 1, Name: "Meeting Room A", Available: true}}}

	t.Run("returns gaps around reservations", func(t *testing.T) {
		reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
			{ID: 1, SpaceID: 1, StartTime: at(9, 0), EndTime: at(10, 0), Status: domain.StatusConfirmed},
			{ID: 2, SpaceID: 1, StartTime: at(11, 0), EndTime: at(12, 0), Status: domain.StatusConfirmed},
		}}
		uc := NewUseCase(spaces, reservations, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{SpaceID: 1, From: at(9, 0), To: at(18, 0)})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 2)
		assert.Equal(t, at(10, 0), resp.Slots[0].StartTime)
		assert.Equal(t, at(11, 0), resp.Slots[0].EndTime)
		assert.Equal(t, at(12, 0), resp.Slots[1].StartTime)
		assert.Equal(t, at(18, 0), resp.Slots[1].EndTime)
	})

	t.Run("empty space yields the whole range", func(t *testing.T) {
		uc := NewUseCase(spaces, &fakeReservationRepo{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{SpaceID: 1, From: at(9, 0), To: at(18, 0)})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, at(9, 0), resp.Slots[0].StartTime)
		assert.Equal(t, at(18, 0), resp.Slots[0].EndTime)
	})

	t.Run("space not found", func(t *testing.T) {
		uc := NewUseCase(&fakeSpaceRepo{spaces: map[int64]*domain.Space{}}, &fakeReservationRepo{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{SpaceID: 5, From: at(9, 0), To: at(18, 0)})
		assert.ErrorIs(t, err, ErrSpaceNotFound)
	})

	t.Run("inverted range", func(t *testing.T) {
		uc := NewUseCase(spaces, &fakeReservationRepo{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{SpaceID: 1, From: at(18, 0), To: at(9, 0)})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservesService/internal/service/reservations/models"
)

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation

	updateStatusCalls int
	deleteCalls       int
}

func newFakeReservationRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{reservations: make(map[int64]*domain.Reservation)}
	for _, r := range reservations {
		repo.reservations[r.ID] = r
	}
	return repo
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReservationRepo) GetByUserEmail(_ context.Context, email string) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if r.UserEmail == email {
			copied := *r
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if filter.SpaceID != nil && r.SpaceID != *filter.SpaceID {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.UserEmail != nil && r.UserEmail != *filter.UserEmail {
			continue
		}
		copied := *r
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	f.updateStatusCalls++
	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	f.deleteCalls++
	if _, ok := f.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.reservations, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testReservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		SpaceID:    1,
		SpaceName:  "Meeting Room A",
		UserName:   "Ivan Petrov",
		UserEmail:  "ivan@example.com",
		StartTime:  time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 11, 10, 11, 0, 0, 0, time.UTC),
		Status:     status,
		TotalPrice: 50.0,
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("returns reservation", func(t *testing.T) {
		repo := newFakeReservationRepo(testReservation(1, domain.StatusConfirmed))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Meeting Room A", resp.SpaceName)
		assert.Equal(t, "2025-11-10T09:00:00", resp.StartTime)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(newFakeReservationRepo(), nopLogger{})

		_, err := svc.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestService_GetByUserEmail(t *testing.T) {
	repo := newFakeReservationRepo(
		testReservation(1, domain.StatusConfirmed),
		testReservation(2, domain.StatusCancelled),
	)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByUserEmail(context.Background(), "ivan@example.com")
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	_, err = svc.GetByUserEmail(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List(t *testing.T) {
	repo := newFakeReservationRepo(
		testReservation(1, domain.StatusConfirmed),
		testReservation(2, domain.StatusCancelled),
	)
	svc := NewService(repo, nopLogger{})

	t.Run("filters by status", func(t *testing.T) {
		status := string(domain.StatusConfirmed)
		resp, err := svc.List(context.Background(), &models.ListReservationsRequest{Status: &status})
		require.NoError(t, err)
		require.Len(t, resp.Reservations, 1)
		assert.Equal(t, int64(1), resp.Reservations[0].ID)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		status := "unknown"
		_, err := svc.List(context.Background(), &models.ListReservationsRequest{Status: &status})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("cancels confirmed reservation", func(t *testing.T) {
		repo := newFakeReservationRepo(testReservation(1, domain.StatusConfirmed))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Cancel(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		assert.Equal(t, domain.StatusCancelled, repo.reservations[1].Status)
	})

	t.Run("idempotent on already cancelled", func(t *testing.T) {
		repo := newFakeReservationRepo(testReservation(1, domain.StatusCancelled))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Cancel(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(newFakeReservationRepo(), nopLogger{})

		_, err := svc.Cancel(context.Background(), 99)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("moves reservation to completed", func(t *testing.T) {
		repo := newFakeReservationRepo(testReservation(1, domain.StatusConfirmed))
		svc := NewService(repo, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, "completed")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, repo.reservations[1].Status)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		repo := newFakeReservationRepo(testReservation(1, domain.StatusConfirmed))
		svc := NewService(repo, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, "finished")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Zero(t, repo.updateStatusCalls)
	})
}

func TestService_Delete(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, domain.StatusCancelled))
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, repo.reservations)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

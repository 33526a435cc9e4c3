package spaces

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ReservesService/internal/service/spaces/models"
	"github.com/m04kA/SMC-ReservesService/pkg/ptr"
)

type fakeSpaceRepo struct {
	spaces map[int64]*domain.Space
	nextID int64
}

func newFakeSpaceRepo(spaces ...*domain.Space) *fakeSpaceRepo {
	repo := &fakeSpaceRepo{spaces: make(map[int64]*domain.Space), nextID: 1}
	for _, s := range spaces {
		repo.spaces[s.ID] = s
		if s.ID >= repo.nextID {
			repo.nextID = s.ID + 1
		}
	}
	return repo
}

func (f *fakeSpaceRepo) Create(_ context.Context, space *domain.Space) (*domain.Space, error) {
	created := *space
	created.ID = f.nextID
	f.nextID++
	f.spaces[created.ID] = &created
	return &created, nil
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, id int64) (*domain.Space, error) {
	s, ok := f.spaces[id]
	if !ok {
		return nil, spaceRepo.ErrSpaceNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSpaceRepo) List(_ context.Context, filter domain.SpaceFilter) ([]*domain.Space, error) {
	var result []*domain.Space
	for _, s := range f.spaces {
		if filter.Type != nil && s.Type != *filter.Type {
			continue
		}
		if filter.MinCapacity != nil && s.Capacity < *filter.MinCapacity {
			continue
		}
		if filter.MaxPricePerHour != nil && s.PricePerHour > *filter.MaxPricePerHour {
			continue
		}
		if filter.AvailableOnly && !s.Available {
			continue
		}
		copied := *s
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeSpaceRepo) Update(_ context.Context, id int64, space *domain.Space) (*domain.Space, error) {
	existing, ok := f.spaces[id]
	if !ok {
		return nil, spaceRepo.ErrSpaceNotFound
	}
	updated := *space
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	f.spaces[id] = &updated
	copied := updated
	return &copied, nil
}

func (f *fakeSpaceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.spaces[id]; !ok {
		return spaceRepo.ErrSpaceNotFound
	}
	delete(f.spaces, id)
	return nil
}

type fakeActiveCounter struct {
	counts map[int64]int64
}

func (f *fakeActiveCounter) CountActiveBySpace(_ context.Context, spaceID int64) (int64, error) {
	return f.counts[spaceID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSpace(id int64) *domain.Space {
	return &domain.Space{
		ID:           id,
		Name:         "Meeting Room A",
		Type:         domain.TypeMeetingRoom,
		Capacity:     8,
		PricePerHour: 25.0,
		Amenities:    []string{"projector", "whiteboard"},
		Available:    true,
	}
}

func TestService_Create(t *testing.T) {
	t.Run("creates space with defaults", func(t *testing.T) {
		repo := newFakeSpaceRepo()
		svc := NewService(repo, &fakeActiveCounter{}, nopLogger{})

		resp, err := svc.Create(context.Background(), &models.CreateSpaceRequest{
			Name:         "Open Desk 1",
			Type:         string(domain.TypeCoworkingSpace),
			Capacity:     1,
			PricePerHour: 5.0,
			Floor:        ptr.Ptr("3"),
			Location:     ptr.Ptr("East wing"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.True(t, resp.Available)
		assert.NotNil(t, resp.Amenities)
		require.NotNil(t, resp.Floor)
		assert.Equal(t, "3", *resp.Floor)
	})

	t.Run("validation failures", func(t *testing.T) {
		svc := NewService(newFakeSpaceRepo(), &fakeActiveCounter{}, nopLogger{})

		cases := []struct {
			name string
			req  models.CreateSpaceRequest
		}{
			{"empty name", models.CreateSpaceRequest{Type: "coworking_space", Capacity: 1, PricePerHour: 5}},
			{"bad type", models.CreateSpaceRequest{Name: "X", Type: "garage", Capacity: 1, PricePerHour: 5}},
			{"zero capacity", models.CreateSpaceRequest{Name: "X", Type: "coworking_space", Capacity: 0, PricePerHour: 5}},
			{"non-positive price", models.CreateSpaceRequest{Name: "X", Type: "coworking_space", Capacity: 1, PricePerHour: 0}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Create(context.Background(), &tc.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestService_List(t *testing.T) {
	repo := newFakeSpaceRepo(testSpace(1))
	svc := NewService(repo, &fakeActiveCounter{}, nopLogger{})

	t.Run("filters by capacity", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &models.ListSpacesRequest{MinCapacity: ptr.Ptr(10)})
		require.NoError(t, err)
		assert.Empty(t, resp.Spaces)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := svc.List(context.Background(), &models.ListSpacesRequest{Type: ptr.Ptr("garage")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Update(t *testing.T) {
	repo := newFakeSpaceRepo(testSpace(1))
	svc := NewService(repo, &fakeActiveCounter{}, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateSpaceRequest{
		Name:         "Meeting Room A+",
		Type:         string(domain.TypeMeetingRoom),
		Capacity:     10,
		PricePerHour: 30.0,
		Available:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Meeting Room A+", resp.Name)
	assert.Equal(t, 10, resp.Capacity)

	_, err = svc.Update(context.Background(), 99, &models.UpdateSpaceRequest{
		Name: "X", Type: "coworking_space", Capacity: 1, PricePerHour: 5, Available: true,
	})
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestService_Delete(t *testing.T) {
	t.Run("deletes space without active reservations", func(t *testing.T) {
		repo := newFakeSpaceRepo(testSpace(1))
		svc := NewService(repo, &fakeActiveCounter{}, nopLogger{})

		require.NoError(t, svc.Delete(context.Background(), 1))
		assert.Empty(t, repo.spaces)
	})

	t.Run("blocked by active reservations", func(t *testing.T) {
		repo := newFakeSpaceRepo(testSpace(1))
		counter := &fakeActiveCounter{counts: map[int64]int64{1: 3}}
		svc := NewService(repo, counter, nopLogger{})

		err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, ErrSpaceHasActiveReservations)
		assert.Len(t, repo.spaces, 1)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(newFakeSpaceRepo(), &fakeActiveCounter{}, nopLogger{})

		err := svc.Delete(context.Background(), 42)
		assert.ErrorIs(t, err, ErrSpaceNotFound)
	})
}

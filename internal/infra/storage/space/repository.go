package space

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	"github.com/m04kA/SMC-ReservesService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservesService/pkg/psqlbuilder"
)

var spaceColumns = []string{
	"id",
	"name",
	"description",
	"type",
	"capacity",
	"price_per_hour",
	"amenities",
	"image_url",
	"floor",
	"location",
	"available",
	"created_at",
}

// Repository репозиторий для работы с пространствами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пространств
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое пространство
func (r *Repository) Create(ctx context.Context, space *domain.Space) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("spaces").
		Columns(
			"name",
			"description",
			"type",
			"capacity",
			"price_per_hour",
			"amenities",
			"image_url",
			"floor",
			"location",
			"available",
		).
		Values(
			space.Name,
			space.Description,
			space.Type,
			space.Capacity,
			space.PricePerHour,
			pq.Array(space.Amenities),
			space.ImageURL,
			space.Floor,
			space.Location,
			space.Available,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&space.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time

	return space, nil
}

// GetByID получает пространство по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	space, err := scanSpace(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	return space, nil
}

// List получает список пространств с опциональными фильтрами
// Фильтры комбинируются: тип, минимальная вместимость, максимальная цена,
// только доступные для бронирования
func (r *Repository) List(ctx context.Context, filter domain.SpaceFilter) ([]*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		OrderBy("id ASC")

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.MinCapacity != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"capacity": *filter.MinCapacity})
	}
	if filter.MaxPricePerHour != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"price_per_hour": *filter.MaxPricePerHour})
	}
	if filter.AvailableOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		space, err := scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		spaces = append(spaces, space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}

// Update обновляет пространство
func (r *Repository) Update(ctx context.Context, id int64, space *domain.Space) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("spaces").
		Set("name", space.Name).
		Set("description", space.Description).
		Set("type", space.Type).
		Set("capacity", space.Capacity).
		Set("price_per_hour", space.PricePerHour).
		Set("amenities", pq.Array(space.Amenities)).
		Set("image_url", space.ImageURL).
		Set("floor", space.Floor).
		Set("location", space.Location).
		Set("available", space.Available).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	space.ID = id
	space.CreatedAt = createdAt.Time

	return space, nil
}

// Delete удаляет пространство (физическое удаление)
// Проверка на активные бронирования выполняется на уровне сервиса
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSpace сканирует одну строку в domain.Space
func scanSpace(row rowScanner) (*domain.Space, error) {
	var space domain.Space
	var createdAt sql.NullTime

	err := row.Scan(
		&space.ID,
		&space.Name,
		&space.Description,
		&space.Type,
		&space.Capacity,
		&space.PricePerHour,
		pq.Array(&space.Amenities),
		&space.ImageURL,
		&space.Floor,
		&space.Location,
		&space.Available,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	space.CreatedAt = createdAt.Time
	return &space, nil
}

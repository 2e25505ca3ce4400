package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/packing"
)

type PackingRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPackingRepository(pool *pgxpool.Pool, log *slog.Logger) *PackingRepository {
	return &PackingRepository{pool: pool, log: log.With("component", "packing_repository")}
}

func (r *PackingRepository) Create(ctx context.Context, it *packing.Item) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO packing_items (user_id, name, category, packed, trip_type)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		it.UserID, it.Name, it.Category, it.Packed, it.TripType,
	).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("insert packing item: %w", err)
	}
	return nil
}

func (r *PackingRepository) List(ctx context.Context, userID uuid.UUID) ([]packing.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, category, packed, trip_type FROM packing_items
		 WHERE user_id = $1 ORDER BY category, name, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list packing items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (packing.Item, error) {
		var it packing.Item
		err := row.Scan(&it.ID, &it.UserID, &it.Name, &it.Category, &it.Packed, &it.TripType)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan packing items: %w", err)
	}
	return nonNil(items), nil
}

func (r *PackingRepository) Update(ctx context.Context, it *packing.Item) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE packing_items SET name = $1, category = $2, packed = $3, trip_type = $4
		 WHERE id = $5 AND user_id = $6`,
		it.Name, it.Category, it.Packed, it.TripType, it.ID, it.UserID)
	if err != nil {
		return fmt.Errorf("update packing item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return packing.ErrNotFound
	}
	return nil
}

func (r *PackingRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return deleteOwned(ctx, r.pool, "packing_items", userID, id, packing.ErrNotFound)
}

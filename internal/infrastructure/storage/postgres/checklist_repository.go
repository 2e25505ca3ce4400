package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/checklist"
)

type ChecklistRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewChecklistRepository(pool *pgxpool.Pool, log *slog.Logger) *ChecklistRepository {
	return &ChecklistRepository{pool: pool, log: log.With("component", "checklist_repository")}
}

func (r *ChecklistRepository) Create(ctx context.Context, it *checklist.Item) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO checklist_items (user_id, name, completed, due_date)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		it.UserID, it.Name, it.Completed, it.DueDate,
	).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("insert checklist item: %w", err)
	}
	return nil
}

func (r *ChecklistRepository) List(ctx context.Context, userID uuid.UUID) ([]checklist.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, completed, due_date FROM checklist_items
		 WHERE user_id = $1 ORDER BY due_date, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list checklist items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (checklist.Item, error) {
		var it checklist.Item
		err := row.Scan(&it.ID, &it.UserID, &it.Name, &it.Completed, &it.DueDate)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan checklist items: %w", err)
	}
	return nonNil(items), nil
}

func (r *ChecklistRepository) Update(ctx context.Context, it *checklist.Item, completed *bool) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE checklist_items SET name = $1, completed = COALESCE($2::boolean, completed), due_date = $3
		 WHERE id = $4 AND user_id = $5 RETURNING completed`,
		it.Name, completed, it.DueDate, it.ID, it.UserID,
	).Scan(&it.Completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return checklist.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update checklist item: %w", err)
	}
	return nil
}

func (r *ChecklistRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return deleteOwned(ctx, r.pool, "checklist_items", userID, id, checklist.ErrNotFound)
}

// deleteOwned removes one row of table if it belongs to userID, notFound otherwise.
func deleteOwned(ctx context.Context, q querier, table string, userID, id uuid.UUID, notFound error) error {
	tag, err := q.Exec(ctx, `DELETE FROM `+pgx.Identifier{table}.Sanitize()+` WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
